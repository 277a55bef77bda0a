package services

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"

	"gorm.io/gorm"
)

type CookService struct {
	DB   *gorm.DB
	Repo *repository.CookRepository
}

func NewCookService(db *gorm.DB, repo *repository.CookRepository) *CookService {
	return &CookService{DB: db, Repo: repo}
}

// Experience is bounded at the binding layer (two digits), not in storage.
type CookIn struct {
	Username          string `json:"username" binding:"required"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	YearsOfExperience int    `json:"yearsOfExperience" binding:"min=0,max=99"`
}

func (s *CookService) List(username string) ([]entity.Cook, error) {
	return s.Repo.List(username)
}

func (s *CookService) Get(id uint) (*entity.Cook, error) {
	c, err := s.Repo.GetWithDishes(id)
	if err != nil {
		return nil, mapNotFound(err, "cook")
	}
	return c, nil
}

func (s *CookService) Create(in *CookIn) (*entity.Cook, error) {
	c := &entity.Cook{
		Username:          in.Username,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		YearsOfExperience: in.YearsOfExperience,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CookService) Update(id uint, in *CookIn) (*entity.Cook, error) {
	c, err := s.Repo.Get(id)
	if err != nil {
		return nil, mapNotFound(err, "cook")
	}
	c.Username = in.Username
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.YearsOfExperience = in.YearsOfExperience
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CookService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return mapNotFound(err, "cook")
	}
	return s.Repo.Delete(id)
}
