package services

import (
	"errors"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/apperr"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB       *gorm.DB
	DishRepo *repository.DishRepository
	TypeRepo *repository.DishTypeRepository
	CookRepo *repository.CookRepository
}

func NewCatalogService(
	db *gorm.DB,
	dr *repository.DishRepository,
	tr *repository.DishTypeRepository,
	cr *repository.CookRepository,
) *CatalogService {
	return &CatalogService{DB: db, DishRepo: dr, TypeRepo: tr, CookRepo: cr}
}

// mapNotFound rewrites gorm's record-not-found into the service taxonomy
// so controllers never have to know about the ORM.
func mapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	return err
}

// ----- DTOs from Controller -----

type DishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	DishTypeID  uint   `json:"dishTypeId" binding:"required"`
}

type DishTypeIn struct {
	Name string `json:"name" binding:"required"`
}

func parsePrice(s string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation("invalid price %q", s)
	}
	if p.IsNegative() {
		return decimal.Zero, apperr.Validation("price must not be negative")
	}
	return p.Round(2), nil
}

// ----- Dishes -----

func (s *CatalogService) ListDishes(name string) ([]entity.Dish, error) {
	return s.DishRepo.List(name)
}

func (s *CatalogService) GetDish(id uint) (*entity.Dish, error) {
	d, err := s.DishRepo.Get(id)
	if err != nil {
		return nil, mapNotFound(err, "dish")
	}
	return d, nil
}

// Price returns the current menu price of a dish. Order items capture it
// at submission time; this is the live value.
func (s *CatalogService) Price(dishID uint) (decimal.Decimal, error) {
	d, err := s.GetDish(dishID)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Price, nil
}

func (s *CatalogService) CreateDish(in *DishIn) (*entity.Dish, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if _, err := s.TypeRepo.Get(in.DishTypeID); err != nil {
		return nil, mapNotFound(err, "dish type")
	}
	d := &entity.Dish{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		DishTypeID:  in.DishTypeID,
	}
	if err := s.DishRepo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *CatalogService) UpdateDish(id uint, in *DishIn) (*entity.Dish, error) {
	d, err := s.GetDish(id)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if _, err := s.TypeRepo.Get(in.DishTypeID); err != nil {
		return nil, mapNotFound(err, "dish type")
	}
	d.Name = in.Name
	d.Description = in.Description
	d.Price = price
	d.DishTypeID = in.DishTypeID
	if err := s.DishRepo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *CatalogService) DeleteDish(id uint) error {
	if _, err := s.GetDish(id); err != nil {
		return err
	}
	return s.DishRepo.Delete(id)
}

// ToggleCook assigns the cook to the dish, or unassigns when already
// assigned. Idempotent with respect to the desired end state; only the
// join table changes, never price or likes.
func (s *CatalogService) ToggleCook(dishID, cookID uint) (assigned bool, err error) {
	d, err := s.DishRepo.Get(dishID)
	if err != nil {
		return false, mapNotFound(err, "dish")
	}
	cook, err := s.CookRepo.Get(cookID)
	if err != nil {
		return false, mapNotFound(err, "cook")
	}

	has, err := s.DishRepo.HasCook(d.ID, cook.ID)
	if err != nil {
		return false, err
	}
	if has {
		return false, s.DishRepo.RemoveCook(d, cook)
	}
	return true, s.DishRepo.AddCook(d, cook)
}

// ----- Dish types -----

func (s *CatalogService) ListDishTypes(name string) ([]entity.DishType, error) {
	return s.TypeRepo.List(name)
}

func (s *CatalogService) GetDishType(id uint) (*entity.DishType, error) {
	t, err := s.TypeRepo.Get(id)
	if err != nil {
		return nil, mapNotFound(err, "dish type")
	}
	return t, nil
}

func (s *CatalogService) CreateDishType(in *DishTypeIn) (*entity.DishType, error) {
	t := &entity.DishType{Name: in.Name}
	if err := s.TypeRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) UpdateDishType(id uint, in *DishTypeIn) (*entity.DishType, error) {
	t, err := s.GetDishType(id)
	if err != nil {
		return nil, err
	}
	t.Name = in.Name
	if err := s.TypeRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) DeleteDishType(id uint) error {
	if _, err := s.GetDishType(id); err != nil {
		return err
	}
	return s.TypeRepo.Delete(id)
}
