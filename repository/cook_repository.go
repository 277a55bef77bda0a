package repository

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"

	"gorm.io/gorm"
)

type CookRepository struct{ DB *gorm.DB }

func NewCookRepository(db *gorm.DB) *CookRepository { return &CookRepository{DB: db} }

func (r *CookRepository) List(username string) ([]entity.Cook, error) {
	var cooks []entity.Cook
	q := r.DB.Order("username")
	if username != "" {
		q = q.Where("username LIKE ?", "%"+username+"%")
	}
	err := q.Find(&cooks).Error
	return cooks, err
}

func (r *CookRepository) Get(id uint) (*entity.Cook, error) {
	var c entity.Cook
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CookRepository) GetWithDishes(id uint) (*entity.Cook, error) {
	var c entity.Cook
	if err := r.DB.Preload("Dishes").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CookRepository) Create(c *entity.Cook) error {
	return r.DB.Create(c).Error
}

func (r *CookRepository) Update(c *entity.Cook) error {
	return r.DB.Save(c).Error
}

func (r *CookRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Cook{}, id).Error
}
