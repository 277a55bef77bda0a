package repository

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"

	"gorm.io/gorm"
)

type DishTypeRepository struct{ DB *gorm.DB }

func NewDishTypeRepository(db *gorm.DB) *DishTypeRepository {
	return &DishTypeRepository{DB: db}
}

func (r *DishTypeRepository) List(name string) ([]entity.DishType, error) {
	var types []entity.DishType
	q := r.DB.Order("name")
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	err := q.Find(&types).Error
	return types, err
}

func (r *DishTypeRepository) Get(id uint) (*entity.DishType, error) {
	var t entity.DishType
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DishTypeRepository) Create(t *entity.DishType) error {
	return r.DB.Create(t).Error
}

func (r *DishTypeRepository) Update(t *entity.DishType) error {
	return r.DB.Save(t).Error
}

func (r *DishTypeRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.DishType{}, id).Error
}
