package repository

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

// List returns dishes for the menu, optionally filtered by a
// case-insensitive substring of the name, ordered the way the menu is
// rendered: by dish type name, then dish name.
func (r *DishRepository) List(name string) ([]entity.Dish, error) {
	var dishes []entity.Dish
	q := r.DB.Preload("DishType").
		Joins("JOIN dish_types ON dish_types.id = dishes.dish_type_id").
		Order("dish_types.name, dishes.name")
	if name != "" {
		q = q.Where("dishes.name LIKE ?", "%"+name+"%")
	}
	err := q.Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Get(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Preload("DishType").Preload("Cooks").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}

// HasCook reports whether the cook is currently assigned to the dish.
func (r *DishRepository) HasCook(dishID, cookID uint) (bool, error) {
	var count int64
	err := r.DB.Table("dish_cooks").
		Where("dish_id = ? AND cook_id = ?", dishID, cookID).
		Count(&count).Error
	return count > 0, err
}

func (r *DishRepository) AddCook(d *entity.Dish, c *entity.Cook) error {
	return r.DB.Model(d).Association("Cooks").Append(c)
}

func (r *DishRepository) RemoveCook(d *entity.Dish, c *entity.Cook) error {
	return r.DB.Model(d).Association("Cooks").Delete(c)
}

// IncrementLikes bumps the counter in a single UPDATE so concurrent likes
// from different sessions are both counted. Returns rows affected: 0
// means the dish no longer exists.
func (r *DishRepository) IncrementLikes(id uint) (int64, error) {
	res := r.DB.Model(&entity.Dish{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	return res.RowsAffected, res.Error
}
