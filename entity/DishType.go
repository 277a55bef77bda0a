package entity

import (
	"gorm.io/gorm"
)

type DishType struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Dishes []Dish `json:"-"`
}
