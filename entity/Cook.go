package entity

import (
	"gorm.io/gorm"
)

type Cook struct {
	gorm.Model
	Username          string `gorm:"uniqueIndex;not null" json:"username"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	YearsOfExperience int    `gorm:"not null;default:0" json:"yearsOfExperience"`

	Dishes []Dish `gorm:"many2many:dish_cooks;" json:"-"`
}
