package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(7,2)" json:"price"`
	Likes       uint            `gorm:"not null;default:0" json:"likes"`

	DishTypeID uint     `json:"dishTypeId"`
	DishType   DishType `json:"-"`

	Cooks []Cook `gorm:"many2many:dish_cooks;" json:"-"`
}
