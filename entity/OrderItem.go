package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty int `gorm:"not null" json:"qty"`

	// Dish price snapshot taken at submission time, so later menu price
	// changes never rewrite historical order totals.
	UnitPrice decimal.Decimal `gorm:"type:decimal(7,2)" json:"unitPrice"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`
}
