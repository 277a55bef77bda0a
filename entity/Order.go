package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"not null;default:new" json:"status"`
	Notes  string      `json:"notes"`

	// Nullable on purpose: deleting a table must not erase its order history.
	TableID *uint  `json:"tableId"`
	Table   *Table `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
