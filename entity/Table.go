package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number      int    `gorm:"uniqueIndex;not null" json:"number"`
	UUID        string `gorm:"uniqueIndex;size:36;not null" json:"uuid"`
	Description string `json:"description"`

	// Cached QR image; regenerated only after an explicit clear.
	QRCode []byte `gorm:"type:blob" json:"-"`

	Orders []Order `json:"-"`
}

// BeforeCreate assigns the public identifier exactly once. It is never
// rewritten on update, so the printed QR codes stay valid.
func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == "" {
		t.UUID = uuid.NewString()
	}
	return nil
}
