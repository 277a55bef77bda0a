package repository

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) List(number *int) ([]entity.Table, error) {
	var tables []entity.Table
	q := r.DB.Order("number")
	if number != nil {
		q = q.Where("number = ?", *number)
	}
	err := q.Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByUUID resolves the public identifier printed in the QR code.
func (r *TableRepository) GetByUUID(id string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("uuid = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) NumberTaken(number int, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Table{}).Where("number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

// Delete detaches orders first so history survives with a NULL table.
func (r *TableRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Order{}).
			Where("table_id = ?", id).
			Update("table_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Table{}, id).Error
	})
}

func (r *TableRepository) SaveQRCode(id uint, png []byte) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Update("qr_code", png).Error
}

func (r *TableRepository) ClearQRCode(id uint) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Update("qr_code", nil).Error
}
