package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database. The DSN is derived from
// the test name because a bare ":memory:" gives every pooled connection
// its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.DishType{}, &entity.Dish{}, &entity.Cook{},
		&entity.Table{}, &entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedDishType(t *testing.T, db *gorm.DB, name string) *entity.DishType {
	t.Helper()
	dt := &entity.DishType{Name: name}
	if err := db.Create(dt).Error; err != nil {
		t.Fatalf("seed dish type: %v", err)
	}
	return dt
}

func seedDish(t *testing.T, db *gorm.DB, name, price string, typeID uint) *entity.Dish {
	t.Helper()
	d := &entity.Dish{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		DishTypeID: typeID,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("seed dish %s: %v", name, err)
	}
	return d
}

func seedTable(t *testing.T, db *gorm.DB, number int) *entity.Table {
	t.Helper()
	tb := &entity.Table{Number: number}
	if err := db.Create(tb).Error; err != nil {
		t.Fatalf("seed table %d: %v", number, err)
	}
	return tb
}

func newCatalog(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		db,
		repository.NewDishRepository(db),
		repository.NewDishTypeRepository(db),
		repository.NewCookRepository(db),
	)
}
