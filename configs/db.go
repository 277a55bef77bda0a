package configs

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.DishType{}, &entity.Dish{}, &entity.Cook{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
