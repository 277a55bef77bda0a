package configs

import (
	"log"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"

	"github.com/shopspring/decimal"
)

// SeedDemoData fills an empty database with a small menu and a few tables
// so the public endpoints work out of the box. Safe to rerun.
func SeedDemoData() error {
	db := DB()

	var count int64
	db.Model(&entity.Dish{}).Count(&count)
	if count > 0 {
		log.Println("skip seeding: dishes already present")
		return nil
	}

	var mains, desserts entity.DishType
	db.FirstOrCreate(&mains, entity.DishType{Name: "Main courses"})
	db.FirstOrCreate(&desserts, entity.DishType{Name: "Desserts"})

	cook := entity.Cook{
		Username: "m.ramsay", FirstName: "Marco", LastName: "Ramsay",
		Email: "marco@example.com", YearsOfExperience: 12,
	}
	db.FirstOrCreate(&cook, entity.Cook{Username: "m.ramsay"})

	dishes := []entity.Dish{
		{
			Name:        "Beef Wellington",
			Description: "Fillet wrapped in pastry",
			Price:       decimal.RequireFromString("24.50"),
			DishTypeID:  mains.ID,
			Cooks:       []entity.Cook{cook},
		},
		{
			Name:        "Borscht",
			Description: "Beet soup with sour cream",
			Price:       decimal.RequireFromString("7.00"),
			DishTypeID:  mains.ID,
		},
		{
			Name:        "Cheesecake",
			Description: "Baked, with berry sauce",
			Price:       decimal.RequireFromString("6.50"),
			DishTypeID:  desserts.ID,
		},
	}
	if err := db.Create(&dishes).Error; err != nil {
		return err
	}

	for n := 1; n <= 4; n++ {
		t := entity.Table{Number: n}
		if err := db.Where(entity.Table{Number: n}).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
