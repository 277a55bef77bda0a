package services

import (
	"errors"
	"testing"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/apperr"
)

func TestListDishesFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(db)
	mains := seedDishType(t, db, "Mains")
	desserts := seedDishType(t, db, "Desserts")
	seedDish(t, db, "Borscht", "7.00", mains.ID)
	seedDish(t, db, "Beef Wellington", "24.50", mains.ID)
	seedDish(t, db, "Cheesecake", "6.50", desserts.ID)

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		// Unfiltered listing follows menu order: type name, then dish name.
		{name: "all", filter: "", want: []string{"Cheesecake", "Beef Wellington", "Borscht"}},
		{name: "substring", filter: "eef", want: []string{"Beef Wellington"}},
		{name: "case insensitive", filter: "bOrSch", want: []string{"Borscht"}},
		{name: "no match", filter: "pizza", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes, err := svc.ListDishes(tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(dishes) != len(tt.want) {
				t.Fatalf("got %d dishes, want %d", len(dishes), len(tt.want))
			}
			for i, name := range tt.want {
				if dishes[i].Name != name {
					t.Fatalf("dishes[%d] = %s, want %s", i, dishes[i].Name, name)
				}
			}
		})
	}
}

func TestGetDishNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(db)

	_, err := svc.GetDish(404)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateDishValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(db)
	dt := seedDishType(t, db, "Mains")

	tests := []struct {
		name  string
		in    DishIn
		class error
	}{
		{
			name:  "bad price",
			in:    DishIn{Name: "Soup", Price: "cheap", DishTypeID: dt.ID},
			class: apperr.ErrValidation,
		},
		{
			name:  "negative price",
			in:    DishIn{Name: "Soup", Price: "-1.00", DishTypeID: dt.ID},
			class: apperr.ErrValidation,
		},
		{
			name:  "unknown dish type",
			in:    DishIn{Name: "Soup", Price: "5.00", DishTypeID: 999},
			class: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDish(&tt.in)
			if !errors.Is(err, tt.class) {
				t.Fatalf("err = %v, want %v", err, tt.class)
			}
		})
	}
}
