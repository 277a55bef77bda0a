package services

import (
	"errors"
	"testing"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/apperr"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) (*OrderService, *CartService) {
	carts := NewCartService(repository.NewDishRepository(db))
	return NewOrderService(db, repository.NewOrderRepository(db), carts), carts
}

func TestSubmitFromCart(t *testing.T) {
	db := newTestDB(t)
	svc, carts := newOrderService(db)
	dt := seedDishType(t, db, "Mains")
	dishA := seedDish(t, db, "Borscht", "3.00", dt.ID)
	dishB := seedDish(t, db, "Varenyky", "7.00", dt.ID)
	table := seedTable(t, db, 5)

	cart := session.Cart{}
	if err := carts.Add(cart, dishA.ID); err != nil {
		t.Fatal(err)
	}
	if err := carts.Add(cart, dishA.ID); err != nil {
		t.Fatal(err)
	}
	if err := carts.Add(cart, dishB.ID); err != nil {
		t.Fatal(err)
	}

	before, err := carts.Snapshot(cart)
	if err != nil {
		t.Fatal(err)
	}

	order, err := svc.SubmitFromCart(table, cart, "no onions")
	if err != nil {
		t.Fatal(err)
	}
	if order.Status != entity.StatusNew {
		t.Fatalf("status = %s, want %s", order.Status, entity.StatusNew)
	}
	if order.Notes != "no onions" {
		t.Fatalf("notes = %q", order.Notes)
	}
	if order.TableID == nil || *order.TableID != table.ID {
		t.Fatal("order not bound to the table")
	}

	// Item set must match the pre-submission snapshot exactly.
	if len(order.Items) != len(before.Lines) {
		t.Fatalf("items = %d, want %d", len(order.Items), len(before.Lines))
	}
	qtyByDish := map[uint]int{}
	for _, it := range order.Items {
		qtyByDish[it.DishID] = it.Qty
	}
	for _, line := range before.Lines {
		if qtyByDish[line.Dish.ID] != line.Qty {
			t.Fatalf("dish %d qty = %d, want %d", line.Dish.ID, qtyByDish[line.Dish.ID], line.Qty)
		}
	}

	total, err := svc.Total(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(before.Total) {
		t.Fatalf("total = %s, want snapshot total %s", total, before.Total)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newOrderService(db)
	table := seedTable(t, db, 1)

	_, err := svc.SubmitFromCart(table, session.Cart{}, "")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("orders created = %d, want 0", count)
	}
}

func TestTotalUsesCapturedPrice(t *testing.T) {
	db := newTestDB(t)
	svc, carts := newOrderService(db)
	dt := seedDishType(t, db, "Mains")
	dishA := seedDish(t, db, "Borscht", "3.00", dt.ID)
	dishB := seedDish(t, db, "Varenyky", "7.00", dt.ID)
	table := seedTable(t, db, 5)

	cart := session.Cart{}
	for _, id := range []uint{dishA.ID, dishA.ID, dishB.ID} {
		if err := carts.Add(cart, id); err != nil {
			t.Fatal(err)
		}
	}

	order, err := svc.SubmitFromCart(table, cart, "")
	if err != nil {
		t.Fatal(err)
	}

	// Menu price changes after submission must not move the total.
	if err := db.Model(dishA).Update("price", decimal.RequireFromString("4.00")).Error; err != nil {
		t.Fatal(err)
	}
	for _, status := range []string{"accepted", "preparing", "served"} {
		if _, err := svc.SetStatus(order.ID, status); err != nil {
			t.Fatalf("SetStatus(%s): %v", status, err)
		}
	}

	total, err := svc.Total(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("13.00"); !total.Equal(want) {
		t.Fatalf("total = %s, want %s", total, want)
	}
}

func TestSetStatus(t *testing.T) {
	db := newTestDB(t)
	svc, carts := newOrderService(db)
	dt := seedDishType(t, db, "Mains")
	dish := seedDish(t, db, "Borscht", "3.00", dt.ID)
	table := seedTable(t, db, 2)

	newOrder := func() *entity.Order {
		cart := session.Cart{}
		if err := carts.Add(cart, dish.ID); err != nil {
			t.Fatal(err)
		}
		o, err := svc.SubmitFromCart(table, cart, "")
		if err != nil {
			t.Fatal(err)
		}
		return o
	}

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.SetStatus(9999, "accepted")
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown status code", func(t *testing.T) {
		o := newOrder()
		_, err := svc.SetStatus(o.ID, "delivering")
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		o := newOrder()
		_, err := svc.SetStatus(o.ID, "served")
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("new -> served: err = %v, want ErrValidation", err)
		}
	})

	t.Run("cancel from non-terminal", func(t *testing.T) {
		o := newOrder()
		if _, err := svc.SetStatus(o.ID, "accepted"); err != nil {
			t.Fatal(err)
		}
		got, err := svc.SetStatus(o.ID, "cancelled")
		if err != nil {
			t.Fatal(err)
		}
		if got.Status != entity.StatusCancelled {
			t.Fatalf("status = %s, want cancelled", got.Status)
		}
	})

	t.Run("terminal is final", func(t *testing.T) {
		o := newOrder()
		if _, err := svc.SetStatus(o.ID, "cancelled"); err != nil {
			t.Fatal(err)
		}
		_, err := svc.SetStatus(o.ID, "accepted")
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("leaving cancelled: err = %v, want ErrValidation", err)
		}
	})
}

func TestOrderSurvivesTableDeletion(t *testing.T) {
	db := newTestDB(t)
	svc, carts := newOrderService(db)
	dt := seedDishType(t, db, "Mains")
	dish := seedDish(t, db, "Borscht", "3.00", dt.ID)
	table := seedTable(t, db, 9)

	cart := session.Cart{}
	if err := carts.Add(cart, dish.ID); err != nil {
		t.Fatal(err)
	}
	order, err := svc.SubmitFromCart(table, cart, "")
	if err != nil {
		t.Fatal(err)
	}

	tables := NewTableService(db, repository.NewTableRepository(db), "http://localhost:8000")
	if err := tables.Delete(table.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("order gone after table deletion: %v", err)
	}
	if got.TableID != nil {
		t.Fatalf("tableId = %v, want nil", *got.TableID)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(got.Items))
	}
}
