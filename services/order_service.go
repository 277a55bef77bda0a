package services

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/apperr"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB    *gorm.DB
	Repo  *repository.OrderRepository
	Carts *CartService
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, carts *CartService) *OrderService {
	return &OrderService{DB: db, Repo: repo, Carts: carts}
}

// SubmitFromCart turns the session cart into a persisted order. The order
// row and every item are written in one transaction; the caller clears
// the session cart only after this returns, so a crash mid-submit leaves
// either no order or a complete one, never duplicated line items.
// Each item captures the dish's price at this moment.
func (s *OrderService) SubmitFromCart(table *entity.Table, cart session.Cart, notes string) (*entity.Order, error) {
	view, err := s.Carts.Snapshot(cart)
	if err != nil {
		return nil, err
	}
	if err := s.Carts.RequireNonEmpty(view); err != nil {
		return nil, err
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{
			Status:  entity.StatusNew,
			Notes:   notes,
			TableID: &table.ID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range view.Lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				DishID:    line.Dish.ID,
				Qty:       line.Qty,
				UnitPrice: line.Dish.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) List(status string, limit int) ([]entity.Order, error) {
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, apperr.Validation("unknown status %q", status)
	}
	return s.Repo.List(entity.OrderStatus(status), limit)
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.Get(id)
	if err != nil {
		return nil, mapNotFound(err, "order")
	}
	return o, nil
}

// SetStatus advances the lifecycle. Unknown codes and moves outside the
// transition graph are rejected; the guarded update keeps two staff
// clients from racing past each other.
func (s *OrderService) SetStatus(id uint, status string) (*entity.Order, error) {
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, apperr.Validation("unknown status %q", status)
	}

	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, apperr.Validation("cannot change status from %q to %q", o.Status, next)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

// Total sums qty x captured price with decimal arithmetic. Items written
// before price capture existed carry a zero unit price; those fall back
// to the live dish price.
func (s *OrderService) Total(id uint) (decimal.Decimal, error) {
	if _, err := s.Get(id); err != nil {
		return decimal.Zero, err
	}
	items, err := s.Repo.GetItems(id)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, it := range items {
		unit := it.UnitPrice
		if unit.IsZero() {
			unit = it.Dish.Price
		}
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total, nil
}
