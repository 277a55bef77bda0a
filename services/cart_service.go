package services

import (
	"errors"
	"sort"
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/apperr"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService works on carts the caller fetched from the session; it
// holds no cart state of its own. Concurrent tabs sharing one session are
// last-write-wins, which is accepted for this product.
type CartService struct {
	DishRepo *repository.DishRepository
}

func NewCartService(dr *repository.DishRepository) *CartService {
	return &CartService{DishRepo: dr}
}

type CartLine struct {
	Dish     entity.Dish     `json:"dish"`
	Qty      int             `json:"qty"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Add puts one more of the dish into the cart. The dish id is a direct
// lookup here, so a vanished dish surfaces as not-found instead of being
// silently accepted and dropped later.
func (s *CartService) Add(cart session.Cart, dishID uint) error {
	if _, err := s.DishRepo.Get(dishID); err != nil {
		return mapNotFound(err, "dish")
	}
	cart.Add(strconv.FormatUint(uint64(dishID), 10))
	return nil
}

func (s *CartService) Remove(cart session.Cart, dishID uint) {
	cart.Remove(strconv.FormatUint(uint64(dishID), 10))
}

// Snapshot resolves the cart against the live catalog. Entries whose dish
// has been deleted since they were added are dropped without error; the
// direct lookups already guarded the add path.
func (s *CartService) Snapshot(cart session.Cart) (*CartView, error) {
	view := &CartView{Lines: []CartLine{}, Total: decimal.Zero}
	for key, qty := range cart {
		if qty <= 0 {
			continue
		}
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		dish, err := s.DishRepo.Get(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		subtotal := dish.Price.Mul(decimal.NewFromInt(int64(qty)))
		view.Lines = append(view.Lines, CartLine{Dish: *dish, Qty: qty, Subtotal: subtotal})
		view.Total = view.Total.Add(subtotal)
		view.Count += qty
	}
	sort.Slice(view.Lines, func(i, j int) bool {
		return view.Lines[i].Dish.Name < view.Lines[j].Dish.Name
	})
	return view, nil
}

// RequireNonEmpty is the empty-cart guard used before order submission.
func (s *CartService) RequireNonEmpty(view *CartView) error {
	if len(view.Lines) == 0 {
		return apperr.Validation("cart is empty")
	}
	return nil
}
