package services

import (
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/session"
)

type LikeService struct {
	DishRepo *repository.DishRepository
}

func NewLikeService(dr *repository.DishRepository) *LikeService {
	return &LikeService{DishRepo: dr}
}

// Like counts at most one like per session per dish. The increment is a
// single UPDATE, so simultaneous likes from different sessions all land.
// A dish that has vanished from the catalog is ignored without error.
func (s *LikeService) Like(liked session.LikedSet, dishID uint) (counted bool, err error) {
	key := strconv.FormatUint(uint64(dishID), 10)
	if liked.Has(key) {
		return false, nil
	}
	affected, err := s.DishRepo.IncrementLikes(dishID)
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}
	liked.Mark(key)
	return true, nil
}
