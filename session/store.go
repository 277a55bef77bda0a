package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
)

const (
	cartKeyPrefix  = "cart_"
	likedKeyPrefix = "liked_dishes_"
)

func init() {
	// The cookie store serializes values with gob.
	gob.Register(Cart{})
	gob.Register(LikedSet{})
}

// GetCart reads the cart for a table out of the session, returning an
// empty cart when none exists yet. Carts are keyed per table UUID so two
// tables scanned from the same phone never share state.
func GetCart(s sessions.Session, tableUUID string) Cart {
	if v, ok := s.Get(cartKeyPrefix + tableUUID).(Cart); ok && v != nil {
		return v
	}
	return Cart{}
}

func PutCart(s sessions.Session, tableUUID string, c Cart) {
	s.Set(cartKeyPrefix+tableUUID, c)
}

func DropCart(s sessions.Session, tableUUID string) {
	s.Delete(cartKeyPrefix + tableUUID)
}

func GetLiked(s sessions.Session, tableUUID string) LikedSet {
	if v, ok := s.Get(likedKeyPrefix + tableUUID).(LikedSet); ok && v != nil {
		return v
	}
	return LikedSet{}
}

func PutLiked(s sessions.Session, tableUUID string, l LikedSet) {
	s.Set(likedKeyPrefix+tableUUID, l)
}
