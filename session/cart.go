package session

// Cart accumulates dish quantities for one table within one browser
// session. Keys are dish ids rendered as strings, the same shape the
// values take on the wire. A Cart is never persisted to the database;
// submitting an order consumes it.
type Cart map[string]int

// Add increments the quantity for a dish, starting at 1.
func (c Cart) Add(dishID string) {
	c[dishID]++
}

// Remove decrements the quantity for a dish. Entries that reach zero are
// deleted outright, so a snapshot never contains non-positive quantities.
func (c Cart) Remove(dishID string) {
	if _, ok := c[dishID]; !ok {
		return
	}
	c[dishID]--
	if c[dishID] <= 0 {
		delete(c, dishID)
	}
}

// Count returns the total number of items across all lines.
func (c Cart) Count() int {
	n := 0
	for _, qty := range c {
		n += qty
	}
	return n
}

// LikedSet records which dishes this session has already liked, so a
// like lands at most once per session per dish.
type LikedSet map[string]bool

func (l LikedSet) Has(dishID string) bool { return l[dishID] }
func (l LikedSet) Mark(dishID string)     { l[dishID] = true }
