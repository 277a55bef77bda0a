package entity

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusServed    OrderStatus = "served"
	StatusPaid      OrderStatus = "paid"
	StatusCancelled OrderStatus = "cancelled"
)

// transitions holds the forward edges of the lifecycle. Cancellation is
// handled separately: it is legal from any non-terminal state.
var transitions = map[OrderStatus]OrderStatus{
	StatusNew:       StatusAccepted,
	StatusAccepted:  StatusPreparing,
	StatusPreparing: StatusServed,
	StatusServed:    StatusPaid,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusAccepted, StatusPreparing, StatusServed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return transitions[s] == next
}

func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusNew, StatusAccepted, StatusPreparing,
		StatusServed, StatusPaid, StatusCancelled,
	}
}
