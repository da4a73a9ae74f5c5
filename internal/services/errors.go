package services

import "errors"

var (
	// ErrCartEmpty rejects a submission with no items. No order is created
	// and the persistence layer is never called.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrStoreClosed rejects a submission while the admission gate is closed.
	ErrStoreClosed = errors.New("restaurant is currently closed")

	// ErrInvalidStatus rejects an order status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid order status")
)

// ValidationError names the specific missing or invalid customer field so
// the caller can report it directly.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}
