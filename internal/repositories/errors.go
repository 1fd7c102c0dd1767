package repositories

import (
	"errors"
	"fmt"
)

// ErrDuplicateUser is returned when a create hits the unique constraint
// on username or email.
var ErrDuplicateUser = errors.New("user already exists")

// NotFoundError reports a missing entity. Entity is the lowercase entity
// name ("user", "product", "order").
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// InsufficientStockError reports an order line that asked for more units
// than the product has in stock.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %d (requested: %d, available: %d)",
		e.ProductID, e.Requested, e.Available)
}
