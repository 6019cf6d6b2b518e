package orders

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is returned when concurrent order transactions kept
// colliding and the retry budget ran out. The request may succeed when
// retried.
var ErrConflict = errors.New("order transaction conflict")

// NotFoundError rejects an order whose request names product numbers
// with no catalog entry. The whole order is rejected, never a partial
// one.
type NotFoundError struct {
	ProductNumbers []string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("products not found: %s", strings.Join(e.ProductNumbers, ", "))
}

// InsufficientStockError rejects an order that asks for more units of a
// stock-tracked product than are on hand. No stock is deducted.
type InsufficientStockError struct {
	ProductNumber string
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductNumber)
}
