package stockbook

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a sale references a product absent from the
// inventory. It is always wrapped with the product identity.
var ErrNotFound = errors.New("product not found in inventory")

// ErrNoData is returned by reports when the backing ledger holds no rows.
var ErrNoData = errors.New("not enough data")

// ValidationError reports the required fields that are missing or invalid in
// a user-submitted operation. The operation did not mutate any state.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "please fill in all required fields: " + strings.Join(e.Fields, ", ")
}

// InsufficientStockError reports a sale that would drive a product's quantity
// below zero. The operation did not mutate any state.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock available for %q: requested %d, have %d", e.Product, e.Requested, e.Available)
}
