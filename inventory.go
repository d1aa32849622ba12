package stockbook

import (
	"errors"
	"fmt"
)

// Inventory is the in-memory ledger of products, in table order.
type Inventory struct {
	products []Product
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{products: make([]Product, 0)}
}

// Len returns the number of rows in the inventory.
func (v *Inventory) Len() int { return len(v.products) }

// Products returns the inventory rows in table order.
// The returned slice is shared, callers must not mutate it.
func (v *Inventory) Products() []Product { return v.products }

// Add validates a product and appends it as a new row.
// On validation failure the inventory is left unchanged.
func (v *Inventory) Add(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v.products = append(v.products, p)
	return nil
}

// Replace substitutes the whole table with the given rows, the bulk-edit
// operation. Every row is validated like a single add, and the replacement
// is all-or-nothing: any invalid row leaves the inventory unchanged.
func (v *Inventory) Replace(products []Product) error {
	var errs []error
	for i, p := range products {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	v.products = products
	return nil
}

// LowStock returns all rows at or below their restock threshold, in table
// order. The boundary is inclusive: quantity == threshold is low stock.
func (v *Inventory) LowStock() []Product {
	var low []Product
	for _, p := range v.products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// find returns the index of the first row matching (name, size, gender)
// exactly, case-sensitive. It returns -1 when no row matches.
func (v *Inventory) find(name string, size Size, gender Gender) int {
	for i, p := range v.products {
		if p.Name == name && p.Size == size && p.Gender == gender {
			return i
		}
	}
	return -1
}
