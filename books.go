package stockbook

import "fmt"

// Books holds the whole application state: the inventory and sales ledgers.
//
// It is passed explicitly to every operation instead of living in a process
// global, and it never persists itself: callers save through a [Store] after
// each successful mutation.
type Books struct {
	Inventory *Inventory
	Sales     *Sales
}

// NewBooks creates empty books.
func NewBooks() *Books {
	return &Books{Inventory: NewInventory(), Sales: NewSales()}
}

// RecordSale validates a sale against the inventory, appends the resulting
// record with prices frozen from the matched product, and decrements that
// product's stock.
//
// The match on (name, size, gender) is exact and case-sensitive. When
// duplicate rows match, the first row alone is read and decremented; this is
// a deliberate policy so that a sale mutates exactly the row it priced from.
//
// Any returned error means no state was mutated.
func (b *Books) RecordSale(on Date, name string, quantity int, size Size, gender Gender, customer string, status PaymentStatus) (SaleRecord, error) {
	var missing []string
	if name == "" {
		missing = append(missing, "product")
	}
	if quantity < 1 {
		missing = append(missing, "quantity")
	}
	if _, err := ParseSize(string(size)); err != nil {
		missing = append(missing, "size")
	}
	if _, err := ParseGender(string(gender)); err != nil {
		missing = append(missing, "gender")
	}
	if _, err := ParsePaymentStatus(string(status)); err != nil {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return SaleRecord{}, &ValidationError{Fields: missing}
	}
	if on.IsZero() {
		on = Today()
	}

	i := b.Inventory.find(name, size, gender)
	if i < 0 {
		return SaleRecord{}, fmt.Errorf("%q (%s, %s): %w", name, size, gender, ErrNotFound)
	}

	product := &b.Inventory.products[i]
	if product.Quantity < quantity {
		return SaleRecord{}, &InsufficientStockError{
			Product:   name,
			Requested: quantity,
			Available: product.Quantity,
		}
	}

	record := SaleRecord{
		Date:          on,
		ProductName:   name,
		QuantitySold:  quantity,
		Size:          size,
		Gender:        gender,
		CustomerName:  customer,
		PaymentStatus: status,
		CostPrice:     product.CostPrice,
		SellingPrice:  product.SellingPrice,
		Profit:        product.SellingPrice.Sub(product.CostPrice).MulInt(quantity),
	}
	b.Sales.append(record)
	product.Quantity -= quantity
	return record, nil
}
