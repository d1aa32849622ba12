package stockbook

import "fmt"

// PaymentStatus tracks whether a sale has been settled.
type PaymentStatus string

const (
	Paid      PaymentStatus = "Paid"
	Pending   PaymentStatus = "Pending"
	Cancelled PaymentStatus = "Cancelled"
)

// PaymentStatuses lists all valid payment statuses in display order.
var PaymentStatuses = []PaymentStatus{Paid, Pending, Cancelled}

// ParsePaymentStatus parses a string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, p := range PaymentStatuses {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown payment status: %q", s)
}

// SaleRecord is a single row of the sales ledger.
//
// CostPrice and SellingPrice are snapshots of the matched product's prices at
// the moment of sale. They are never re-derived from the inventory, even if
// the product's prices change later. Records are immutable once appended.
type SaleRecord struct {
	Date          Date
	ProductName   string
	QuantitySold  int
	Size          Size
	Gender        Gender
	CustomerName  string // optional
	PaymentStatus PaymentStatus
	CostPrice     Money
	SellingPrice  Money
	Profit        Money // (SellingPrice - CostPrice) * QuantitySold
}

// Revenue returns the revenue of the sale, quantity times selling price.
func (r SaleRecord) Revenue() Money { return r.SellingPrice.MulInt(r.QuantitySold) }
