package renderer

import (
	"strings"
	"testing"

	"github.com/stockbook/stockbook"
)

func usd(v float64) stockbook.Money { return stockbook.M(v, "USD") }

func testBooks(t *testing.T) *stockbook.Books {
	t.Helper()
	b := stockbook.NewBooks()
	err := b.Inventory.Add(stockbook.Product{
		Name:             "Plain Tee",
		Type:             stockbook.TShirt,
		Gender:           stockbook.Male,
		Size:             stockbook.SizeM,
		Color:            "White",
		Quantity:         10,
		RestockThreshold: 12,
		CostPrice:        usd(5),
		SellingPrice:     usd(15),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordSale(stockbook.MustParseDate("2025-06-01"), "Plain Tee", 3,
		stockbook.SizeM, stockbook.Male, "J. Doe", stockbook.Paid); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestInventory(t *testing.T) {
	b := testBooks(t)
	out := Inventory(b.Inventory)

	for _, want := range []string{"# Inventory", "Plain Tee", "T-shirt", "White", "$5.00", "$15.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
	// the product is below its threshold, the alert section must show.
	if !strings.Contains(out, "Low Stock Alert") {
		t.Errorf("output misses the low stock alert:\n%s", out)
	}
}

func TestInventory_empty(t *testing.T) {
	out := Inventory(stockbook.NewInventory())
	if !strings.Contains(out, "No products in inventory") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSales(t *testing.T) {
	b := testBooks(t)
	out := Sales(b.Sales.Sorted())

	for _, want := range []string{"# Sales Records", "2025-06-01", "Plain Tee", "J. Doe", "Paid", "$30.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	b := testBooks(t)
	summary, err := stockbook.NewSummary(b.Sales)
	if err != nil {
		t.Fatal(err)
	}
	out := Summary(summary)

	for _, want := range []string{"# Sales Summary", "Total Products Sold", "3", "$45.00", "$30.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestInventoryValue(t *testing.T) {
	b := testBooks(t)
	types, err := stockbook.InventoryValueByType(b.Inventory)
	if err != nil {
		t.Fatal(err)
	}
	out := InventoryValue(types)

	// 7 left x $5 cost.
	for _, want := range []string{"# Inventory Value by Product Type", "T-shirt", "$35.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestPaymentStatus(t *testing.T) {
	b := testBooks(t)
	breakdown, err := stockbook.PaymentStatusBreakdown(b.Sales)
	if err != nil {
		t.Fatal(err)
	}
	out := PaymentStatus(breakdown)

	if !strings.Contains(out, "# Payment Status Breakdown") || !strings.Contains(out, "Paid") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
