package stockbook

import (
	"errors"
	"testing"
)

// soldBooks returns books with three products and a few recorded sales.
func soldBooks(t *testing.T) *Books {
	t.Helper()
	b := NewBooks()

	hoodie, hat := tee(), tee()
	hoodie.Name, hoodie.Type, hoodie.Size = "Zip Hoodie", Hoodie, SizeL
	hoodie.CostPrice, hoodie.SellingPrice = USD(10), USD(30)
	hat.Name, hat.Type = "Cap", Hat
	hat.CostPrice, hat.SellingPrice = USD(2), USD(8)
	for _, p := range []Product{tee(), hoodie, hat} {
		if err := b.Inventory.Add(p); err != nil {
			t.Fatal(err)
		}
	}

	sales := []struct {
		day     string
		product string
		qty     int
		size    Size
		status  PaymentStatus
	}{
		{"2025-06-02", "Tee", 2, SizeM, Paid},        // profit 20
		{"2025-06-01", "Zip Hoodie", 1, SizeL, Paid}, // profit 20
		{"2025-06-02", "Cap", 3, SizeM, Pending},     // profit 18
		{"2025-06-03", "Tee", 1, SizeM, Paid},        // profit 10
	}
	for _, s := range sales {
		if _, err := b.RecordSale(MustParseDate(s.day), s.product, s.qty, s.size, Male, "", s.status); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestNewSummary(t *testing.T) {
	b := soldBooks(t)
	summary, err := NewSummary(b.Sales)
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalUnitsSold != 7 {
		t.Errorf("units sold = %d, want 7", summary.TotalUnitsSold)
	}
	// 2x15 + 1x30 + 3x8 + 1x15 = 99
	if !summary.TotalRevenue.Equal(USD(99)) {
		t.Errorf("revenue = %s, want 99", summary.TotalRevenue.Text())
	}
	if !summary.TotalProfit.Equal(USD(68)) {
		t.Errorf("profit = %s, want 68", summary.TotalProfit.Text())
	}
}

func TestNewSummary_example(t *testing.T) {
	// totals over [{qty:2, sell:10, profit:6}, {qty:1, sell:20, profit:4}]
	b := NewBooks()
	a, c := tee(), tee()
	a.Name, a.CostPrice, a.SellingPrice = "A", USD(7), USD(10)
	c.Name, c.CostPrice, c.SellingPrice = "C", USD(16), USD(20)
	for _, p := range []Product{a, c} {
		if err := b.Inventory.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := b.RecordSale(Today(), "A", 2, SizeM, Male, "", Paid); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordSale(Today(), "C", 1, SizeM, Male, "", Paid); err != nil {
		t.Fatal(err)
	}

	summary, err := NewSummary(b.Sales)
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalUnitsSold != 3 {
		t.Errorf("units sold = %d, want 3", summary.TotalUnitsSold)
	}
	if !summary.TotalRevenue.Equal(USD(40)) {
		t.Errorf("revenue = %s, want 40", summary.TotalRevenue.Text())
	}
	if !summary.TotalProfit.Equal(USD(10)) {
		t.Errorf("profit = %s, want 10", summary.TotalProfit.Text())
	}
}

func TestSalesOverTime(t *testing.T) {
	b := soldBooks(t)
	days, err := SalesOverTime(b.Sales)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		day    string
		units  int
		profit float64
	}{
		{"2025-06-01", 1, 20},
		{"2025-06-02", 5, 38},
		{"2025-06-03", 1, 10},
	}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i, w := range want {
		if days[i].Date.String() != w.day {
			t.Errorf("days[%d] = %s, want %s (ascending date order)", i, days[i].Date, w.day)
		}
		if days[i].UnitsSold != w.units {
			t.Errorf("%s units = %d, want %d", w.day, days[i].UnitsSold, w.units)
		}
		if !days[i].Profit.Equal(USD(w.profit)) {
			t.Errorf("%s profit = %s, want %v", w.day, days[i].Profit.Text(), w.profit)
		}
	}
}

func TestProfitByProduct(t *testing.T) {
	b := soldBooks(t)
	products, err := ProfitByProduct(b.Sales)
	if err != nil {
		t.Fatal(err)
	}

	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	// descending by profit: Tee 30, then Zip Hoodie 20 and Cap 18.
	if products[0].Name != "Tee" || !products[0].Profit.Equal(USD(30)) || products[0].UnitsSold != 3 {
		t.Errorf("products[0] = %+v, want Tee with profit 30", products[0])
	}
	for i := 1; i < len(products); i++ {
		if products[i].Profit.GreaterThan(products[i-1].Profit) {
			t.Errorf("profit not descending at %d: %+v", i, products)
		}
	}
}

func TestInventoryValueByType(t *testing.T) {
	b := soldBooks(t)
	// stock after sales: Tee 7x5=35, Zip Hoodie 9x10=90, Cap 7x2=14.
	types, err := InventoryValueByType(b.Inventory)
	if err != nil {
		t.Fatal(err)
	}

	want := map[ProductType]float64{TShirt: 35, Hoodie: 90, Hat: 14}
	if len(types) != len(want) {
		t.Fatalf("got %d types, want %d", len(types), len(want))
	}
	for _, tv := range types {
		if !tv.Total.Equal(USD(want[tv.Type])) {
			t.Errorf("%s total = %s, want %v", tv.Type, tv.Total.Text(), want[tv.Type])
		}
	}
	// catalog order: T-shirt before Hoodie before Hat.
	if types[0].Type != TShirt || types[1].Type != Hoodie || types[2].Type != Hat {
		t.Errorf("unexpected type order: %+v", types)
	}
}

func TestInventoryValueByType_duplicateNamesAccumulate(t *testing.T) {
	v := NewInventory()
	a, b := tee(), tee()
	b.Size = SizeL
	for _, p := range []Product{a, b} {
		if err := v.Add(p); err != nil {
			t.Fatal(err)
		}
	}

	types, err := InventoryValueByType(v)
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != 1 || len(types[0].Products) != 1 {
		t.Fatalf("want a single accumulated product entry, got %+v", types)
	}
	if !types[0].Products[0].Value.Equal(USD(100)) { // 2 rows x 10 x 5
		t.Errorf("value = %s, want 100", types[0].Products[0].Value.Text())
	}
}

func TestPaymentStatusBreakdown(t *testing.T) {
	b := soldBooks(t)
	breakdown, err := PaymentStatusBreakdown(b.Sales)
	if err != nil {
		t.Fatal(err)
	}

	want := []StatusCount{{Paid, 3}, {Pending, 1}}
	if len(breakdown) != len(want) {
		t.Fatalf("got %+v, want %+v", breakdown, want)
	}
	for i := range want {
		if breakdown[i] != want[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, breakdown[i], want[i])
		}
	}
}

func TestReports_noData(t *testing.T) {
	empty := NewBooks()

	if _, err := NewSummary(empty.Sales); !errors.Is(err, ErrNoData) {
		t.Errorf("NewSummary on empty ledger: want ErrNoData, got %v", err)
	}
	if _, err := SalesOverTime(empty.Sales); !errors.Is(err, ErrNoData) {
		t.Errorf("SalesOverTime on empty ledger: want ErrNoData, got %v", err)
	}
	if _, err := ProfitByProduct(empty.Sales); !errors.Is(err, ErrNoData) {
		t.Errorf("ProfitByProduct on empty ledger: want ErrNoData, got %v", err)
	}
	if _, err := InventoryValueByType(empty.Inventory); !errors.Is(err, ErrNoData) {
		t.Errorf("InventoryValueByType on empty inventory: want ErrNoData, got %v", err)
	}
	if _, err := PaymentStatusBreakdown(empty.Sales); !errors.Is(err, ErrNoData) {
		t.Errorf("PaymentStatusBreakdown on empty ledger: want ErrNoData, got %v", err)
	}
}
