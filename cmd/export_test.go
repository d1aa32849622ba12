package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stockbook/stockbook"
)

func TestExportFilename(t *testing.T) {
	on := stockbook.MustParseDate("2025-06-01")
	if got, want := ExportFilename(on), "sales_data_2025-06-01.csv"; got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}

// TestExport_salesTable checks the bytes the export command writes, whether
// to a file or to stdout with "-o -".
func TestExport_salesTable(t *testing.T) {
	books := stockbook.NewBooks()
	err := books.Inventory.Add(stockbook.Product{
		Name:             "Tee",
		Type:             stockbook.TShirt,
		Gender:           stockbook.Male,
		Size:             stockbook.SizeM,
		Color:            "White",
		Quantity:         10,
		RestockThreshold: 2,
		CostPrice:        stockbook.M(5, "USD"),
		SellingPrice:     stockbook.M(15, "USD"),
	})
	if err != nil {
		t.Fatal(err)
	}
	on := stockbook.MustParseDate("2025-06-01")
	if _, err := books.RecordSale(on, "Tee", 3, stockbook.SizeM, stockbook.Male, "J. Doe", stockbook.Paid); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := stockbook.EncodeSales(&buf, books.Sales); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, strings.Join(stockbook.SalesColumns, ",")+"\n") {
		t.Errorf("export must start with the canonical header:\n%s", out)
	}
	if !strings.Contains(out, "2025-06-01,Tee,3,M,Male,J. Doe,Paid,5,15,30") {
		t.Errorf("export misses the sale row:\n%s", out)
	}
}
