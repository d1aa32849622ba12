package stockbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// This file contains the CSV codecs for the two ledgers. The column names and
// order are the canonical storage schema; decoding rejects files whose header
// does not match it.

// InventoryColumns is the canonical inventory table schema.
var InventoryColumns = []string{
	"Product Name", "Product Type", "Gender", "Size", "Color",
	"SKU/Code", "Quantity", "Restock Threshold", "Cost Price", "Selling Price",
}

// SalesColumns is the canonical sales table schema.
var SalesColumns = []string{
	"Date", "Product Name", "Quantity Sold", "Size", "Gender",
	"Customer Name", "Payment Status", "Cost Price", "Selling Price", "Profit",
}

// EncodeInventory writes the inventory as CSV, header first, full table.
func EncodeInventory(w io.Writer, v *Inventory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(InventoryColumns); err != nil {
		return err
	}
	for _, p := range v.Products() {
		record := []string{
			p.Name,
			string(p.Type),
			string(p.Gender),
			string(p.Size),
			p.Color,
			p.SKU,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.RestockThreshold),
			p.CostPrice.Text(),
			p.SellingPrice.Text(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeInventory reads an inventory table from CSV. An empty input decodes
// to an empty inventory. Monetary columns are read in the given currency.
//
// Rows are loaded as stored, without re-validation: the file is the result of
// previously validated operations and remains the source of truth.
func DecodeInventory(r io.Reader, currency string) (*Inventory, error) {
	records, err := readTable(r, InventoryColumns, "inventory")
	if err != nil {
		return nil, err
	}

	v := NewInventory()
	for i, rec := range records {
		quantity, err := strconv.Atoi(rec[6])
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: invalid quantity %q: %w", i+1, rec[6], err)
		}
		threshold, err := strconv.Atoi(rec[7])
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: invalid restock threshold %q: %w", i+1, rec[7], err)
		}
		cost, err := ParseMoney(rec[8], currency)
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: %w", i+1, err)
		}
		selling, err := ParseMoney(rec[9], currency)
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: %w", i+1, err)
		}
		v.products = append(v.products, Product{
			Name:             rec[0],
			Type:             ProductType(rec[1]),
			Gender:           Gender(rec[2]),
			Size:             Size(rec[3]),
			Color:            rec[4],
			SKU:              rec[5],
			Quantity:         quantity,
			RestockThreshold: threshold,
			CostPrice:        cost,
			SellingPrice:     selling,
		})
	}
	return v, nil
}

// EncodeSales writes the sales ledger as CSV, header first, full table.
func EncodeSales(w io.Writer, s *Sales) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SalesColumns); err != nil {
		return err
	}
	for _, r := range s.Records() {
		record := []string{
			r.Date.String(),
			r.ProductName,
			strconv.Itoa(r.QuantitySold),
			string(r.Size),
			string(r.Gender),
			r.CustomerName,
			string(r.PaymentStatus),
			r.CostPrice.Text(),
			r.SellingPrice.Text(),
			r.Profit.Text(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeSales reads a sales table from CSV. An empty input decodes to an
// empty ledger. Monetary columns are read in the given currency.
func DecodeSales(r io.Reader, currency string) (*Sales, error) {
	records, err := readTable(r, SalesColumns, "sales")
	if err != nil {
		return nil, err
	}

	s := NewSales()
	for i, rec := range records {
		on, err := ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w", i+1, err)
		}
		quantity, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("sales row %d: invalid quantity %q: %w", i+1, rec[2], err)
		}
		cost, err := ParseMoney(rec[7], currency)
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w", i+1, err)
		}
		selling, err := ParseMoney(rec[8], currency)
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w", i+1, err)
		}
		profit, err := ParseMoney(rec[9], currency)
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w", i+1, err)
		}
		s.records = append(s.records, SaleRecord{
			Date:          on,
			ProductName:   rec[1],
			QuantitySold:  quantity,
			Size:          Size(rec[3]),
			Gender:        Gender(rec[4]),
			CustomerName:  rec[5],
			PaymentStatus: PaymentStatus(rec[6]),
			CostPrice:     cost,
			SellingPrice:  selling,
			Profit:        profit,
		})
	}
	return s, nil
}

// readTable reads all CSV records and checks the header against the canonical
// columns. A zero-byte input yields no records and no error.
func readTable(r io.Reader, columns []string, table string) ([][]string, error) {
	cr := csv.NewReader(r)
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s table: %w", table, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	header := all[0]
	if len(header) != len(columns) {
		return nil, fmt.Errorf("%s table: want %d columns, got %d", table, len(columns), len(header))
	}
	for i, name := range columns {
		if header[i] != name {
			return nil, fmt.Errorf("%s table: column %d is %q, want %q", table, i+1, header[i], name)
		}
	}
	return all[1:], nil
}
