package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/stockbook/stockbook"
)

// Inventory renders the full inventory table, followed by a low-stock alert
// section when any row is at or below its restock threshold.
func Inventory(v *stockbook.Inventory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")

	if v.Len() == 0 {
		doc.PlainText("No products in inventory. Add some products to get started.")
		return doc.String()
	}

	doc.Table(productTable(v.Products()))

	if low := v.LowStock(); len(low) > 0 {
		doc.H2("Low Stock Alert")
		doc.Table(productTable(low))
	}

	return doc.String()
}

// LowStock renders only the low-stock alert table.
func LowStock(v *stockbook.Inventory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Low Stock Alert")

	low := v.LowStock()
	if len(low) == 0 {
		doc.PlainText("All products are above their restock threshold.")
		return doc.String()
	}
	doc.Table(productTable(low))
	return doc.String()
}

func productTable(products []stockbook.Product) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Name", "Type", "Gender", "Size", "Color", "SKU", "Qty", "Restock", "Cost", "Selling"},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			p.Name,
			string(p.Type),
			string(p.Gender),
			string(p.Size),
			p.Color,
			p.SKU,
			itoa(p.Quantity),
			itoa(p.RestockThreshold),
			money(p.CostPrice),
			money(p.SellingPrice),
		})
	}
	return table
}
