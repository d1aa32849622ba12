package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/stockbook/stockbook"
)

// Sales renders a list of sale records as a table, in the given order.
func Sales(records []stockbook.SaleRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Records")

	if len(records) == 0 {
		doc.PlainText("No sales records yet. Record some sales to get started.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Product", "Qty", "Size", "Gender", "Customer", "Status", "Cost", "Selling", "Profit"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Date.String(),
			r.ProductName,
			itoa(r.QuantitySold),
			string(r.Size),
			string(r.Gender),
			r.CustomerName,
			string(r.PaymentStatus),
			money(r.CostPrice),
			money(r.SellingPrice),
			money(r.Profit),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Sale renders a single freshly recorded sale as a one-line confirmation.
func Sale(r stockbook.SaleRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainTextf("Sold %d x %s (%s, %s) on %s for %s, profit %s.",
		r.QuantitySold, r.ProductName, r.Size, r.Gender, r.Date, money(r.Revenue()), money(r.Profit))
	return doc.String()
}
