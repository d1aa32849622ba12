package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stockbook/stockbook"
)

// Summary renders the headline sales metrics.
func Summary(s *stockbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Products Sold", itoa(s.TotalUnitsSold)},
			{"Total Revenue", money(s.TotalRevenue)},
			{"Total Profit", money(s.TotalProfit)},
		},
	})
	return doc.String()
}

// SalesOverTime renders the per-date units and profit table, oldest first.
func SalesOverTime(days []stockbook.DailySales) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Over Time")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Units Sold", "Profit"},
	}
	for _, day := range days {
		table.Rows = append(table.Rows, []string{
			day.Date.String(),
			itoa(day.UnitsSold),
			money(day.Profit),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ProfitByProduct renders the per-product profit table, highest profit first.
func ProfitByProduct(products []stockbook.ProductProfit) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Profit by Product")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Product", "Units Sold", "Profit"},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			p.Name,
			itoa(p.UnitsSold),
			money(p.Profit),
		})
	}
	doc.Table(table)
	return doc.String()
}

// InventoryValue renders the two-level stock value breakdown: one section per
// product type with its per-product values.
func InventoryValue(types []stockbook.TypeValue) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Value by Product Type")
	for _, tv := range types {
		doc.H2(fmt.Sprintf("%s (%s)", tv.Type, money(tv.Total)))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Product", "Stock Value"},
		}
		for _, p := range tv.Products {
			table.Rows = append(table.Rows, []string{p.Name, money(p.Value)})
		}
		doc.Table(table)
	}
	return doc.String()
}

// PaymentStatus renders the count of sales per payment status.
func PaymentStatus(breakdown []stockbook.StatusCount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Payment Status Breakdown")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Status", "Count"},
	}
	for _, sc := range breakdown {
		table.Rows = append(table.Rows, []string{string(sc.Status), itoa(sc.Count)})
	}
	doc.Table(table)
	return doc.String()
}
