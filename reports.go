package stockbook

import "sort"

// This file contains the analytics reports. Reports are pure functions over
// the ledgers: no state is kept, every call recomputes from the current rows.
// They return ErrNoData when the backing ledger is empty.

// Summary provides the headline sales metrics: total units sold, total
// revenue and total profit over the whole sales ledger.
type Summary struct {
	TotalUnitsSold int
	TotalRevenue   Money
	TotalProfit    Money
}

// NewSummary computes the sales summary.
func NewSummary(s *Sales) (*Summary, error) {
	if s.Len() == 0 {
		return nil, ErrNoData
	}
	summary := &Summary{}
	for _, r := range s.Records() {
		summary.TotalUnitsSold += r.QuantitySold
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Revenue())
		summary.TotalProfit = summary.TotalProfit.Add(r.Profit)
	}
	return summary, nil
}

// DailySales is the units and profit sold on a single calendar date.
type DailySales struct {
	Date      Date
	UnitsSold int
	Profit    Money
}

// SalesOverTime groups the sales ledger by calendar date and returns one
// entry per date, ordered by date ascending.
func SalesOverTime(s *Sales) ([]DailySales, error) {
	if s.Len() == 0 {
		return nil, ErrNoData
	}
	byDate := make(map[Date]*DailySales)
	for _, r := range s.Records() {
		day, ok := byDate[r.Date]
		if !ok {
			day = &DailySales{Date: r.Date}
			byDate[r.Date] = day
		}
		day.UnitsSold += r.QuantitySold
		day.Profit = day.Profit.Add(r.Profit)
	}
	days := make([]DailySales, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

// ProductProfit is the accumulated units and profit for one product name.
type ProductProfit struct {
	Name      string
	UnitsSold int
	Profit    Money
}

// ProfitByProduct groups the sales ledger by product name and returns one
// entry per product, ordered by profit descending. The relative order of
// products with equal profit is unspecified.
func ProfitByProduct(s *Sales) ([]ProductProfit, error) {
	if s.Len() == 0 {
		return nil, ErrNoData
	}
	byName := make(map[string]*ProductProfit)
	var names []string
	for _, r := range s.Records() {
		p, ok := byName[r.ProductName]
		if !ok {
			p = &ProductProfit{Name: r.ProductName}
			byName[r.ProductName] = p
			names = append(names, r.ProductName)
		}
		p.UnitsSold += r.QuantitySold
		p.Profit = p.Profit.Add(r.Profit)
	}
	products := make([]ProductProfit, 0, len(names))
	for _, name := range names {
		products = append(products, *byName[name])
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Profit.GreaterThan(products[j].Profit)
	})
	return products, nil
}

// ProductValue is the stock value held under one product name.
type ProductValue struct {
	Name  string
	Value Money // quantity x cost price
}

// TypeValue is the stock value held under one product type, broken down by
// product name.
type TypeValue struct {
	Type     ProductType
	Total    Money
	Products []ProductValue
}

// InventoryValueByType computes the two-level stock value breakdown: product
// type, then product name. Value is quantity times cost price. Types appear
// in catalog order, names in table order; duplicate names accumulate.
func InventoryValueByType(v *Inventory) ([]TypeValue, error) {
	if v.Len() == 0 {
		return nil, ErrNoData
	}
	byType := make(map[ProductType]map[string]Money)
	nameOrder := make(map[ProductType][]string)
	for _, p := range v.Products() {
		names, ok := byType[p.Type]
		if !ok {
			names = make(map[string]Money)
			byType[p.Type] = names
		}
		if _, seen := names[p.Name]; !seen {
			nameOrder[p.Type] = append(nameOrder[p.Type], p.Name)
		}
		names[p.Name] = names[p.Name].Add(p.StockValue())
	}

	var types []TypeValue
	for _, t := range ProductTypes {
		names, ok := byType[t]
		if !ok {
			continue
		}
		tv := TypeValue{Type: t}
		for _, name := range nameOrder[t] {
			tv.Total = tv.Total.Add(names[name])
			tv.Products = append(tv.Products, ProductValue{Name: name, Value: names[name]})
		}
		types = append(types, tv)
	}
	return types, nil
}

// StatusCount is the number of sale rows carrying one payment status.
type StatusCount struct {
	Status PaymentStatus
	Count  int
}

// PaymentStatusBreakdown counts sale rows per payment status. Statuses with
// no rows are omitted; present statuses appear in Paid, Pending, Cancelled
// order.
func PaymentStatusBreakdown(s *Sales) ([]StatusCount, error) {
	if s.Len() == 0 {
		return nil, ErrNoData
	}
	counts := make(map[PaymentStatus]int)
	for _, r := range s.Records() {
		counts[r.PaymentStatus]++
	}
	var breakdown []StatusCount
	for _, status := range PaymentStatuses {
		if n := counts[status]; n > 0 {
			breakdown = append(breakdown, StatusCount{Status: status, Count: n})
		}
	}
	// A record loaded from disk may carry a status outside the canonical set.
	for status, n := range counts {
		known := false
		for _, k := range PaymentStatuses {
			if status == k {
				known = true
				break
			}
		}
		if !known {
			breakdown = append(breakdown, StatusCount{Status: status, Count: n})
		}
	}
	return breakdown, nil
}
