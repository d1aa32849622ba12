package stockbook

import "sort"

// Sales is the append-only in-memory ledger of sale records.
type Sales struct {
	records []SaleRecord
}

// NewSales creates an empty sales ledger.
func NewSales() *Sales {
	return &Sales{records: make([]SaleRecord, 0)}
}

// Len returns the number of sale records.
func (s *Sales) Len() int { return len(s.records) }

// Records returns the sale records in insertion order.
// The returned slice is shared, callers must not mutate it.
func (s *Sales) Records() []SaleRecord { return s.records }

// append adds a record. Records are only created through Books.RecordSale,
// which snapshots prices from the inventory.
func (s *Sales) append(r SaleRecord) {
	s.records = append(s.records, r)
}

// Sorted returns the sale records ordered by date, most recent first.
// Records sharing a date keep their insertion order.
func (s *Sales) Sorted() []SaleRecord {
	sorted := make([]SaleRecord, len(s.records))
	copy(sorted, s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
