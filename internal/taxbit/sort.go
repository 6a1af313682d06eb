package taxbit

import "slices"

// Sort orders records in place by CompareAbsentFirst, keeping input order
// between equal records.
func Sort(records []Record) {
	slices.SortStableFunc(records, CompareAbsentFirst)
}

// Dedup drops consecutive equal records from a sorted slice. The returned
// slice shares the backing array of records.
func Dedup(records []Record) []Record {
	return slices.CompactFunc(records, Equal)
}
