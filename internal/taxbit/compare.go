package taxbit

import (
	"cmp"
	"strings"

	"github.com/shopspring/decimal"
)

// Equal reports whether every field of a and b is equal. Quantities compare
// numerically, so 1 equals 1.0; an absent quantity never equals a present one.
func Equal(a, b Record) bool {
	return a.Time == b.Time &&
		a.Type == b.Type &&
		a.ReceivedCurrency == b.ReceivedCurrency &&
		a.SentCurrency == b.SentCurrency &&
		a.FeeCurrency == b.FeeCurrency &&
		equalDecimal(a.ReceivedQuantity, b.ReceivedQuantity) &&
		equalDecimal(a.SentQuantity, b.SentQuantity) &&
		equalDecimal(a.FeeAmount, b.FeeAmount) &&
		equalDecimal(a.MarketValue, b.MarketValue) &&
		a.Source == b.Source &&
		a.InternalTransfer == b.InternalTransfer &&
		a.ExternalID == b.ExternalID
}

func (r Record) Equal(other Record) bool {
	return Equal(r, other)
}

func equalDecimal(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

// fieldComparator returns the ordering of one field and false when the pair
// has no defined order.
type fieldComparator func(a, b *Record) (int, bool)

func ordered(c int) (int, bool) {
	return c, true
}

// Priority order of the sort key. This is not the column order.
var fieldComparators = []fieldComparator{
	func(a, b *Record) (int, bool) { return ordered(cmp.Compare(a.Time, b.Time)) },
	func(a, b *Record) (int, bool) { return ordered(CompareTransactionTypes(a.Type, b.Type)) },
	func(a, b *Record) (int, bool) {
		return ordered(strings.Compare(a.ReceivedCurrency, b.ReceivedCurrency))
	},
	func(a, b *Record) (int, bool) { return ordered(strings.Compare(a.SentCurrency, b.SentCurrency)) },
	func(a, b *Record) (int, bool) { return ordered(strings.Compare(a.FeeCurrency, b.FeeCurrency)) },
	func(a, b *Record) (int, bool) { return compareDecimal(a.ReceivedQuantity, b.ReceivedQuantity) },
	func(a, b *Record) (int, bool) { return compareDecimal(a.SentQuantity, b.SentQuantity) },
	func(a, b *Record) (int, bool) { return compareDecimal(a.FeeAmount, b.FeeAmount) },
	func(a, b *Record) (int, bool) { return compareDecimal(a.MarketValue, b.MarketValue) },
	func(a, b *Record) (int, bool) { return ordered(strings.Compare(a.Source, b.Source)) },
	func(a, b *Record) (int, bool) { return ordered(compareBool(a.InternalTransfer, b.InternalTransfer)) },
	func(a, b *Record) (int, bool) { return ordered(strings.Compare(a.ExternalID, b.ExternalID)) },
}

func compareDecimal(a, b decimal.NullDecimal) (int, bool) {
	switch {
	case a.Valid && b.Valid:
		return a.Decimal.Cmp(b.Decimal), true
	case !a.Valid && !b.Valid:
		return 0, true
	}
	return 0, false
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

// PartialCompare walks the sort key and returns the first non-zero field
// comparison. ok is false when that field is a quantity present on one side
// and absent on the other.
func PartialCompare(a, b Record) (c int, ok bool) {
	for _, compare := range fieldComparators {
		c, ok = compare(&a, &b)
		if !ok || c != 0 {
			return c, ok
		}
	}
	return 0, true
}

// Compare returns -1, 0 or +1. Callers must not compare records whose
// quantities differ in presence where the ordering would be decided by that
// field; Compare panics with *InvariantViolation in that case.
func Compare(a, b Record) int {
	c, ok := PartialCompare(a, b)
	if !ok {
		violate("Compare", "unordered pair: %v vs %v", a, b)
	}
	return c
}

func (r Record) Compare(other Record) int {
	return Compare(r, other)
}

// CompareAbsentFirst is Compare with an absent quantity ordered before a
// present one. It never panics.
func CompareAbsentFirst(a, b Record) int {
	for _, compare := range fieldComparators {
		c, ok := compare(&a, &b)
		if !ok {
			return absentFirst(&a, &b)
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// absentFirst resolves the first quantity whose presence differs.
func absentFirst(a, b *Record) int {
	pairs := [...][2]decimal.NullDecimal{
		{a.ReceivedQuantity, b.ReceivedQuantity},
		{a.SentQuantity, b.SentQuantity},
		{a.FeeAmount, b.FeeAmount},
		{a.MarketValue, b.MarketValue},
	}
	for _, p := range pairs {
		if p[0].Valid != p[1].Valid {
			return compareBool(p[0].Valid, p[1].Valid)
		}
	}
	return 0
}
