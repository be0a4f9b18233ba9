package domain

import (
	"fmt"
	"strings"
)

// FilterAll matches every value of a filter field.
const FilterAll = "ALL"

// DateRange restricts records relative to the current day.
type DateRange string

const (
	DateRangeAll   DateRange = FilterAll
	DateRangeToday DateRange = "TODAY"
	DateRangeWeek  DateRange = "WEEK"
	DateRangeMonth DateRange = "MONTH"
)

// WeekSpanDays is how far back the WEEK range reaches.
const WeekSpanDays = 7

// Filter is a conjunction of independent predicates over transactions.
// An empty field behaves like ALL.
type Filter struct {
	Type      TransactionType // "" or ALL matches both types
	Category  Category        // "" or ALL matches every category
	DateRange DateRange
}

// DefaultFilter returns the cleared, all-ALL filter.
func DefaultFilter() Filter {
	return Filter{
		Type:      TransactionType(FilterAll),
		Category:  Category(FilterAll),
		DateRange: DateRangeAll,
	}
}

// IsDefault reports whether the filter matches everything.
func (f Filter) IsDefault() bool {
	return f.matchesAnyType() && f.matchesAnyCategory() && f.matchesAnyDate()
}

// Match reports whether tx passes every predicate, evaluated as of today.
func (f Filter) Match(tx Transaction, today Date) bool {
	if !f.matchesAnyType() && tx.Type != f.Type {
		return false
	}
	if !f.matchesAnyCategory() && tx.Category != f.Category {
		return false
	}

	switch f.DateRange {
	case DateRangeToday:
		return tx.Date.Equal(today.Time)
	case DateRangeWeek:
		return !tx.Date.Before(today.AddDays(-WeekSpanDays).Time)
	case DateRangeMonth:
		return tx.Date.SameMonth(today)
	}
	return true
}

// Apply returns the records matching f, preserving input order.
func Apply(snapshot []Transaction, f Filter, today Date) []Transaction {
	out := make([]Transaction, 0, len(snapshot))
	for _, tx := range snapshot {
		if f.Match(tx, today) {
			out = append(out, tx)
		}
	}
	return out
}

func (f Filter) matchesAnyType() bool {
	return f.Type == "" || f.Type == TransactionType(FilterAll)
}

func (f Filter) matchesAnyCategory() bool {
	return f.Category == "" || f.Category == Category(FilterAll)
}

func (f Filter) matchesAnyDate() bool {
	return f.DateRange == "" || f.DateRange == DateRangeAll
}

// ParseFilter builds a filter from loosely formatted query values.
// Type and range are case-insensitive; category must match a catalog name.
func ParseFilter(txType, category, dateRange string) (Filter, error) {
	f := DefaultFilter()

	if v := strings.ToUpper(strings.TrimSpace(txType)); v != "" && v != FilterAll {
		t, err := ParseTransactionType(v)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: type %q", ErrInvalidFilter, txType)
		}
		f.Type = t
	}

	if v := strings.TrimSpace(category); v != "" && !strings.EqualFold(v, FilterAll) {
		if !IsKnownCategory(Category(v)) {
			return Filter{}, fmt.Errorf("%w: category %q", ErrInvalidFilter, category)
		}
		f.Category = Category(v)
	}

	switch r := DateRange(strings.ToUpper(strings.TrimSpace(dateRange))); r {
	case "", DateRangeAll:
	case DateRangeToday, DateRangeWeek, DateRangeMonth:
		f.DateRange = r
	default:
		return Filter{}, fmt.Errorf("%w: range %q", ErrInvalidFilter, dateRange)
	}

	return f, nil
}
