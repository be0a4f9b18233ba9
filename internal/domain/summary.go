package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// MonthWindow is the number of months kept by GroupByMonth.
const MonthWindow = 6

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category Category
	Amount   decimal.Decimal
	Color    string
}

// MonthTotal holds income and expense sums for one calendar month.
type MonthTotal struct {
	Key     string // YYYY-MM
	Label   string // JAN, FEB, ...
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summary is the aggregate shown on balance cards.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// TotalByType sums the amounts of all records of type t.
func TotalByType(snapshot []Transaction, t TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range snapshot {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance returns income total minus expense total.
func Balance(snapshot []Transaction) decimal.Decimal {
	return TotalByType(snapshot, TransactionTypeIncome).Sub(TotalByType(snapshot, TransactionTypeExpense))
}

// Summarize computes totals, balance and record count in one pass.
func Summarize(snapshot []Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero, Count: len(snapshot)}
	for _, tx := range snapshot {
		switch tx.Type {
		case TransactionTypeIncome:
			s.Income = s.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// GroupByCategory sums records of type t per category, in first-seen order.
func GroupByCategory(snapshot []Transaction, t TransactionType) []CategoryTotal {
	var out []CategoryTotal
	index := make(map[Category]int)
	for _, tx := range snapshot {
		if tx.Type != t {
			continue
		}
		if i, ok := index[tx.Category]; ok {
			out[i].Amount = out[i].Amount.Add(tx.Amount)
			continue
		}
		index[tx.Category] = len(out)
		out = append(out, CategoryTotal{
			Category: tx.Category,
			Amount:   tx.Amount,
			Color:    DisplayCategory(t, tx.Category).Color,
		})
	}
	return out
}

// GroupByMonth buckets records by the year-month of their date and returns
// the most recent MonthWindow buckets in chronological order.
// Input order does not affect the result.
func GroupByMonth(snapshot []Transaction) []MonthTotal {
	buckets := make(map[string]*MonthTotal)
	for _, tx := range snapshot {
		if tx.Date.IsZero() {
			continue
		}
		key := tx.Date.MonthKey()
		b, ok := buckets[key]
		if !ok {
			b = &MonthTotal{
				Key:     key,
				Label:   strings.ToUpper(tx.Date.Month().String()[:3]),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[key] = b
		}
		switch tx.Type {
		case TransactionTypeIncome:
			b.Income = b.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			b.Expense = b.Expense.Add(tx.Amount)
		}
	}

	out := make([]MonthTotal, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b MonthTotal) int {
		return strings.Compare(a.Key, b.Key)
	})
	if len(out) > MonthWindow {
		out = out[len(out)-MonthWindow:]
	}
	return out
}

// SortByCreatedDesc returns a copy of snapshot ordered newest first.
func SortByCreatedDesc(snapshot []Transaction) []Transaction {
	out := slices.Clone(snapshot)
	slices.SortStableFunc(out, func(a, b Transaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// Recent returns the n newest records by creation time.
func Recent(snapshot []Transaction, n int) []Transaction {
	out := SortByCreatedDesc(snapshot)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
