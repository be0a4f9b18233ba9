package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/paisa/internal/domain"
)

func ids(txs []domain.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestFilter_ScenarioExpenseThisMonth(t *testing.T) {
	today := domain.NewDate(2024, 2, 20)
	f := domain.Filter{Type: domain.TransactionTypeExpense, DateRange: domain.DateRangeMonth}

	got := domain.Apply(scenario(), f, today)
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilter_DateRanges(t *testing.T) {
	today := domain.NewDate(2024, 3, 15)
	s := []domain.Transaction{
		tx("today", domain.TransactionTypeExpense, domain.CategoryFood, 1, today),
		tx("7-days-ago", domain.TransactionTypeExpense, domain.CategoryFood, 1, today.AddDays(-7)),
		tx("8-days-ago", domain.TransactionTypeExpense, domain.CategoryFood, 1, today.AddDays(-8)),
		tx("month-start", domain.TransactionTypeExpense, domain.CategoryFood, 1, domain.NewDate(2024, 3, 1)),
		tx("last-year", domain.TransactionTypeExpense, domain.CategoryFood, 1, domain.NewDate(2023, 3, 15)),
	}

	tests := []struct {
		rng  domain.DateRange
		want []string
	}{
		{domain.DateRangeAll, []string{"today", "7-days-ago", "8-days-ago", "month-start", "last-year"}},
		{domain.DateRangeToday, []string{"today"}},
		{domain.DateRangeWeek, []string{"today", "7-days-ago"}},
		{domain.DateRangeMonth, []string{"today", "7-days-ago", "8-days-ago", "month-start"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			got := domain.Apply(s, domain.Filter{DateRange: tt.rng}, today)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_CategoryAndTypeConjunction(t *testing.T) {
	today := domain.NewDate(2024, 2, 20)
	s := append(scenario(),
		tx("4", domain.TransactionTypeIncome, domain.CategoryOther, 10, today),
		tx("5", domain.TransactionTypeExpense, domain.CategoryOther, 10, today),
	)

	got := domain.Apply(s, domain.Filter{Category: domain.CategoryOther}, today)
	assert.Equal(t, []string{"4", "5"}, ids(got))

	got = domain.Apply(s, domain.Filter{Type: domain.TransactionTypeIncome, Category: domain.CategoryOther}, today)
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilter_IdempotentAndReset(t *testing.T) {
	today := domain.NewDate(2024, 2, 20)
	s := scenario()
	f := domain.Filter{Type: domain.TransactionTypeExpense}

	once := domain.Apply(s, f, today)
	twice := domain.Apply(once, f, today)
	assert.Equal(t, once, twice)

	all := domain.Apply(s, domain.DefaultFilter(), today)
	assert.ElementsMatch(t, s, all)
	assert.True(t, domain.DefaultFilter().IsDefault())
	assert.True(t, domain.Filter{}.IsDefault())
	assert.False(t, f.IsDefault())
}

func TestParseFilter(t *testing.T) {
	f, err := domain.ParseFilter("expense", "Food", "week")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionTypeExpense, f.Type)
	assert.Equal(t, domain.CategoryFood, f.Category)
	assert.Equal(t, domain.DateRangeWeek, f.DateRange)

	f, err = domain.ParseFilter("", "all", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFilter(), f)

	for _, bad := range [][3]string{
		{"transfer", "", ""},
		{"", "Crypto", ""},
		{"", "", "YEAR"},
	} {
		_, err := domain.ParseFilter(bad[0], bad[1], bad[2])
		assert.True(t, errors.Is(err, domain.ErrInvalidFilter), "input %v: %v", bad, err)
	}
}
