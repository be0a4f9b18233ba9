package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/paisa/internal/domain"
)

func tx(id string, t domain.TransactionType, c domain.Category, amount int64, date domain.Date) domain.Transaction {
	return domain.Transaction{
		ID:        id,
		Amount:    decimal.NewFromInt(amount),
		Type:      t,
		Category:  c,
		Date:      date,
		CreatedAt: date.Time.Add(12 * time.Hour),
	}
}

func scenario() []domain.Transaction {
	return []domain.Transaction{
		tx("1", domain.TransactionTypeExpense, domain.CategoryFood, 500, domain.NewDate(2024, 1, 10)),
		tx("2", domain.TransactionTypeIncome, domain.CategorySalary, 50000, domain.NewDate(2024, 1, 1)),
		tx("3", domain.TransactionTypeExpense, domain.CategoryTransport, 200, domain.NewDate(2024, 2, 5)),
	}
}

func TestTotals_Scenario(t *testing.T) {
	s := scenario()

	assert.True(t, domain.TotalByType(s, domain.TransactionTypeExpense).Equal(decimal.NewFromInt(700)))
	assert.True(t, domain.TotalByType(s, domain.TransactionTypeIncome).Equal(decimal.NewFromInt(50000)))
	assert.True(t, domain.Balance(s).Equal(decimal.NewFromInt(49300)))

	sum := domain.Summarize(s)
	assert.Equal(t, 3, sum.Count)
	assert.True(t, sum.Balance.Equal(decimal.NewFromInt(49300)))
}

func TestTotals_EmptySnapshot(t *testing.T) {
	assert.True(t, domain.Balance(nil).IsZero())
	assert.True(t, domain.TotalByType(nil, domain.TransactionTypeIncome).IsZero())
	assert.Empty(t, domain.GroupByCategory(nil, domain.TransactionTypeExpense))
	assert.Empty(t, domain.GroupByMonth(nil))
}

func TestGroupByCategory_SumsMatchTotal(t *testing.T) {
	s := append(scenario(),
		tx("4", domain.TransactionTypeExpense, domain.CategoryFood, 150, domain.NewDate(2024, 2, 6)),
		tx("5", domain.TransactionTypeExpense, domain.CategoryRent, 12000, domain.NewDate(2024, 2, 1)),
	)

	for _, typ := range []domain.TransactionType{domain.TransactionTypeExpense, domain.TransactionTypeIncome} {
		groups := domain.GroupByCategory(s, typ)
		sum := decimal.Zero
		for _, g := range groups {
			sum = sum.Add(g.Amount)
		}
		assert.True(t, sum.Equal(domain.TotalByType(s, typ)), "type %s: %s", typ, sum)
	}
}

func TestGroupByCategory_FirstSeenOrderAndColors(t *testing.T) {
	s := []domain.Transaction{
		tx("1", domain.TransactionTypeExpense, domain.CategoryTransport, 10, domain.NewDate(2024, 1, 1)),
		tx("2", domain.TransactionTypeExpense, domain.CategoryFood, 20, domain.NewDate(2024, 1, 2)),
		tx("3", domain.TransactionTypeExpense, domain.CategoryTransport, 5, domain.NewDate(2024, 1, 3)),
		tx("4", domain.TransactionTypeExpense, domain.CategorySalary, 7, domain.NewDate(2024, 1, 4)),
	}

	groups := domain.GroupByCategory(s, domain.TransactionTypeExpense)
	require.Len(t, groups, 3)

	assert.Equal(t, domain.CategoryTransport, groups[0].Category)
	assert.True(t, groups[0].Amount.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "#f59e0b", groups[0].Color)

	assert.Equal(t, domain.CategoryFood, groups[1].Category)
	assert.Equal(t, "#ef4444", groups[1].Color)

	// Salary is not an expense category, so it gets the fallback color.
	assert.Equal(t, domain.CategorySalary, groups[2].Category)
	assert.Equal(t, domain.FallbackColor, groups[2].Color)
}

func TestGroupByMonth_BucketsAndLabels(t *testing.T) {
	groups := domain.GroupByMonth(scenario())
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-01", groups[0].Key)
	assert.Equal(t, "JAN", groups[0].Label)
	assert.True(t, groups[0].Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, groups[0].Expense.Equal(decimal.NewFromInt(500)))

	assert.Equal(t, "2024-02", groups[1].Key)
	assert.Equal(t, "FEB", groups[1].Label)
	assert.True(t, groups[1].Income.IsZero())
	assert.True(t, groups[1].Expense.Equal(decimal.NewFromInt(200)))
}

func TestGroupByMonth_KeepsMostRecentSix(t *testing.T) {
	var s []domain.Transaction
	// Eight distinct months inserted newest first, the storage convention.
	for m := 8; m >= 1; m-- {
		s = append(s, tx(fmt.Sprint(m), domain.TransactionTypeExpense, domain.CategoryFood, int64(m), domain.NewDate(2024, time.Month(m), 15)))
	}

	groups := domain.GroupByMonth(s)
	require.Len(t, groups, domain.MonthWindow)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"2024-03", "2024-04", "2024-05", "2024-06", "2024-07", "2024-08"}, keys)
}

func TestGroupByMonth_SeparatesYears(t *testing.T) {
	s := []domain.Transaction{
		tx("1", domain.TransactionTypeIncome, domain.CategoryGift, 100, domain.NewDate(2025, 1, 3)),
		tx("2", domain.TransactionTypeIncome, domain.CategoryGift, 50, domain.NewDate(2024, 1, 3)),
	}

	groups := domain.GroupByMonth(s)
	require.Len(t, groups, 2)
	assert.Equal(t, "2024-01", groups[0].Key)
	assert.Equal(t, "2025-01", groups[1].Key)
	assert.Equal(t, groups[0].Label, groups[1].Label)
}

func TestAggregation_DoesNotMutateInput(t *testing.T) {
	s := scenario()
	before := make([]domain.Transaction, len(s))
	copy(before, s)

	_ = domain.GroupByMonth(s)
	_ = domain.GroupByCategory(s, domain.TransactionTypeExpense)
	_ = domain.Recent(s, 2)

	assert.Equal(t, before, s)
}

func TestRecent_OrdersByCreatedAtDesc(t *testing.T) {
	s := scenario()
	recent := domain.Recent(s, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].ID)
	assert.Equal(t, "1", recent[1].ID)

	assert.Len(t, domain.Recent(s, 10), 3)
}
