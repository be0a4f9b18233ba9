package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a transaction as income or expense.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ParseTransactionType parses a type name case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Transaction is a single logged income or expense event.
type Transaction struct {
	ID        string
	Amount    decimal.Decimal
	Type      TransactionType
	Category  Category
	Note      string
	Date      Date
	CreatedAt time.Time
}

// TransactionDraft is a transaction that has not been assigned an ID yet.
type TransactionDraft struct {
	Amount   decimal.Decimal
	Type     TransactionType
	Category Category
	Note     string
	Date     Date
}

// NewTransaction materializes a draft with the given identity.
func NewTransaction(id string, createdAt time.Time, d TransactionDraft) Transaction {
	return Transaction{
		ID:        id,
		Amount:    d.Amount,
		Type:      d.Type,
		Category:  d.Category,
		Note:      d.Note,
		Date:      d.Date,
		CreatedAt: createdAt,
	}
}

// Draft returns the user-editable fields of the transaction.
func (t Transaction) Draft() TransactionDraft {
	return TransactionDraft{
		Amount:   t.Amount,
		Type:     t.Type,
		Category: t.Category,
		Note:     t.Note,
		Date:     t.Date,
	}
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// Validate checks the draft before it reaches the record store.
func (d TransactionDraft) Validate() error {
	if err := ValidateAmount(d.Amount); err != nil {
		return err
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, d.Type)
	}
	if err := ValidateCategory(d.Type, d.Category); err != nil {
		return err
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	return ValidateNote(d.Note)
}
