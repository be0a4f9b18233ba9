package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
	ErrNoteTooLong    = errors.New("note too long")
	ErrNameTooLong    = errors.New("name too long")
)

// Validation constants
const (
	MaxTransactionAmount = "1000000000000" // 1 trillion
	MaxNoteLength        = 200
	MaxNameLength        = 100
)

var maxAmount = decimal.RequireFromString(MaxTransactionAmount)

// ValidateAmount validates a transaction amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}

// ValidateNote validates the free-form note length.
func ValidateNote(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return fmt.Errorf("%w: max %d characters", ErrNoteTooLong, MaxNoteLength)
	}
	return nil
}

// ValidateName validates the onboarding display name.
func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxNameLength {
		return fmt.Errorf("%w: max %d characters", ErrNameTooLong, MaxNameLength)
	}
	return nil
}
