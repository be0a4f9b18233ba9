package domain

import "errors"

var (
	// Transaction errors
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrCategoryTypeMismatch = errors.New("category does not belong to transaction type")
	ErrInvalidDate          = errors.New("invalid date")
	ErrTransactionNotFound  = errors.New("transaction not found")

	// Filter errors
	ErrInvalidFilter = errors.New("invalid filter")

	// Profile errors
	ErrNotOnboarded    = errors.New("profile not onboarded")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidTheme    = errors.New("invalid theme")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")

	// Advisory errors
	ErrAdvisorUnavailable = errors.New("advisor unavailable")
	ErrEmptyAdvice        = errors.New("advisor returned empty response")
)
