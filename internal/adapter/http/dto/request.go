package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/paisa/internal/domain"
)

// TransactionRequest is the body of create and update requests.
// Amount accepts both JSON numbers and numeric strings.
type TransactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}

// ToDraft converts the request into a draft. Validation of the draft
// itself happens in the record store.
func (r *TransactionRequest) ToDraft() (domain.TransactionDraft, error) {
	txType, err := domain.ParseTransactionType(r.Type)
	if err != nil {
		return domain.TransactionDraft{}, err
	}

	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.TransactionDraft{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidDate)
	}

	return domain.TransactionDraft{
		Amount:   r.Amount,
		Type:     txType,
		Category: domain.Category(strings.TrimSpace(r.Category)),
		Note:     strings.TrimSpace(r.Note),
		Date:     date,
	}, nil
}

// OnboardRequest is the body of the onboarding request.
type OnboardRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// LanguageRequest changes the display language.
type LanguageRequest struct {
	Language string `json:"language"`
}

// ThemeRequest changes the theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}
