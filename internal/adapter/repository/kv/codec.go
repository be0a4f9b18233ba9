package kv

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/paisa/internal/domain"
)

// transactionRecord is the stored shape of a transaction.
type transactionRecord struct {
	ID        string      `json:"id"`
	Amount    json.Number `json:"amount"`
	Category  string      `json:"category"`
	Note      string      `json:"note"`
	Type      string      `json:"type"`
	Date      domain.Date `json:"date"`
	Timestamp int64       `json:"timestamp"` // unix milliseconds
}

// profileRecord is the stored shape of the onboarding profile.
type profileRecord struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
	Date     string `json:"date,omitempty"` // RFC 3339
}

func encodeSnapshot(snapshot []domain.Transaction) ([]byte, error) {
	records := make([]transactionRecord, len(snapshot))
	for i, tx := range snapshot {
		records[i] = transactionRecord{
			ID:        tx.ID,
			Amount:    json.Number(tx.Amount.String()),
			Category:  string(tx.Category),
			Note:      tx.Note,
			Type:      string(tx.Type),
			Date:      tx.Date,
			Timestamp: tx.CreatedAt.UnixMilli(),
		}
	}
	return json.Marshal(records)
}

// decodeSnapshot does not validate records: legacy data is displayed as is.
func decodeSnapshot(data []byte) ([]domain.Transaction, error) {
	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	out := make([]domain.Transaction, 0, len(records))
	for i, r := range records {
		amount, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("decode snapshot: record %d amount %q: %w", i, r.Amount, err)
		}
		out = append(out, domain.Transaction{
			ID:        r.ID,
			Amount:    amount,
			Type:      domain.TransactionType(r.Type),
			Category:  domain.Category(r.Category),
			Note:      r.Note,
			Date:      r.Date,
			CreatedAt: time.UnixMilli(r.Timestamp),
		})
	}
	return out, nil
}

func encodeProfile(p domain.Profile) ([]byte, error) {
	rec := profileRecord{Name: p.Name, Language: string(p.Language)}
	if !p.CreatedAt.IsZero() {
		rec.Date = p.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(rec)
}

func decodeProfile(data []byte) (*domain.Profile, error) {
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	lang, err := domain.ParseLanguage(rec.Language)
	if err != nil {
		lang = domain.DefaultLanguage
	}

	p := &domain.Profile{Name: rec.Name, Language: lang}
	if rec.Date != "" {
		if t, err := time.Parse(time.RFC3339Nano, rec.Date); err == nil {
			p.CreatedAt = t
		}
	}
	return p, nil
}
