package domain

import (
	"fmt"
	"strings"
)

// TipLanguage is the language a tip is written in.
type TipLanguage string

const (
	TipLanguageUrdu      TipLanguage = "Urdu"
	TipLanguageRomanUrdu TipLanguage = "Roman Urdu"
	TipLanguageEnglish   TipLanguage = "English"
)

// Tip is a short money-saving suggestion.
type Tip struct {
	ID       string
	Title    string
	Content  string
	Language TipLanguage
}

// DefaultTips are shown until generated tips are available.
func DefaultTips() []Tip {
	return []Tip{
		{
			ID:       "1",
			Title:    "Emergency Fund",
			Content:  "Apnay paas hamesha 3-6 mahinay ka kharcha bacha kar rakhen.",
			Language: TipLanguageRomanUrdu,
		},
		{
			ID:       "2",
			Title:    "پیسے بچائیں",
			Content:  "اپنی آمدنی کا کم از کم 20 فیصد بچانے کی کوشش کریں۔",
			Language: TipLanguageUrdu,
		},
		{
			ID:       "3",
			Title:    "Budgeting Rule",
			Content:  "Follow the 50/30/20 rule: 50% Needs, 30% Wants, 20% Savings.",
			Language: TipLanguageEnglish,
		},
	}
}

// NormalizeTips drops tips without a title or content and assigns
// sequential ids with the given prefix.
func NormalizeTips(tips []Tip, prefix string) []Tip {
	out := make([]Tip, 0, len(tips))
	for _, t := range tips {
		t.Title = strings.TrimSpace(t.Title)
		t.Content = strings.TrimSpace(t.Content)
		if t.Title == "" || t.Content == "" {
			continue
		}
		t.ID = fmt.Sprintf("%s-%d", prefix, len(out))
		out = append(out, t)
	}
	return out
}
