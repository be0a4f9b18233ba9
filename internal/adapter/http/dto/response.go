package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Note      string          `json:"note"`
	Date      domain.Date     `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t domain.Transaction) TransactionResponse {
	info := domain.DisplayCategory(t.Type, t.Category)
	return TransactionResponse{
		ID:        t.ID,
		Amount:    t.Amount,
		Type:      string(t.Type),
		Category:  string(t.Category),
		Note:      t.Note,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
		Color:     info.Color,
		Icon:      info.Icon,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []domain.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// SummaryResponse holds the balance cards.
type SummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
	Count   int             `json:"count"`
}

func SummaryFromDomain(s domain.Summary) SummaryResponse {
	return SummaryResponse{Income: s.Income, Expense: s.Expense, Balance: s.Balance, Count: s.Count}
}

// DashboardResponse is the home screen.
type DashboardResponse struct {
	Summary SummaryResponse       `json:"summary"`
	Recent  []TransactionResponse `json:"recent"`
}

func DashboardFromUseCase(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Summary: SummaryFromDomain(d.Summary),
		Recent:  TransactionsFromDomain(d.Recent),
	}
}

// FilterResponse echoes the applied filter.
type FilterResponse struct {
	Type      string `json:"type"`
	Category  string `json:"category"`
	DateRange string `json:"range"`
}

// HistoryResponse is a filtered listing.
type HistoryResponse struct {
	Filter FilterResponse        `json:"filter"`
	Items  []TransactionResponse `json:"items"`
	Count  int                   `json:"count"`
}

func HistoryFromUseCase(h usecase.History) HistoryResponse {
	return HistoryResponse{
		Filter: FilterResponse{
			Type:      string(h.Filter.Type),
			Category:  string(h.Filter.Category),
			DateRange: string(h.Filter.DateRange),
		},
		Items: TransactionsFromDomain(h.Items),
		Count: h.Count,
	}
}

// CategoryTotalResponse is one slice of a category chart.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
}

// MonthTotalResponse is one bar of the trend chart.
type MonthTotalResponse struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ReportResponse holds the reports page.
type ReportResponse struct {
	Summary     SummaryResponse         `json:"summary"`
	Expenses    []CategoryTotalResponse `json:"expenses"`
	Income      []CategoryTotalResponse `json:"income"`
	Trend       []MonthTotalResponse    `json:"trend"`
	GeneratedAt time.Time               `json:"generated_at"`
}

func ReportFromUseCase(r usecase.Report) ReportResponse {
	return ReportResponse{
		Summary:     SummaryFromDomain(r.Summary),
		Expenses:    categoryTotals(r.Expenses),
		Income:      categoryTotals(r.Income),
		Trend:       monthTotals(r.Trend),
		GeneratedAt: r.GeneratedAt,
	}
}

func categoryTotals(in []domain.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, len(in))
	for i, c := range in {
		out[i] = CategoryTotalResponse{Category: string(c.Category), Amount: c.Amount, Color: c.Color}
	}
	return out
}

func monthTotals(in []domain.MonthTotal) []MonthTotalResponse {
	out := make([]MonthTotalResponse, len(in))
	for i, m := range in {
		out[i] = MonthTotalResponse{Key: m.Key, Label: m.Label, Income: m.Income, Expense: m.Expense}
	}
	return out
}

// CategoryResponse is a catalog entry.
type CategoryResponse struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func CategoriesFromDomain(in []domain.CategoryInfo) []CategoryResponse {
	out := make([]CategoryResponse, len(in))
	for i, c := range in {
		out[i] = CategoryResponse{Name: string(c.Name), Type: string(c.Type), Color: c.Color, Icon: c.Icon}
	}
	return out
}

// InsightResponse carries generated or fallback insight text.
type InsightResponse struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	Language string `json:"language"`
}

func InsightFromUseCase(i usecase.Insight) InsightResponse {
	return InsightResponse{Text: i.Text, Source: string(i.Source), Language: string(i.Language)}
}

// TipResponse is one money tip.
type TipResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// TipsResponse is the tips page.
type TipsResponse struct {
	Tips   []TipResponse `json:"tips"`
	Source string        `json:"source"`
}

func TipsFromUseCase(r usecase.TipsResult) TipsResponse {
	tips := make([]TipResponse, len(r.Tips))
	for i, t := range r.Tips {
		tips[i] = TipResponse{ID: t.ID, Title: t.Title, Content: t.Content, Language: string(t.Language)}
	}
	return TipsResponse{Tips: tips, Source: string(r.Source)}
}

// ProfileResponse is the onboarding profile.
type ProfileResponse struct {
	Name      string    `json:"name"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

func ProfileFromDomain(p *domain.Profile) ProfileResponse {
	return ProfileResponse{Name: p.Name, Language: string(p.Language), CreatedAt: p.CreatedAt}
}

// ThemeResponse is the theme preference.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
