package usecase

import (
	"strings"
	"time"

	"github.com/iho/paisa/internal/domain"
)

// ReportUseCase builds read-only view models from store snapshots.
type ReportUseCase struct {
	store SnapshotReader
	clock Clock
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(store SnapshotReader, clock Clock) *ReportUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ReportUseCase{store: store, clock: clock}
}

// Dashboard is the home screen: totals plus the most recent records.
type Dashboard struct {
	Summary domain.Summary
	Recent  []domain.Transaction
}

// History is a filtered, newest-first record listing.
type History struct {
	Filter domain.Filter
	Items  []domain.Transaction
	Count  int
}

// Report holds the breakdowns shown on the reports page.
type Report struct {
	Summary     domain.Summary
	Expenses    []domain.CategoryTotal
	Income      []domain.CategoryTotal
	Trend       []domain.MonthTotal
	GeneratedAt time.Time
}

// Today returns the current calendar date.
func (uc *ReportUseCase) Today() domain.Date {
	return domain.DateOf(uc.clock.Now())
}

// Dashboard returns totals and the DashboardRecentCount newest records.
func (uc *ReportUseCase) Dashboard() Dashboard {
	snapshot := uc.store.Snapshot()
	return Dashboard{
		Summary: domain.Summarize(snapshot),
		Recent:  domain.Recent(snapshot, DashboardRecentCount),
	}
}

// History applies f to the current snapshot.
func (uc *ReportUseCase) History(f domain.Filter) History {
	items := domain.SortByCreatedDesc(domain.Apply(uc.store.Snapshot(), f, uc.Today()))
	return History{Filter: f, Items: items, Count: len(items)}
}

// Report computes category breakdowns and the monthly trend.
func (uc *ReportUseCase) Report() Report {
	snapshot := uc.store.Snapshot()
	return Report{
		Summary:     domain.Summarize(snapshot),
		Expenses:    domain.GroupByCategory(snapshot, domain.TransactionTypeExpense),
		Income:      domain.GroupByCategory(snapshot, domain.TransactionTypeIncome),
		Trend:       domain.GroupByMonth(snapshot),
		GeneratedAt: uc.clock.Now(),
	}
}

// Categories returns the catalog for txType. An empty or ALL type returns
// one entry per unique name, expense metadata first.
func (uc *ReportUseCase) Categories(txType string) ([]domain.CategoryInfo, error) {
	if txType = strings.TrimSpace(txType); txType == "" || strings.EqualFold(txType, domain.FilterAll) {
		var out []domain.CategoryInfo
		seen := make(map[domain.Category]bool)
		for _, c := range append(domain.Catalog(domain.TransactionTypeExpense), domain.Catalog(domain.TransactionTypeIncome)...) {
			if seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			out = append(out, c)
		}
		return out, nil
	}

	t, err := domain.ParseTransactionType(txType)
	if err != nil {
		return nil, err
	}
	return domain.Catalog(t), nil
}
