package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/infrastructure/metrics"
)

// InsightSource tells where insight text came from.
type InsightSource string

const (
	InsightSourceAI       InsightSource = "ai"
	InsightSourceFallback InsightSource = "fallback"
	InsightSourceLocal    InsightSource = "local"
)

// TipsSource tells where a tips list came from.
type TipsSource string

const (
	TipsSourceAI      TipsSource = "ai"
	TipsSourceCache   TipsSource = "cache"
	TipsSourceDefault TipsSource = "default"
)

// Insight is the text shown on the insights page.
type Insight struct {
	Text     string
	Source   InsightSource
	Language domain.Language
}

// TipsResult is the tips list shown on the tips page.
type TipsResult struct {
	Tips   []domain.Tip
	Source TipsSource
}

// AdvisoryUseCase produces insights and tips. Failures of the advisor
// never surface as errors: callers always get displayable content.
type AdvisoryUseCase struct {
	store   SnapshotReader
	advisor Advisor
	cache   TipsCache
	timeout time.Duration
	group   singleflight.Group
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewAdvisoryUseCase creates a new AdvisoryUseCase. advisor and cache may
// be nil: without an advisor every request uses the fallbacks.
func NewAdvisoryUseCase(
	store SnapshotReader,
	advisor Advisor,
	cache TipsCache,
	timeout time.Duration,
	log zerolog.Logger,
	metrics *metrics.Metrics,
) *AdvisoryUseCase {
	return &AdvisoryUseCase{
		store:   store,
		advisor: advisor,
		cache:   cache,
		timeout: timeout,
		log:     log,
		metrics: metrics,
	}
}

// Insights analyzes the current snapshot in lang.
func (uc *AdvisoryUseCase) Insights(ctx context.Context, lang domain.Language) Insight {
	strs := domain.StringsFor(lang)
	snapshot := uc.store.Snapshot()

	if len(snapshot) < MinInsightTransactions {
		return Insight{Text: strs.InsightsNeedEntries, Source: InsightSourceLocal, Language: lang}
	}
	if uc.advisor == nil {
		return Insight{Text: strs.InsightsUnavailable, Source: InsightSourceFallback, Language: lang}
	}

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	uc.countRequest("insights")
	text, err := uc.advisor.Insights(ctx, InsightsPrompt(domain.Summarize(snapshot), lang))
	uc.observe("insights", start)

	if err != nil {
		uc.countFailure("insights")
		uc.log.Warn().Err(err).Msg("insights request failed")
		return Insight{Text: strs.InsightsUnavailable, Source: InsightSourceFallback, Language: lang}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Insight{Text: strs.InsightsEmpty, Source: InsightSourceFallback, Language: lang}
	}

	return Insight{Text: text, Source: InsightSourceAI, Language: lang}
}

// Tips returns cached or freshly generated tips for lang, falling back to
// the built-in defaults. Concurrent calls for one language share a request.
func (uc *AdvisoryUseCase) Tips(ctx context.Context, lang domain.Language) TipsResult {
	if uc.cache != nil {
		if tips, ok := uc.cache.Get(ctx, lang); ok && len(tips) > 0 {
			if uc.metrics != nil {
				uc.metrics.TipsCacheHits.Inc()
			}
			return TipsResult{Tips: tips, Source: TipsSourceCache}
		}
		if uc.metrics != nil {
			uc.metrics.TipsCacheMisses.Inc()
		}
	}

	if uc.advisor == nil {
		return defaultTips()
	}

	// The shared fetch must not die with the first caller's request.
	shared := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(string(lang), func() (any, error) {
		return uc.fetchTips(shared, lang)
	})

	select {
	case <-ctx.Done():
		return defaultTips()
	case res := <-ch:
		if res.Err != nil {
			return defaultTips()
		}
		return TipsResult{Tips: res.Val.([]domain.Tip), Source: TipsSourceAI}
	}
}

// StartInsights runs Insights as a cancellable task.
func (uc *AdvisoryUseCase) StartInsights(ctx context.Context, lang domain.Language) *Task[Insight] {
	return startTask(ctx, func(ctx context.Context) Insight {
		return uc.Insights(ctx, lang)
	})
}

// StartTips runs Tips as a cancellable task.
func (uc *AdvisoryUseCase) StartTips(ctx context.Context, lang domain.Language) *Task[TipsResult] {
	return startTask(ctx, func(ctx context.Context) TipsResult {
		return uc.Tips(ctx, lang)
	})
}

func (uc *AdvisoryUseCase) fetchTips(ctx context.Context, lang domain.Language) ([]domain.Tip, error) {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	uc.countRequest("tips")
	tips, err := uc.advisor.Tips(ctx, TipsPrompt(lang))
	uc.observe("tips", start)

	if err != nil {
		uc.countFailure("tips")
		uc.log.Warn().Err(err).Msg("tips request failed")
		return nil, err
	}

	tips = domain.NormalizeTips(tips, GeneratedTipPrefix)
	if len(tips) == 0 {
		uc.countFailure("tips")
		return nil, domain.ErrEmptyAdvice
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, lang, tips)
	}
	return tips, nil
}

func (uc *AdvisoryUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.timeout)
}

func (uc *AdvisoryUseCase) countRequest(kind string) {
	if uc.metrics != nil {
		uc.metrics.AdvisoryRequests.WithLabelValues(kind).Inc()
	}
}

func (uc *AdvisoryUseCase) countFailure(kind string) {
	if uc.metrics != nil {
		uc.metrics.AdvisoryFailures.WithLabelValues(kind).Inc()
	}
}

func (uc *AdvisoryUseCase) observe(kind string, start time.Time) {
	if uc.metrics != nil {
		uc.metrics.AdvisoryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}

func defaultTips() TipsResult {
	return TipsResult{Tips: domain.DefaultTips(), Source: TipsSourceDefault}
}

// InsightsPrompt builds the analysis prompt from aggregate figures only.
func InsightsPrompt(s domain.Summary, lang domain.Language) string {
	directive := "Urdu and Roman Urdu ONLY. Be friendly, encouraging, and use local cultural context."
	if lang == domain.LanguageEnglish {
		directive = "English ONLY. Be professional, direct, and data-driven."
	}

	var b strings.Builder
	b.WriteString("Analyze these financial transactions for a user:\n")
	fmt.Fprintf(&b, "Income: %s\n", s.Income.String())
	fmt.Fprintf(&b, "Expenses: %s\n", s.Expense.String())
	fmt.Fprintf(&b, "Transactions count: %d\n\n", s.Count)
	b.WriteString("Role: Expert Financial Advisor & Behavioral Economist.\n")
	fmt.Fprintf(&b, "Language Requirement: %s\n\n", directive)
	b.WriteString("Tasks:\n")
	b.WriteString("1. Identify a potential saving opportunity.\n")
	b.WriteString("2. Comment on the Income-to-Expense ratio.\n")
	b.WriteString("3. Suggest one small \"MoneyHabit\" to improve their situation.\n\n")
	b.WriteString("Provide exactly 3 actionable bullet points. Keep it punchy and high-impact.")
	return b.String()
}

// TipsPrompt builds the tips prompt for lang.
func TipsPrompt(lang domain.Language) string {
	language := "Urdu script and Roman Urdu"
	if lang == domain.LanguageEnglish {
		language = "Professional English"
	}

	return fmt.Sprintf(
		"Generate %d daily money tips for students, freelancers, and small shop owners.\n"+
			"Language: %s.\n"+
			"Focus on: frugal living, saving tactics, and smart spending.\n"+
			"Output in JSON format with fields: title, content, language.",
		TipsRequested, language,
	)
}
