package usecase

import "time"

const (
	// PersistTimeout bounds a single snapshot write.
	PersistTimeout = 10 * time.Second

	// DashboardRecentCount is the number of records on the dashboard.
	DashboardRecentCount = 5

	// MinInsightTransactions is the minimum history size for insights.
	MinInsightTransactions = 3

	// TipsRequested is how many tips are asked from the advisor.
	TipsRequested = 5

	// GeneratedTipPrefix prefixes ids of advisor-generated tips.
	GeneratedTipPrefix = "ai"
)
