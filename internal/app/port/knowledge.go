package port

import "solana_advisor/internal/domain/entity"

// KnowledgeBase is the static rule table behind the advisory
// recommendations. Every lookup is an O(1) map read with a fixed default on
// miss; there is no I/O behind this interface.
type KnowledgeBase interface {
	// AssetInfo resolves a symbol to category/risk/description, or the
	// unknown sentinel.
	AssetInfo(symbol string) entity.AssetInfo

	// StrategyForPortfolioSize returns the canned strategy for a USD value
	// bucket (<1000, <10000, else).
	StrategyForPortfolioSize(valueUSD float64) string

	// AllocationForRiskTolerance returns the canned allocation for a
	// tolerance label.
	AllocationForRiskTolerance(tolerance entity.RiskTolerance) string

	// StrategyForTrend returns the canned strategy for a market trend.
	StrategyForTrend(trend entity.MarketTrend) string

	// RiskToleranceForValue derives the tolerance label from portfolio size.
	RiskToleranceForValue(valueUSD float64) entity.RiskTolerance
}

// TokenRegistry resolves mint addresses to display metadata.
type TokenRegistry interface {
	// Resolve returns symbol and name for a mint; unknown mints resolve to
	// a truncated form of the mint itself.
	Resolve(mint string) (symbol, name string)
}
