package port

import (
	"context"

	"solana_advisor/internal/domain/entity"
)

// PortfolioAnalytics is the third-party valuation provider. Both calls are
// independent; either may fail without affecting the other, and a failure
// means "unavailable", never "zero".
type PortfolioAnalytics interface {
	// Overview fetches USD totals, daily change and distribution breakdowns.
	Overview(ctx context.Context, address string) (*entity.PortfolioOverview, error)

	// Positions fetches per-token valuations ordered by descending USD value
	// as requested from the provider; the order must be preserved. Entries
	// with non-positive quantity are already discarded.
	Positions(ctx context.Context, address string) ([]entity.TokenHolding, error)
}

// MarketDataProvider supplies the native token's market context. It never
// fails: any upstream problem degrades to entity.FallbackMarketContext.
type MarketDataProvider interface {
	MarketContext(ctx context.Context) entity.MarketContext
}

// ValidatorRegistry supplies staking validator options. Implementations
// fall back to a built-in list, so the result is never empty.
type ValidatorRegistry interface {
	TopValidators(ctx context.Context) []entity.Validator
}

// AdvisorySource is an optional pluggable producer of extra advisory
// strings merged into the knowledge-derived recommendations.
type AdvisorySource interface {
	Name() string
	Advisories(ctx context.Context, query *entity.AdvisoryQuery) ([]string, error)
}
