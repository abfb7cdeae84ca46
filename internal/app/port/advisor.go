package port

import (
	"context"

	"solana_advisor/internal/domain/entity"
)

// RecommendationEngine turns a reconciled snapshot plus market context into
// the ordered recommendation list.
type RecommendationEngine interface {
	// Generate produces recommendations in emission order: staking, then
	// knowledge advisories, then diversification. When balanceErr is
	// non-nil the result is exactly one error-typed record.
	Generate(ctx context.Context, snapshot *entity.WalletSnapshot, market entity.MarketContext, validators []entity.Validator, balanceErr error) []entity.Recommendation
}

// ReportRenderer turns an analysis into user-facing display text.
type ReportRenderer interface {
	Render(analysis *entity.WalletAnalysis) string
}

// AdvisorService drives the full pipeline for one address.
type AdvisorService interface {
	// AnalyzeWallet validates the address, fetches all sources, reconciles
	// the snapshot and generates recommendations. The returned error is
	// a *entity.ValidationError for malformed input or
	// entity.ErrAllSourcesExhausted when no balance source answered; in the
	// latter case the analysis still carries the single error-typed
	// recommendation.
	AnalyzeWallet(ctx context.Context, address string) (*entity.WalletAnalysis, error)
}
