package service

import (
	"context"
	"fmt"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/pkg/utils"
)

const (
	// minStakeableBalance is the native balance below which staking is not
	// worth recommending.
	minStakeableBalance = 0.1
	// maxKnowledgeAdvisories caps the knowledge-sourced sub-list before it
	// is concatenated with the staking and diversification entries.
	maxKnowledgeAdvisories = 5
	// diversificationFloor is the distinct token count under which the
	// diversification advisory fires.
	diversificationFloor = 3
)

// RecommendationEngineImpl implements port.RecommendationEngine on top of
// the static knowledge base plus any configured remote advisory sources.
type RecommendationEngineImpl struct {
	knowledge port.KnowledgeBase
	advisory  []port.AdvisorySource
	logger    port.Logger
}

// NewRecommendationEngine creates the engine. The advisory source list may
// be empty; remote advice only ever extends the knowledge advisories.
func NewRecommendationEngine(kb port.KnowledgeBase, advisory []port.AdvisorySource, l port.Logger) port.RecommendationEngine {
	return &RecommendationEngineImpl{
		knowledge: kb,
		advisory:  advisory,
		logger:    l,
	}
}

// Generate emits recommendations in insertion order: staking, knowledge
// advisories, diversification. The list is never re-sorted by priority.
func (e *RecommendationEngineImpl) Generate(ctx context.Context, snapshot *entity.WalletSnapshot, market entity.MarketContext, validators []entity.Validator, balanceErr error) []entity.Recommendation {
	if balanceErr != nil || snapshot == nil {
		return []entity.Recommendation{errorRecommendation(balanceErr)}
	}

	// Resolved once; every bucket decision below reuses this value.
	portfolioValue := utils.SafeDerefFloat64(snapshot.PortfolioValueUSD, snapshot.NativeBalance*market.NativePriceUSD)
	tolerance := e.knowledge.RiskToleranceForValue(portfolioValue)

	recommendations := make([]entity.Recommendation, 0, maxKnowledgeAdvisories+2)

	if staking, ok := stakingRecommendation(snapshot.NativeBalance, validators); ok {
		recommendations = append(recommendations, staking)
	}

	for _, advice := range e.advisories(ctx, snapshot, market, portfolioValue, tolerance) {
		recommendations = append(recommendations, entity.Recommendation{
			Type:        entity.RecommendationKnowledgeAdvice,
			Priority:    entity.PriorityMedium,
			Action:      "Follow knowledge base guidance",
			Description: advice,
			Reasoning:   "Derived from the curated investment knowledge base",
		})
	}

	if count := snapshot.DistinctTokenCount(); count < diversificationFloor {
		recommendations = append(recommendations, entity.Recommendation{
			Type:        entity.RecommendationDiversification,
			Priority:    entity.PriorityMedium,
			Action:      "Diversify portfolio",
			Description: "Consider adding more tokens to diversify risk",
			Reasoning:   fmt.Sprintf("Current portfolio has only %d tokens. Diversification reduces risk.", count),
		})
	}

	e.logger.Debug("Generated recommendations", "address", snapshot.Address,
		"count", len(recommendations), "portfolio_value_usd", portfolioValue)

	return recommendations
}

// stakingRecommendation fires only above the minimum stakeable balance.
// The stake fraction is tiered on the native balance: half below one unit,
// 70% below five, 60% beyond that. The smallest tier is the only one that
// is not high priority.
func stakingRecommendation(nativeBalance float64, validators []entity.Validator) (entity.Recommendation, bool) {
	if nativeBalance <= minStakeableBalance || len(validators) == 0 {
		return entity.Recommendation{}, false
	}

	fraction := 0.6
	priority := entity.PriorityHigh
	switch {
	case nativeBalance < 1:
		fraction = 0.5
		priority = entity.PriorityMedium
	case nativeBalance < 5:
		fraction = 0.7
	}

	best := validators[0]
	for _, validator := range validators[1:] {
		if validator.APY > best.APY {
			best = validator
		}
	}

	stakeAmount := nativeBalance * fraction
	annualReturn := stakeAmount * best.APY / 100

	return entity.Recommendation{
		Type:                  entity.RecommendationStaking,
		Priority:              priority,
		Action:                fmt.Sprintf("Stake %s %s", utils.FormatQuantity(stakeAmount), entity.NativeSymbol),
		Description:           fmt.Sprintf("Stake with %s for %.2f%% APY", best.Name, best.APY),
		Reasoning:             "High APY staking opportunity with reputable validator",
		EstimatedAnnualReturn: utils.FormatUSD(annualReturn),
	}, true
}

// advisories builds the knowledge-sourced sub-list: the three bucket-keyed
// strategy strings first, then whatever the remote advisory sources add,
// capped as one list.
func (e *RecommendationEngineImpl) advisories(ctx context.Context, snapshot *entity.WalletSnapshot, market entity.MarketContext, portfolioValue float64, tolerance entity.RiskTolerance) []string {
	advisories := make([]string, 0, maxKnowledgeAdvisories)
	if strategy := e.knowledge.StrategyForPortfolioSize(portfolioValue); strategy != "" {
		advisories = append(advisories, strategy)
	}
	if allocation := e.knowledge.AllocationForRiskTolerance(tolerance); allocation != "" {
		advisories = append(advisories, allocation)
	}
	if strategy := e.knowledge.StrategyForTrend(market.Trend); strategy != "" {
		advisories = append(advisories, strategy)
	}

	if len(e.advisory) > 0 {
		query := &entity.AdvisoryQuery{
			PortfolioValueUSD: portfolioValue,
			NativeBalance:     snapshot.NativeBalance,
			TokenCount:        snapshot.DistinctTokenCount(),
			MarketTrend:       market.Trend,
			RiskTolerance:     tolerance,
		}
		for _, source := range e.advisory {
			extra, err := source.Advisories(ctx, query)
			if err != nil {
				e.logger.Warn("Advisory source failed, continuing without it", "source", source.Name(), "error", err)
				continue
			}
			advisories = append(advisories, extra...)
		}
	}

	if len(advisories) > maxKnowledgeAdvisories {
		advisories = advisories[:maxKnowledgeAdvisories]
	}
	return advisories
}

func errorRecommendation(err error) entity.Recommendation {
	description := "Could not fetch wallet balances from any source"
	if err != nil {
		description = fmt.Sprintf("Could not fetch wallet balances: %v", err)
	}
	return entity.Recommendation{
		Type:        entity.RecommendationError,
		Priority:    entity.PriorityHigh,
		Action:      "Retry analysis later",
		Description: description,
		Reasoning:   "Wallet data is required before any recommendation can be made",
	}
}
