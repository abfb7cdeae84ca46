package knowledgebase

import (
	"strings"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
)

// assetCatalog is the curated set of ecosystem assets the advisor can reason
// about. Symbols outside the catalog resolve to an unknown-risk stub.
var assetCatalog = map[string]entity.AssetInfo{
	"SOL": {
		Symbol:      "SOL",
		Category:    "native_token",
		Risk:        entity.RiskMedium,
		Description: "Solana native token, high performance blockchain",
	},
	"USDC": {
		Symbol:      "USDC",
		Category:    "stablecoin",
		Risk:        entity.RiskLow,
		Description: "USD Coin, stablecoin for trading and DeFi",
	},
	"USDT": {
		Symbol:      "USDT",
		Category:    "stablecoin",
		Risk:        entity.RiskLow,
		Description: "Tether, stablecoin for trading and DeFi",
	},
	"RAY": {
		Symbol:      "RAY",
		Category:    "defi_token",
		Risk:        entity.RiskMedium,
		Description: "Raydium token, DEX and AMM protocol",
	},
	"BONK": {
		Symbol:      "BONK",
		Category:    "memecoin",
		Risk:        entity.RiskHigh,
		Description: "BONK memecoin, high volatility, speculative",
	},
	"JUP": {
		Symbol:      "JUP",
		Category:    "defi_token",
		Risk:        entity.RiskMedium,
		Description: "Jupiter token, DEX aggregator",
	},
	"ORCA": {
		Symbol:      "ORCA",
		Category:    "defi_token",
		Risk:        entity.RiskMedium,
		Description: "Orca token, user-friendly DEX",
	},
	"MNGO": {
		Symbol:      "MNGO",
		Category:    "defi_token",
		Risk:        entity.RiskMedium,
		Description: "Mango token, lending protocol",
	},
}

var sizeStrategies = map[string]string{
	"small":  "Under $1000, stake 50-70% with Foundation",
	"medium": "$1000-$10000, diversify staking across validators",
	"large":  "Over $10000, use liquid staking and DeFi strategies",
}

var allocationStrategies = map[entity.RiskTolerance]string{
	entity.ToleranceConservative: "70% SOL staking, 20% stablecoins, 10% DeFi",
	entity.ToleranceBalanced:     "50% SOL staking, 30% DeFi tokens, 20% stablecoins",
	entity.ToleranceAggressive:   "30% SOL staking, 50% DeFi tokens, 20% memecoins",
}

var trendStrategies = map[entity.MarketTrend]string{
	entity.TrendBullish: "Focus on growth tokens, reduce stablecoin allocation",
	entity.TrendBearish: "Increase stablecoin allocation, focus on staking",
	entity.TrendNeutral: "DCA strategies, yield farming, balanced allocation",
}

type knowledgeBaseImpl struct{}

// NewKnowledgeBase creates the in-process investment knowledge base.
func NewKnowledgeBase() port.KnowledgeBase {
	return &knowledgeBaseImpl{}
}

func (kb *knowledgeBaseImpl) AssetInfo(symbol string) entity.AssetInfo {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if info, ok := assetCatalog[normalized]; ok {
		return info
	}
	return entity.AssetInfo{Symbol: normalized, Risk: entity.RiskUnknown}
}

func (kb *knowledgeBaseImpl) StrategyForPortfolioSize(valueUSD float64) string {
	switch {
	case valueUSD < 1000:
		return sizeStrategies["small"]
	case valueUSD > 10000:
		return sizeStrategies["large"]
	default:
		return sizeStrategies["medium"]
	}
}

func (kb *knowledgeBaseImpl) AllocationForRiskTolerance(tolerance entity.RiskTolerance) string {
	if strategy, ok := allocationStrategies[tolerance]; ok {
		return strategy
	}
	return allocationStrategies[entity.ToleranceBalanced]
}

func (kb *knowledgeBaseImpl) StrategyForTrend(trend entity.MarketTrend) string {
	if strategy, ok := trendStrategies[trend]; ok {
		return strategy
	}
	return trendStrategies[entity.TrendNeutral]
}

func (kb *knowledgeBaseImpl) RiskToleranceForValue(valueUSD float64) entity.RiskTolerance {
	switch {
	case valueUSD < 1000:
		return entity.ToleranceConservative
	case valueUSD > 10000:
		return entity.ToleranceAggressive
	default:
		return entity.ToleranceBalanced
	}
}
