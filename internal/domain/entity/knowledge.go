package entity

// AssetRisk grades a known asset.
type AssetRisk string

const (
	RiskLow     AssetRisk = "low"
	RiskMedium  AssetRisk = "medium"
	RiskHigh    AssetRisk = "high"
	RiskUnknown AssetRisk = "unknown"
)

// RiskTolerance buckets an investor profile derived from portfolio size.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceBalanced     RiskTolerance = "balanced"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// AssetInfo describes a known asset in the knowledge table.
type AssetInfo struct {
	Symbol      string    `json:"symbol"`
	Category    string    `json:"category"`
	Risk        AssetRisk `json:"risk"`
	Description string    `json:"description"`
}

// Known reports whether the lookup resolved to a table entry rather than
// the unknown sentinel.
func (a AssetInfo) Known() bool {
	return a.Risk != RiskUnknown
}

// Validator is one staking validator option.
type Validator struct {
	Name              string  `json:"name"`
	VoteAccount       string  `json:"voteAccount"`
	APY               float64 `json:"apy"`
	CommissionPercent float64 `json:"commissionPercent"`
}

// AdvisoryQuery is the portfolio summary handed to pluggable advisory
// sources.
type AdvisoryQuery struct {
	PortfolioValueUSD float64       `json:"portfolioValueUsd"`
	NativeBalance     float64       `json:"nativeBalance"`
	TokenCount        int           `json:"tokenCount"`
	MarketTrend       MarketTrend   `json:"marketTrend"`
	RiskTolerance     RiskTolerance `json:"riskTolerance"`
}
