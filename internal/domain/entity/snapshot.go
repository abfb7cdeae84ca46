package entity

// AccountBalances is the partial view produced by one balance source: the
// native balance plus whatever token holdings the source exposes, tagged
// with the source identifier that succeeded.
type AccountBalances struct {
	NativeBalance float64        `json:"nativeBalance"`
	Holdings      []TokenHolding `json:"holdings"`
	Source        string         `json:"source"`
}

// WalletSnapshot is the reconciled view of one address at one point in
// time. Analytics-derived fields are pointers so that "analytics
// unavailable" never collapses into "zero dollars".
type WalletSnapshot struct {
	Address             string             `json:"address"`
	NativeBalance       float64            `json:"nativeBalance"`
	TokenHoldings       []TokenHolding     `json:"tokenHoldings"`
	PortfolioValueUSD   *float64           `json:"portfolioValueUsd,omitempty"`
	DailyChangeUSD      *float64           `json:"dailyChangeUsd,omitempty"`
	DailyChangePercent  *float64           `json:"dailyChangePercent,omitempty"`
	DistributionByType  map[string]float64 `json:"distributionByType,omitempty"`
	DistributionByChain map[string]float64 `json:"distributionByChain,omitempty"`
	DataSource          string             `json:"dataSource"`
}

// DistinctTokenCount returns the number of held tokens; holdings are unique
// by mint, so the slice length is the distinct count.
func (s *WalletSnapshot) DistinctTokenCount() int {
	if s == nil {
		return 0
	}
	return len(s.TokenHoldings)
}

// PortfolioOverview is the aggregate result of the analytics provider:
// USD totals, daily change and distribution breakdowns.
type PortfolioOverview struct {
	TotalValueUSD      float64            `json:"totalValueUsd"`
	DailyChangeUSD     float64            `json:"dailyChangeUsd"`
	DailyChangePercent float64            `json:"dailyChangePercent"`
	ByType             map[string]float64 `json:"byType,omitempty"`
	ByChain            map[string]float64 `json:"byChain,omitempty"`
}
