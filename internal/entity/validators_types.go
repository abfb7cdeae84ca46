package entity

// ValidatorsResponse is the validator directory payload.
type ValidatorsResponse struct {
	Validators []ValidatorEntry `json:"validators"`
}

// ValidatorEntry is one directory row; yield fields are untyped because the
// directory reports them inconsistently (number or string).
type ValidatorEntry struct {
	Name        string      `json:"name"`
	VoteAccount string      `json:"voteAccount"`
	APY         interface{} `json:"apy"`
	Commission  interface{} `json:"commission"`
}

// AdviceRequest is the body posted to a remote advisory source.
type AdviceRequest struct {
	PortfolioValueUSD float64 `json:"portfolio_value_usd"`
	NativeBalance     float64 `json:"native_balance"`
	TokenCount        int     `json:"token_count"`
	MarketTrend       string  `json:"market_trend"`
	RiskTolerance     string  `json:"risk_tolerance"`
}

// AdviceResponse is the remote advisory source payload.
type AdviceResponse struct {
	Advice []string `json:"advice"`
}
