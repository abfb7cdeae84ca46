package entity

// TokenHolding is one SPL-token position within a snapshot, identified by
// its mint address. Valuation fields are pointers: nil means the analytics
// source did not supply the figure, which must stay distinguishable from a
// literal zero.
type TokenHolding struct {
	Mint            string   `json:"mint"`
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	Quantity        float64  `json:"quantity"`
	ValueUSD        *float64 `json:"valueUsd,omitempty"`
	PriceUSD        *float64 `json:"priceUsd,omitempty"`
	Change1DPercent *float64 `json:"change1dPercent,omitempty"`
	Verified        bool     `json:"verified"`
}

// TokenInfo is a static mint registry entry.
type TokenInfo struct {
	Mint   string `json:"mint" yaml:"mint"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Name   string `json:"name" yaml:"name"`
}
