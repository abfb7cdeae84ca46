package entity

// PortfolioOverviewResponse is the Zerion-style aggregate payload:
// GET /v1/wallets/{addr}/portfolio?currency=usd.
type PortfolioOverviewResponse struct {
	Data *struct {
		Attributes struct {
			Total struct {
				Positions interface{} `json:"positions"`
			} `json:"total"`
			Changes struct {
				Absolute1D interface{} `json:"absolute_1d"`
				Percent1D  interface{} `json:"percent_1d"`
			} `json:"changes"`
			DistributionByType  map[string]interface{} `json:"positions_distribution_by_type"`
			DistributionByChain map[string]interface{} `json:"positions_distribution_by_chain"`
		} `json:"attributes"`
	} `json:"data"`
}

// PositionsResponse is the Zerion-style position-level payload:
// GET /v1/wallets/{addr}/positions?currency=usd.
type PositionsResponse struct {
	Data []PositionEntry `json:"data"`
}

// PositionEntry is one fungible position. Numeric fields are untyped on
// purpose: the provider has been observed to switch between numbers and
// strings per field, and parsing must coerce each one independently.
type PositionEntry struct {
	Attributes struct {
		Quantity struct {
			Float   interface{} `json:"float"`
			Numeric interface{} `json:"numeric"`
		} `json:"quantity"`
		Value   interface{} `json:"value"`
		Price   interface{} `json:"price"`
		Changes *struct {
			Percent1D interface{} `json:"percent_1d"`
		} `json:"changes"`
		FungibleInfo struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
			Flags  struct {
				Verified bool `json:"verified"`
			} `json:"flags"`
			Implementations []PositionImplementation `json:"implementations"`
		} `json:"fungible_info"`
	} `json:"attributes"`
}

// PositionImplementation binds a fungible asset to its address on one chain.
type PositionImplementation struct {
	ChainID string `json:"chain_id"`
	Address string `json:"address"`
}
