package entity

// SpotPriceResponse is the CoinGecko-style simple price payload:
// {"solana": {"usd": 123.45}}. Values stay untyped for coercion.
type SpotPriceResponse map[string]map[string]interface{}

// MarketChartResponse is the CoinGecko-style market chart payload. Each
// price sample is a [timestampMs, price] pair.
type MarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}
