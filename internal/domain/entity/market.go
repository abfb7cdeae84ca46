package entity

// MarketTrend classifies the 7-day direction of the native token.
type MarketTrend string

const (
	TrendBullish MarketTrend = "bullish"
	TrendBearish MarketTrend = "bearish"
	// TrendNeutral is only ever the fetch-failure default; a successful
	// fetch always resolves to bullish or bearish (zero change included).
	TrendNeutral MarketTrend = "neutral"
)

// FallbackNativePriceUSD is the price assumed when the market source is
// unreachable.
const FallbackNativePriceUSD = 100.0

// MarketContext is the market view used by the recommendation engine.
type MarketContext struct {
	NativePriceUSD       float64     `json:"nativePriceUsd"`
	PriceChange7DPercent float64     `json:"priceChange7dPercent"`
	Trend                MarketTrend `json:"trend"`
}

// FallbackMarketContext is returned whenever the market source fails; the
// engine must keep working on these defaults.
func FallbackMarketContext() MarketContext {
	return MarketContext{
		NativePriceUSD:       FallbackNativePriceUSD,
		PriceChange7DPercent: 0,
		Trend:                TrendNeutral,
	}
}

// TrendForChange derives the trend from a successfully fetched 7-day change.
// A change of exactly zero classifies as bearish; that asymmetry matches the
// deployed behaviour and is relied on downstream.
func TrendForChange(change float64) MarketTrend {
	if change > 0 {
		return TrendBullish
	}
	return TrendBearish
}
