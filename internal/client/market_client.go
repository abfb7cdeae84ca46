package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	wire "solana_advisor/internal/entity"
	"solana_advisor/internal/pkg/utils"
)

// marketClientImpl fetches the spot price and the recent price series for the
// native asset. Market data is advisory context, so any failure degrades to
// the fixed fallback instead of propagating an error.
type marketClientImpl struct {
	client     *fasthttp.Client
	baseURL    string
	coinID     string
	vsCurrency string
	seriesDays int
	timeout    time.Duration
	logger     *zap.Logger
}

// NewMarketClient creates a market data provider backed by a public price API.
func NewMarketClient(baseURL, coinID, vsCurrency string, seriesDays int, timeout time.Duration, logger *zap.Logger) port.MarketDataProvider {
	return &marketClientImpl{
		client:     &fasthttp.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		coinID:     coinID,
		vsCurrency: vsCurrency,
		seriesDays: seriesDays,
		timeout:    timeout,
		logger:     logger.Named("MarketClient"),
	}
}

func (c *marketClientImpl) MarketContext(ctx context.Context) entity.MarketContext {
	price, err := c.spotPrice(ctx)
	if err != nil {
		c.logger.Warn("Spot price unavailable, using fallback market context", zap.Error(err))
		return entity.FallbackMarketContext()
	}

	change, err := c.weeklyChange(ctx)
	if err != nil {
		c.logger.Warn("Price series unavailable, using fallback market context", zap.Error(err))
		return entity.FallbackMarketContext()
	}

	return entity.MarketContext{
		NativePriceUSD:       price,
		PriceChange7DPercent: change,
		Trend:                entity.TrendForChange(change),
	}
}

func (c *marketClientImpl) spotPrice(ctx context.Context) (float64, error) {
	requestURL := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s", c.baseURL, c.coinID, c.vsCurrency)

	body, status, err := doGet(ctx, c.client, requestURL, c.timeout, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to execute spot price request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return 0, fmt.Errorf("spot price request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.SpotPriceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to unmarshal spot price response: %w", err)
	}

	price, ok := utils.ToFloat64(parsed[c.coinID][c.vsCurrency])
	if !ok {
		return 0, fmt.Errorf("spot price response carried no %s/%s quote", c.coinID, c.vsCurrency)
	}
	return price, nil
}

// weeklyChange computes the percentage move across the configured series
// window. A series that is too short to compare yields zero, not an error.
func (c *marketClientImpl) weeklyChange(ctx context.Context) (float64, error) {
	requestURL := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		c.baseURL, c.coinID, c.vsCurrency, c.seriesDays)

	body, status, err := doGet(ctx, c.client, requestURL, c.timeout, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to execute price series request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return 0, fmt.Errorf("price series request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.MarketChartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to unmarshal price series response: %w", err)
	}

	samples := make([]float64, 0, len(parsed.Prices))
	for _, point := range parsed.Prices {
		if len(point) < 2 {
			continue
		}
		samples = append(samples, point[1])
	}
	if len(samples) < 2 {
		c.logger.Debug("Price series too short to derive a change", zap.Int("samples", len(samples)))
		return 0, nil
	}

	first := samples[0]
	last := samples[len(samples)-1]
	if first == 0 {
		return 0, nil
	}
	return (last - first) / first * 100, nil
}
