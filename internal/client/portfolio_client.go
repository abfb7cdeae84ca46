package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	wire "solana_advisor/internal/entity"
	"solana_advisor/internal/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// portfolioClientImpl talks to the portfolio analytics provider. Both calls
// are independent: the overview can succeed while positions fail and vice
// versa, so each returns its own error.
type portfolioClientImpl struct {
	client   *fasthttp.Client
	baseURL  string
	apiKey   string
	currency string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewPortfolioClient creates a client for the portfolio analytics API.
// The API key is optional; without it requests are sent unauthenticated.
func NewPortfolioClient(baseURL, apiKey, currency string, timeout time.Duration, logger *zap.Logger) port.PortfolioAnalytics {
	return &portfolioClientImpl{
		client:   &fasthttp.Client{},
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		currency: currency,
		timeout:  timeout,
		logger:   logger.Named("PortfolioClient"),
	}
}

func (c *portfolioClientImpl) Overview(ctx context.Context, address string) (*entity.PortfolioOverview, error) {
	requestURL := fmt.Sprintf("%s/v1/wallets/%s/portfolio?currency=%s", c.baseURL, address, c.currency)

	body, status, err := doGet(ctx, c.client, requestURL, c.timeout, c.authHeaders())
	if err != nil {
		c.logger.Error("Failed to execute portfolio overview request", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute portfolio overview request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("portfolio overview request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.PortfolioOverviewResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio overview response: %w", err)
	}
	if parsed.Data == nil {
		return nil, fmt.Errorf("portfolio overview response from %s carried no data", c.baseURL)
	}

	attrs := parsed.Data.Attributes
	overview := &entity.PortfolioOverview{
		TotalValueUSD:      utils.ToFloat64OrZero(attrs.Total.Positions),
		DailyChangeUSD:     utils.ToFloat64OrZero(attrs.Changes.Absolute1D),
		DailyChangePercent: utils.ToFloat64OrZero(attrs.Changes.Percent1D),
		ByType:             coerceDistribution(attrs.DistributionByType),
		ByChain:            coerceDistribution(attrs.DistributionByChain),
	}

	c.logger.Debug("Fetched portfolio overview",
		zap.String("address", address),
		zap.Float64("totalValueUSD", overview.TotalValueUSD))

	return overview, nil
}

func (c *portfolioClientImpl) Positions(ctx context.Context, address string) ([]entity.TokenHolding, error) {
	requestURL := fmt.Sprintf("%s/v1/wallets/%s/positions/?currency=%s&filter[positions]=only_simple&sort=value",
		c.baseURL, address, c.currency)

	body, status, err := doGet(ctx, c.client, requestURL, c.timeout, c.authHeaders())
	if err != nil {
		c.logger.Error("Failed to execute positions request", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute positions request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("positions request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.PositionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal positions response: %w", err)
	}

	holdings := make([]entity.TokenHolding, 0, len(parsed.Data))
	seen := make(map[string]struct{}, len(parsed.Data))
	for _, position := range parsed.Data {
		attrs := position.Attributes

		quantity, ok := utils.ToFloat64(attrs.Quantity.Float)
		if !ok {
			quantity, _ = utils.ToFloat64(attrs.Quantity.Numeric)
		}
		if quantity <= 0 {
			continue
		}

		mint := solanaMint(attrs.FungibleInfo.Implementations)
		if mint == "" {
			c.logger.Warn("Skipping position without a mint address",
				zap.String("symbol", attrs.FungibleInfo.Symbol))
			continue
		}
		if _, dup := seen[mint]; dup {
			continue
		}
		seen[mint] = struct{}{}

		holding := entity.TokenHolding{
			Mint:     mint,
			Symbol:   attrs.FungibleInfo.Symbol,
			Name:     attrs.FungibleInfo.Name,
			Quantity: quantity,
			Verified: attrs.FungibleInfo.Flags.Verified,
		}
		if value, ok := utils.ToFloat64(attrs.Value); ok {
			holding.ValueUSD = utils.Float64Ptr(value)
		}
		if price, ok := utils.ToFloat64(attrs.Price); ok {
			holding.PriceUSD = utils.Float64Ptr(price)
		}
		if attrs.Changes != nil {
			if change, ok := utils.ToFloat64(attrs.Changes.Percent1D); ok {
				holding.Change1DPercent = utils.Float64Ptr(change)
			}
		}

		holdings = append(holdings, holding)
	}

	c.logger.Debug("Fetched positions",
		zap.String("address", address),
		zap.Int("count", len(holdings)))

	return holdings, nil
}

func (c *portfolioClientImpl) authHeaders() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(c.apiKey + ":"))
	return map[string]string{"Authorization": "Basic " + encoded}
}

// solanaMint picks the mint address from the implementation list, preferring
// the solana chain entry over whatever comes first.
func solanaMint(implementations []wire.PositionImplementation) string {
	for _, impl := range implementations {
		if impl.ChainID == "solana" && impl.Address != "" {
			return impl.Address
		}
	}
	for _, impl := range implementations {
		if impl.Address != "" {
			return impl.Address
		}
	}
	return ""
}

func coerceDistribution(raw map[string]interface{}) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for key, value := range raw {
		out[key] = utils.ToFloat64OrZero(value)
	}
	return out
}
