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
)

// advisoryClientImpl asks a remote advisory service for extra portfolio
// guidance. Its output is folded into the knowledge advisories, so a failure
// here only shrinks the advice list.
type advisoryClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewAdvisoryClient creates a client for the remote advisory API.
func NewAdvisoryClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) port.AdvisorySource {
	return &advisoryClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		logger:  logger.Named("AdvisoryClient"),
	}
}

func (c *advisoryClientImpl) Name() string {
	return "remote_advisory"
}

func (c *advisoryClientImpl) Advisories(ctx context.Context, query *entity.AdvisoryQuery) ([]string, error) {
	payload, err := json.Marshal(wire.AdviceRequest{
		PortfolioValueUSD: query.PortfolioValueUSD,
		NativeBalance:     query.NativeBalance,
		TokenCount:        query.TokenCount,
		MarketTrend:       string(query.MarketTrend),
		RiskTolerance:     string(query.RiskTolerance),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal advice request: %w", err)
	}

	requestURL := fmt.Sprintf("%s/v1/advice", c.baseURL)
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	body, status, err := doPost(ctx, c.client, requestURL, payload, c.timeout, headers)
	if err != nil {
		c.logger.Error("Failed to execute advice request", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute advice request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("advice request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.AdviceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal advice response: %w", err)
	}

	advisories := make([]string, 0, len(parsed.Advice))
	for _, line := range parsed.Advice {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		advisories = append(advisories, line)
	}

	c.logger.Debug("Fetched remote advisories", zap.Int("count", len(advisories)))
	return advisories, nil
}
