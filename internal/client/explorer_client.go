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

// explorerClientImpl queries a public block explorer for the native balance of
// an account. It is the last balance source in the chain and only yields the
// SOL amount, never token holdings.
type explorerClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewExplorerClient creates a balance source backed by the explorer REST API.
func NewExplorerClient(baseURL string, timeout time.Duration, logger *zap.Logger) port.BalanceSource {
	return &explorerClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("ExplorerClient"),
	}
}

func (c *explorerClientImpl) Name() string {
	return c.baseURL
}

func (c *explorerClientImpl) AccountBalances(ctx context.Context, address string) (*entity.AccountBalances, error) {
	requestURL := fmt.Sprintf("%s/account?address=%s", c.baseURL, address)

	body, status, err := doGet(ctx, c.client, requestURL, c.timeout, nil)
	if err != nil {
		c.logger.Error("Failed to execute explorer request", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute explorer request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("explorer request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.ExplorerAccountResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal explorer response: %w", err)
	}
	if parsed.Data == nil {
		return nil, fmt.Errorf("explorer response from %s carried no account data", c.baseURL)
	}

	lamports, ok := utils.ToFloat64(parsed.Data.Lamports)
	if !ok {
		return nil, fmt.Errorf("explorer response from %s carried no lamports value", c.baseURL)
	}

	c.logger.Debug("Fetched native balance from explorer",
		zap.String("address", address),
		zap.Float64("lamports", lamports))

	return &entity.AccountBalances{
		NativeBalance: lamports / entity.LamportsPerSOL,
		Holdings:      nil,
		Source:        c.baseURL,
	}, nil
}
