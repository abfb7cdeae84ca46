package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	wire "solana_advisor/internal/entity"
	"solana_advisor/internal/pkg/utils"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rpcClient is the balance source for a single Solana JSON-RPC endpoint.
// One fetch issues two dependent calls: getBalance, then
// getTokenAccountsByOwner filtered by the token program. The endpoint only
// counts as succeeded when both calls parse cleanly without an error member.
type rpcClient struct {
	client         *fasthttp.Client
	endpoint       string
	tokenProgramID string
	timeout        time.Duration
	logger         *zap.Logger
}

// NewRPCClient creates a balance source for one RPC endpoint.
func NewRPCClient(endpoint, tokenProgramID string, timeout time.Duration, logger *zap.Logger) port.BalanceSource {
	return &rpcClient{
		client:         &fasthttp.Client{},
		endpoint:       strings.TrimRight(endpoint, "/"),
		tokenProgramID: tokenProgramID,
		timeout:        timeout,
		logger:         logger.Named("SolanaRPCClient"),
	}
}

// Name implements port.BalanceSource.
func (c *rpcClient) Name() string {
	return c.endpoint
}

// AccountBalances implements port.BalanceSource.
func (c *rpcClient) AccountBalances(ctx context.Context, address string) (*entity.AccountBalances, error) {
	lamports, err := c.getBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	holdings, err := c.getTokenHoldings(ctx, address)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetched account balances",
		zap.String("endpoint", c.endpoint),
		zap.String("address", address),
		zap.Uint64("lamports", lamports),
		zap.Int("holdings", len(holdings)))

	return &entity.AccountBalances{
		NativeBalance: entity.LamportsToSOL(lamports),
		Holdings:      holdings,
		Source:        c.endpoint,
	}, nil
}

func (c *rpcClient) getBalance(ctx context.Context, address string) (uint64, error) {
	var parsed wire.BalanceResponse
	if err := c.call(ctx, "getBalance", []interface{}{address}, &parsed); err != nil {
		return 0, err
	}
	if parsed.Error != nil {
		return 0, fmt.Errorf("getBalance on %s returned error %d: %s", c.endpoint, parsed.Error.Code, parsed.Error.Message)
	}
	if parsed.Result == nil {
		return 0, fmt.Errorf("getBalance on %s returned no result", c.endpoint)
	}
	return parsed.Result.Value, nil
}

func (c *rpcClient) getTokenHoldings(ctx context.Context, address string) ([]entity.TokenHolding, error) {
	params := []interface{}{
		address,
		map[string]interface{}{"programId": c.tokenProgramID},
		map[string]interface{}{"encoding": "jsonParsed"},
	}

	var parsed wire.TokenAccountsResponse
	if err := c.call(ctx, "getTokenAccountsByOwner", params, &parsed); err != nil {
		return nil, err
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("getTokenAccountsByOwner on %s returned error %d: %s", c.endpoint, parsed.Error.Code, parsed.Error.Message)
	}
	if parsed.Result == nil {
		return nil, fmt.Errorf("getTokenAccountsByOwner on %s returned no result", c.endpoint)
	}

	holdings := make([]entity.TokenHolding, 0, len(parsed.Result.Value))
	seen := make(map[string]int, len(parsed.Result.Value))
	for _, account := range parsed.Result.Value {
		info := account.Account.Data.Parsed.Info
		if info.Mint == "" {
			c.logger.Warn("Token account without a mint, skipping",
				zap.String("endpoint", c.endpoint),
				zap.String("pubkey", account.Pubkey))
			continue
		}

		quantity, ok := utils.ToFloat64(info.TokenAmount.UIAmount)
		if !ok {
			// uiAmount comes back null from some endpoints; the string form
			// is usually still populated.
			quantity, _ = utils.ToFloat64(info.TokenAmount.UIAmountString)
		}
		if quantity <= 0 {
			continue
		}

		// The same mint may be spread across several token accounts; the
		// snapshot invariant is one holding per mint.
		if idx, dup := seen[info.Mint]; dup {
			holdings[idx].Quantity += quantity
			continue
		}
		seen[info.Mint] = len(holdings)
		holdings = append(holdings, entity.TokenHolding{
			Mint:     info.Mint,
			Quantity: quantity,
		})
	}
	return holdings, nil
}

// call posts one JSON-RPC request and unmarshals the response envelope.
func (c *rpcClient) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	payload := wire.RPCRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return fmt.Errorf("failed to execute %s against %s: %w", method, c.endpoint, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return fmt.Errorf("failed to execute %s against %s with default timeout: %w", method, c.endpoint, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("%s against %s failed with status %d: %s", method, c.endpoint, resp.StatusCode(), string(resp.Body()))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s response from %s: %w", method, c.endpoint, err)
	}
	return nil
}
