package client

import (
	"time"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/config"

	"go.uber.org/zap"
)

// NewRPCSources builds one balance source per configured RPC endpoint,
// preserving the configured order. The order is the retry order: the
// fetcher walks the list until one endpoint answers completely.
func NewRPCSources(cfg *config.Config, logger *zap.Logger) []port.BalanceSource {
	timeout := time.Duration(cfg.Solana.RequestTimeoutSeconds) * time.Second
	sources := make([]port.BalanceSource, 0, len(cfg.Solana.RPCEndpoints))
	for _, endpoint := range cfg.Solana.RPCEndpoints {
		sources = append(sources, NewRPCClient(endpoint, cfg.Solana.TokenProgramID, timeout, logger))
	}
	return sources
}
