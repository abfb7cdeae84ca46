package service

import (
	"context"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/pkg/metrics"
)

// BalanceFetcherImpl implements port.BalanceFetcher. Sources are tried in
// the configured order and iteration stops at the first one where the full
// fetch succeeds; endpoints after a success are never called.
type BalanceFetcherImpl struct {
	sources []port.BalanceSource
	logger  port.Logger
}

// NewBalanceFetcher creates a balance fetcher over an ordered source list.
func NewBalanceFetcher(sources []port.BalanceSource, l port.Logger) port.BalanceFetcher {
	return &BalanceFetcherImpl{
		sources: sources,
		logger:  l,
	}
}

// FetchBalances walks the source chain. Every failed attempt is logged and
// counted but never aborts the loop; only full exhaustion is an error.
func (f *BalanceFetcherImpl) FetchBalances(ctx context.Context, address string) (*entity.AccountBalances, error) {
	var lastErr error
	for _, source := range f.sources {
		metrics.SourceAttempts.WithLabelValues(source.Name()).Inc()

		balances, err := source.AccountBalances(ctx, address)
		if err != nil {
			metrics.SourceFailures.WithLabelValues(source.Name()).Inc()
			lastErr = entity.NewSourceError(source.Name(), err)
			f.logger.Warn("Balance source failed, trying next", "source", source.Name(), "address", address, "error", err)
			continue
		}

		f.logger.Debug("Balance source succeeded", "source", source.Name(), "address", address,
			"native_balance", balances.NativeBalance, "holdings", len(balances.Holdings))
		return balances, nil
	}

	f.logger.Error("All balance sources exhausted", "address", address, "sources", len(f.sources), "last_error", lastErr)
	return nil, entity.ErrAllSourcesExhausted
}
