package port

import (
	"context"

	"solana_advisor/internal/domain/entity"
)

// BalanceSource is one strategy for reading an address's balances: an RPC
// endpoint or the explorer fallback. Sources are tried in a fixed order and
// every implementation must either return a complete result or an error;
// partial results are not a success.
type BalanceSource interface {
	// Name identifies the source in logs, metrics and the snapshot's
	// dataSource field.
	Name() string

	// AccountBalances fetches the native balance and, when the source
	// exposes them, the token holdings of the address.
	AccountBalances(ctx context.Context, address string) (*entity.AccountBalances, error)
}

// BalanceFetcher runs the ordered source list for one address.
type BalanceFetcher interface {
	// FetchBalances returns the first source's complete result, or
	// entity.ErrAllSourcesExhausted once every source has failed.
	FetchBalances(ctx context.Context, address string) (*entity.AccountBalances, error)
}
