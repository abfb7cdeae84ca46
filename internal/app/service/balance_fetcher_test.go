package service

import (
	"context"
	"errors"
	"testing"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
)

type stubSource struct {
	name     string
	balances *entity.AccountBalances
	err      error
	calls    int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) AccountBalances(ctx context.Context, address string) (*entity.AccountBalances, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.balances, nil
}

func TestFetchBalancesStopsAtFirstSuccess(t *testing.T) {
	first := &stubSource{name: "rpc-1", err: errors.New("timeout")}
	second := &stubSource{name: "rpc-2", balances: &entity.AccountBalances{NativeBalance: 2.5, Source: "rpc-2"}}
	third := &stubSource{name: "explorer", balances: &entity.AccountBalances{NativeBalance: 9, Source: "explorer"}}

	fetcher := NewBalanceFetcher([]port.BalanceSource{first, second, third}, nopLogger{})

	balances, err := fetcher.FetchBalances(context.Background(), "addr")
	if err != nil {
		t.Fatalf("FetchBalances failed: %v", err)
	}
	if balances.Source != "rpc-2" {
		t.Fatalf("expected rpc-2 result, got %q", balances.Source)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("expected one call each to the first two sources, got %d and %d", first.calls, second.calls)
	}
	if third.calls != 0 {
		t.Fatalf("expected later sources untouched after a success, got %d calls", third.calls)
	}
}

func TestFetchBalancesExhaustsAllSources(t *testing.T) {
	first := &stubSource{name: "rpc-1", err: errors.New("timeout")}
	second := &stubSource{name: "rpc-2", err: errors.New("rate limited")}

	fetcher := NewBalanceFetcher([]port.BalanceSource{first, second}, nopLogger{})

	balances, err := fetcher.FetchBalances(context.Background(), "addr")
	if !errors.Is(err, entity.ErrAllSourcesExhausted) {
		t.Fatalf("expected ErrAllSourcesExhausted, got %v", err)
	}
	if balances != nil {
		t.Fatalf("expected nil balances, got %+v", balances)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("expected every source tried once, got %d and %d", first.calls, second.calls)
	}
}

func TestFetchBalancesWithNoSources(t *testing.T) {
	fetcher := NewBalanceFetcher(nil, nopLogger{})
	if _, err := fetcher.FetchBalances(context.Background(), "addr"); !errors.Is(err, entity.ErrAllSourcesExhausted) {
		t.Fatalf("expected ErrAllSourcesExhausted, got %v", err)
	}
}
