package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/infrastructure/knowledgebase"
	"solana_advisor/internal/pkg/utils"
)

type stubAdvisorySource struct {
	lines []string
	err   error
	query *entity.AdvisoryQuery
}

func (s *stubAdvisorySource) Name() string { return "stub_advisory" }

func (s *stubAdvisorySource) Advisories(ctx context.Context, query *entity.AdvisoryQuery) ([]string, error) {
	s.query = query
	if s.err != nil {
		return nil, s.err
	}
	return s.lines, nil
}

// testValidators lists the best APY second so tests cover the selection.
var testValidators = []entity.Validator{
	{Name: "Marinade Finance", VoteAccount: "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD", APY: 6.8, CommissionPercent: 2},
	{Name: "Solana Foundation", VoteAccount: "Vote1111111111111111111111111111111111111112", APY: 7.2, CommissionPercent: 0},
	{Name: "Jito Labs", VoteAccount: "Jito4APyf642JPZPx3hGc6WWJ8zPKtRbR4Xe2q7WnK", APY: 6.5, CommissionPercent: 3},
}

func newTestEngine(advisory []port.AdvisorySource) port.RecommendationEngine {
	return NewRecommendationEngine(knowledgebase.NewKnowledgeBase(), advisory, nopLogger{})
}

func TestGenerateBalanceFailureYieldsSingleErrorRecommendation(t *testing.T) {
	engine := newTestEngine(nil)

	recs := engine.Generate(context.Background(), nil, entity.FallbackMarketContext(), testValidators, entity.ErrAllSourcesExhausted)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Type != entity.RecommendationError || rec.Priority != entity.PriorityHigh {
		t.Fatalf("unexpected error recommendation: %+v", rec)
	}
	if rec.Action != "Retry analysis later" {
		t.Fatalf("unexpected action: %q", rec.Action)
	}
	if !strings.Contains(rec.Description, "all balance sources exhausted") {
		t.Fatalf("expected the cause in the description, got %q", rec.Description)
	}
}

func TestGenerateWithoutSnapshotYieldsErrorRecommendation(t *testing.T) {
	engine := newTestEngine(nil)

	recs := engine.Generate(context.Background(), nil, entity.FallbackMarketContext(), testValidators, nil)
	if len(recs) != 1 || recs[0].Type != entity.RecommendationError {
		t.Fatalf("expected a single error recommendation, got %+v", recs)
	}
	if recs[0].Description != "Could not fetch wallet balances from any source" {
		t.Fatalf("unexpected description: %q", recs[0].Description)
	}
}

func TestGenerateForModestWallet(t *testing.T) {
	engine := newTestEngine(nil)
	snapshot := &entity.WalletSnapshot{Address: exampleAddress, NativeBalance: 2.0}

	recs := engine.Generate(context.Background(), snapshot, entity.FallbackMarketContext(), testValidators, nil)

	// Staking first, then three knowledge advisories, then diversification.
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}

	staking := recs[0]
	if staking.Type != entity.RecommendationStaking || staking.Priority != entity.PriorityHigh {
		t.Fatalf("unexpected staking recommendation: %+v", staking)
	}
	if staking.Action != "Stake 1.4 SOL" {
		t.Fatalf("unexpected staking action: %q", staking.Action)
	}
	if staking.Description != "Stake with Solana Foundation for 7.20% APY" {
		t.Fatalf("expected the highest-APY validator, got %q", staking.Description)
	}
	if staking.EstimatedAnnualReturn != "$0.10" {
		t.Fatalf("unexpected estimated annual return: %q", staking.EstimatedAnnualReturn)
	}

	wantAdvice := []string{
		"Under $1000, stake 50-70% with Foundation",
		"70% SOL staking, 20% stablecoins, 10% DeFi",
		"DCA strategies, yield farming, balanced allocation",
	}
	for i, want := range wantAdvice {
		rec := recs[i+1]
		if rec.Type != entity.RecommendationKnowledgeAdvice || rec.Priority != entity.PriorityMedium {
			t.Fatalf("unexpected advisory %d: %+v", i, rec)
		}
		if rec.Description != want {
			t.Fatalf("expected advisory %q, got %q", want, rec.Description)
		}
	}

	diversification := recs[4]
	if diversification.Type != entity.RecommendationDiversification {
		t.Fatalf("expected diversification last, got %+v", diversification)
	}
	if !strings.Contains(diversification.Reasoning, "only 0 tokens") {
		t.Fatalf("unexpected reasoning: %q", diversification.Reasoning)
	}
}

func TestStakingRecommendationTiers(t *testing.T) {
	tests := []struct {
		name         string
		balance      float64
		wantAction   string
		wantPriority entity.RecommendationPriority
	}{
		{name: "dust balance skips staking", balance: 0.05},
		{name: "threshold balance skips staking", balance: 0.1},
		{name: "below one unit stakes half", balance: 0.5, wantAction: "Stake 0.25 SOL", wantPriority: entity.PriorityMedium},
		{name: "one unit stakes seventy percent", balance: 1.0, wantAction: "Stake 0.7 SOL", wantPriority: entity.PriorityHigh},
		{name: "five units stake sixty percent", balance: 5.0, wantAction: "Stake 3 SOL", wantPriority: entity.PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := stakingRecommendation(tt.balance, testValidators)
			if tt.wantAction == "" {
				if ok {
					t.Fatalf("expected no staking recommendation, got %+v", rec)
				}
				return
			}
			if !ok {
				t.Fatal("expected a staking recommendation")
			}
			if rec.Action != tt.wantAction {
				t.Fatalf("expected action %q, got %q", tt.wantAction, rec.Action)
			}
			if rec.Priority != tt.wantPriority {
				t.Fatalf("expected priority %q, got %q", tt.wantPriority, rec.Priority)
			}
		})
	}
}

func TestStakingRequiresValidators(t *testing.T) {
	if rec, ok := stakingRecommendation(2.0, nil); ok {
		t.Fatalf("expected no staking recommendation without validators, got %+v", rec)
	}
}

func TestGenerateMergesRemoteAdvisoriesUpToCap(t *testing.T) {
	remote := &stubAdvisorySource{lines: []string{
		"Use a hardware wallet for balances this size",
		"Review positions monthly",
		"Never bridge more than you can afford to lose",
	}}
	engine := newTestEngine([]port.AdvisorySource{remote})

	snapshot := &entity.WalletSnapshot{Address: exampleAddress, NativeBalance: 2.0}
	market := entity.MarketContext{NativePriceUSD: 150, PriceChange7DPercent: 3, Trend: entity.TrendBullish}

	recs := engine.Generate(context.Background(), snapshot, market, testValidators, nil)

	var advice []string
	for _, rec := range recs {
		if rec.Type == entity.RecommendationKnowledgeAdvice {
			advice = append(advice, rec.Description)
		}
	}
	if len(advice) != 5 {
		t.Fatalf("expected the advisory list capped at 5, got %d: %v", len(advice), advice)
	}
	if advice[2] != "Focus on growth tokens, reduce stablecoin allocation" {
		t.Fatalf("expected the bullish strategy third, got %q", advice[2])
	}
	if advice[3] != remote.lines[0] || advice[4] != remote.lines[1] {
		t.Fatalf("expected remote advice appended before the cap, got %v", advice)
	}

	if remote.query == nil {
		t.Fatal("expected the advisory source to be queried")
	}
	if remote.query.PortfolioValueUSD != 300 {
		t.Fatalf("expected estimated portfolio value 300, got %f", remote.query.PortfolioValueUSD)
	}
	if remote.query.RiskTolerance != entity.ToleranceConservative {
		t.Fatalf("expected conservative tolerance, got %q", remote.query.RiskTolerance)
	}
	if remote.query.MarketTrend != entity.TrendBullish {
		t.Fatalf("expected bullish trend in query, got %q", remote.query.MarketTrend)
	}
}

func TestGenerateSurvivesAdvisoryFailure(t *testing.T) {
	remote := &stubAdvisorySource{err: errors.New("advice api down")}
	engine := newTestEngine([]port.AdvisorySource{remote})

	snapshot := &entity.WalletSnapshot{NativeBalance: 2.0}
	recs := engine.Generate(context.Background(), snapshot, entity.FallbackMarketContext(), testValidators, nil)

	count := 0
	for _, rec := range recs {
		if rec.Type == entity.RecommendationKnowledgeAdvice {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected the three knowledge advisories, got %d", count)
	}
}

func TestGenerateDiversificationThreshold(t *testing.T) {
	engine := newTestEngine(nil)
	holdings := func(n int) []entity.TokenHolding {
		out := make([]entity.TokenHolding, n)
		for i := range out {
			out[i] = entity.TokenHolding{Mint: fmt.Sprintf("Mint%d", i), Symbol: fmt.Sprintf("T%d", i), Quantity: 1}
		}
		return out
	}

	sparse := &entity.WalletSnapshot{NativeBalance: 2.0, TokenHoldings: holdings(2)}
	recs := engine.Generate(context.Background(), sparse, entity.FallbackMarketContext(), testValidators, nil)
	last := recs[len(recs)-1]
	if last.Type != entity.RecommendationDiversification {
		t.Fatalf("expected diversification advice for 2 tokens, got %+v", last)
	}
	if !strings.Contains(last.Reasoning, "only 2 tokens") {
		t.Fatalf("unexpected reasoning: %q", last.Reasoning)
	}

	diversified := &entity.WalletSnapshot{NativeBalance: 2.0, TokenHoldings: holdings(3)}
	recs = engine.Generate(context.Background(), diversified, entity.FallbackMarketContext(), testValidators, nil)
	for _, rec := range recs {
		if rec.Type == entity.RecommendationDiversification {
			t.Fatal("expected no diversification advice for 3 tokens")
		}
	}
}

func TestGeneratePrefersAnalyticsValuation(t *testing.T) {
	engine := newTestEngine(nil)
	// The native balance alone would land in the conservative bucket; the
	// analytics valuation moves the wallet to the aggressive one.
	snapshot := &entity.WalletSnapshot{
		NativeBalance:     0.05,
		PortfolioValueUSD: utils.Float64Ptr(50000),
	}

	recs := engine.Generate(context.Background(), snapshot, entity.FallbackMarketContext(), testValidators, nil)

	if recs[0].Type != entity.RecommendationKnowledgeAdvice {
		t.Fatalf("expected no staking for a 0.05 balance, got %+v", recs[0])
	}
	if recs[0].Description != "Over $10000, use liquid staking and DeFi strategies" {
		t.Fatalf("unexpected size strategy: %q", recs[0].Description)
	}
	if recs[1].Description != "30% SOL staking, 50% DeFi tokens, 20% memecoins" {
		t.Fatalf("unexpected allocation strategy: %q", recs[1].Description)
	}
}
