package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solana_advisor/internal/domain/entity"
	wire "solana_advisor/internal/entity"

	"go.uber.org/zap"
)

func TestAdvisoriesPostsPortfolioSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/advice", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer adv_key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("failed to read request body: %v", err)
		}
		var req wire.AdviceRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("failed to decode advice request: %v", err)
		}
		if req.PortfolioValueUSD != 2500 || req.NativeBalance != 12.5 || req.TokenCount != 4 {
			t.Errorf("unexpected portfolio summary: %+v", req)
		}
		if req.MarketTrend != "bullish" || req.RiskTolerance != "balanced" {
			t.Errorf("unexpected context fields: %+v", req)
		}
		_, _ = w.Write([]byte(`{"advice":["Rebalance toward staking","  ","Keep a stablecoin buffer",""]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	source := NewAdvisoryClient(srv.URL, "adv_key", 2*time.Second, zap.NewNop())
	if source.Name() != "remote_advisory" {
		t.Fatalf("unexpected source name: %q", source.Name())
	}

	advisories, err := source.Advisories(context.Background(), &entity.AdvisoryQuery{
		PortfolioValueUSD: 2500,
		NativeBalance:     12.5,
		TokenCount:        4,
		MarketTrend:       entity.TrendBullish,
		RiskTolerance:     entity.ToleranceBalanced,
	})
	if err != nil {
		t.Fatalf("Advisories failed: %v", err)
	}

	// Blank lines are filtered out.
	if len(advisories) != 2 {
		t.Fatalf("expected 2 advisories, got %d: %v", len(advisories), advisories)
	}
	if advisories[0] != "Rebalance toward staking" || advisories[1] != "Keep a stablecoin buffer" {
		t.Fatalf("unexpected advisories: %v", advisories)
	}
}

func TestAdvisoriesFailsOnHTTPError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/advice", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	source := NewAdvisoryClient(srv.URL, "", 2*time.Second, zap.NewNop())
	_, err := source.Advisories(context.Background(), &entity.AdvisoryQuery{})
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
