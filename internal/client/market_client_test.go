package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solana_advisor/internal/domain/entity"

	"go.uber.org/zap"
)

func marketTestServer(t *testing.T, spotBody, chartBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/simple/price", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "solana" {
			t.Errorf("expected ids solana, got %q", got)
		}
		_, _ = w.Write([]byte(spotBody))
	})
	mux.HandleFunc("/coins/solana/market_chart", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("days"); got != "7" {
			t.Errorf("expected days 7, got %q", got)
		}
		_, _ = w.Write([]byte(chartBody))
	})
	return httptest.NewServer(mux)
}

func TestMarketContextTrends(t *testing.T) {
	tests := []struct {
		name       string
		chartBody  string
		wantChange float64
		wantTrend  entity.MarketTrend
	}{
		{
			name:       "rising series is bullish",
			chartBody:  `{"prices":[[1700000000000,100],[1700086400000,101.5],[1700172800000,103]]}`,
			wantChange: 3,
			wantTrend:  entity.TrendBullish,
		},
		{
			name:       "falling series is bearish",
			chartBody:  `{"prices":[[1700000000000,100],[1700172800000,97]]}`,
			wantChange: -3,
			wantTrend:  entity.TrendBearish,
		},
		{
			name:       "flat series is bearish",
			chartBody:  `{"prices":[[1700000000000,100],[1700172800000,100]]}`,
			wantChange: 0,
			wantTrend:  entity.TrendBearish,
		},
		{
			name:       "short series yields zero change",
			chartBody:  `{"prices":[[1700000000000,100]]}`,
			wantChange: 0,
			wantTrend:  entity.TrendBearish,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := marketTestServer(t, `{"solana":{"usd":150.25}}`, tt.chartBody)
			defer srv.Close()

			provider := NewMarketClient(srv.URL, "solana", "usd", 7, 2*time.Second, zap.NewNop())
			market := provider.MarketContext(context.Background())

			if market.NativePriceUSD != 150.25 {
				t.Fatalf("expected price 150.25, got %f", market.NativePriceUSD)
			}
			if market.PriceChange7DPercent != tt.wantChange {
				t.Fatalf("expected change %f, got %f", tt.wantChange, market.PriceChange7DPercent)
			}
			if market.Trend != tt.wantTrend {
				t.Fatalf("expected trend %q, got %q", tt.wantTrend, market.Trend)
			}
		})
	}
}

func TestMarketContextFallsBackWhenSpotPriceFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	provider := NewMarketClient(srv.URL, "solana", "usd", 7, 2*time.Second, zap.NewNop())
	market := provider.MarketContext(context.Background())

	fallback := entity.FallbackMarketContext()
	if market != fallback {
		t.Fatalf("expected fallback market context %+v, got %+v", fallback, market)
	}
	if market.Trend != entity.TrendNeutral {
		t.Fatalf("expected neutral trend on fallback, got %q", market.Trend)
	}
}

func TestMarketContextFallsBackWhenSeriesFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/simple/price", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"solana":{"usd":150.25}}`))
	})
	mux.HandleFunc("/coins/solana/market_chart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	provider := NewMarketClient(srv.URL, "solana", "usd", 7, 2*time.Second, zap.NewNop())
	market := provider.MarketContext(context.Background())

	if market != entity.FallbackMarketContext() {
		t.Fatalf("expected fallback market context, got %+v", market)
	}
}

func TestMarketContextFallsBackOnMissingQuote(t *testing.T) {
	srv := marketTestServer(t, `{"solana":{"eur":140}}`, `{"prices":[]}`)
	defer srv.Close()

	provider := NewMarketClient(srv.URL, "solana", "usd", 7, 2*time.Second, zap.NewNop())
	market := provider.MarketContext(context.Background())

	if market != entity.FallbackMarketContext() {
		t.Fatalf("expected fallback market context, got %+v", market)
	}
}
