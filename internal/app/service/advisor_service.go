package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/pkg/metrics"
	"solana_advisor/internal/pkg/utils"
)

// AdvisorServiceImpl implements port.AdvisorService: validate, fetch,
// reconcile, recommend. Everything it builds is request-scoped.
type AdvisorServiceImpl struct {
	balances   port.BalanceFetcher
	analytics  port.PortfolioAnalytics
	market     port.MarketDataProvider
	validators port.ValidatorRegistry
	registry   port.TokenRegistry
	engine     port.RecommendationEngine
	logger     port.Logger
}

// NewAdvisorService wires the full analysis pipeline.
func NewAdvisorService(
	bf port.BalanceFetcher,
	pa port.PortfolioAnalytics,
	md port.MarketDataProvider,
	vr port.ValidatorRegistry,
	tr port.TokenRegistry,
	re port.RecommendationEngine,
	l port.Logger,
) port.AdvisorService {
	return &AdvisorServiceImpl{
		balances:   bf,
		analytics:  pa,
		market:     md,
		validators: vr,
		registry:   tr,
		engine:     re,
		logger:     l,
	}
}

// AnalyzeWallet runs the pipeline for one address. The balance fetch comes
// first because its failure is fatal; the remaining providers are queried
// concurrently and each degrades on its own.
func (s *AdvisorServiceImpl) AnalyzeWallet(ctx context.Context, address string) (*entity.WalletAnalysis, error) {
	if !entity.IsValidAddress(address) {
		metrics.AnalysesTotal.WithLabelValues("invalid_address").Inc()
		return nil, entity.NewValidationError(address)
	}

	started := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	}()

	s.logger.Info("Analyzing wallet", "address", utils.TruncateAddress(address))

	balances, balanceErr := s.balances.FetchBalances(ctx, address)
	if balanceErr != nil {
		metrics.AnalysesTotal.WithLabelValues("exhausted").Inc()
		fallback := entity.FallbackMarketContext()
		analysis := &entity.WalletAnalysis{
			Address:         address,
			Market:          fallback,
			Recommendations: s.engine.Generate(ctx, nil, fallback, nil, balanceErr),
			GeneratedAt:     time.Now().UTC(),
		}
		return analysis, balanceErr
	}

	var (
		overview      *entity.PortfolioOverview
		positions     []entity.TokenHolding
		marketContext entity.MarketContext
		validators    []entity.Validator
	)

	// Each fetch degrades internally (logged, default result), so the
	// group never carries an error and no fetch can cancel its siblings.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		result, err := s.analytics.Overview(egCtx, address)
		if err != nil {
			s.logger.Warn("Portfolio overview unavailable, valuation will be estimated", "address", address, "error", err)
			return nil
		}
		overview = result
		return nil
	})
	eg.Go(func() error {
		result, err := s.analytics.Positions(egCtx, address)
		if err != nil {
			s.logger.Warn("Positions unavailable, holdings limited to chain data", "address", address, "error", err)
			return nil
		}
		positions = result
		return nil
	})
	eg.Go(func() error {
		marketContext = s.market.MarketContext(egCtx)
		return nil
	})
	eg.Go(func() error {
		validators = s.validators.TopValidators(egCtx)
		return nil
	})
	_ = eg.Wait()

	snapshot := s.reconcile(address, balances, overview, positions)
	recommendations := s.engine.Generate(ctx, snapshot, marketContext, validators, nil)

	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	s.logger.Info("Wallet analysis complete", "address", utils.TruncateAddress(address),
		"holdings", snapshot.DistinctTokenCount(), "recommendations", len(recommendations),
		"data_source", snapshot.DataSource)

	return &entity.WalletAnalysis{
		Address:         address,
		Snapshot:        snapshot,
		Market:          marketContext,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// reconcile merges analytics positions with the holdings the balance source
// saw. Analytics entries keep their provider order and win on mint
// collisions because they carry valuation; chain-only mints are appended
// after. The result stays unique by mint.
func (s *AdvisorServiceImpl) reconcile(address string, balances *entity.AccountBalances, overview *entity.PortfolioOverview, positions []entity.TokenHolding) *entity.WalletSnapshot {
	holdings := make([]entity.TokenHolding, 0, len(positions)+len(balances.Holdings))
	seen := make(map[string]struct{}, len(positions))

	for _, holding := range positions {
		if holding.Quantity <= 0 {
			continue
		}
		if _, dup := seen[holding.Mint]; dup {
			continue
		}
		seen[holding.Mint] = struct{}{}
		s.fillIdentity(&holding)
		holdings = append(holdings, holding)
	}
	for _, holding := range balances.Holdings {
		if holding.Quantity <= 0 {
			continue
		}
		if _, dup := seen[holding.Mint]; dup {
			continue
		}
		seen[holding.Mint] = struct{}{}
		s.fillIdentity(&holding)
		holdings = append(holdings, holding)
	}

	snapshot := &entity.WalletSnapshot{
		Address:       address,
		NativeBalance: balances.NativeBalance,
		TokenHoldings: holdings,
		DataSource:    balances.Source,
	}
	if overview != nil {
		snapshot.PortfolioValueUSD = utils.Float64Ptr(overview.TotalValueUSD)
		snapshot.DailyChangeUSD = utils.Float64Ptr(overview.DailyChangeUSD)
		snapshot.DailyChangePercent = utils.Float64Ptr(overview.DailyChangePercent)
		snapshot.DistributionByType = overview.ByType
		snapshot.DistributionByChain = overview.ByChain
	}
	return snapshot
}

func (s *AdvisorServiceImpl) fillIdentity(holding *entity.TokenHolding) {
	if holding.Symbol != "" && holding.Name != "" {
		return
	}
	symbol, name := s.registry.Resolve(holding.Mint)
	if holding.Symbol == "" {
		holding.Symbol = symbol
	}
	if holding.Name == "" {
		holding.Name = name
	}
}
