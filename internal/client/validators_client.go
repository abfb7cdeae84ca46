package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	wire "solana_advisor/internal/entity"
	"solana_advisor/internal/pkg/utils"
)

const validatorsCacheKey = "top_validators"

// defaultValidators is the built-in staking directory used when the remote
// directory is disabled or unreachable. The engine picks by highest APY.
var defaultValidators = []entity.Validator{
	{
		Name:              "Solana Foundation",
		VoteAccount:       "Vote1111111111111111111111111111111111111112",
		APY:               7.2,
		CommissionPercent: 0,
	},
	{
		Name:              "Marinade Finance",
		VoteAccount:       "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD",
		APY:               6.8,
		CommissionPercent: 2,
	},
	{
		Name:              "Jito Labs",
		VoteAccount:       "Jito4APyf642JPZPx3hGc6WWJ8zPKtRbR4Xe2q7WnK",
		APY:               6.5,
		CommissionPercent: 3,
	},
}

// validatorRegistryImpl serves the staking validator directory. Remote
// lookups are cached because the directory changes far slower than wallet
// analyses happen, and every failure path lands on the built-in list.
type validatorRegistryImpl struct {
	client       *fasthttp.Client
	baseURL      string
	fetchEnabled bool
	timeout      time.Duration
	cache        *cache.Cache
	logger       *zap.Logger
}

// NewValidatorRegistry creates the validator directory. With fetchEnabled
// false it serves the built-in list without touching the network.
func NewValidatorRegistry(baseURL string, fetchEnabled bool, timeout, cacheTTL, cacheCleanup time.Duration, logger *zap.Logger) port.ValidatorRegistry {
	return &validatorRegistryImpl{
		client:       &fasthttp.Client{},
		baseURL:      strings.TrimRight(baseURL, "/"),
		fetchEnabled: fetchEnabled,
		timeout:      timeout,
		cache:        cache.New(cacheTTL, cacheCleanup),
		logger:       logger.Named("ValidatorRegistry"),
	}
}

func (r *validatorRegistryImpl) TopValidators(ctx context.Context) []entity.Validator {
	if !r.fetchEnabled {
		return defaultValidators
	}

	if cached, found := r.cache.Get(validatorsCacheKey); found {
		if validators, ok := cached.([]entity.Validator); ok {
			return validators
		}
	}

	validators, err := r.fetch(ctx)
	if err != nil {
		r.logger.Warn("Validator directory unavailable, using built-in list", zap.Error(err))
		return defaultValidators
	}
	if len(validators) == 0 {
		r.logger.Warn("Validator directory returned no usable entries, using built-in list")
		return defaultValidators
	}

	r.cache.Set(validatorsCacheKey, validators, cache.DefaultExpiration)
	return validators
}

func (r *validatorRegistryImpl) fetch(ctx context.Context) ([]entity.Validator, error) {
	requestURL := fmt.Sprintf("%s/v1/validators", r.baseURL)

	body, status, err := doGet(ctx, r.client, requestURL, r.timeout, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to execute validators request: %w", err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("validators request to %s failed with status code: %d", requestURL, status)
	}

	var parsed wire.ValidatorsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal validators response: %w", err)
	}

	validators := make([]entity.Validator, 0, len(parsed.Validators))
	for _, entry := range parsed.Validators {
		if entry.Name == "" {
			continue
		}
		apy, ok := utils.ToFloat64(entry.APY)
		if !ok || apy <= 0 {
			continue
		}
		validators = append(validators, entity.Validator{
			Name:              entry.Name,
			VoteAccount:       entry.VoteAccount,
			APY:               apy,
			CommissionPercent: utils.ToFloat64OrZero(entry.Commission),
		})
	}

	r.logger.Debug("Fetched validator directory", zap.Int("count", len(validators)))
	return validators, nil
}
