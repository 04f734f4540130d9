package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaxowskiy1/currency-exchange-api/internal/apperrors"
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	portscache "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/cache"
	portsrepo "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/repositories"
	"github.com/shaxowskiy1/currency-exchange-api/internal/dto"
)

// ExchangeRateService is the cache-aside layer around the exchange-rate
// store gateway. Cached records carry the denormalized currency
// snapshots as they were at population time; a later currency update
// does not refresh them until the TTL lapses or a write invalidates the
// entry.
type ExchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	cache    portscache.Cache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, cache portscache.Cache, ttl time.Duration, logger *slog.Logger) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo: rateRepo,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func exchangeRateIDKey(id int64) string {
	return fmt.Sprintf("exchange_rate:id:%d", id)
}

func exchangeRateNameKey(name string) string {
	return fmt.Sprintf("exchange_rate:name:%s", name)
}

const exchangeRateAllKey = "exchange_rate:all"

// GetExchangeRateByID retrieves an exchange rate by id, cache first.
func (s *ExchangeRateService) GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	key := exchangeRateIDKey(id)
	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	rate, err := s.rateRepo.FindExchangeRateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, key, *rate)
	return rate, nil
}

// GetExchangeRateByName retrieves an exchange rate by the concatenated
// pair name, cache first. A store-sourced hit also populates the
// id-keyed entry.
func (s *ExchangeRateService) GetExchangeRateByName(ctx context.Context, name string) (*domain.ExchangeRate, error) {
	key := exchangeRateNameKey(name)
	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	rate, err := s.rateRepo.FindExchangeRateByName(ctx, name)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, key, *rate)
	if rate.ID != 0 {
		s.setCached(ctx, exchangeRateIDKey(rate.ID), *rate)
	}
	return rate, nil
}

// ListExchangeRates retrieves all exchange rates, cache first. Only
// non-empty lists are cached.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	if cached := s.getCachedList(ctx, exchangeRateAllKey); cached != nil {
		return cached, nil
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, err
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}

	if len(rates) > 0 {
		s.setCachedList(ctx, exchangeRateAllKey, rates)
	}
	return rates, nil
}

// CreateExchangeRate persists a new rate and invalidates the cached list.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) error {
	rate := domain.ExchangeRate{
		Rate:           req.Rate,
		BaseCurrency:   domain.Currency{ID: req.BaseCurrency.ID},
		TargetCurrency: domain.Currency{ID: req.TargetCurrency.ID},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return fmt.Errorf("failed to create exchange rate: %w", err)
	}

	s.invalidate(ctx, exchangeRateAllKey)
	return nil
}

// UpdateExchangeRate overlays the rate row with the given id and
// invalidates the id key, the pair-name key as it was before the write,
// and the list key.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, id int64) error {
	current, err := s.rateRepo.FindExchangeRateByID(ctx, id)
	if err != nil {
		return err
	}

	updated := *current
	updated.Rate = req.Rate
	updated.BaseCurrency = domain.Currency{ID: req.BaseCurrency.ID}
	updated.TargetCurrency = domain.Currency{ID: req.TargetCurrency.ID}

	if err := s.rateRepo.UpdateExchangeRate(ctx, updated, id); err != nil {
		return fmt.Errorf("failed to update exchange rate: %w", err)
	}

	s.invalidate(ctx, exchangeRateIDKey(id), exchangeRateNameKey(current.PairName()), exchangeRateAllKey)
	return nil
}

// DeleteExchangeRate removes a rate by id. The record is looked up first
// to learn its pair-name key; the list key is invalidated even when the
// id did not exist.
func (s *ExchangeRateService) DeleteExchangeRate(ctx context.Context, id int64) error {
	current, lookupErr := s.rateRepo.FindExchangeRateByID(ctx, id)
	if lookupErr != nil && !errors.Is(lookupErr, apperrors.ErrNotFound) {
		return lookupErr
	}

	if err := s.rateRepo.DeleteExchangeRate(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exchange rate: %w", err)
	}

	s.invalidate(ctx, exchangeRateIDKey(id))
	if current != nil && current.BaseCurrency.Code != "" && current.TargetCurrency.Code != "" {
		s.invalidate(ctx, exchangeRateNameKey(current.PairName()))
	}
	s.invalidate(ctx, exchangeRateAllKey)
	return nil
}

// --- cache helpers, same swallow-and-log contract as the currency side.

func (s *ExchangeRateService) getCached(ctx context.Context, key string) *domain.ExchangeRate {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, portscache.ErrCacheMiss) {
			s.logger.Warn("exchange rate cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil
	}

	rate, err := decodeExchangeRate(data)
	if err != nil {
		s.logger.Warn("exchange rate cache entry undecodable", slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	return &rate
}

func (s *ExchangeRateService) getCachedList(ctx context.Context, key string) []domain.ExchangeRate {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, portscache.ErrCacheMiss) {
			s.logger.Warn("exchange rate cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil
	}

	rates, err := decodeExchangeRateList(data)
	if err != nil {
		s.logger.Warn("exchange rate cache entry undecodable", slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	return rates
}

func (s *ExchangeRateService) setCached(ctx context.Context, key string, rate domain.ExchangeRate) {
	data, err := encodeExchangeRate(rate)
	if err != nil {
		s.logger.Warn("exchange rate cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("exchange rate cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *ExchangeRateService) setCachedList(ctx context.Context, key string, rates []domain.ExchangeRate) {
	data, err := encodeExchangeRateList(rates)
	if err != nil {
		s.logger.Warn("exchange rate cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("exchange rate cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *ExchangeRateService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("exchange rate cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
