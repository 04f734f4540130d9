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

// CurrencyService is the cache-aside layer around the currency store
// gateway. Reads check the cache first and populate it on a store hit;
// writes go to the store and then invalidate the affected keys. The
// store and the cache are not updated atomically: a crash between the
// two leaves a stale entry until its TTL expires.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	cache        portscache.Cache
	ttl          time.Duration
	logger       *slog.Logger
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, cache portscache.Cache, ttl time.Duration, logger *slog.Logger) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		cache:        cache,
		ttl:          ttl,
		logger:       logger,
	}
}

func currencyIDKey(id int64) string {
	return fmt.Sprintf("currency:id:%d", id)
}

func currencyCodeKey(code string) string {
	return fmt.Sprintf("currency:code:%s", code)
}

const currencyAllKey = "currency:all"

// GetCurrencyByID retrieves a currency by id, cache first.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	key := currencyIDKey(id)
	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, key, *currency)
	return currency, nil
}

// GetCurrencyByCode retrieves a currency by its code, cache first. On a
// store-sourced hit the id-keyed entry is populated as well so a
// subsequent id lookup is warm.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	key := currencyCodeKey(code)
	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, key, *currency)
	if currency.ID != 0 {
		s.setCached(ctx, currencyIDKey(currency.ID), *currency)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies, cache first. Only non-empty
// lists are cached.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if cached := s.getCachedList(ctx, currencyAllKey); cached != nil {
		return cached, nil
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}

	if len(currencies) > 0 {
		s.setCachedList(ctx, currencyAllKey, currencies)
	}
	return currencies, nil
}

// CreateCurrency persists a new currency and invalidates the cached
// list. Individual keys are untouched: a brand-new record cannot have a
// stale entry.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) error {
	currency := domain.Currency{
		Code:     req.Code,
		Fullname: req.Fullname,
		Sign:     req.Sign,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return fmt.Errorf("failed to create currency: %w", err)
	}

	s.invalidate(ctx, currencyAllKey)
	return nil
}

// UpdateCurrency overlays the mutable fields onto the stored record and
// persists the result, then invalidates the id key, both affected code
// keys and the list key.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, req dto.UpdateCurrencyRequest, id int64) error {
	current, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		return err
	}

	updated := *current
	updated.Code = req.Code
	updated.Fullname = req.Fullname
	updated.Sign = req.Sign

	if err := s.currencyRepo.UpdateCurrency(ctx, updated, id); err != nil {
		return fmt.Errorf("failed to update currency: %w", err)
	}

	keys := []string{currencyIDKey(id), currencyCodeKey(current.Code), currencyAllKey}
	if updated.Code != current.Code {
		keys = append(keys, currencyCodeKey(updated.Code))
	}
	s.invalidate(ctx, keys...)
	return nil
}

// DeleteCurrency removes a currency by id. The record is looked up first
// to learn its code key; the list key is invalidated even when the id
// did not exist.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, id int64) error {
	current, lookupErr := s.currencyRepo.FindCurrencyByID(ctx, id)
	if lookupErr != nil && !errors.Is(lookupErr, apperrors.ErrNotFound) {
		return lookupErr
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, id); err != nil {
		return fmt.Errorf("failed to delete currency: %w", err)
	}

	s.invalidate(ctx, currencyIDKey(id))
	if current != nil && current.Code != "" {
		s.invalidate(ctx, currencyCodeKey(current.Code))
	}
	s.invalidate(ctx, currencyAllKey)
	return nil
}

// --- cache helpers: every failure is logged and treated as a miss/no-op
// so the store remains the source of truth.

func (s *CurrencyService) getCached(ctx context.Context, key string) *domain.Currency {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, portscache.ErrCacheMiss) {
			s.logger.Warn("currency cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil
	}

	currency, err := decodeCurrency(data)
	if err != nil {
		s.logger.Warn("currency cache entry undecodable", slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	return &currency
}

func (s *CurrencyService) getCachedList(ctx context.Context, key string) []domain.Currency {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, portscache.ErrCacheMiss) {
			s.logger.Warn("currency cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil
	}

	currencies, err := decodeCurrencyList(data)
	if err != nil {
		s.logger.Warn("currency cache entry undecodable", slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	return currencies
}

func (s *CurrencyService) setCached(ctx context.Context, key string, currency domain.Currency) {
	data, err := encodeCurrency(currency)
	if err != nil {
		s.logger.Warn("currency cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("currency cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *CurrencyService) setCachedList(ctx context.Context, key string, currencies []domain.Currency) {
	data, err := encodeCurrencyList(currencies)
	if err != nil {
		s.logger.Warn("currency cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("currency cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *CurrencyService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("currency cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
