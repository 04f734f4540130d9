package services

import (
	"context"

	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	"github.com/shaxowskiy1/currency-exchange-api/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by its id.
	GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) error

	// UpdateCurrency overlays the mutable fields of the currency with
	// the given id and persists the result.
	UpdateCurrency(ctx context.Context, req dto.UpdateCurrencyRequest, id int64) error

	// DeleteCurrency removes a currency by id.
	DeleteCurrency(ctx context.Context, id int64) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRateByID retrieves an exchange rate by its id.
	GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error)

	// GetExchangeRateByName retrieves an exchange rate by the
	// concatenated currency pair name (e.g. "USDEUR").
	GetExchangeRateByName(ctx context.Context, name string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all exchange rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) error

	// UpdateExchangeRate overlays the rate with the given id.
	UpdateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, id int64) error

	// DeleteExchangeRate removes an exchange rate by id.
	DeleteExchangeRate(ctx context.Context, id int64) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
