package repositories

import (
	"context"

	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
// Every read returns the denormalized join with both currency snapshots
// populated.
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves an exchange rate by its id.
	FindExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error)

	// FindExchangeRateByName retrieves an exchange rate by the
	// concatenation of base and target currency codes ("USDEUR").
	// The lookup is positional: "EURUSD" names a different rate.
	FindExchangeRateByName(ctx context.Context, name string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all exchange rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate. Only the two
	// currency ids and the rate value are stored; the ids are not
	// re-validated against the currencies table.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateExchangeRate overwrites the rate row with the given id.
	UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate, id int64) error

	// DeleteExchangeRate removes the exchange rate with the given id.
	DeleteExchangeRate(ctx context.Context, id int64) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
