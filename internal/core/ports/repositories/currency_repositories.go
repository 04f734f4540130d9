package repositories

import (
	"context"

	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its store-assigned id.
	// Returns apperrors.ErrNotFound when no row matches.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. The store assigns the id.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency overwrites the mutable fields of the currency with
	// the given id.
	UpdateCurrency(ctx context.Context, currency domain.Currency, id int64) error

	// DeleteCurrency removes the currency with the given id.
	DeleteCurrency(ctx context.Context, id int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
