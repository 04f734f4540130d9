package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every store gateway onto the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: NewPgxExchangeRateRepository(dbPool),
	}
}
