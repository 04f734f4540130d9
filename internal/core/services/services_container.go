package services

import (
	"log/slog"
	"time"

	portscache "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/cache"
	portsrepo "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/repositories"
	portssvc "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Both services share the one cache handle constructed at startup.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cache portscache.Cache, cacheTTL time.Duration, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(repos.CurrencyRepo, cache, cacheTTL, logger),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, cache, cacheTTL, logger),
	}
}

// Compile-time interface checks
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
)
