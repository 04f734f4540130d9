package mapping

import (
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	"github.com/shaxowskiy1/currency-exchange-api/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ID:             d.ID,
		Rate:           d.Rate,
		BaseCurrency:   ToModelCurrency(d.BaseCurrency),
		TargetCurrency: ToModelCurrency(d.TargetCurrency),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:             m.ID,
		Rate:           m.Rate,
		BaseCurrency:   ToDomainCurrency(m.BaseCurrency),
		TargetCurrency: ToDomainCurrency(m.TargetCurrency),
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
