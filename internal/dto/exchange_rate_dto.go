package dto

import (
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRef identifies an already-persisted currency inside an
// exchange-rate request. Only the id is required; the remaining fields
// are accepted but ignored on the write path.
type CurrencyRef struct {
	ID       int64  `json:"id" binding:"required"`
	Code     string `json:"code"`
	Fullname string `json:"fullname"`
	Sign     string `json:"sign"`
}

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	Rate           decimal.Decimal `json:"rate" binding:"required"`
	BaseCurrency   CurrencyRef     `json:"base_currency" binding:"required"`
	TargetCurrency CurrencyRef     `json:"target_currency" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing
// exchange rate details with both currency snapshots embedded.
type ExchangeRateResponse struct {
	ID             int64            `json:"id"`
	Rate           decimal.Decimal  `json:"rate"`
	BaseCurrency   CurrencyResponse `json:"base_currency"`
	TargetCurrency CurrencyResponse `json:"target_currency"`
}

// ConversionResponse extends the rate payload with the requested amount
// and the rounded converted amount.
type ConversionResponse struct {
	ExchangeRateResponse
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ID,
		Rate:           rate.Rate,
		BaseCurrency:   ToCurrencyResponse(&rate.BaseCurrency),
		TargetCurrency: ToCurrencyResponse(&rate.TargetCurrency),
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ExchangeRateResponse: ToExchangeRateResponse(&conv.ExchangeRate),
		Amount:               conv.Amount,
		ConvertedAmount:      conv.ConvertedAmount,
	}
}
