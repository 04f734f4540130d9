package dto

import (
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code     string `json:"code" binding:"required,uppercase,len=3"`
	Fullname string `json:"fullname" binding:"required"`
	Sign     string `json:"sign" binding:"required"`
}

// UpdateCurrencyRequest defines the data accepted when updating a currency.
// All three display fields are overlaid onto the stored record.
type UpdateCurrencyRequest struct {
	Code     string `json:"code" binding:"required,uppercase,len=3"`
	Fullname string `json:"fullname" binding:"required"`
	Sign     string `json:"sign" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Fullname string `json:"fullname"`
	Sign     string `json:"sign"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:       curr.ID,
		Code:     curr.Code,
		Fullname: curr.Fullname,
		Sign:     curr.Sign,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
