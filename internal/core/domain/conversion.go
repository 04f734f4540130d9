package domain

import (
	"github.com/shopspring/decimal"
)

// Conversion is the transient result of converting an amount through an
// exchange rate. It is never persisted.
type Conversion struct {
	ExchangeRate
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

// Convert computes amount * rate rounded to 2 decimal places using
// half-away-from-zero rounding (decimal.Round's behavior). Monetary
// figures must be value-exact, so the arithmetic stays in decimals.
func (r ExchangeRate) Convert(amount decimal.Decimal) Conversion {
	return Conversion{
		ExchangeRate:    r,
		Amount:          amount,
		ConvertedAmount: amount.Mul(r.Rate).Round(2),
	}
}
