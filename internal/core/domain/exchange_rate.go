package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies.
// Reads always return the denormalized join: both currencies arrive as
// full snapshots, not just foreign keys. The snapshots are read-only
// projections; a later currency update does not refresh them.
type ExchangeRate struct {
	ID             int64           `json:"id"`
	Rate           decimal.Decimal `json:"rate"` // Precise decimal type, never float64
	BaseCurrency   Currency        `json:"base_currency"`
	TargetCurrency Currency        `json:"target_currency"`
}

// PairName returns the positional lookup name for this rate, the
// concatenation of base and target codes (e.g. "USD"+"EUR" = "USDEUR").
// Direction matters: "EURUSD" names a different rate.
func (r ExchangeRate) PairName() string {
	return r.BaseCurrency.Code + r.TargetCurrency.Code
}
