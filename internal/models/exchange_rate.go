package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors the denormalized three-way join of the
// exchangerates table with both of its currency rows. Writes only touch
// the rate row itself (id, currency ids, rate); the snapshots exist on
// the read path only.
type ExchangeRate struct {
	ID             int64           `json:"id"`
	Rate           decimal.Decimal `json:"rate"`
	BaseCurrency   Currency        `json:"base_currency"`
	TargetCurrency Currency        `json:"target_currency"`
}
