package services

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
)

// Cached payloads are flat mappings of the entity's declared fields.
// Optional fields are pointers so an absent value serializes as an
// explicit null rather than being omitted, and decimals serialize as
// strings to avoid precision loss.

type cachedCurrency struct {
	ID       *int64  `json:"id"`
	Code     *string `json:"code"`
	Fullname *string `json:"fullname"`
	Sign     *string `json:"sign"`
}

type cachedExchangeRate struct {
	ID             *int64          `json:"id"`
	Rate           *string         `json:"rate"`
	BaseCurrency   *cachedCurrency `json:"base_currency"`
	TargetCurrency *cachedCurrency `json:"target_currency"`
}

func toCachedCurrency(c domain.Currency) *cachedCurrency {
	payload := &cachedCurrency{
		Code:     &c.Code,
		Fullname: &c.Fullname,
		Sign:     &c.Sign,
	}
	if c.ID != 0 {
		payload.ID = &c.ID
	}
	return payload
}

func fromCachedCurrency(p *cachedCurrency) domain.Currency {
	var c domain.Currency
	if p == nil {
		return c
	}
	if p.ID != nil {
		c.ID = *p.ID
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Fullname != nil {
		c.Fullname = *p.Fullname
	}
	if p.Sign != nil {
		c.Sign = *p.Sign
	}
	return c
}

func encodeCurrency(c domain.Currency) ([]byte, error) {
	return json.Marshal(toCachedCurrency(c))
}

func decodeCurrency(data string) (domain.Currency, error) {
	var payload cachedCurrency
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return domain.Currency{}, err
	}
	return fromCachedCurrency(&payload), nil
}

func encodeCurrencyList(cs []domain.Currency) ([]byte, error) {
	payloads := make([]*cachedCurrency, len(cs))
	for i, c := range cs {
		payloads[i] = toCachedCurrency(c)
	}
	return json.Marshal(payloads)
}

func decodeCurrencyList(data string) ([]domain.Currency, error) {
	var payloads []*cachedCurrency
	if err := json.Unmarshal([]byte(data), &payloads); err != nil {
		return nil, err
	}
	cs := make([]domain.Currency, len(payloads))
	for i, p := range payloads {
		cs[i] = fromCachedCurrency(p)
	}
	return cs, nil
}

func toCachedExchangeRate(r domain.ExchangeRate) *cachedExchangeRate {
	rate := r.Rate.String()
	payload := &cachedExchangeRate{
		Rate:           &rate,
		BaseCurrency:   toCachedCurrency(r.BaseCurrency),
		TargetCurrency: toCachedCurrency(r.TargetCurrency),
	}
	if r.ID != 0 {
		payload.ID = &r.ID
	}
	return payload
}

func fromCachedExchangeRate(p *cachedExchangeRate) (domain.ExchangeRate, error) {
	var r domain.ExchangeRate
	if p == nil {
		return r, nil
	}
	if p.ID != nil {
		r.ID = *p.ID
	}
	if p.Rate != nil {
		rate, err := decimal.NewFromString(*p.Rate)
		if err != nil {
			return r, err
		}
		r.Rate = rate
	}
	r.BaseCurrency = fromCachedCurrency(p.BaseCurrency)
	r.TargetCurrency = fromCachedCurrency(p.TargetCurrency)
	return r, nil
}

func encodeExchangeRate(r domain.ExchangeRate) ([]byte, error) {
	return json.Marshal(toCachedExchangeRate(r))
}

func decodeExchangeRate(data string) (domain.ExchangeRate, error) {
	var payload cachedExchangeRate
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return domain.ExchangeRate{}, err
	}
	return fromCachedExchangeRate(&payload)
}

func encodeExchangeRateList(rs []domain.ExchangeRate) ([]byte, error) {
	payloads := make([]*cachedExchangeRate, len(rs))
	for i, r := range rs {
		payloads[i] = toCachedExchangeRate(r)
	}
	return json.Marshal(payloads)
}

func decodeExchangeRateList(data string) ([]domain.ExchangeRate, error) {
	var payloads []*cachedExchangeRate
	if err := json.Unmarshal([]byte(data), &payloads); err != nil {
		return nil, err
	}
	rs := make([]domain.ExchangeRate, len(payloads))
	for i, p := range payloads {
		r, err := fromCachedExchangeRate(p)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}
