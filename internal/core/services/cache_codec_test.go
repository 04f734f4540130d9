package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
)

func TestEncodeExchangeRate_RateIsStringAndZeroIDIsNull(t *testing.T) {
	rate := domain.ExchangeRate{
		Rate:           decimal.RequireFromString("0.92"),
		BaseCurrency:   domain.Currency{ID: 1, Code: "USD", Fullname: "US Dollar", Sign: "$"},
		TargetCurrency: domain.Currency{ID: 2, Code: "EUR", Fullname: "Euro", Sign: "€"},
	}

	data, err := encodeExchangeRate(rate)
	require.NoError(t, err)

	// An unassigned id serializes as an explicit null, never as 0 and
	// never omitted. The rate is a quoted string.
	assert.Contains(t, string(data), `"id":null`)
	assert.Contains(t, string(data), `"rate":"0.92"`)
	assert.Contains(t, string(data), `"base_currency":{"id":1`)
}

func TestDecodeExchangeRate_RoundTripPreservesScale(t *testing.T) {
	original := domain.ExchangeRate{
		ID:             5,
		Rate:           decimal.RequireFromString("1.23456"),
		BaseCurrency:   domain.Currency{ID: 1, Code: "USD", Fullname: "US Dollar", Sign: "$"},
		TargetCurrency: domain.Currency{ID: 2, Code: "EUR", Fullname: "Euro", Sign: "€"},
	}

	data, err := encodeExchangeRate(original)
	require.NoError(t, err)

	decoded, err := decodeExchangeRate(string(data))
	require.NoError(t, err)
	assert.Equal(t, original.ID, decoded.ID)
	assert.True(t, decoded.Rate.Equal(original.Rate))
	assert.Equal(t, original.BaseCurrency, decoded.BaseCurrency)
	assert.Equal(t, original.TargetCurrency, decoded.TargetCurrency)
}

func TestDecodeCurrency_NullFieldsBecomeZeroValues(t *testing.T) {
	decoded, err := decodeCurrency(`{"id":null,"code":"USD","fullname":null,"sign":null}`)
	require.NoError(t, err)
	assert.Equal(t, domain.Currency{Code: "USD"}, decoded)
}

func TestDecodeExchangeRate_BadRateString(t *testing.T) {
	_, err := decodeExchangeRate(`{"id":5,"rate":"not-a-number","base_currency":null,"target_currency":null}`)
	assert.Error(t, err)
}
