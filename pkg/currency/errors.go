package currency

import "errors"

var (
	// ErrRateServiceUnavailable indicates the rate-lookup service is
	// unreachable, timed out, or returned an unusable response.
	ErrRateServiceUnavailable = errors.New("rate service unavailable")

	// ErrUnknownCurrencyPair indicates a conversion was requested for a pair
	// that has no entry in the table. Conversion must fail closed on it,
	// never fall back to a default factor.
	ErrUnknownCurrencyPair = errors.New("unknown currency pair")

	// ErrInvalidRate indicates a fetched rate has a non-positive value or
	// negative scale.
	ErrInvalidRate = errors.New("invalid exchange rate received")
)
