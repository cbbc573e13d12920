package money

import "errors"

// Common money package errors
var (
	// ErrNegativeScale is returned when a fixed-point value is created with a
	// negative scale.
	ErrNegativeScale = errors.New("scale cannot be negative")

	// ErrInvalidCurrency is returned when a currency code is not a valid
	// ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")
)
