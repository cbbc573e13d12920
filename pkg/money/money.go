// Package money provides fixed-point monetary values.
//
// A value is an integer count of minor-like units paired with a decimal
// scale; the real value is Amount × 10^-Scale. Invariants:
//   - Scale is never negative.
//   - Amounts are integers, never floating point.
package money

import "math"

// FixedPoint is a fixed-point monetary amount. The real value is
// Amount × 10^-Scale in the given currency.
type FixedPoint struct {
	Amount       int64
	Scale        int64
	CurrencyCode Code
}

// New creates a FixedPoint value.
// Invariants enforced:
//   - Scale must not be negative.
//   - Currency code must be valid ISO 4217 shape.
//
// Returns an error if any invariant is violated.
func New(amount, scale int64, currency Code) (FixedPoint, error) {
	if scale < 0 {
		return FixedPoint{}, ErrNegativeScale
	}
	if !currency.IsValid() {
		return FixedPoint{}, ErrInvalidCurrency
	}
	return FixedPoint{Amount: amount, Scale: scale, CurrencyCode: currency}, nil
}

// Float returns the real value as a float64 (Amount × 10^-Scale).
// Only for rate arithmetic and display; never feed the result back
// into stored amounts without rounding.
func (f FixedPoint) Float() float64 {
	return float64(f.Amount) / math.Pow10(int(f.Scale))
}

// String formats the value with its scale-determined decimal places.
func (f FixedPoint) String() string {
	return f.CurrencyCode.String() + " " + formatScaled(f.Amount, f.Scale)
}
