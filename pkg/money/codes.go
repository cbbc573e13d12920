package money

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Currencies the checkout pipeline settles in or accepts on cart lines.
const (
	USD Code = "USD" // US Dollar
	BRL Code = "BRL" // Brazilian Real
	EUR Code = "EUR" // Euro
)

// IsValid checks if the currency code is valid ISO 4217 shape
// (3 uppercase letters).
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}
