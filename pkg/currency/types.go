package currency

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kouchan/hackaton-iti-zup/pkg/money"
)

// Rate is a named conversion descriptor as returned by the rate-lookup
// service, e.g. {"USD_TO_BRL", 500, 2} meaning 1 USD = 5.00 BRL.
type Rate struct {
	Name  string
	Value int64
	Scale int64
}

// Factor returns the real conversion factor (Value × 10^-Scale).
func (r Rate) Factor() float64 {
	return float64(r.Value) / math.Pow10(int(r.Scale))
}

// Source fetches the current set of named rates. Implementations must
// return an error wrapping ErrRateServiceUnavailable when the lookup
// fails; they never retry internally.
type Source interface {
	GetRates(ctx context.Context) ([]Rate, error)
}

// Pair is an ordered currency pair. Using a value type instead of a
// concatenated string key keeps lookups exhaustive over known currencies.
type Pair struct {
	From money.Code
	To   money.Code
}

// PairOf builds a Pair from raw currency codes, normalizing case.
func PairOf(from, to string) Pair {
	return Pair{
		From: money.Code(strings.ToUpper(from)),
		To:   money.Code(strings.ToUpper(to)),
	}
}

// String returns the wire-style "SRC-DST" key for the pair.
func (p Pair) String() string {
	return fmt.Sprintf("%s-%s", p.From, p.To)
}
