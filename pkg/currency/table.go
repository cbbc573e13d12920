// Package currency builds pairwise conversion tables from the named rates
// the rate-lookup service quotes against the USD pivot.
package currency

import (
	"fmt"
	"strings"

	"github.com/kouchan/hackaton-iti-zup/pkg/money"
)

// Pivot is the intermediate currency used to derive factors between two
// currencies that are not directly quoted.
const Pivot = money.USD

// maxRateScale bounds the decimal scale a quote may carry. Beyond it the
// factor underflows toward zero and the derived inverse entries blow up.
const maxRateScale = 18

// Supported lists every currency a cart line or invoice directive may
// carry. A complete table holds an entry for each ordered pair of these.
var Supported = []money.Code{money.USD, money.BRL, money.EUR}

// Table maps ordered currency pairs to conversion factors. Built once per
// checkout message from freshly fetched rates; never shared or cached
// across messages.
type Table map[Pair]float64

// Build derives a complete pairwise table from the fetched rates.
// The service must quote at least USD→X for every supported non-USD
// currency X; a missing quote fails with ErrUnknownCurrencyPair rather
// than defaulting. Self pairs are exactly 1, inverse pairs are the
// mathematical inverse, and all cross rates go through the USD pivot.
func Build(rates []Rate) (Table, error) {
	fromPivot := make(map[money.Code]float64, len(Supported))
	fromPivot[Pivot] = 1.0

	for _, code := range Supported {
		if code == Pivot {
			continue
		}
		rate, ok := findRate(rates, fmt.Sprintf("%s_TO_%s", Pivot, code))
		if !ok {
			return nil, fmt.Errorf("%w: no %s quote for %s", ErrUnknownCurrencyPair, Pivot, code)
		}
		if rate.Value <= 0 || rate.Scale < 0 || rate.Scale > maxRateScale {
			return nil, fmt.Errorf("%w: %s = %d at scale %d", ErrInvalidRate, rate.Name, rate.Value, rate.Scale)
		}
		fromPivot[code] = rate.Factor()
	}

	table := make(Table, len(Supported)*len(Supported))
	for _, from := range Supported {
		for _, to := range Supported {
			// from→pivot→to; collapses to 1 on self pairs.
			table[Pair{From: from, To: to}] = fromPivot[to] / fromPivot[from]
		}
	}
	return table, nil
}

// Factor returns the conversion factor for the given pair, failing with
// ErrUnknownCurrencyPair when the pair has no entry.
func (t Table) Factor(p Pair) (float64, error) {
	factor, ok := t[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrencyPair, p)
	}
	return factor, nil
}

// findRate locates a named rate, matching case-insensitively the way the
// service quotes names ("USD_TO_BRL").
func findRate(rates []Rate, name string) (Rate, bool) {
	for _, r := range rates {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Rate{}, false
}
