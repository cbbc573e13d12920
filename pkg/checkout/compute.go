package checkout

import (
	"fmt"
	"math"
	"strings"

	"github.com/kouchan/hackaton-iti-zup/pkg/currency"
	"github.com/kouchan/hackaton-iti-zup/pkg/money"
)

// settlementScale is the fixed decimal scale of every invoice total.
const settlementScale = 2

// ComputeTotal sums the cart lines into a single settlement-currency total.
// Each line's fixed-point price is converted at its own scale, multiplied
// by the table's source→target factor, rounded to the nearest integer
// number of target minor units, and accumulated as an integer. Rounding
// happens per line, not once on the sum.
//
// Deterministic and side-effect-free. A line whose currency has no entry
// in the table fails with currency.ErrUnknownCurrencyPair; a line that is
// not a valid fixed-point value (negative scale, malformed currency code)
// fails with the money package's sentinel. Lines are never silently
// skipped.
func ComputeTotal(items []CartItem, table currency.Table, target money.Code) (InvoiceTotal, error) {
	total := InvoiceTotal{
		Amount:       0,
		Scale:        settlementScale,
		CurrencyCode: target.String(),
	}

	for _, item := range items {
		line, err := money.New(item.Price, item.Scale, money.Code(strings.ToUpper(item.CurrencyCode)))
		if err != nil {
			return InvoiceTotal{}, fmt.Errorf("cart line %s: %w", item.Product.ID, err)
		}
		factor, err := table.Factor(currency.PairOf(item.CurrencyCode, target.String()))
		if err != nil {
			return InvoiceTotal{}, err
		}
		total.Amount += int64(math.Round(line.Float() * factor * math.Pow10(settlementScale)))
	}

	return total, nil
}

// SettlementCurrency returns the normalized target currency of the
// message's invoice directive.
func (m *CheckoutMessage) SettlementCurrency() money.Code {
	return money.Code(strings.ToUpper(m.Invoice.CurrencyCode))
}
