// Package checkout holds the domain of the checkout-to-invoice pipeline:
// the queue message, the conversion of its cart total into the settlement
// currency, and the invoice, order event, and ledger record derived from it.
package checkout

import (
	"encoding/json"
	"fmt"
)

// CheckoutMessage is the unit of work read from the checkout queue.
// Immutable once deserialized; owned by exactly one in-flight attempt.
type CheckoutMessage struct {
	Cart    Cart             `json:"cart"`
	Invoice InvoiceDirective `json:"invoice"`
}

// InvoiceDirective tells the pipeline how to settle the cart: the target
// settlement currency and the opaque correlation token tagged onto the
// invoice, the order event, and the ledger record downstream.
type InvoiceDirective struct {
	CurrencyCode string `json:"currencyCode"`
	XTeamControl string `json:"x-team-control"`
}

// Cart is the cart snapshot carried by the checkout message.
type Cart struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	Status     string     `json:"status"`
	Items      []CartItem `json:"items"`
}

// CartItem is one cart line with a fixed-point price: the real value is
// Price × 10^-Scale in CurrencyCode.
type CartItem struct {
	Price        int64   `json:"price"`
	Scale        int64   `json:"scale"`
	CurrencyCode string  `json:"currencyCode"`
	Product      Product `json:"product"`
}

// Product identifies the product behind a cart line.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// ParseMessage decodes a queue message body into a CheckoutMessage.
// A body that does not decode is fatal for the message: the caller logs
// it and leaves it for redelivery, there is no fix-up retry.
func ParseMessage(body []byte) (*CheckoutMessage, error) {
	var msg CheckoutMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}
	return &msg, nil
}
