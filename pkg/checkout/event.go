package checkout

import "time"

// OrderEvent is the payload published to the order stream after the
// invoice has been posted. Derived strictly from the invoice and the
// originating message; one event per posted invoice.
type OrderEvent struct {
	Headers OrderEventHeaders `json:"headers"`
	Payload OrderEventPayload `json:"payload"`
}

// OrderEventHeaders carries the correlation token of the checkout attempt.
type OrderEventHeaders struct {
	XTeamControl string `json:"x-team-control"`
}

// OrderEventPayload carries the cart identity and its settlement total.
type OrderEventPayload struct {
	CartID string          `json:"cartId"`
	Price  OrderEventPrice `json:"price"`
}

// OrderEventPrice is the settlement total as published on the stream.
type OrderEventPrice struct {
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
	Scale        int64  `json:"scale"`
}

// NewOrderEvent derives the stream payload for a posted invoice.
func NewOrderEvent(msg *CheckoutMessage, inv Invoice) OrderEvent {
	return OrderEvent{
		Headers: OrderEventHeaders{
			XTeamControl: msg.Invoice.XTeamControl,
		},
		Payload: OrderEventPayload{
			CartID: msg.Cart.ID,
			Price: OrderEventPrice{
				Amount:       inv.Total.Amount,
				CurrencyCode: inv.Total.CurrencyCode,
				Scale:        inv.Total.Scale,
			},
		},
	}
}

// TransactionRecord is the durable ledger entry written once per
// successful pipeline run, keyed by cart id. Write-once in normal
// operation; a redelivery may rewrite the same key with an identical
// payload, which the store tolerates.
type TransactionRecord struct {
	CartID       string
	Amount       int64
	Scale        int64
	CurrencyCode string
	XTeamControl string
	Timestamp    time.Time
}

// NewTransactionRecord derives the ledger entry for a posted invoice.
func NewTransactionRecord(msg *CheckoutMessage, inv Invoice, now time.Time) TransactionRecord {
	return TransactionRecord{
		CartID:       inv.ID,
		Amount:       inv.Total.Amount,
		Scale:        inv.Total.Scale,
		CurrencyCode: inv.Total.CurrencyCode,
		XTeamControl: msg.Invoice.XTeamControl,
		Timestamp:    now,
	}
}
