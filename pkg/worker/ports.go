package worker

import (
	"context"

	"github.com/kouchan/hackaton-iti-zup/pkg/checkout"
)

// Message is a leased queue message. The receipt handle acknowledges
// (deletes) exactly this lease; after the lease expires an unacknowledged
// message is redelivered under a new handle.
type Message struct {
	ID            string
	Body          []byte
	ReceiptHandle string
}

// Queue is the checkout queue the worker polls. Receive blocks up to the
// configured long-poll wait and returns nil when no message arrived.
type Queue interface {
	Receive(ctx context.Context) (*Message, error)
	Delete(ctx context.Context, receiptHandle string) error
}

// InvoicePoster submits an assembled invoice to the invoicing service.
// One outbound call, no internal retry, no deduplication: a redelivered
// message re-posts the same invoice.
type InvoicePoster interface {
	PostInvoice(ctx context.Context, inv checkout.Invoice, controlToken string) error
}

// OrderPublisher publishes the order event derived from a posted invoice.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, event checkout.OrderEvent) error
}

// LedgerWriter persists the transaction record of a completed invoice.
type LedgerWriter interface {
	WriteTransaction(ctx context.Context, rec checkout.TransactionRecord) error
}
