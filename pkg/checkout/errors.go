package checkout

import "errors"

// Step-level errors of the checkout pipeline. Every one of them aborts the
// current message's run; the orchestrator leaves the message unacknowledged
// so the queue redelivers it after the lease expires.
var (
	// ErrDeserializationFailed is returned when a queue message body cannot
	// be decoded into a CheckoutMessage.
	ErrDeserializationFailed = errors.New("checkout message deserialization failed")

	// ErrInvoiceSubmissionFailed is returned when the invoicing service
	// rejects the invoice or cannot be reached.
	ErrInvoiceSubmissionFailed = errors.New("invoice submission failed")

	// ErrEventPublishFailed is returned when the order event cannot be
	// confirmed published to the stream.
	ErrEventPublishFailed = errors.New("order event publish failed")

	// ErrLedgerWriteFailed is returned when the transaction record cannot
	// be persisted.
	ErrLedgerWriteFailed = errors.New("transaction ledger write failed")
)
