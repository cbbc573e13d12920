// Package worker runs the checkout-to-invoice pipeline: it polls the
// checkout queue and, per message, fetches fresh rates, computes the
// settlement total, posts the invoice, publishes the order event, writes
// the ledger record, and only then acknowledges the message.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kouchan/hackaton-iti-zup/pkg/checkout"
	"github.com/kouchan/hackaton-iti-zup/pkg/currency"
)

// Deps are the worker's collaborators. All of them are external systems;
// the worker itself holds no state across messages.
type Deps struct {
	Queue    Queue
	Rates    currency.Source
	Invoices InvoicePoster
	Orders   OrderPublisher
	Ledger   LedgerWriter
}

// Worker is the checkout pipeline orchestrator. One worker processes one
// message at a time; horizontal scaling is more instances, never
// intra-instance parallelism.
type Worker struct {
	deps   Deps
	logger *slog.Logger
	now    func() time.Time
}

// New creates a worker with the given collaborators.
func New(deps Deps, logger *slog.Logger) *Worker {
	return &Worker{
		deps:   deps,
		logger: logger.With("component", "checkout-worker"),
		now:    time.Now,
	}
}

// Run polls the queue until ctx is canceled. Cancellation is observed at
// the top of each iteration only: an in-flight pipeline finishes its
// message first. A failed message is logged and left unacknowledged for
// redelivery; the loop itself never stops on message failures, and queue
// receive errors are retried on the next iteration.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("checkout worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("checkout worker stopping")
			return nil
		default:
		}

		msg, err := w.deps.Queue.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("checkout worker stopping")
				return nil
			}
			w.logger.Error("queue receive failed", "error", err)
			continue
		}
		if msg == nil {
			continue
		}

		// The attempt id correlates the log lines of this run; the same
		// queue message gets a new one on every redelivery.
		log := w.logger.With("message_id", msg.ID, "attempt_id", uuid.NewString())

		if err := w.process(ctx, log, msg); err != nil {
			log.Error("pipeline failed, message left for redelivery", "error", err)
			continue
		}

		if err := w.deps.Queue.Delete(ctx, msg.ReceiptHandle); err != nil {
			// The work is done but the lease survives; the message will be
			// redelivered and the whole pipeline re-executed.
			log.Error("acknowledge failed", "error", err)
		}
	}
}

// process runs the full pipeline for one message. Any step error aborts
// the run immediately; there is no partial continuation and no rollback
// of steps that already succeeded.
func (w *Worker) process(ctx context.Context, log *slog.Logger, msg *Message) error {
	started := w.now()

	m, err := checkout.ParseMessage(msg.Body)
	if err != nil {
		return err
	}
	log = log.With("cart_id", m.Cart.ID, "settlement_currency", m.Invoice.CurrencyCode)
	log.Info("processing checkout message", "items", len(m.Cart.Items))

	rates, err := w.deps.Rates.GetRates(ctx)
	if err != nil {
		return fmt.Errorf("fetch rates: %w", err)
	}

	table, err := currency.Build(rates)
	if err != nil {
		return fmt.Errorf("build conversion table: %w", err)
	}

	total, err := checkout.ComputeTotal(m.Cart.Items, table, m.SettlementCurrency())
	if err != nil {
		return fmt.Errorf("compute total: %w", err)
	}
	log.Info("settlement total computed", "total", total.Fixed().String())

	inv := checkout.BuildInvoice(m, total)

	if err := w.deps.Invoices.PostInvoice(ctx, inv, m.Invoice.XTeamControl); err != nil {
		return fmt.Errorf("post invoice: %w", err)
	}

	if err := w.deps.Orders.PublishOrder(ctx, checkout.NewOrderEvent(m, inv)); err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}

	rec := checkout.NewTransactionRecord(m, inv, w.now())
	if err := w.deps.Ledger.WriteTransaction(ctx, rec); err != nil {
		return fmt.Errorf("write ledger record: %w", err)
	}

	log.Info("checkout message processed", "duration", w.now().Sub(started))
	return nil
}
