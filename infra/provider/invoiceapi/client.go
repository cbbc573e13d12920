// Package invoiceapi is the HTTP client for the external invoicing
// service.
package invoiceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/kouchan/hackaton-iti-zup/pkg/checkout"
	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/worker"
)

// controlHeader carries the correlation token of the checkout attempt
// out-of-band with the invoice payload.
const controlHeader = "X-Team-Control"

// Client posts assembled invoices. It performs no retries and no
// deduplication: redelivery of a checkout message after a downstream
// failure re-posts the same invoice, which the platform tolerates.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates an invoicing client from config.
func New(cfg config.InvoiceAPI, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger.With("component", "invoice-api"),
	}
}

// PostInvoice submits the invoice with the correlation token as the
// X-Team-Control header. Any transport failure or non-2xx response
// surfaces as checkout.ErrInvoiceSubmissionFailed; nothing of the
// response body is consumed beyond error reporting.
func (c *Client) PostInvoice(ctx context.Context, inv checkout.Invoice, controlToken string) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("%w: marshal invoice: %v", checkout.ErrInvoiceSubmissionFailed, err)
	}

	url := fmt.Sprintf("%s/invoices", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", checkout.ErrInvoiceSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(controlHeader, controlToken)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", checkout.ErrInvoiceSubmissionFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", checkout.ErrInvoiceSubmissionFailed, resp.StatusCode, string(body))
	}

	c.logger.Info("invoice posted", "invoice_id", inv.ID, "status", resp.StatusCode)
	return nil
}

// Ensure Client implements worker.InvoicePoster
var _ worker.InvoicePoster = (*Client)(nil)
