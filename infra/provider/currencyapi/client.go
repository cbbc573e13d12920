// Package currencyapi is the HTTP client for the rate-lookup service.
package currencyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/currency"
)

// Client fetches the current set of named currency rates. Rates are
// fetched fresh on every call; the client keeps no cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// rateRecord is the service's wire representation of one named rate,
// e.g. {"currencyCode": "USD_TO_BRL", "currencyValue": 500, "scale": 2}.
type rateRecord struct {
	CurrencyCode  string `json:"currencyCode"`
	CurrencyValue int64  `json:"currencyValue"`
	Scale         int64  `json:"scale"`
}

// New creates a rate-lookup client from config.
func New(cfg config.CurrencyAPI, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger.With("component", "currency-api"),
	}
}

// GetRates queries the currencies endpoint. Any transport failure,
// non-2xx status, or undecodable body surfaces as
// currency.ErrRateServiceUnavailable; the caller decides whether to retry
// by redelivery.
func (c *Client) GetRates(ctx context.Context) ([]currency.Rate, error) {
	url := fmt.Sprintf("%s/currencies", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", currency.ErrRateServiceUnavailable, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", currency.ErrRateServiceUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", currency.ErrRateServiceUnavailable, resp.StatusCode, string(body))
	}

	var records []rateRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", currency.ErrRateServiceUnavailable, err)
	}

	rates := make([]currency.Rate, 0, len(records))
	for _, r := range records {
		rates = append(rates, currency.Rate{
			Name:  r.CurrencyCode,
			Value: r.CurrencyValue,
			Scale: r.Scale,
		})
	}

	c.logger.Debug("rates fetched", "count", len(rates), "duration", time.Since(start))
	return rates, nil
}

// Ensure Client implements currency.Source
var _ currency.Source = (*Client)(nil)
