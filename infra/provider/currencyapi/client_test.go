package currencyapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return New(config.CurrencyAPI{URL: url, HTTPTimeout: 2 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/currencies", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"currencyCode": "USD_TO_BRL", "currencyValue": 500, "scale": 2},
			{"currencyCode": "USD_TO_EUR", "currencyValue": 90, "scale": 2}
		]`))
	}))
	defer server.Close()

	rates, err := testClient(server.URL).GetRates(context.Background())
	require.NoError(t, err)

	require.Len(t, rates, 2)
	assert.Equal(t, currency.Rate{Name: "USD_TO_BRL", Value: 500, Scale: 2}, rates[0])
	assert.Equal(t, currency.Rate{Name: "USD_TO_EUR", Value: 90, Scale: 2}, rates[1])
}

func TestGetRates_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	rates, err := testClient(server.URL).GetRates(context.Background())
	require.Error(t, err)
	assert.Nil(t, rates)
	assert.ErrorIs(t, err, currency.ErrRateServiceUnavailable)
}

func TestGetRates_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetRates(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, currency.ErrRateServiceUnavailable)
}

func TestGetRates_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before the call

	_, err := testClient(server.URL).GetRates(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, currency.ErrRateServiceUnavailable)
}
