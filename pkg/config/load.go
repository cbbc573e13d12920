// Package config loads the worker configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. A .env file, if present,
// is loaded first; a missing file is not an error.
func Load() (*App, error) {
	logger := slog.Default()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("worker config loaded",
		"env", cfg.Env,
		"queue_url", cfg.Queue.URL,
		"queue_wait", cfg.Queue.WaitTime,
		"queue_visibility_timeout", cfg.Queue.VisibilityTimeout,
		"currency_api_url", cfg.CurrencyAPI.URL,
		"invoice_api_url", cfg.InvoiceAPI.URL,
		"invoice_api_key", maskValue(cfg.InvoiceAPI.APIKey),
		"kafka_brokers", cfg.Kafka.Brokers,
		"orders_topic", cfg.Kafka.OrdersTopic,
		"transaction_table", cfg.Ledger.Table,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
