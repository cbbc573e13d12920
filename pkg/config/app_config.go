package config

import "time"

// Queue configures the checkout queue. The visibility timeout is the
// message lease and must exceed the worst-case latency of the whole
// pipeline (rate lookup + invoice POST + event publish + ledger write);
// a shorter lease lets two instances process the same message at once.
type Queue struct {
	URL               string        `envconfig:"QUEUE_URL" required:"true"`
	WaitTime          time.Duration `envconfig:"WAIT_TIME" default:"15s"`
	VisibilityTimeout time.Duration `envconfig:"VISIBILITY_TIMEOUT" default:"121s"`
}

// CurrencyAPI configures the rate-lookup service client.
type CurrencyAPI struct {
	URL         string        `envconfig:"URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// InvoiceAPI configures the invoicing service client.
type InvoiceAPI struct {
	URL         string        `envconfig:"URL" required:"true"`
	APIKey      string        `envconfig:"API_KEY"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Kafka configures the order event stream.
type Kafka struct {
	Brokers     string `envconfig:"BOOTSTRAP_SERVERS" default:"localhost:9092"`
	OrdersTopic string `envconfig:"ORDERS_TOPIC" default:"orders_topic"`
}

// Ledger configures the transaction register table.
type Ledger struct {
	Table string `envconfig:"TRANSACTION_TABLE" default:"transaction-register"`
}

// App is the worker's full configuration tree, loaded from the
// environment.
type App struct {
	Env         string      `envconfig:"APP_ENV" default:"development"`
	Queue       Queue       `envconfig:"SQS"`
	CurrencyAPI CurrencyAPI `envconfig:"CURRENCY_API"`
	InvoiceAPI  InvoiceAPI  `envconfig:"INVOICE_API"`
	Kafka       Kafka       `envconfig:"KAFKA"`
	Ledger      Ledger      `envconfig:"DYNAMO"`
}
