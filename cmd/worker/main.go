package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	log "github.com/charmbracelet/log"
	"github.com/kouchan/hackaton-iti-zup/infra/ledger"
	"github.com/kouchan/hackaton-iti-zup/infra/provider/currencyapi"
	"github.com/kouchan/hackaton-iti-zup/infra/provider/invoiceapi"
	"github.com/kouchan/hackaton-iti-zup/infra/queue"
	"github.com/kouchan/hackaton-iti-zup/infra/stream"
	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/worker"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load worker configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	publisher, err := stream.NewKafkaPublisher(cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("failed to create order publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close order publisher", "error", err)
		}
	}()

	w := worker.New(worker.Deps{
		Queue:    queue.NewSQSQueue(sqs.NewFromConfig(awsCfg), cfg.Queue, logger),
		Rates:    currencyapi.New(cfg.CurrencyAPI, logger),
		Invoices: invoiceapi.New(cfg.InvoiceAPI, logger),
		Orders:   publisher,
		Ledger:   ledger.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.Ledger, logger),
	}, logger)

	logger.Info("starting checkout worker", "env", cfg.Env, "queue_url", cfg.Queue.URL)
	return w.Run(ctx)
}
