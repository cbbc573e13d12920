// Package ledger persists transaction records to the DynamoDB
// transaction register table.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kouchan/hackaton-iti-zup/pkg/checkout"
	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/worker"
)

// DynamoAPI is the slice of the DynamoDB client the writer uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoStore writes one record per completed invoice, keyed by cart id.
// The put is unconditional: a redelivered message rewrites the same key
// with an identical payload, which leaves the table state unchanged.
type DynamoStore struct {
	client DynamoAPI
	table  string
	logger *slog.Logger
}

// NewDynamoStore creates the ledger writer.
func NewDynamoStore(client DynamoAPI, cfg config.Ledger, logger *slog.Logger) *DynamoStore {
	return &DynamoStore{
		client: client,
		table:  cfg.Table,
		logger: logger.With("component", "transaction-ledger"),
	}
}

// WriteTransaction persists the record as a flat attribute set, numbers
// encoded as strings. Failure surfaces as checkout.ErrLedgerWriteFailed.
func (s *DynamoStore) WriteTransaction(ctx context.Context, rec checkout.TransactionRecord) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			"cartId":         &types.AttributeValueMemberS{Value: rec.CartID},
			"amount":         &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.Amount, 10)},
			"scale":          &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.Scale, 10)},
			"currencyCode":   &types.AttributeValueMemberS{Value: rec.CurrencyCode},
			"x-team-control": &types.AttributeValueMemberS{Value: rec.XTeamControl},
			"timestamp":      &types.AttributeValueMemberS{Value: rec.Timestamp.UTC().Format(time.RFC3339)},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", checkout.ErrLedgerWriteFailed, err)
	}

	s.logger.Info("transaction record written", "cart_id", rec.CartID, "table", s.table)
	return nil
}

// Ensure DynamoStore implements worker.LedgerWriter
var _ worker.LedgerWriter = (*DynamoStore)(nil)
