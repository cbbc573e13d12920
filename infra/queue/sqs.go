// Package queue adapts the checkout queue contract onto SQS.
package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/worker"
)

// SQSAPI is the slice of the SQS client the adapter uses.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSQueue long-polls one message at a time from the start-checkout queue.
// The visibility timeout is the message lease: it must outlast the whole
// downstream pipeline or the same message gets leased twice.
type SQSQueue struct {
	client            SQSAPI
	queueURL          string
	waitSeconds       int32
	visibilitySeconds int32
	logger            *slog.Logger
}

// NewSQSQueue creates the queue adapter.
func NewSQSQueue(client SQSAPI, cfg config.Queue, logger *slog.Logger) *SQSQueue {
	return &SQSQueue{
		client:            client,
		queueURL:          cfg.URL,
		waitSeconds:       int32(cfg.WaitTime.Seconds()),
		visibilitySeconds: int32(cfg.VisibilityTimeout.Seconds()),
		logger:            logger.With("component", "sqs-queue"),
	}
}

// Receive long-polls for a single message. Returns nil when the wait
// elapsed without a message.
func (q *SQSQueue) Receive(ctx context.Context) (*worker.Message, error) {
	out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: 1,
		WaitTimeSeconds:     q.waitSeconds,
		VisibilityTimeout:   q.visibilitySeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("sqs receive: %w", err)
	}
	if len(out.Messages) == 0 {
		return nil, nil
	}

	msg := out.Messages[0]
	q.logger.Debug("message received", "message_id", aws.ToString(msg.MessageId))
	return &worker.Message{
		ID:            aws.ToString(msg.MessageId),
		Body:          []byte(aws.ToString(msg.Body)),
		ReceiptHandle: aws.ToString(msg.ReceiptHandle),
	}, nil
}

// Delete acknowledges a message by its receipt handle.
func (q *SQSQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("sqs delete: %w", err)
	}
	return nil
}

// Ensure SQSQueue implements worker.Queue
var _ worker.Queue = (*SQSQueue)(nil)
