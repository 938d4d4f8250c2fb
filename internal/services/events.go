package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionPublisher fans completed transactions out to Kafka for
// downstream consumers (notifications, analytics). Publishing is best-effort:
// a broker failure is logged, never surfaced to the caller, because the
// ledger write already committed.
type TransactionPublisher struct {
	writer KafkaWriter
}

func NewTransactionPublisher(writer KafkaWriter) *TransactionPublisher {
	return &TransactionPublisher{writer: writer}
}

func (p *TransactionPublisher) Publish(ctx context.Context, txn models.Transaction) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.ID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount)
	}
}
