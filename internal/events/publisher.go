// Package events pushes completed-order notifications to the shop's
// back-office fulfillment display over Kafka. Kiosks without a broker
// configured run with a nil publisher; publishing then becomes a no-op.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/format"
)

const topic = "pos-orders"

// Writer is the piece of kafka.Writer the publisher uses, kept as an
// interface so tests can capture messages.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	terminal string
	writer   Writer
}

func NewPublisher(terminal string, brokers ...string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{terminal: terminal, writer: w}
}

// NewPublisherWithWriter wires a custom writer, used in tests.
func NewPublisherWithWriter(terminal string, w Writer) *Publisher {
	return &Publisher{terminal: terminal, writer: w}
}

// OrderCompleted publishes an order.completed event keyed by order ID so
// events for one order stay in partition order.
func (p *Publisher) OrderCompleted(ctx context.Context, orderID, customerName string, items []domain.CartItem, total float64) error {
	if p == nil || p.writer == nil {
		return nil
	}

	payload := map[string]interface{}{
		"event_id":      uuid.NewString(),
		"order_id":      orderID,
		"customer_name": customerName,
		"terminal":      p.terminal,
		"items":         items,
		"total_amount":  total,
		"total_display": format.IDR(total),
		"completed_at":  time.Now().UTC(),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(orderID),
		Value: payloadJSON,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.completed")},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
