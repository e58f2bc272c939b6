package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaNotifier struct {
	logger *slog.Logger
	writer messageWriter
}

// NewKafkaNotifier publishes status changes keyed by order id, so every event
// of one order lands in the same partition in commit order.
func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return newKafkaNotifier(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.StatusTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func newKafkaNotifier(logger *slog.Logger, writer messageWriter) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: writer,
	}
}

func (n *kafkaNotifier) Notify(ctx context.Context, change entities.StatusChange) error {
	value, err := json.Marshal(EventFromEntity(change))
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(change.OrderID),
		Value: value,
		Time:  change.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(EventType(change))},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}

	n.logger.DebugContext(ctx, "status event published",
		slog.String("order_id", change.OrderID),
		slog.String("event", EventType(change)),
	)
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier only logs status changes. Used when no brokers are configured.
func NewLogNotifier(logger *slog.Logger) *logNotifier {
	return &logNotifier{logger: logger.With(slog.String("notifier", "log"))}
}

func (n *logNotifier) Notify(ctx context.Context, change entities.StatusChange) error {
	n.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", change.OrderID),
		slog.String("event", EventType(change)),
		slog.String("email", change.Email),
	)
	return nil
}

func (n *logNotifier) Close() error {
	return nil
}

type StatusEvent struct {
	Event             string    `json:"event"`
	OrderID           string    `json:"order_id"`
	OrderNumber       string    `json:"order_number"`
	UserID            string    `json:"user_id,omitempty"`
	Email             string    `json:"email,omitempty"`
	FromStatus        string    `json:"from_status"`
	ToStatus          string    `json:"to_status"`
	FromPaymentStatus string    `json:"from_payment_status"`
	ToPaymentStatus   string    `json:"to_payment_status"`
	Reason            string    `json:"reason,omitempty"`
	Actor             string    `json:"actor"`
	OccurredAt        time.Time `json:"occurred_at"`
}

func EventFromEntity(c entities.StatusChange) StatusEvent {
	return StatusEvent{
		Event:             EventType(c),
		OrderID:           c.OrderID,
		OrderNumber:       c.OrderNumber,
		UserID:            c.UserID,
		Email:             c.Email,
		FromStatus:        string(c.FromStatus),
		ToStatus:          string(c.ToStatus),
		FromPaymentStatus: string(c.FromPaymentStatus),
		ToPaymentStatus:   string(c.ToPaymentStatus),
		Reason:            c.Reason,
		Actor:             c.Actor,
		OccurredAt:        c.OccurredAt,
	}
}

// EventType names the change for downstream consumers such as the mailer.
func EventType(c entities.StatusChange) string {
	switch {
	case c.ToPaymentStatus != c.FromPaymentStatus && c.ToPaymentStatus == entities.PaymentStatusPaid:
		return "order.paid"
	case c.ToPaymentStatus != c.FromPaymentStatus && c.ToPaymentStatus == entities.PaymentStatusFailed:
		return "order.payment_failed"
	case c.ToPaymentStatus != c.FromPaymentStatus && c.ToPaymentStatus == entities.PaymentStatusRefunded:
		return "order.refunded"
	case c.ToStatus == entities.OrderStatusCancelled:
		return "order.cancelled"
	default:
		return "order." + string(c.ToStatus)
	}
}
