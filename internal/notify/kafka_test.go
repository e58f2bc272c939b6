package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaNotifier_Notify(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	change := entities.StatusChange{
		OrderID:           "o1",
		OrderNumber:       "ORD-20260301-ABCDEF12",
		Email:             "ada@example.com",
		FromStatus:        entities.OrderStatusPending,
		ToStatus:          entities.OrderStatusConfirmed,
		FromPaymentStatus: entities.PaymentStatusPending,
		ToPaymentStatus:   entities.PaymentStatusPaid,
		Actor:             "gateway",
		OccurredAt:        at,
	}

	t.Run("publishes keyed event", func(t *testing.T) {
		w := &fakeWriter{}
		n := newKafkaNotifier(logger, w)

		require.NoError(t, n.Notify(context.Background(), change))
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, []byte("o1"), msg.Key)
		assert.Equal(t, at, msg.Time)
		assert.Equal(t, []kafka.Header{{Key: "event", Value: []byte("order.paid")}}, msg.Headers)

		var event StatusEvent
		require.NoError(t, json.Unmarshal(msg.Value, &event))
		assert.Equal(t, "order.paid", event.Event)
		assert.Equal(t, "confirmed", event.ToStatus)
		assert.Equal(t, "ada@example.com", event.Email)

		require.NoError(t, n.Close())
		assert.True(t, w.closed)
	})

	t.Run("write error", func(t *testing.T) {
		brokerErr := errors.New("broker down")
		n := newKafkaNotifier(logger, &fakeWriter{err: brokerErr})
		assert.ErrorIs(t, n.Notify(context.Background(), change), brokerErr)
	})
}

func TestEventType(t *testing.T) {
	testCases := []struct {
		name   string
		change entities.StatusChange
		want   string
	}{
		{
			name:   "paid",
			change: entities.StatusChange{FromStatus: "pending", ToStatus: "confirmed", FromPaymentStatus: "pending", ToPaymentStatus: "paid"},
			want:   "order.paid",
		},
		{
			name:   "payment failed",
			change: entities.StatusChange{FromStatus: "pending", ToStatus: "cancelled", FromPaymentStatus: "pending", ToPaymentStatus: "failed"},
			want:   "order.payment_failed",
		},
		{
			name:   "abandoned",
			change: entities.StatusChange{FromStatus: "pending", ToStatus: "cancelled", FromPaymentStatus: "pending", ToPaymentStatus: "pending"},
			want:   "order.cancelled",
		},
		{
			name:   "refunded",
			change: entities.StatusChange{FromStatus: "delivered", ToStatus: "delivered", FromPaymentStatus: "paid", ToPaymentStatus: "refunded"},
			want:   "order.refunded",
		},
		{
			name:   "shipped",
			change: entities.StatusChange{FromStatus: "processing", ToStatus: "shipped", FromPaymentStatus: "paid", ToPaymentStatus: "paid"},
			want:   "order.shipped",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EventType(tc.change))
		})
	}
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, n.Notify(context.Background(), entities.StatusChange{OrderID: "o1"}))
	assert.NoError(t, n.Close())
}
