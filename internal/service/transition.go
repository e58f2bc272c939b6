package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
)

const (
	ActorSystem  = "system"
	ActorCron    = "cron"
	ActorGateway = "gateway"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Notifier interface {
	Notify(ctx context.Context, change entities.StatusChange) error
}

type Ledger interface {
	Reserve(ctx context.Context, id string, qty int) error
	Release(ctx context.Context, id string, qty int) error
}

// Transitioner is the only writer of order status. Each accepted move is a
// compare-and-set on (status, payment_status) plus one history row, committed
// together; cache invalidation and notification follow the commit.
type Transitioner struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	ledger    Ledger
	cache     Cache
	notifier  Notifier
	now       func() time.Time
}

func NewTransitioner(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, ledger Ledger, cache Cache, notifier Notifier) *Transitioner {
	return &Transitioner{
		logger:    logger.With(slog.String("service", "transitions")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		cache:     cache,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Apply moves order from its current state to `to`. It returns false without an
// error when another writer changed the state first.
func (t *Transitioner) Apply(ctx context.Context, order entities.Order, to entities.OrderState, reason, actor string) (bool, error) {
	tr := entities.Transition{
		OrderID: order.ID,
		From:    order.State(),
		To:      to,
		Reason:  reason,
		Actor:   actor,
	}
	at := t.now().UTC()

	applied := false
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := t.repo.UpdateStatusIf(ctx, order.ID, tr.From, tr.To)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := t.repo.AppendHistory(ctx, tr.HistoryEntry(at)); err != nil {
			return err
		}
		if to.Status == entities.OrderStatusCancelled && tr.From.Status != entities.OrderStatusCancelled {
			if err := t.releaseReservations(ctx, order); err != nil {
				return err
			}
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: transition %s %s -> %s: %w", entities.ErrPersistence, order.ID, tr.From, tr.To, err)
	}
	if !applied {
		return false, nil
	}

	t.cache.Delete(order.ID)
	orderTransitions.WithLabelValues(string(to.Status), string(to.PaymentStatus), actor).Inc()
	t.logger.InfoContext(ctx, "order transitioned",
		slog.String("order_id", order.ID),
		slog.String("from", tr.From.String()),
		slog.String("to", tr.To.String()),
		slog.String("actor", actor),
		slog.String("reason", reason),
	)

	t.notify(ctx, order, tr, at)
	return true, nil
}

func (t *Transitioner) releaseReservations(ctx context.Context, order entities.Order) error {
	for _, item := range order.Items {
		if item.FlashSaleProductID == "" {
			continue
		}
		if err := t.ledger.Release(ctx, item.FlashSaleProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// notify is best effort: the transition is already committed.
func (t *Transitioner) notify(ctx context.Context, order entities.Order, tr entities.Transition, at time.Time) {
	change := entities.StatusChange{
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		UserID:            order.UserID,
		Email:             order.Customer.Email,
		FromStatus:        tr.From.Status,
		ToStatus:          tr.To.Status,
		FromPaymentStatus: tr.From.PaymentStatus,
		ToPaymentStatus:   tr.To.PaymentStatus,
		Reason:            tr.Reason,
		Actor:             tr.Actor,
		OccurredAt:        at,
	}
	if err := t.notifier.Notify(ctx, change); err != nil {
		t.logger.WarnContext(ctx, "failed to send status notification",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
