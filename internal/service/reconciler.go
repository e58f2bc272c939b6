package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
	"github.com/google/uuid"
)

// Deduper remembers webhook deliveries that were fully reconciled. It only
// saves gateway round trips; the conditional update is what keeps state correct.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type VerifyInput struct {
	OrderID   string
	GatewayID string
	Provider  string
}

type VerifyResult struct {
	OrderID        string
	OrderNumber    string
	Provider       string
	Reference      string
	Status         gateway.Status
	ProviderStatus string
	OrderStatus    entities.OrderStatus
	PaymentStatus  entities.PaymentStatus
}

type reconciler struct {
	logger      *slog.Logger
	repo        OrderRepo
	gateways    Gateways
	dedupe      Deduper
	transitions *Transitioner
	now         func() time.Time
}

func NewReconciler(logger *slog.Logger, repo OrderRepo, gateways Gateways, dedupe Deduper, transitions *Transitioner) *reconciler {
	return &reconciler{
		logger:      logger.With(slog.String("service", "reconciler")),
		repo:        repo,
		gateways:    gateways,
		dedupe:      dedupe,
		transitions: transitions,
		now:         time.Now,
	}
}

// HandleWebhook processes a provider push. The payload is only a hint: the
// provider is asked for the current status, and the pushed status is used
// only when that query fails transiently.
func (r *reconciler) HandleWebhook(ctx context.Context, provider string, payload []byte) error {
	adapter, err := r.gateways.Get(provider)
	if err != nil {
		reconciliations.WithLabelValues(string(entities.SourceWebhook), "unknown_provider").Inc()
		return err
	}

	pushed, err := adapter.ParseWebhook(payload)
	if err != nil {
		reconciliations.WithLabelValues(string(entities.SourceWebhook), "invalid_payload").Inc()
		return err
	}

	logger := r.logger.With(
		slog.String("provider", adapter.Name()),
		slog.String("reference", pushed.ExternalReference),
	)

	key := dedupeKey(adapter.Name(), pushed)
	seen, err := r.dedupe.Seen(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "dedupe lookup failed", slog.Any("error", err))
	}
	if seen {
		logger.DebugContext(ctx, "webhook already reconciled", slog.String("provider_status", pushed.ProviderStatus))
		reconciliations.WithLabelValues(string(entities.SourceWebhook), "duplicate").Inc()
		return nil
	}

	res, err := adapter.GetStatus(ctx, pushed.ExternalReference)
	switch {
	case err == nil:
		if res.OrderReference == "" {
			res.OrderReference = pushed.OrderReference
		}
	case errors.Is(err, gateway.ErrTransient):
		logger.WarnContext(ctx, "status query failed, using pushed status", slog.Any("error", err))
		res = pushed
	default:
		reconciliations.WithLabelValues(string(entities.SourceWebhook), "error").Inc()
		return fmt.Errorf("query %s status: %w", adapter.Name(), err)
	}

	order, err := r.lookup(ctx, adapter.Name(), res)
	if errors.Is(err, entities.ErrOrderNotFound) {
		logger.WarnContext(ctx, "webhook does not match any order",
			slog.String("order_reference", res.OrderReference),
			slog.String("provider_status", res.ProviderStatus),
		)
		reconciliations.WithLabelValues(string(entities.SourceWebhook), "uncorrelated").Inc()
		return nil
	}
	if err != nil {
		return err
	}

	order, err = r.reconcile(ctx, order, res, entities.SourceWebhook)
	if err != nil {
		return err
	}

	// Only a settled payment closes the key: a redelivery after a pending
	// answer must query the provider again.
	if !order.PaymentStatus.Terminal() {
		return nil
	}
	if err := r.dedupe.Mark(ctx, key); err != nil {
		logger.WarnContext(ctx, "failed to mark webhook as reconciled", slog.Any("error", err))
	}
	return nil
}

// Verify is the client-initiated poll after the customer returns from the
// provider. It converges on the same state as the webhook path.
func (r *reconciler) Verify(ctx context.Context, in VerifyInput) (VerifyResult, error) {
	order, ref, err := r.resolve(ctx, in)
	if err != nil {
		return VerifyResult{}, err
	}

	adapter, err := r.gateways.Get(ref.Provider)
	if err != nil {
		return VerifyResult{}, err
	}

	res, err := adapter.GetStatus(ctx, ref.ExternalReference)
	if err != nil {
		reconciliations.WithLabelValues(string(entities.SourceVerify), "error").Inc()
		return VerifyResult{}, fmt.Errorf("query %s status: %w", adapter.Name(), err)
	}

	order, err = r.reconcile(ctx, order, res, entities.SourceVerify)
	if err != nil {
		return VerifyResult{}, err
	}

	return VerifyResult{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		Provider:       adapter.Name(),
		Reference:      ref.ExternalReference,
		Status:         res.Status,
		ProviderStatus: res.ProviderStatus,
		OrderStatus:    order.Status,
		PaymentStatus:  order.PaymentStatus,
	}, nil
}

func (r *reconciler) resolve(ctx context.Context, in VerifyInput) (entities.Order, entities.PaymentReference, error) {
	if in.GatewayID == "" {
		order, err := r.repo.GetOrderByID(ctx, in.OrderID)
		if err != nil {
			return entities.Order{}, entities.PaymentReference{}, err
		}
		ref, err := r.repo.LatestReference(ctx, order.ID)
		if err != nil {
			return entities.Order{}, entities.PaymentReference{}, err
		}
		return order, ref, nil
	}

	ref, err := r.repo.FindReference(ctx, in.Provider, in.GatewayID)
	switch {
	case err == nil:
		if in.OrderID != "" && in.OrderID != ref.OrderID {
			return entities.Order{}, entities.PaymentReference{}, fmt.Errorf("%w: reference belongs to another order", entities.ErrOrderNotFound)
		}
		order, err := r.repo.GetOrderByID(ctx, ref.OrderID)
		return order, ref, err
	case !errors.Is(err, entities.ErrReferenceNotFound):
		return entities.Order{}, entities.PaymentReference{}, err
	}

	provider := in.Provider
	if provider == "" {
		provider = r.gateways.Default()
	}
	ref = entities.PaymentReference{Provider: provider, ExternalReference: in.GatewayID}

	var order entities.Order
	if in.OrderID != "" {
		order, err = r.repo.GetOrderByID(ctx, in.OrderID)
	} else {
		order, err = r.repo.FindOrderByNote(ctx, in.GatewayID)
	}
	if err != nil {
		return entities.Order{}, entities.PaymentReference{}, err
	}
	ref.OrderID = order.ID
	return order, ref, nil
}

// lookup correlates a gateway result with an order: by the order id echoed by
// the provider, then by the stored reference, then by the notes field.
func (r *reconciler) lookup(ctx context.Context, provider string, res gateway.Result) (entities.Order, error) {
	if _, err := uuid.Parse(res.OrderReference); err == nil {
		order, err := r.repo.GetOrderByID(ctx, res.OrderReference)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, err
		}
	}

	if res.ExternalReference == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	ref, err := r.repo.FindReference(ctx, provider, res.ExternalReference)
	switch {
	case err == nil:
		return r.repo.GetOrderByID(ctx, ref.OrderID)
	case !errors.Is(err, entities.ErrReferenceNotFound):
		return entities.Order{}, err
	}

	order, err := r.repo.FindOrderByNote(ctx, res.ExternalReference)
	if err != nil {
		return entities.Order{}, err
	}
	r.logger.InfoContext(ctx, "order matched through notes",
		slog.String("order_id", order.ID),
		slog.String("reference", res.ExternalReference),
	)
	return order, nil
}

// reconcile records the observation and applies it. Only pending/pending orders
// move; settled payments never change here. It returns the order as it stands
// afterwards.
func (r *reconciler) reconcile(ctx context.Context, order entities.Order, res gateway.Result, source entities.TransactionSource) (entities.Order, error) {
	r.record(ctx, order, res, source)

	logger := r.logger.With(
		slog.String("order_id", order.ID),
		slog.String("provider", res.Provider),
		slog.String("reference", res.ExternalReference),
		slog.String("provider_status", res.ProviderStatus),
		slog.String("source", string(source)),
	)
	if res.Unrecognized {
		logger.WarnContext(ctx, "unrecognized provider status treated as pending")
	}

	outcome := func(name string) {
		reconciliations.WithLabelValues(string(source), name).Inc()
	}

	if order.PaymentStatus.Terminal() {
		if res.Status != gateway.StatusPending && !settledAs(order.PaymentStatus, res.Status) {
			logger.WarnContext(ctx, "gateway result contradicts settled payment",
				slog.String("payment_status", string(order.PaymentStatus)),
				slog.Any("error", fmt.Errorf("%w: payment is %s, provider reports %s", entities.ErrReconciliationConflict, order.PaymentStatus, res.Status)),
			)
			outcome("conflict")
		} else {
			logger.DebugContext(ctx, "payment already settled")
			outcome("noop")
		}
		return order, nil
	}

	var to entities.OrderState
	switch res.Status {
	case gateway.StatusPending:
		outcome("pending")
		return order, nil

	case gateway.StatusSuccessful:
		if order.Status != entities.OrderStatusPending {
			logger.WarnContext(ctx, "payment succeeded for an order that is no longer pending, needs manual review",
				slog.String("status", string(order.Status)),
			)
			outcome("late_payment")
			return order, nil
		}
		if mismatch := amountMismatch(order, res); mismatch != "" {
			logger.ErrorContext(ctx, "paid amount does not match order, needs manual review", slog.String("mismatch", mismatch))
			outcome("amount_mismatch")
			return order, nil
		}
		to = entities.OrderState{Status: entities.OrderStatusConfirmed, PaymentStatus: entities.PaymentStatusPaid}

	case gateway.StatusFailed:
		if order.Status != entities.OrderStatusPending {
			outcome("noop")
			return order, nil
		}
		to = entities.OrderState{Status: entities.OrderStatusCancelled, PaymentStatus: entities.PaymentStatusFailed}
	}

	reason := fmt.Sprintf("%s reported %q via %s", res.Provider, res.ProviderStatus, source)
	applied, err := r.transitions.Apply(ctx, order, to, reason, ActorGateway)
	if err != nil {
		outcome("error")
		return order, err
	}
	if !applied {
		logger.InfoContext(ctx, "order changed concurrently, result not applied",
			slog.Any("error", entities.ErrReconciliationConflict),
		)
		outcome("conflict")
	} else {
		outcome("applied")
	}

	current, err := r.repo.GetOrderByID(ctx, order.ID)
	if err != nil {
		return order, err
	}
	return current, nil
}

func (r *reconciler) record(ctx context.Context, order entities.Order, res gateway.Result, source entities.TransactionSource) {
	tx := entities.GatewayTransaction{
		OrderID:           order.ID,
		Provider:          res.Provider,
		ExternalReference: res.ExternalReference,
		ProviderStatus:    res.ProviderStatus,
		NormalizedStatus:  res.Status.String(),
		Source:            source,
		Amount:            res.Amount,
		Currency:          res.Currency,
		RawPayload:        res.Raw,
		CreatedAt:         r.now().UTC(),
	}
	if err := r.repo.AppendTransaction(ctx, tx); err != nil {
		r.logger.ErrorContext(ctx, "failed to record gateway transaction",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

func settledAs(ps entities.PaymentStatus, s gateway.Status) bool {
	switch s {
	case gateway.StatusSuccessful:
		return ps == entities.PaymentStatusPaid || ps == entities.PaymentStatusRefunded
	case gateway.StatusFailed:
		return ps == entities.PaymentStatusFailed
	}
	return false
}

func amountMismatch(order entities.Order, res gateway.Result) string {
	if res.Amount != 0 && res.Amount != order.TotalAmount {
		return fmt.Sprintf("amount %d, expected %d", res.Amount, order.TotalAmount)
	}
	if res.Currency != "" && !strings.EqualFold(res.Currency, order.Currency) {
		return fmt.Sprintf("currency %s, expected %s", res.Currency, order.Currency)
	}
	return ""
}

func dedupeKey(provider string, res gateway.Result) string {
	return provider + ":" + res.ExternalReference + ":" + strings.ToLower(res.ProviderStatus)
}
