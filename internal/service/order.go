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
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	// FindOrderByNote is the fallback lookup for orders that predate payment references.
	FindOrderByNote(ctx context.Context, fragment string) (entities.Order, error)

	UpdateStatusIf(ctx context.Context, id string, from, to entities.OrderState) (bool, error)
	AppendHistory(ctx context.Context, e entities.OrderHistoryEntry) error
	ListHistory(ctx context.Context, orderID string) ([]entities.OrderHistoryEntry, error)

	AppendTransaction(ctx context.Context, t entities.GatewayTransaction) error
	ListTransactions(ctx context.Context, orderID string) ([]entities.GatewayTransaction, error)

	SaveReference(ctx context.Context, ref entities.PaymentReference) error
	FindReference(ctx context.Context, provider, externalRef string) (entities.PaymentReference, error)
	LatestReference(ctx context.Context, orderID string) (entities.PaymentReference, error)

	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]string, error)
}

type Gateways interface {
	// Get returns the named adapter, or the default one for an empty name.
	Get(name string) (gateway.Adapter, error)
	Default() string
}

type OrderConfig struct {
	Currency       string
	ReturnURL      string
	PendingTimeout time.Duration
	SweepLimit     int
}

type CheckoutInput struct {
	UserID          string
	Items           []entities.CartItem
	Customer        entities.Customer
	ShippingAddress entities.Address
	BillingAddress  entities.Address
	Notes           string
	Provider        string
}

type CheckoutResult struct {
	OrderID     string
	OrderNumber string
	PaymentURL  string
	Reference   string
	Provider    string
	TotalAmount int64
	Currency    string
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        OrderRepo
	cart        *CartValidator
	ledger      Ledger
	gateways    Gateways
	cache       Cache
	transitions *Transitioner
	cfg         OrderConfig
	now         func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	cart *CartValidator,
	ledger Ledger,
	gateways Gateways,
	cache Cache,
	transitions *Transitioner,
	cfg OrderConfig,
) *orderService {
	if cfg.SweepLimit <= 0 {
		cfg.SweepLimit = 500
	}
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		repo:        repo,
		cart:        cart,
		ledger:      ledger,
		gateways:    gateways,
		cache:       cache,
		transitions: transitions,
		cfg:         cfg,
		now:         time.Now,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

// Checkout validates the cart, creates the pending order with its flash-sale
// reservations in one transaction and opens a payment session for it.
func (s *orderService) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	adapter, err := s.gateways.Get(in.Provider)
	if err != nil {
		return CheckoutResult{}, err
	}

	cart, err := s.cart.Validate(ctx, in.Items)
	if err != nil {
		return CheckoutResult{}, err
	}

	now := s.now().UTC()
	id := uuid.New()
	order := entities.Order{
		ID:              id.String(),
		OrderNumber:     orderNumber(now, id),
		UserID:          in.UserID,
		Status:          entities.OrderStatusPending,
		PaymentStatus:   entities.PaymentStatusPending,
		Subtotal:        cart.Subtotal,
		ShippingFee:     cart.ShippingFee,
		TotalAmount:     cart.Total,
		Currency:        s.cfg.Currency,
		Customer:        in.Customer,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		Items:           cart.Items,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, item := range order.Items {
			if item.FlashSaleProductID == "" {
				continue
			}
			if err := s.ledger.Reserve(ctx, item.FlashSaleProductID, item.Quantity); err != nil {
				return err
			}
		}
		return s.repo.CreateOrder(ctx, order)
	})
	if err != nil {
		if errors.Is(err, entities.ErrValidation) || errors.Is(err, entities.ErrPersistence) {
			return CheckoutResult{}, err
		}
		return CheckoutResult{}, fmt.Errorf("%w: create order: %w", entities.ErrPersistence, err)
	}
	ordersCreated.Inc()

	session, err := adapter.InitCheckout(ctx, gateway.CheckoutRequest{
		Amount:         order.TotalAmount,
		Currency:       order.Currency,
		Customer:       order.Customer,
		OrderReference: order.ID,
		Description:    "Order " + order.OrderNumber,
		ReturnURL:      s.cfg.ReturnURL,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to init payment",
			slog.String("order_id", order.ID),
			slog.String("provider", adapter.Name()),
			slog.Any("error", err),
		)
		failed := entities.OrderState{Status: entities.OrderStatusCancelled, PaymentStatus: entities.PaymentStatusFailed}
		if _, terr := s.transitions.Apply(ctx, order, failed, "payment initialization failed: "+err.Error(), ActorSystem); terr != nil {
			s.logger.ErrorContext(ctx, "failed to cancel order after payment init failure",
				slog.String("order_id", order.ID),
				slog.Any("error", terr),
			)
		}
		return CheckoutResult{}, fmt.Errorf("init checkout with %s: %w", adapter.Name(), err)
	}

	ref := entities.PaymentReference{
		Provider:          adapter.Name(),
		ExternalReference: session.ExternalReference,
		OrderID:           order.ID,
		CreatedAt:         now,
	}
	// The order id travels with the session too, so a lost mapping still
	// correlates; the customer must not be blocked from paying.
	if err := s.repo.SaveReference(ctx, ref); err != nil {
		s.logger.ErrorContext(ctx, "failed to save payment reference", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	s.record(ctx, entities.GatewayTransaction{
		OrderID:           order.ID,
		Provider:          adapter.Name(),
		ExternalReference: session.ExternalReference,
		ProviderStatus:    session.ProviderStatus,
		NormalizedStatus:  gateway.StatusPending.String(),
		Source:            entities.SourceCheckout,
		Amount:            order.TotalAmount,
		Currency:          order.Currency,
		RawPayload:        session.Raw,
		CreatedAt:         now,
	})

	s.logger.InfoContext(ctx, "checkout started",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("provider", adapter.Name()),
		slog.Int64("total", order.TotalAmount),
	)

	return CheckoutResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		PaymentURL:  session.PaymentURL,
		Reference:   session.ExternalReference,
		Provider:    adapter.Name(),
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
	}, nil
}

func (s *orderService) record(ctx context.Context, tx entities.GatewayTransaction) {
	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		s.logger.ErrorContext(ctx, "failed to record gateway transaction",
			slog.String("order_id", tx.OrderID),
			slog.String("source", string(tx.Source)),
			slog.Any("error", err),
		)
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id), slog.Any("error", err))
		s.cache.Delete(id)
	}

	var order entities.Order
	fn := func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(id, data)
	return order, nil
}

func (s *orderService) History(ctx context.Context, id string) ([]entities.OrderHistoryEntry, error) {
	if _, err := s.repo.GetOrderByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, id)
}

func (s *orderService) Transactions(ctx context.Context, id string) ([]entities.GatewayTransaction, error) {
	if _, err := s.repo.GetOrderByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, id)
}

// UpdateStatus applies an administrator transition. Empty components keep
// their current value.
func (s *orderService) UpdateStatus(
	ctx context.Context,
	id string,
	status entities.OrderStatus,
	paymentStatus entities.PaymentStatus,
	reason, actor string,
) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	to := order.State()
	if status != "" {
		to.Status = status
	}
	if paymentStatus != "" {
		to.PaymentStatus = paymentStatus
	}
	if !to.Status.Valid() || !to.PaymentStatus.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %s", entities.ErrInvalidTransition, to)
	}
	if err := entities.ValidateTransition(order.State(), to); err != nil {
		return entities.Order{}, err
	}

	applied, err := s.transitions.Apply(ctx, order, to, reason, actor)
	if err != nil {
		return entities.Order{}, err
	}
	if !applied {
		return entities.Order{}, entities.ErrConcurrentUpdate
	}
	return s.repo.GetOrderByID(ctx, id)
}

// CancelStalePending cancels unpaid pending orders older than the configured
// timeout. Payment status stays pending: nothing was charged. Orders resolved
// concurrently are skipped by the conditional update. One run handles at most
// SweepLimit orders, oldest first; later runs drain the rest.
func (s *orderService) CancelStalePending(ctx context.Context) ([]string, error) {
	cutoff := s.now().Add(-s.cfg.PendingTimeout)
	ids, err := s.repo.ListStalePending(ctx, cutoff, s.cfg.SweepLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list stale orders: %w", entities.ErrPersistence, err)
	}

	pending := entities.OrderState{Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending}
	cancelled := entities.OrderState{Status: entities.OrderStatusCancelled, PaymentStatus: entities.PaymentStatusPending}
	reason := "payment not completed within " + s.cfg.PendingTimeout.String()

	result := make([]string, 0, len(ids))
	for _, id := range ids {
		order, err := s.repo.GetOrderByID(ctx, id)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load stale order", slog.String("order_id", id), slog.Any("error", err))
			continue
		}
		if order.State() != pending {
			continue
		}

		applied, err := s.transitions.Apply(ctx, order, cancelled, reason, ActorCron)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to cancel stale order", slog.String("order_id", id), slog.Any("error", err))
			continue
		}
		if applied {
			result = append(result, id)
		}
	}

	s.logger.InfoContext(ctx, "stale orders swept", slog.Int("candidates", len(ids)), slog.Int("cancelled", len(result)))
	return result, nil
}

func orderNumber(t time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), suffix)
}
