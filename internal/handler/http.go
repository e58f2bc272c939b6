package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const ActorAdmin = "admin"

type OrderService interface {
	Checkout(ctx context.Context, in service.CheckoutInput) (service.CheckoutResult, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	History(ctx context.Context, id string) ([]entities.OrderHistoryEntry, error)
	Transactions(ctx context.Context, id string) ([]entities.GatewayTransaction, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentStatus entities.PaymentStatus, reason, actor string) (entities.Order, error)
	CancelStalePending(ctx context.Context) ([]string, error)
}

type PaymentReconciler interface {
	HandleWebhook(ctx context.Context, provider string, payload []byte) error
	Verify(ctx context.Context, in service.VerifyInput) (service.VerifyResult, error)
}

type FlashSales interface {
	Availability(ctx context.Context, id string) (service.FlashSaleAvailability, error)
}

type Config struct {
	CronSecret string
	AdminToken string
	// RateLimit guards the public payment endpoints when set.
	RateLimit func(http.Handler) http.Handler
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	orders     OrderService
	payments   PaymentReconciler
	flashSales FlashSales
	cfg        Config
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, payments PaymentReconciler, flashSales FlashSales, cfg Config) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		orders:     orders,
		payments:   payments,
		flashSales: flashSales,
		cfg:        cfg,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.cfg.RateLimit != nil {
			r.Use(h.cfg.RateLimit)
		}
		r.Post("/checkout", h.Checkout)
		r.Post("/payment/verify", h.VerifyPayment)
		r.Post("/webhooks/{provider}", h.Webhook)
	})

	r.Get("/orders/{order_id}", h.GetOrderByID)
	r.Get("/orders/{order_id}/history", h.GetOrderHistory)
	r.Get("/orders/{order_id}/transactions", h.GetOrderTransactions)
	r.Get("/flash-sales/products/{id}/availability", h.GetFlashSaleAvailability)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(h.cfg.CronSecret))
		r.Get("/cron/cancel-pending-orders", h.CancelPendingOrders)
		r.Post("/cron/cancel-pending-orders", h.CancelPendingOrders)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(h.cfg.AdminToken))
		r.Patch("/admin/orders/{order_id}/status", h.UpdateOrderStatus)
	})
}

// Checkout validates the cart, creates the order and opens a payment session.
// @Summary      Start checkout
// @Description  Prices the cart from the catalog, creates a pending order and returns the provider payment URL
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Cart and customer"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid cart"
// @Failure      429  {object}  utils.ErrorResponse "Too many requests"
// @Failure      500  {object}  utils.ErrorResponse "Order or payment could not be created"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.orders.Checkout(ctx, req.ToInput())
	switch {
	case err == nil:
		utils.WriteJSON(w, CheckoutResultToJSON(res), http.StatusCreated)
	case errors.Is(err, entities.ErrValidation), errors.Is(err, gateway.ErrUnknownProvider):
		utils.WriteValidationError(w, err)
	default:
		h.logger.ErrorContext(ctx, "checkout failed", slog.Any("error", err))
		utils.WriteError(w, "failed to create order", http.StatusInternalServerError)
	}
}

// VerifyPayment re-queries the provider for an order's payment.
// @Summary      Verify payment
// @Description  Asks the payment provider for the current status and reconciles the order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyRequest  true  "Order id and/or provider reference"
// @Success      200  {object}  VerifyResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      404  {object}  utils.ErrorResponse "Order or payment not found"
// @Failure      502  {object}  utils.ErrorResponse "Provider rejected the query"
// @Failure      503  {object}  utils.ErrorResponse "Provider unavailable"
// @Router       /payment/verify [post]
func (h *HTTPHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.payments.Verify(ctx, service.VerifyInput(req))
	if err != nil {
		h.writeError(ctx, w, err, "failed to verify payment")
		return
	}
	utils.WriteJSON(w, VerifyResultToJSON(res), http.StatusOK)
}

// Webhook receives provider push notifications.
// @Summary      Payment webhook
// @Description  Always acknowledged; the payload only triggers a status re-query
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        provider  path  string  true  "Provider name"
// @Success      200  {object}  WebhookResponse
// @Router       /webhooks/{provider} [post]
func (h *HTTPHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")

	payload, err := utils.ReadBody(r)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read webhook body", slog.String("provider", provider), slog.Any("error", err))
	} else if err := h.payments.HandleWebhook(ctx, provider, payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to handle webhook", slog.String("provider", provider), slog.Any("error", err))
	}

	// providers retry on anything but 200, and a retry would change nothing
	utils.WriteJSON(w, WebhookResponse{Received: true}, http.StatusOK)
}

// CancelPendingOrders cancels unpaid orders past the payment timeout.
// @Summary      Cancel stale pending orders
// @Tags         cron
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CancelPendingResponse
// @Failure      401  {object}  utils.ErrorResponse "Missing or wrong secret"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /cron/cancel-pending-orders [post]
func (h *HTTPHandler) CancelPendingOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids, err := h.orders.CancelStalePending(ctx)
	if err != nil {
		h.writeError(ctx, w, err, "failed to cancel pending orders")
		return
	}
	utils.WriteJSON(w, CancelPendingResponse{Count: len(ids), OrderIDs: ids}, http.StatusOK)
}

// GetOrderByID returns an order.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid id"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrderHistory returns the status history of an order, oldest first.
// @Summary      Get order history
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {array}   HistoryEntry
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id}/history [get]
func (h *HTTPHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	entries, err := h.orders.History(ctx, orderID)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get order history")
		return
	}
	utils.WriteJSON(w, HistoryToJSON(entries), http.StatusOK)
}

// GetOrderTransactions returns every gateway observation recorded for an order.
// @Summary      Get order payment transactions
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {array}   Transaction
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id}/transactions [get]
func (h *HTTPHandler) GetOrderTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	txs, err := h.orders.Transactions(ctx, orderID)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get order transactions")
		return
	}
	utils.WriteJSON(w, TransactionsToJSON(txs), http.StatusOK)
}

// UpdateOrderStatus applies an administrator transition.
// @Summary      Update order status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string               true  "Order id"
// @Param        request   body      UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      401  {object}  utils.ErrorResponse "Unauthorized"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order changed concurrently"
// @Failure      422  {object}  utils.ErrorResponse "Transition not allowed"
// @Router       /admin/orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, orderID,
		entities.OrderStatus(req.Status),
		entities.PaymentStatus(req.PaymentStatus),
		req.Reason, ActorAdmin,
	)
	if err != nil {
		h.writeError(ctx, w, err, "failed to update order status")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetFlashSaleAvailability returns what is left of a flash-sale allocation.
// @Summary      Flash-sale availability
// @Tags         flash-sales
// @Produce      json
// @Param        id   path      string  true  "Flash-sale product id"
// @Success      200  {object}  Availability
// @Failure      404  {object}  utils.ErrorResponse "Flash-sale product not found"
// @Router       /flash-sales/products/{id}/availability [get]
func (h *HTTPHandler) GetFlashSaleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	res, err := h.flashSales.Availability(ctx, id)
	if errors.Is(err, entities.ErrFlashSaleNotFound) || errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "flash sale product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeError(ctx, w, err, "failed to get availability")
		return
	}
	utils.WriteJSON(w, AvailabilityToJSON(res), http.StatusOK)
}

func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrReferenceNotFound):
		utils.WriteError(w, "payment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrValidation), errors.Is(err, gateway.ErrUnknownProvider):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrConcurrentUpdate):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, gateway.ErrTransient):
		h.logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "payment provider unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, gateway.ErrRejected):
		h.logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "payment provider rejected the request", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
