package entities

import (
	"encoding/json"
	"time"
)

type TransactionSource string

const (
	SourceCheckout TransactionSource = "checkout"
	SourceWebhook  TransactionSource = "webhook"
	SourceVerify   TransactionSource = "verify"
)

// GatewayTransaction is one observation of a provider-side payment. Rows are only
// ever appended; RawPayload is kept for audit and never drives a decision.
type GatewayTransaction struct {
	OrderID           string
	Provider          string
	ExternalReference string
	ProviderStatus    string
	NormalizedStatus  string
	Source            TransactionSource
	Amount            int64
	Currency          string
	RawPayload        json.RawMessage
	CreatedAt         time.Time
}

// StatusChange is emitted after every accepted transition.
type StatusChange struct {
	OrderID           string
	OrderNumber       string
	UserID            string
	Email             string
	FromStatus        OrderStatus
	ToStatus          OrderStatus
	FromPaymentStatus PaymentStatus
	ToPaymentStatus   PaymentStatus
	Reason            string
	Actor             string
	OccurredAt        time.Time
}

// PaymentReference maps a provider transaction back to the order it pays for.
type PaymentReference struct {
	Provider          string
	ExternalReference string
	OrderID           string
	CreatedAt         time.Time
}
