package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:    {PaymentStatusRefunded},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether automatic reconciliation may no longer change the status.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed || s == PaymentStatusRefunded
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return slices.Contains(paymentTransitions[s], next)
}

// OrderState is the pair guarded by every conditional update.
type OrderState struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
}

func (s OrderState) String() string {
	return fmt.Sprintf("%s/%s", s.Status, s.PaymentStatus)
}

// ValidateTransition checks an administrator transition. At least one of the two
// components must change and each changed component must follow its own graph.
func ValidateTransition(from, to OrderState) error {
	if from == to {
		return fmt.Errorf("%w: %s is already current", ErrInvalidTransition, to)
	}
	if from.Status != to.Status && !from.Status.CanTransitionTo(to.Status) {
		return fmt.Errorf("%w: order %s -> %s", ErrInvalidTransition, from.Status, to.Status)
	}
	if from.PaymentStatus != to.PaymentStatus && !from.PaymentStatus.CanTransitionTo(to.PaymentStatus) {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, from.PaymentStatus, to.PaymentStatus)
	}
	return nil
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type OrderItem struct {
	ProductID          string
	VendorID           string
	Name               string
	Quantity           int
	UnitPrice          int64
	LineTotal          int64
	FlashSaleProductID string
}

type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	Subtotal        int64
	ShippingFee     int64
	TotalAmount     int64
	Currency        string
	Customer        Customer
	ShippingAddress Address
	BillingAddress  Address
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItem
}

func (o Order) State() OrderState {
	return OrderState{Status: o.Status, PaymentStatus: o.PaymentStatus}
}

type OrderHistoryEntry struct {
	OrderID           string
	FromStatus        OrderStatus
	ToStatus          OrderStatus
	FromPaymentStatus PaymentStatus
	ToPaymentStatus   PaymentStatus
	Reason            string
	Actor             string
	CreatedAt         time.Time
}

// Transition is an accepted or attempted move between two states.
type Transition struct {
	OrderID string
	From    OrderState
	To      OrderState
	Reason  string
	Actor   string
}

func (t Transition) HistoryEntry(at time.Time) OrderHistoryEntry {
	return OrderHistoryEntry{
		OrderID:           t.OrderID,
		FromStatus:        t.From.Status,
		ToStatus:          t.To.Status,
		FromPaymentStatus: t.From.PaymentStatus,
		ToPaymentStatus:   t.To.PaymentStatus,
		Reason:            t.Reason,
		Actor:             t.Actor,
		CreatedAt:         at,
	}
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Address{})
	gob.Register(Customer{})
}
