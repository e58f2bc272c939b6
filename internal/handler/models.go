package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
)

// CheckoutRequest is the cart submitted by the storefront
type CheckoutRequest struct {
	UserID          string     `json:"user_id,omitempty"`
	Items           []CartItem `json:"items" validate:"dive"`
	Customer        Customer   `json:"customer"`
	ShippingAddress Address    `json:"shipping_address"`
	// BillingAddress defaults to the shipping address
	BillingAddress *Address `json:"billing_address,omitempty"`
	Notes          string   `json:"notes,omitempty" validate:"max=1000"`
	Provider       string   `json:"provider,omitempty" validate:"omitempty,oneof=cardpay momo"`
}

// CartItem is one cart line. Price is what the client displayed and is never trusted.
type CartItem struct {
	ProductID          string `json:"product_id" validate:"required"`
	Quantity           int    `json:"quantity"`
	Price              int64  `json:"price,omitempty" validate:"gte=0"`
	FlashSaleProductID string `json:"flash_sale_product_id,omitempty"`
}

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,e164"`
}

type Address struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country" validate:"required"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	PaymentURL  string `json:"payment_url"`
	Reference   string `json:"reference"`
	Provider    string `json:"provider"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

// VerifyRequest needs at least one of the two identifiers
type VerifyRequest struct {
	OrderID   string `json:"order_id,omitempty" validate:"required_without=GatewayID,omitempty,uuid"`
	GatewayID string `json:"gateway_id,omitempty" validate:"required_without=OrderID"`
	Provider  string `json:"provider,omitempty" validate:"omitempty,oneof=cardpay momo"`
}

type VerifyResponse struct {
	OrderID        string `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	Provider       string `json:"provider"`
	Reference      string `json:"reference"`
	Status         string `json:"status"`
	ProviderStatus string `json:"provider_status"`
	OrderStatus    string `json:"order_status"`
	PaymentStatus  string `json:"payment_status"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type CancelPendingResponse struct {
	Count    int      `json:"count"`
	OrderIDs []string `json:"order_ids"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status,omitempty" validate:"required_without=PaymentStatus,omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	PaymentStatus string `json:"payment_status,omitempty" validate:"required_without=Status,omitempty,oneof=pending paid failed refunded"`
	Reason        string `json:"reason,omitempty" validate:"max=500"`
}

type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          string      `json:"user_id,omitempty"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	Subtotal        int64       `json:"subtotal"`
	ShippingFee     int64       `json:"shipping_fee"`
	TotalAmount     int64       `json:"total_amount"`
	Currency        string      `json:"currency"`
	Customer        Customer    `json:"customer"`
	ShippingAddress Address     `json:"shipping_address"`
	BillingAddress  Address     `json:"billing_address"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ProductID          string `json:"product_id"`
	VendorID           string `json:"vendor_id"`
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	UnitPrice          int64  `json:"unit_price"`
	LineTotal          int64  `json:"line_total"`
	FlashSaleProductID string `json:"flash_sale_product_id,omitempty"`
}

type HistoryEntry struct {
	FromStatus        string    `json:"from_status"`
	ToStatus          string    `json:"to_status"`
	FromPaymentStatus string    `json:"from_payment_status"`
	ToPaymentStatus   string    `json:"to_payment_status"`
	Reason            string    `json:"reason,omitempty"`
	Actor             string    `json:"actor"`
	CreatedAt         time.Time `json:"created_at"`
}

type Transaction struct {
	Provider          string    `json:"provider"`
	ExternalReference string    `json:"external_reference"`
	ProviderStatus    string    `json:"provider_status"`
	Status            string    `json:"status"`
	Source            string    `json:"source"`
	Amount            int64     `json:"amount,omitempty"`
	Currency          string    `json:"currency,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type Availability struct {
	FlashSaleProductID string    `json:"flash_sale_product_id"`
	FlashSaleID        string    `json:"flash_sale_id"`
	ProductID          string    `json:"product_id"`
	SalePrice          int64     `json:"sale_price"`
	MaxQuantity        int       `json:"max_quantity"`
	SoldQuantity       int       `json:"sold_quantity"`
	Available          int       `json:"available"`
	Running            bool      `json:"running"`
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
}

func (req CheckoutRequest) ToInput() service.CheckoutInput {
	items := make([]entities.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entities.CartItem{
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			ClaimedPrice:       item.Price,
			FlashSaleProductID: item.FlashSaleProductID,
		})
	}

	shipping := AddressToEntity(req.ShippingAddress)
	billing := shipping
	if req.BillingAddress != nil {
		billing = AddressToEntity(*req.BillingAddress)
	}

	return service.CheckoutInput{
		UserID:          req.UserID,
		Items:           items,
		Customer:        entities.Customer(req.Customer),
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Notes:           req.Notes,
		Provider:        req.Provider,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address(a)
}

func AddressFromEntity(a entities.Address) Address {
	return Address(a)
}

func CheckoutResultToJSON(res service.CheckoutResult) CheckoutResponse {
	return CheckoutResponse(res)
}

func VerifyResultToJSON(res service.VerifyResult) VerifyResponse {
	return VerifyResponse{
		OrderID:        res.OrderID,
		OrderNumber:    res.OrderNumber,
		Provider:       res.Provider,
		Reference:      res.Reference,
		Status:         res.Status.String(),
		ProviderStatus: res.ProviderStatus,
		OrderStatus:    string(res.OrderStatus),
		PaymentStatus:  string(res.PaymentStatus),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem(item))
	}

	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		Subtotal:        o.Subtotal,
		ShippingFee:     o.ShippingFee,
		TotalAmount:     o.TotalAmount,
		Currency:        o.Currency,
		Customer:        Customer(o.Customer),
		ShippingAddress: AddressFromEntity(o.ShippingAddress),
		BillingAddress:  AddressFromEntity(o.BillingAddress),
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func HistoryToJSON(entries []entities.OrderHistoryEntry) []HistoryEntry {
	res := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, HistoryEntry{
			FromStatus:        string(e.FromStatus),
			ToStatus:          string(e.ToStatus),
			FromPaymentStatus: string(e.FromPaymentStatus),
			ToPaymentStatus:   string(e.ToPaymentStatus),
			Reason:            e.Reason,
			Actor:             e.Actor,
			CreatedAt:         e.CreatedAt,
		})
	}
	return res
}

func TransactionsToJSON(txs []entities.GatewayTransaction) []Transaction {
	res := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		res = append(res, Transaction{
			Provider:          t.Provider,
			ExternalReference: t.ExternalReference,
			ProviderStatus:    t.ProviderStatus,
			Status:            t.NormalizedStatus,
			Source:            string(t.Source),
			Amount:            t.Amount,
			Currency:          t.Currency,
			CreatedAt:         t.CreatedAt,
		})
	}
	return res
}

func AvailabilityToJSON(a service.FlashSaleAvailability) Availability {
	return Availability(a)
}
