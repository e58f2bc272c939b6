package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type Order struct {
	ID              string         `db:"id"`
	OrderNumber     string         `db:"order_number"`
	UserID          sql.NullString `db:"user_id"`
	Status          string         `db:"status"`
	PaymentStatus   string         `db:"payment_status"`
	Subtotal        int64          `db:"subtotal"`
	ShippingFee     int64          `db:"shipping_fee"`
	TotalAmount     int64          `db:"total_amount"`
	Currency        string         `db:"currency"`
	CustomerName    string         `db:"customer_name"`
	CustomerEmail   string         `db:"customer_email"`
	CustomerPhone   sql.NullString `db:"customer_phone"`
	ShippingAddress []byte         `db:"shipping_address"`
	BillingAddress  []byte         `db:"billing_address"`
	Notes           sql.NullString `db:"notes"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID            string         `db:"order_id"`
	ProductID          string         `db:"product_id"`
	VendorID           string         `db:"vendor_id"`
	Name               string         `db:"name"`
	Quantity           int            `db:"quantity"`
	UnitPrice          int64          `db:"unit_price"`
	LineTotal          int64          `db:"line_total"`
	FlashSaleProductID sql.NullString `db:"flash_sale_product_id"`
}

type History struct {
	OrderID           string    `db:"order_id"`
	FromStatus        string    `db:"from_status"`
	ToStatus          string    `db:"to_status"`
	FromPaymentStatus string    `db:"from_payment_status"`
	ToPaymentStatus   string    `db:"to_payment_status"`
	Reason            string    `db:"reason"`
	Actor             string    `db:"actor"`
	CreatedAt         time.Time `db:"created_at"`
}

type Transaction struct {
	OrderID           string    `db:"order_id"`
	Provider          string    `db:"provider"`
	ExternalReference string    `db:"external_reference"`
	ProviderStatus    string    `db:"provider_status"`
	NormalizedStatus  string    `db:"normalized_status"`
	Source            string    `db:"source"`
	Amount            int64     `db:"amount"`
	Currency          string    `db:"currency"`
	RawPayload        []byte    `db:"raw_payload"`
	CreatedAt         time.Time `db:"created_at"`
}

type Reference struct {
	Provider          string    `db:"provider"`
	ExternalReference string    `db:"external_reference"`
	OrderID           string    `db:"order_id"`
	CreatedAt         time.Time `db:"created_at"`
}

type Product struct {
	ID         string `db:"id"`
	VendorID   string `db:"vendor_id"`
	Name       string `db:"name"`
	Price      int64  `db:"price"`
	Quantity   int    `db:"quantity"`
	TrackStock bool   `db:"track_stock"`
	IsActive   bool   `db:"is_active"`
}

type FlashSaleProduct struct {
	ID           string    `db:"id"`
	FlashSaleID  string    `db:"flash_sale_id"`
	ProductID    string    `db:"product_id"`
	SalePrice    int64     `db:"sale_price"`
	MaxQuantity  int       `db:"max_quantity"`
	SoldQuantity int       `db:"sold_quantity"`
	StartsAt     time.Time `db:"starts_at"`
	EndsAt       time.Time `db:"ends_at"`
	IsActive     bool      `db:"is_active"`
}

// address is the JSONB shape of entities.Address.
type address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

func addressToJSON(a entities.Address) ([]byte, error) {
	if a == (entities.Address{}) {
		return nil, nil
	}
	return json.Marshal(address(a))
}

func addressFromJSON(data []byte) (entities.Address, error) {
	if len(data) == 0 {
		return entities.Address{}, nil
	}
	var a address
	if err := json.Unmarshal(data, &a); err != nil {
		return entities.Address{}, err
	}
	return entities.Address(a), nil
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	shipping, err := addressFromJSON(o.ShippingAddress)
	if err != nil {
		return entities.Order{}, err
	}
	billing, err := addressFromJSON(o.BillingAddress)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        nullStringToString(o.UserID),
		Status:        entities.OrderStatus(o.Status),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		TotalAmount:   o.TotalAmount,
		Currency:      o.Currency,
		Customer: entities.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: nullStringToString(o.CustomerPhone),
		},
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Notes:           nullStringToString(o.Notes),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}
	return order, nil
}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ProductID:          i.ProductID,
		VendorID:           i.VendorID,
		Name:               i.Name,
		Quantity:           i.Quantity,
		UnitPrice:          i.UnitPrice,
		LineTotal:          i.LineTotal,
		FlashSaleProductID: nullStringToString(i.FlashSaleProductID),
	}
}

func HistoryToEntity(h History) entities.OrderHistoryEntry {
	return entities.OrderHistoryEntry{
		OrderID:           h.OrderID,
		FromStatus:        entities.OrderStatus(h.FromStatus),
		ToStatus:          entities.OrderStatus(h.ToStatus),
		FromPaymentStatus: entities.PaymentStatus(h.FromPaymentStatus),
		ToPaymentStatus:   entities.PaymentStatus(h.ToPaymentStatus),
		Reason:            h.Reason,
		Actor:             h.Actor,
		CreatedAt:         h.CreatedAt,
	}
}

func TransactionToEntity(t Transaction) entities.GatewayTransaction {
	return entities.GatewayTransaction{
		OrderID:           t.OrderID,
		Provider:          t.Provider,
		ExternalReference: t.ExternalReference,
		ProviderStatus:    t.ProviderStatus,
		NormalizedStatus:  t.NormalizedStatus,
		Source:            entities.TransactionSource(t.Source),
		Amount:            t.Amount,
		Currency:          t.Currency,
		RawPayload:        t.RawPayload,
		CreatedAt:         t.CreatedAt,
	}
}

func ReferenceToEntity(r Reference) entities.PaymentReference {
	return entities.PaymentReference(r)
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product(p)
}

func FlashSaleProductToEntity(f FlashSaleProduct) entities.FlashSaleAllocation {
	return entities.FlashSaleAllocation(f)
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullJSON binds a JSONB parameter. lib/pq would send []byte as bytea.
func nullJSON(data []byte) any {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}
