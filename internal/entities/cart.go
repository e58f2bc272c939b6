package entities

import "time"

// CartItem is what the client submits. Nothing in it is trusted except the
// identifiers and the requested quantity.
type CartItem struct {
	ProductID          string
	Quantity           int
	ClaimedPrice       int64
	FlashSaleProductID string
}

type ValidatedCart struct {
	Items       []OrderItem
	Subtotal    int64
	ShippingFee int64
	Total       int64
}

type Product struct {
	ID         string
	VendorID   string
	Name       string
	Price      int64
	Quantity   int
	TrackStock bool
	IsActive   bool
}

// FlashSaleAllocation is the capped share of a product sold during a flash sale.
type FlashSaleAllocation struct {
	ID           string
	FlashSaleID  string
	ProductID    string
	SalePrice    int64
	MaxQuantity  int
	SoldQuantity int
	StartsAt     time.Time
	EndsAt       time.Time
	IsActive     bool
}

// Running reports whether the sale accepts purchases at t.
func (a FlashSaleAllocation) Running(t time.Time) bool {
	return a.IsActive && !t.Before(a.StartsAt) && t.Before(a.EndsAt)
}

// Available is min(product stock, remaining allocation), never negative.
func (a FlashSaleAllocation) Available(productQuantity int) int {
	return max(0, min(productQuantity, a.MaxQuantity-a.SoldQuantity))
}
