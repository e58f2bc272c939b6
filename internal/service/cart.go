package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type CatalogRepo interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	GetFlashSaleProduct(ctx context.Context, id string) (entities.FlashSaleAllocation, error)
}

type CartConfig struct {
	ShippingThreshold int64
	ShippingFee       int64
	MaxItemQuantity   int
	PriceTolerance    int64
}

type CartValidator struct {
	logger  *slog.Logger
	catalog CatalogRepo
	cfg     CartConfig
	now     func() time.Time
}

func NewCartValidator(logger *slog.Logger, catalog CatalogRepo, cfg CartConfig) *CartValidator {
	return &CartValidator{
		logger:  logger.With(slog.String("service", "cart")),
		catalog: catalog,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Validate prices the cart from the catalog and checks quantities and stock.
// It stops at the first failing line and has no side effects.
func (v *CartValidator) Validate(ctx context.Context, items []entities.CartItem) (entities.ValidatedCart, error) {
	if len(items) == 0 {
		return entities.ValidatedCart{}, entities.ErrEmptyCart
	}

	cart := entities.ValidatedCart{Items: make([]entities.OrderItem, 0, len(items))}
	for i, item := range items {
		line, err := v.validateItem(ctx, item)
		if err != nil {
			return entities.ValidatedCart{}, fmt.Errorf("item %d (%s): %w", i, item.ProductID, err)
		}
		cart.Items = append(cart.Items, line)
		cart.Subtotal += line.LineTotal
	}

	cart.ShippingFee = v.Shipping(cart.Subtotal)
	cart.Total = cart.Subtotal + cart.ShippingFee
	return cart, nil
}

// Shipping is free from the threshold upwards and flat below it.
func (v *CartValidator) Shipping(subtotal int64) int64 {
	if subtotal >= v.cfg.ShippingThreshold {
		return 0
	}
	return v.cfg.ShippingFee
}

func (v *CartValidator) validateItem(ctx context.Context, item entities.CartItem) (entities.OrderItem, error) {
	product, err := v.catalog.GetProduct(ctx, item.ProductID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if !product.IsActive {
		return entities.OrderItem{}, entities.ErrProductInactive
	}
	if item.Quantity <= 0 || item.Quantity > v.cfg.MaxItemQuantity {
		return entities.OrderItem{}, fmt.Errorf("%w: %d not in 1..%d", entities.ErrInvalidQuantity, item.Quantity, v.cfg.MaxItemQuantity)
	}

	price := product.Price
	if item.FlashSaleProductID != "" {
		price, err = v.flashSalePrice(ctx, item, product)
		if err != nil {
			return entities.OrderItem{}, err
		}
	} else if product.TrackStock && product.Quantity < item.Quantity {
		return entities.OrderItem{}, fmt.Errorf("%w: %d requested, %d left", entities.ErrInsufficientStock, item.Quantity, product.Quantity)
	}

	if item.ClaimedPrice != 0 && abs(item.ClaimedPrice-price) > v.cfg.PriceTolerance {
		priceTampering.Inc()
		v.logger.WarnContext(ctx, "suspected price tampering",
			slog.String("product_id", product.ID),
			slog.Int64("claimed_price", item.ClaimedPrice),
			slog.Int64("catalog_price", price),
		)
	}

	return entities.OrderItem{
		ProductID:          product.ID,
		VendorID:           product.VendorID,
		Name:               product.Name,
		Quantity:           item.Quantity,
		UnitPrice:          price,
		LineTotal:          price * int64(item.Quantity),
		FlashSaleProductID: item.FlashSaleProductID,
	}, nil
}

// flashSalePrice checks the allocation read-only; the ledger does the real
// decrement when the order is created.
func (v *CartValidator) flashSalePrice(ctx context.Context, item entities.CartItem, product entities.Product) (int64, error) {
	alloc, err := v.catalog.GetFlashSaleProduct(ctx, item.FlashSaleProductID)
	if err != nil {
		return 0, err
	}
	if alloc.ProductID != product.ID {
		return 0, fmt.Errorf("%w: allocation belongs to another product", entities.ErrFlashSaleNotFound)
	}
	if !alloc.Running(v.now()) {
		return 0, entities.ErrFlashSaleInactive
	}
	if available := alloc.Available(product.Quantity); item.Quantity > available {
		return 0, fmt.Errorf("%w: %d requested, %d available", entities.ErrInsufficientStock, item.Quantity, available)
	}
	return alloc.SalePrice, nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
