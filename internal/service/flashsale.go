package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
)

type StockRepo interface {
	// ReserveFlashSale must decrement the allocation and the product with
	// conditional updates; a shortfall returns entities.ErrInsufficientStock.
	ReserveFlashSale(ctx context.Context, id string, qty int) error
	ReleaseFlashSale(ctx context.Context, id string, qty int) error
}

type FlashSaleAvailability struct {
	FlashSaleProductID string
	FlashSaleID        string
	ProductID          string
	SalePrice          int64
	MaxQuantity        int
	SoldQuantity       int
	Available          int
	Running            bool
	StartsAt           time.Time
	EndsAt             time.Time
}

type flashSaleService struct {
	logger    *slog.Logger
	txManager trm.Manager
	catalog   CatalogRepo
	stock     StockRepo
	now       func() time.Time
}

func NewFlashSaleService(logger *slog.Logger, txManager trm.Manager, catalog CatalogRepo, stock StockRepo) *flashSaleService {
	return &flashSaleService{
		logger:    logger.With(slog.String("service", "flash_sale")),
		txManager: txManager,
		catalog:   catalog,
		stock:     stock,
		now:       time.Now,
	}
}

// Reserve takes qty units of the allocation. Joined to the caller's
// transaction when there is one.
func (s *flashSaleService) Reserve(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return entities.ErrInvalidQuantity
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.stock.ReserveFlashSale(ctx, id, qty)
	})

	switch {
	case err == nil:
		flashSaleReservations.WithLabelValues("reserved").Inc()
		s.logger.DebugContext(ctx, "flash sale reserved", slog.String("flash_sale_product_id", id), slog.Int("quantity", qty))
		return nil
	case errors.Is(err, entities.ErrInsufficientStock):
		flashSaleReservations.WithLabelValues("sold_out").Inc()
		return err
	case errors.Is(err, entities.ErrFlashSaleNotFound):
		flashSaleReservations.WithLabelValues("not_found").Inc()
		return err
	default:
		flashSaleReservations.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: reserve flash sale: %w", entities.ErrPersistence, err)
	}
}

// Release hands qty units back, e.g. when the order that held them is cancelled.
func (s *flashSaleService) Release(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return entities.ErrInvalidQuantity
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.stock.ReleaseFlashSale(ctx, id, qty)
	})
	if err != nil {
		return fmt.Errorf("release flash sale %s: %w", id, err)
	}
	flashSaleReservations.WithLabelValues("released").Inc()
	return nil
}

func (s *flashSaleService) Availability(ctx context.Context, id string) (FlashSaleAvailability, error) {
	alloc, err := s.catalog.GetFlashSaleProduct(ctx, id)
	if err != nil {
		return FlashSaleAvailability{}, err
	}
	product, err := s.catalog.GetProduct(ctx, alloc.ProductID)
	if err != nil {
		return FlashSaleAvailability{}, err
	}

	running := alloc.Running(s.now())
	available := 0
	if running {
		available = alloc.Available(product.Quantity)
	}

	return FlashSaleAvailability{
		FlashSaleProductID: alloc.ID,
		FlashSaleID:        alloc.FlashSaleID,
		ProductID:          alloc.ProductID,
		SalePrice:          alloc.SalePrice,
		MaxQuantity:        alloc.MaxQuantity,
		SoldQuantity:       alloc.SoldQuantity,
		Available:          available,
		Running:            running,
		StartsAt:           alloc.StartsAt,
		EndsAt:             alloc.EndsAt,
	}, nil
}
