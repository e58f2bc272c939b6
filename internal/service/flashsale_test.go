package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	txMocks "github.com/SergeyBogomolovv/checkout-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFlashSaleService_Reserve(t *testing.T) {
	type MockBehavior func(stock *mocks.MockStockRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		qty          int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			qty:  2,
			mockBehavior: func(stock *mocks.MockStockRepo) {
				stock.EXPECT().ReserveFlashSale(mock.Anything, "fsp1", 2).Return(nil)
			},
		},
		{
			name:         "Invalid quantity",
			qty:          0,
			mockBehavior: func(stock *mocks.MockStockRepo) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "Sold out",
			qty:  1,
			mockBehavior: func(stock *mocks.MockStockRepo) {
				stock.EXPECT().ReserveFlashSale(mock.Anything, "fsp1", 1).Return(entities.ErrInsufficientStock)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "Unknown allocation",
			qty:  1,
			mockBehavior: func(stock *mocks.MockStockRepo) {
				stock.EXPECT().ReserveFlashSale(mock.Anything, "fsp1", 1).Return(entities.ErrFlashSaleNotFound)
			},
			wantErr: entities.ErrFlashSaleNotFound,
		},
		{
			name: "Storage failure",
			qty:  1,
			mockBehavior: func(stock *mocks.MockStockRepo) {
				stock.EXPECT().ReserveFlashSale(mock.Anything, "fsp1", 1).Return(dbError)
			},
			wantErr: entities.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stock := mocks.NewMockStockRepo(t)
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()

			tc.mockBehavior(stock)

			svc := service.NewFlashSaleService(discardLogger(), tx, mocks.NewMockCatalogRepo(t), stock)
			err := svc.Reserve(context.Background(), "fsp1", tc.qty)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFlashSaleService_Availability(t *testing.T) {
	now := time.Now()
	product := entities.Product{ID: "p1", Quantity: 4, IsActive: true}
	alloc := entities.FlashSaleAllocation{
		ID: "fsp1", FlashSaleID: "fs1", ProductID: "p1", SalePrice: 500,
		MaxQuantity: 10, SoldQuantity: 3, IsActive: true,
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
	}

	t.Run("Running sale is capped by stock", func(t *testing.T) {
		catalog := mocks.NewMockCatalogRepo(t)
		catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "fsp1").Return(alloc, nil)
		catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil)

		svc := service.NewFlashSaleService(discardLogger(), trm.NewNoopManager(), catalog, mocks.NewMockStockRepo(t))
		got, err := svc.Availability(context.Background(), "fsp1")
		require.NoError(t, err)
		assert.True(t, got.Running)
		assert.Equal(t, 4, got.Available)
		assert.Equal(t, 3, got.SoldQuantity)
	})

	t.Run("Nothing available before start", func(t *testing.T) {
		future := alloc
		future.StartsAt = now.Add(time.Hour)
		future.EndsAt = now.Add(2 * time.Hour)

		catalog := mocks.NewMockCatalogRepo(t)
		catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "fsp1").Return(future, nil)
		catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil)

		svc := service.NewFlashSaleService(discardLogger(), trm.NewNoopManager(), catalog, mocks.NewMockStockRepo(t))
		got, err := svc.Availability(context.Background(), "fsp1")
		require.NoError(t, err)
		assert.False(t, got.Running)
		assert.Zero(t, got.Available)
	})

	t.Run("Unknown allocation", func(t *testing.T) {
		catalog := mocks.NewMockCatalogRepo(t)
		catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "nope").Return(entities.FlashSaleAllocation{}, entities.ErrFlashSaleNotFound)

		svc := service.NewFlashSaleService(discardLogger(), trm.NewNoopManager(), catalog, mocks.NewMockStockRepo(t))
		_, err := svc.Availability(context.Background(), "nope")
		assert.ErrorIs(t, err, entities.ErrFlashSaleNotFound)
	})
}

func TestFlashSaleService_ConcurrentReservations(t *testing.T) {
	const (
		maxQuantity = 10
		buyers      = 64
	)

	store := repo.NewMemoryRepo()
	store.PutProduct(entities.Product{ID: "p1", Quantity: 100, TrackStock: true, IsActive: true})
	store.PutFlashSaleProduct(entities.FlashSaleAllocation{ID: "fsp1", ProductID: "p1", MaxQuantity: maxQuantity, IsActive: true})

	svc := service.NewFlashSaleService(discardLogger(), trm.NewNoopManager(), store, store)

	var (
		wg      sync.WaitGroup
		ok      atomic.Int32
		soldOut atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := svc.Reserve(context.Background(), "fsp1", 1)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, entities.ErrInsufficientStock):
				soldOut.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(maxQuantity), ok.Load())
	assert.Equal(t, int32(buyers-maxQuantity), soldOut.Load())

	alloc, err := store.GetFlashSaleProduct(context.Background(), "fsp1")
	require.NoError(t, err)
	product, err := store.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, maxQuantity, alloc.SoldQuantity)
	assert.Equal(t, 100-maxQuantity, product.Quantity)
}

func TestFlashSaleService_Release(t *testing.T) {
	store := repo.NewMemoryRepo()
	store.PutProduct(entities.Product{ID: "p1", Quantity: 5, TrackStock: true, IsActive: true})
	store.PutFlashSaleProduct(entities.FlashSaleAllocation{ID: "fsp1", ProductID: "p1", MaxQuantity: 2, IsActive: true})

	svc := service.NewFlashSaleService(discardLogger(), trm.NewNoopManager(), store, store)
	ctx := context.Background()

	require.NoError(t, svc.Reserve(ctx, "fsp1", 2))
	assert.ErrorIs(t, svc.Reserve(ctx, "fsp1", 1), entities.ErrInsufficientStock)

	require.NoError(t, svc.Release(ctx, "fsp1", 2))
	assert.NoError(t, svc.Reserve(ctx, "fsp1", 1))
	assert.ErrorIs(t, svc.Release(ctx, "fsp1", -1), entities.ErrInvalidQuantity)
}
