package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cartCfg = service.CartConfig{
	ShippingThreshold: 50000,
	ShippingFee:       1500,
	MaxItemQuantity:   10,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCartValidator_Validate(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockCatalogRepo)

	now := time.Now()
	shirt := entities.Product{ID: "p1", VendorID: "v1", Name: "Shirt", Price: 12000, Quantity: 5, TrackStock: true, IsActive: true}
	poster := entities.Product{ID: "p2", VendorID: "v2", Name: "Poster", Price: 30000, IsActive: true}
	running := entities.FlashSaleAllocation{
		ID: "fsp1", FlashSaleID: "fs1", ProductID: "p1", SalePrice: 9000,
		MaxQuantity: 3, SoldQuantity: 1, IsActive: true,
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
	}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		items        []entities.CartItem
		mockBehavior MockBehavior
		want         entities.ValidatedCart
		wantErr      error
	}{
		{
			name:         "Empty cart",
			items:        nil,
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrEmptyCart,
		},
		{
			name:  "Catalog prices and shipping fee",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 2, ClaimedPrice: 1}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
			},
			want: entities.ValidatedCart{
				Items: []entities.OrderItem{
					{ProductID: "p1", VendorID: "v1", Name: "Shirt", Quantity: 2, UnitPrice: 12000, LineTotal: 24000},
				},
				Subtotal:    24000,
				ShippingFee: 1500,
				Total:       25500,
			},
		},
		{
			name: "Free shipping from threshold",
			items: []entities.CartItem{
				{ProductID: "p1", Quantity: 1},
				{ProductID: "p2", Quantity: 2},
			},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
				catalog.EXPECT().GetProduct(mock.Anything, "p2").Return(poster, nil)
			},
			want: entities.ValidatedCart{
				Items: []entities.OrderItem{
					{ProductID: "p1", VendorID: "v1", Name: "Shirt", Quantity: 1, UnitPrice: 12000, LineTotal: 12000},
					{ProductID: "p2", VendorID: "v2", Name: "Poster", Quantity: 2, UnitPrice: 30000, LineTotal: 60000},
				},
				Subtotal: 72000,
				Total:    72000,
			},
		},
		{
			name:  "Flash sale price",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 2, FlashSaleProductID: "fsp1"}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
				catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "fsp1").Return(running, nil)
			},
			want: entities.ValidatedCart{
				Items: []entities.OrderItem{
					{ProductID: "p1", VendorID: "v1", Name: "Shirt", Quantity: 2, UnitPrice: 9000, LineTotal: 18000, FlashSaleProductID: "fsp1"},
				},
				Subtotal:    18000,
				ShippingFee: 1500,
				Total:       19500,
			},
		},
		{
			name:  "Zero quantity",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 0}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
			},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:  "Quantity above limit",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 11}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
			},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:  "Unknown product with zero quantity",
			items: []entities.CartItem{{ProductID: "missing", Quantity: 0, ClaimedPrice: 5}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "missing").Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "Inactive product with quantity above limit",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 500}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				inactive := shirt
				inactive.IsActive = false
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(inactive, nil)
			},
			wantErr: entities.ErrProductInactive,
		},
		{
			name:  "Unknown product",
			items: []entities.CartItem{{ProductID: "nope", Quantity: 1}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "nope").Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "Inactive product",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 1}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				inactive := shirt
				inactive.IsActive = false
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(inactive, nil)
			},
			wantErr: entities.ErrProductInactive,
		},
		{
			name:  "Insufficient stock",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 6}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "Untracked stock is unlimited",
			items: []entities.CartItem{{ProductID: "p2", Quantity: 10}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p2").Return(poster, nil)
			},
			want: entities.ValidatedCart{
				Items: []entities.OrderItem{
					{ProductID: "p2", VendorID: "v2", Name: "Poster", Quantity: 10, UnitPrice: 30000, LineTotal: 300000},
				},
				Subtotal: 300000,
				Total:    300000,
			},
		},
		{
			name:  "Flash sale exhausted",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 3, FlashSaleProductID: "fsp1"}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
				catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "fsp1").Return(running, nil)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "Flash sale over",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 1, FlashSaleProductID: "fsp1"}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				ended := running
				ended.EndsAt = now.Add(-time.Minute)
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(shirt, nil)
				catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "fsp1").Return(ended, nil)
			},
			wantErr: entities.ErrFlashSaleInactive,
		},
		{
			name:  "Flash sale of another product",
			items: []entities.CartItem{{ProductID: "p2", Quantity: 1, FlashSaleProductID: "fsp1"}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p2").Return(poster, nil)
				catalog.EXPECT().GetFlashSaleProduct(mock.Anything, "fsp1").Return(running, nil)
			},
			wantErr: entities.ErrFlashSaleNotFound,
		},
		{
			name: "Stops at first failing line",
			items: []entities.CartItem{
				{ProductID: "nope", Quantity: 1},
				{ProductID: "p1", Quantity: 1},
			},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "nope").Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "Catalog error",
			items: []entities.CartItem{{ProductID: "p1", Quantity: 1}},
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(entities.Product{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogRepo(t)
			tc.mockBehavior(catalog)

			v := service.NewCartValidator(discardLogger(), catalog, cartCfg)
			got, err := v.Validate(context.Background(), tc.items)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCartValidator_Shipping(t *testing.T) {
	v := service.NewCartValidator(discardLogger(), mocks.NewMockCatalogRepo(t), cartCfg)

	assert.Equal(t, int64(1500), v.Shipping(0))
	assert.Equal(t, int64(1500), v.Shipping(49999))
	assert.Equal(t, int64(0), v.Shipping(50000))
	assert.Equal(t, int64(0), v.Shipping(120000))
}

func TestCartValidator_TotalsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("total is the sum of catalog lines plus shipping", prop.ForAll(
		func(prices []int64, qty int) bool {
			catalog := mocks.NewMockCatalogRepo(t)
			items := make([]entities.CartItem, 0, len(prices))
			var subtotal int64
			for i, price := range prices {
				id := string(rune('a' + i))
				catalog.EXPECT().GetProduct(mock.Anything, id).
					Return(entities.Product{ID: id, Price: price, IsActive: true}, nil).Maybe()
				// claimed price is ignored
				items = append(items, entities.CartItem{ProductID: id, Quantity: qty, ClaimedPrice: 1})
				subtotal += price * int64(qty)
			}

			v := service.NewCartValidator(discardLogger(), catalog, cartCfg)
			cart, err := v.Validate(context.Background(), items)
			if err != nil {
				return false
			}
			return cart.Subtotal == subtotal &&
				cart.Total == cart.Subtotal+cart.ShippingFee &&
				cart.ShippingFee == v.Shipping(subtotal)
		},
		gen.SliceOfN(5, gen.Int64Range(1, 100000)).SuchThat(func(s []int64) bool { return len(s) > 0 }),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
