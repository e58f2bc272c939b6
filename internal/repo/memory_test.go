package repo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_UpdateStatusIf(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	require.NoError(t, r.CreateOrder(ctx, entities.Order{
		ID:            "o1",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
	}))

	pending := entities.OrderState{Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending}
	paid := entities.OrderState{Status: entities.OrderStatusConfirmed, PaymentStatus: entities.PaymentStatusPaid}
	failed := entities.OrderState{Status: entities.OrderStatusCancelled, PaymentStatus: entities.PaymentStatusFailed}

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			to := paid
			if i%2 == 0 {
				to = failed
			}
			ok, err := r.UpdateStatusIf(ctx, "o1", pending, to)
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	ok, err := r.UpdateStatusIf(ctx, "missing", pending, paid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryRepo_References(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	base := time.Now()

	require.NoError(t, r.SaveReference(ctx, entities.PaymentReference{Provider: "cardpay", ExternalReference: "cs_1", OrderID: "o1", CreatedAt: base}))
	require.NoError(t, r.SaveReference(ctx, entities.PaymentReference{Provider: "momo", ExternalReference: "m_1", OrderID: "o1", CreatedAt: base.Add(time.Minute)}))
	// duplicate mapping is ignored
	require.NoError(t, r.SaveReference(ctx, entities.PaymentReference{Provider: "cardpay", ExternalReference: "cs_1", OrderID: "o2", CreatedAt: base}))

	ref, err := r.FindReference(ctx, "", "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "o1", ref.OrderID)

	_, err = r.FindReference(ctx, "momo", "cs_1")
	assert.ErrorIs(t, err, entities.ErrReferenceNotFound)

	latest, err := r.LatestReference(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "m_1", latest.ExternalReference)
}

func TestMemoryRepo_FindOrderByNote(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	base := time.Now()

	require.NoError(t, r.CreateOrder(ctx, entities.Order{ID: "old", Notes: "paid via link ref=abc", CreatedAt: base}))
	require.NoError(t, r.CreateOrder(ctx, entities.Order{ID: "new", Notes: "retry ref=abc", CreatedAt: base.Add(time.Hour)}))

	o, err := r.FindOrderByNote(ctx, "ref=abc")
	require.NoError(t, err)
	assert.Equal(t, "new", o.ID)

	_, err = r.FindOrderByNote(ctx, "ref=zzz")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestMemoryRepo_ListStalePending(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	now := time.Now()

	orders := []entities.Order{
		{ID: "a", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "b", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending, CreatedAt: now.Add(-30 * time.Hour)},
		{ID: "boundary", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "almost", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending, CreatedAt: now.Add(-24*time.Hour + time.Second)},
		{ID: "fresh", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending, CreatedAt: now.Add(-time.Hour)},
		{ID: "paid", Status: entities.OrderStatusConfirmed, PaymentStatus: entities.PaymentStatusPaid, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: "cancelled", Status: entities.OrderStatusCancelled, PaymentStatus: entities.PaymentStatusPending, CreatedAt: now.Add(-72 * time.Hour)},
	}
	for _, o := range orders {
		require.NoError(t, r.CreateOrder(ctx, o))
	}

	ids, err := r.ListStalePending(ctx, now.Add(-24*time.Hour), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "boundary"}, ids)

	ids, err = r.ListStalePending(ctx, now.Add(-24*time.Hour), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestMemoryRepo_ReserveAndRelease(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	r.PutProduct(entities.Product{ID: "p1", Quantity: 5, TrackStock: true, IsActive: true})
	r.PutFlashSaleProduct(entities.FlashSaleAllocation{ID: "fsp1", ProductID: "p1", MaxQuantity: 3})

	require.NoError(t, r.ReserveFlashSale(ctx, "fsp1", 2))
	assert.ErrorIs(t, r.ReserveFlashSale(ctx, "fsp1", 2), entities.ErrInsufficientStock)
	assert.ErrorIs(t, r.ReserveFlashSale(ctx, "nope", 1), entities.ErrFlashSaleNotFound)

	a, err := r.GetFlashSaleProduct(ctx, "fsp1")
	require.NoError(t, err)
	p, err := r.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, a.SoldQuantity)
	assert.Equal(t, 3, p.Quantity)

	require.NoError(t, r.ReleaseFlashSale(ctx, "fsp1", 2))
	a, _ = r.GetFlashSaleProduct(ctx, "fsp1")
	p, _ = r.GetProduct(ctx, "p1")
	assert.Equal(t, 0, a.SoldQuantity)
	assert.Equal(t, 5, p.Quantity)
}
