package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitioner_Apply(t *testing.T) {
	order := entities.Order{
		ID:            "o1",
		OrderNumber:   "ORD-20260301-ABCDEF12",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		Customer:      entities.Customer{Email: "ada@example.com"},
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 2, FlashSaleProductID: "fsp1"},
		},
	}
	dbErr := errors.New("db down")

	type deps struct {
		repo     *mocks.MockOrderRepo
		ledger   *mocks.MockLedger
		cache    *mocks.MockCache
		notifier *mocks.MockNotifier
	}

	testCases := []struct {
		name        string
		to          entities.OrderState
		setup       func(d deps)
		wantApplied bool
		wantErr     error
	}{
		{
			name: "confirmed and notified",
			to:   paidState,
			setup: func(d deps) {
				d.repo.EXPECT().UpdateStatusIf(mock.Anything, "o1", pendingState, paidState).Return(true, nil).Once()
				d.repo.EXPECT().AppendHistory(mock.Anything, mock.MatchedBy(func(e entities.OrderHistoryEntry) bool {
					return e.OrderID == "o1" && e.ToStatus == entities.OrderStatusConfirmed &&
						e.ToPaymentStatus == entities.PaymentStatusPaid && e.Actor == "gateway"
				})).Return(nil).Once()
				d.cache.EXPECT().Delete("o1").Once()
				d.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(c entities.StatusChange) bool {
					return c.OrderID == "o1" && c.Email == "ada@example.com" && c.ToPaymentStatus == entities.PaymentStatusPaid
				})).Return(nil).Once()
			},
			wantApplied: true,
		},
		{
			name: "cancel releases flash-sale lines",
			to:   failedState,
			setup: func(d deps) {
				d.repo.EXPECT().UpdateStatusIf(mock.Anything, "o1", pendingState, failedState).Return(true, nil).Once()
				d.repo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "fsp1", 2).Return(nil).Once()
				d.cache.EXPECT().Delete("o1").Once()
				d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantApplied: true,
		},
		{
			name: "lost compare and set",
			to:   paidState,
			setup: func(d deps) {
				d.repo.EXPECT().UpdateStatusIf(mock.Anything, "o1", pendingState, paidState).Return(false, nil).Once()
			},
		},
		{
			name: "notification failure does not fail the transition",
			to:   paidState,
			setup: func(d deps) {
				d.repo.EXPECT().UpdateStatusIf(mock.Anything, "o1", pendingState, paidState).Return(true, nil).Once()
				d.repo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().Delete("o1").Once()
				d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantApplied: true,
		},
		{
			name: "history write fails",
			to:   paidState,
			setup: func(d deps) {
				d.repo.EXPECT().UpdateStatusIf(mock.Anything, "o1", pendingState, paidState).Return(true, nil).Once()
				d.repo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(dbErr).Once()
			},
			wantErr: entities.ErrPersistence,
		},
		{
			name: "release fails",
			to:   abandonedState,
			setup: func(d deps) {
				d.repo.EXPECT().UpdateStatusIf(mock.Anything, "o1", pendingState, abandonedState).Return(true, nil).Once()
				d.repo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "fsp1", 2).Return(dbErr).Once()
			},
			wantErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := deps{
				repo:     mocks.NewMockOrderRepo(t),
				ledger:   mocks.NewMockLedger(t),
				cache:    mocks.NewMockCache(t),
				notifier: mocks.NewMockNotifier(t),
			}
			tc.setup(d)

			tr := service.NewTransitioner(discardLogger(), trm.NewNoopManager(), d.repo, d.ledger, d.cache, d.notifier)
			applied, err := tr.Apply(context.Background(), order, tc.to, "test", "gateway")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, applied)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantApplied, applied)
		})
	}
}
