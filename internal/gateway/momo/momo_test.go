package momo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway/momo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, h http.HandlerFunc) *momo.Adapter {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return momo.New(momo.Config{
		APIKey: "tok",
		Client: gateway.ClientConfig{BaseURL: srv.URL, Timeout: time.Second},
	})
}

func TestAdapter_InitCheckout(t *testing.T) {
	a := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/get_payment_link/", r.URL.Path)
		assert.Equal(t, "Token tok", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1500", body["amount"])
		assert.Equal(t, "ORD-2", body["external_reference"])

		_, _ = w.Write([]byte(`{"link":"https://momo.example/pay/abc","reference":"abc"}`))
	})

	s, err := a.InitCheckout(context.Background(), gateway.CheckoutRequest{Amount: 1500, Currency: "XAF", OrderReference: "ORD-2"})
	require.NoError(t, err)
	assert.Equal(t, "abc", s.ExternalReference)
	assert.Equal(t, "https://momo.example/pay/abc", s.PaymentURL)
}

func TestAdapter_InitCheckout_ServerError(t *testing.T) {
	a := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := a.InitCheckout(context.Background(), gateway.CheckoutRequest{Amount: 1500})
	assert.ErrorIs(t, err, gateway.ErrTransient)
}

func TestAdapter_GetStatus(t *testing.T) {
	testCases := []struct {
		native           string
		want             gateway.Status
		wantUnrecognized bool
	}{
		{native: "SUCCESSFUL", want: gateway.StatusSuccessful},
		{native: "successful", want: gateway.StatusSuccessful},
		{native: "FAILED", want: gateway.StatusFailed},
		{native: "PENDING", want: gateway.StatusPending},
		{native: "REVERSED", want: gateway.StatusPending, wantUnrecognized: true},
	}

	for _, tc := range testCases {
		t.Run(tc.native, func(t *testing.T) {
			a := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/transaction/abc/", r.URL.Path)
				_, _ = w.Write([]byte(`{"reference":"abc","external_reference":"ORD-2","status":"` + tc.native + `","amount":"1500","currency":"XAF"}`))
			})

			res, err := a.GetStatus(context.Background(), "abc")
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Status)
			assert.Equal(t, tc.wantUnrecognized, res.Unrecognized)
			assert.Equal(t, int64(1500), res.Amount)
			assert.Equal(t, "ORD-2", res.OrderReference)
		})
	}
}

func TestAdapter_ParseWebhook(t *testing.T) {
	a := momo.New(momo.Config{APIKey: "tok"})

	res, err := a.ParseWebhook([]byte(`{"reference":"abc","status":"FAILED","amount":1500,"currency":"XAF"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", res.ExternalReference)
	assert.Equal(t, gateway.StatusFailed, res.Status)

	_, err = a.ParseWebhook([]byte(`{"status":"FAILED"}`))
	assert.ErrorIs(t, err, gateway.ErrInvalidPayload)
}
