package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	v := gateway.Vocabulary{
		Successful: []string{"paid"},
		Failed:     []string{"failed", "expired"},
		Pending:    []string{"open"},
	}

	testCases := []struct {
		native         string
		want           gateway.Status
		wantRecognized bool
	}{
		{native: "paid", want: gateway.StatusSuccessful, wantRecognized: true},
		{native: "PAID", want: gateway.StatusSuccessful, wantRecognized: true},
		{native: " expired ", want: gateway.StatusFailed, wantRecognized: true},
		{native: "open", want: gateway.StatusPending, wantRecognized: true},
		{native: "chargeback", want: gateway.StatusPending, wantRecognized: false},
		{native: "", want: gateway.StatusPending, wantRecognized: false},
	}

	for _, tc := range testCases {
		t.Run(tc.native, func(t *testing.T) {
			assert.Equal(t, tc.want, gateway.Classify(v, tc.native))
			assert.Equal(t, tc.wantRecognized, gateway.Recognized(v, tc.native))
		})
	}
}

func TestRegistry(t *testing.T) {
	card := mocks.NewMockAdapter(t)
	card.EXPECT().Name().Return("cardpay")
	momo := mocks.NewMockAdapter(t)
	momo.EXPECT().Name().Return("momo")

	r, err := gateway.NewRegistry("cardpay", card, momo)
	require.NoError(t, err)

	got, err := r.Get("")
	require.NoError(t, err)
	assert.Same(t, card, got)

	got, err = r.Get("MOMO")
	require.NoError(t, err)
	assert.Same(t, momo, got)

	_, err = r.Get("cash")
	assert.ErrorIs(t, err, gateway.ErrUnknownProvider)

	assert.Equal(t, []string{"cardpay", "momo"}, r.Names())

	_, err = gateway.NewRegistry("paypal", card)
	assert.ErrorIs(t, err, gateway.ErrUnknownProvider)
}

func TestClient_Do(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, body: `{"id":"x"}`},
		{name: "unauthorized is config error", status: http.StatusUnauthorized, body: `{}`, wantErr: gateway.ErrConfig},
		{name: "forbidden is config error", status: http.StatusForbidden, body: `{}`, wantErr: gateway.ErrConfig},
		{name: "rate limited is transient", status: http.StatusTooManyRequests, body: `{}`, wantErr: gateway.ErrTransient},
		{name: "server error is transient", status: http.StatusBadGateway, body: `{}`, wantErr: gateway.ErrTransient},
		{name: "bad request is rejected", status: http.StatusBadRequest, body: `{}`, wantErr: gateway.ErrRejected},
		{name: "garbage body is transient", status: http.StatusOK, body: `<html>`, wantErr: gateway.ErrTransient},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "secret", r.Header.Get("X-Key"))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := gateway.NewClient(gateway.ClientConfig{Provider: "test", BaseURL: srv.URL, Timeout: time.Second})
			header := http.Header{}
			header.Set("X-Key", "secret")

			var out struct {
				ID string `json:"id"`
			}
			raw, err := c.Do(context.Background(), "test", http.MethodGet, "/thing", header, nil, &out)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", out.ID)
			assert.JSONEq(t, tc.body, string(raw))
		})
	}
}

func TestClient_BreakerOpensOnTransientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := gateway.NewClient(gateway.ClientConfig{
		Provider:         "test",
		BaseURL:          srv.URL,
		Timeout:          time.Second,
		BreakerFailures:  2,
		BreakerResetTime: time.Minute,
	})

	for i := 0; i < 4; i++ {
		_, err := c.Do(context.Background(), "test", http.MethodGet, "/", nil, nil, nil)
		assert.ErrorIs(t, err, gateway.ErrTransient)
	}
	assert.Equal(t, int32(2), calls.Load())
}
