package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestApplication_Routes(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path string
		code int
	}{
		{"/ping", http.StatusNoContent},
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/missing", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestApplication_Lifecycle(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

	var stopped atomic.Bool
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Store(true)
		return nil
	}))

	var order []string
	a.SetClosers(
		closerFunc(func() error { order = append(order, "notifier"); return nil }),
		closerFunc(func() error { order = append(order, "db"); return errors.New("db gone") }),
	)

	require.NoError(t, a.Start(context.Background()))

	err := a.Stop()
	assert.ErrorContains(t, err, "db gone")
	assert.True(t, stopped.Load())
	assert.Equal(t, []string{"notifier", "db"}, order)
}

func TestApplication_StarterFailure(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

	boom := errors.New("boom")
	a.SetStarters(starterFunc(func(context.Context) error { return boom }))

	require.NoError(t, a.Start(context.Background()))
	assert.ErrorIs(t, a.Stop(), boom)
}
