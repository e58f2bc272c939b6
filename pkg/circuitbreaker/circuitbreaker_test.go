package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker(t *testing.T) {
	errBoom := errors.New("boom")
	errIgnored := errors.New("client error")

	tests := []struct {
		name    string
		actions func(cb *CircuitBreaker, t *testing.T)
	}{
		{
			name: "opens after max failures",
			actions: func(cb *CircuitBreaker, t *testing.T) {
				for i := 0; i < 2; i++ {
					assert.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
				}
				assert.Equal(t, StateOpen, cb.State())
				assert.ErrorIs(t, cb.Execute(func() error { return nil }), ErrCircuitOpen)
			},
		},
		{
			name: "success resets failure count",
			actions: func(cb *CircuitBreaker, t *testing.T) {
				_ = cb.Execute(func() error { return errBoom })
				_ = cb.Execute(func() error { return nil })
				_ = cb.Execute(func() error { return errBoom })
				assert.Equal(t, StateClosed, cb.State())
			},
		},
		{
			name: "ignored errors do not count",
			actions: func(cb *CircuitBreaker, t *testing.T) {
				for i := 0; i < 5; i++ {
					_ = cb.Execute(func() error { return errIgnored })
				}
				assert.Equal(t, StateClosed, cb.State())
			},
		},
		{
			name: "half-open trial closes on success",
			actions: func(cb *CircuitBreaker, t *testing.T) {
				_ = cb.Execute(func() error { return errBoom })
				_ = cb.Execute(func() error { return errBoom })
				time.Sleep(60 * time.Millisecond)
				assert.NoError(t, cb.Execute(func() error { return nil }))
				assert.Equal(t, StateClosed, cb.State())
			},
		},
		{
			name: "half-open trial reopens on failure",
			actions: func(cb *CircuitBreaker, t *testing.T) {
				_ = cb.Execute(func() error { return errBoom })
				_ = cb.Execute(func() error { return errBoom })
				time.Sleep(60 * time.Millisecond)
				_ = cb.Execute(func() error { return errBoom })
				assert.Equal(t, StateOpen, cb.State())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := New(2, 50*time.Millisecond, func(err error) bool { return !errors.Is(err, errIgnored) })
			tt.actions(cb, t)
		})
	}
}
