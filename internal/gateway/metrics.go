package gateway

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "checkout_service",
	Subsystem: "gateway",
	Name:      "request_duration_seconds",
	Help:      "Latency of payment gateway calls.",
	Buckets:   prometheus.DefBuckets,
}, []string{"provider", "operation", "outcome"})

func observeRequest(provider, op string, err error, d time.Duration) {
	gatewayRequestDuration.WithLabelValues(provider, op, outcome(err)).Observe(d.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfig):
		return "config_error"
	case errors.Is(err, ErrTransient):
		return "transient_error"
	case errors.Is(err, ErrRejected):
		return "rejected"
	default:
		return "error"
	}
}
