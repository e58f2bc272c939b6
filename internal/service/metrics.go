package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created by checkout.",
	})

	orderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Accepted order state transitions.",
	}, []string{"to_status", "to_payment_status", "actor"})

	reconciliations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "reconciler",
		Name:      "results_total",
		Help:      "Gateway observations processed by the reconciler.",
	}, []string{"source", "outcome"})

	priceTampering = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "cart",
		Name:      "price_mismatch_total",
		Help:      "Cart lines whose claimed price differed from the catalog price.",
	})

	flashSaleReservations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "flash_sale",
		Name:      "reservations_total",
		Help:      "Flash-sale reservation attempts.",
	}, []string{"outcome"})
)
