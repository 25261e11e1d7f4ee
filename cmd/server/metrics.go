package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderboard_orders_registered_total",
		Help: "Orders accepted into the registry.",
	})
	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderboard_orders_cancelled_total",
		Help: "Cancel requests processed, including idempotent no-ops.",
	})
	boardsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderboard_boards_computed_total",
		Help: "Live order board views computed.",
	})
	liveOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderboard_live_orders",
		Help: "Orders currently registered.",
	})
)
