package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ordersPlacedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kiosk_orders_placed_total",
	Help: "Total number of successfully placed orders",
})

var orderRejectionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kiosk_order_rejections_total",
	Help: "Total number of rejected order requests, partitioned by rejection reason",
}, []string{"reason"})
