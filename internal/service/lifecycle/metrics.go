package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Committed order status transitions",
		},
		[]string{"from", "to"},
	)

	SettlementAnomaliesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_anomalies_total",
			Help: "Deliveries completed without crediting the courier because the courier record was missing",
		},
	)
)
