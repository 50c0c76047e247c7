package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	claimWon      = "won"
	claimConflict = "conflict"
	claimNotFound = "not_found"
	claimError    = "error"
)

var ClaimsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_claims_total",
		Help: "Delivery claim attempts by outcome",
	},
	[]string{"result"},
)
