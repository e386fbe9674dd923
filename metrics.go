package twitchdata

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "twitchdata_client",
		Name:      "requests_total",
		Help:      "API exchanges by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)
