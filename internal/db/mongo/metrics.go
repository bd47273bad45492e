package db

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreLatency records how long each store operation takes
var StoreLatency = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "job_board_store_latency_seconds",
		Help:    "Store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

func observe(operation string, start time.Time) {
	StoreLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
