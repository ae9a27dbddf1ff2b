package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artistscope_http_requests_total",
		Help: "Artist query requests by route and status code.",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artistscope_http_request_duration_seconds",
		Help:    "Artist query latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	datasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "artistscope_dataset_rows",
		Help: "Rows in the loaded dataset snapshot.",
	})
)

// instrument records count and latency for one named route.
func instrument(route string, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		fn(rec, r)
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}
