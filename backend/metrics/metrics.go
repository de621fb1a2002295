package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Row outcomes reported by the CSV loader.
const (
	RowLoaded     = "loaded"
	RowMalformed  = "malformed"
	RowUnparsable = "unparsable"
)

var (
	CSVRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "presence_csv_rows_total",
		Help: "Presence CSV rows read, by outcome",
	}, []string{"result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "presence_http_requests_total",
		Help: "HTTP requests served",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "presence_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
