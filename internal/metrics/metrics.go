package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Price resolution metrics. Labels follow the resolution source names so
// dashboards can break down where prices actually come from.
var (
	PriceResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiport",
		Subsystem: "price",
		Name:      "resolutions_total",
		Help:      "Price resolutions by source and outcome.",
	}, []string{"source", "outcome"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiport",
		Subsystem: "price",
		Name:      "cache_total",
		Help:      "Price cache lookups by result.",
	}, []string{"result"})

	WalletScans = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "suiport",
		Subsystem: "wallet",
		Name:      "scan_duration_seconds",
		Help:      "Full wallet scan duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiport",
		Subsystem: "client",
		Name:      "http_requests_total",
		Help:      "Outbound HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "suiport",
		Subsystem: "client",
		Name:      "http_request_duration_seconds",
		Help:      "Outbound HTTP request duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	httpErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiport",
		Subsystem: "client",
		Name:      "http_request_errors_total",
		Help:      "Outbound HTTP request errors by method and path.",
	}, []string{"method", "path"})
)

// HTTPCollector adapts the outbound client's metrics hook to Prometheus.
type HTTPCollector struct{}

// NewHTTPCollector returns a collector for outbound HTTP client metrics.
func NewHTTPCollector() *HTTPCollector {
	return &HTTPCollector{}
}

func (c *HTTPCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (c *HTTPCollector) RecordRequestCount(method, path string, statusCode int) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (c *HTTPCollector) RecordRequestError(method, path string) {
	httpErrors.WithLabelValues(method, path).Inc()
}
