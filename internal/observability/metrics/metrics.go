package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "heatrecovery_"

	resultSuccess         = "success"
	resultError           = "error"
	resultNoData          = "no_data"
	resultInvalidCostType = "invalid_cost_type"
	resultOutOfRange      = "out_of_range"
)

var (
	registerOnce sync.Once

	fetchTotal   *prometheus.CounterVec
	fetchLatency *prometheus.HistogramVec

	calculationTotal *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
)

// Init registers observability metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		fetchTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "fetch_total",
				Help: "Total latest-reading fetches by store and result",
			},
			[]string{"store", "result"},
		)
		fetchLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "fetch_latency_seconds",
				Help:    "Latest-reading fetch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"store", "result"},
		)

		calculationTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculation_total",
				Help: "Total cost calculations by cost type and result",
			},
			[]string{"cost_type", "result"},
		)

		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by path and status",
			},
			[]string{"path", "status"},
		)

		prometheus.MustRegister(
			fetchTotal,
			fetchLatency,
			calculationTotal,
			httpRequests,
		)
	})
}

// ObserveFetch records fetch duration and result.
func ObserveFetch(store, result string, duration time.Duration) {
	if store == "" {
		store = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if fetchTotal != nil {
		fetchTotal.WithLabelValues(store, result).Inc()
	}
	if fetchLatency != nil {
		fetchLatency.WithLabelValues(store, result).Observe(duration.Seconds())
	}
}

// IncCalculation increments the calculation counter. costType must be a
// canonical key or "unknown" to keep label cardinality bounded.
func IncCalculation(costType, result string) {
	if costType == "" {
		costType = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if calculationTotal != nil {
		calculationTotal.WithLabelValues(costType, result).Inc()
	}
}

// IncHTTPRequest increments the HTTP request counter.
func IncHTTPRequest(path string, status int) {
	if httpRequests != nil {
		httpRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess         = resultSuccess
	ResultError           = resultError
	ResultNoData          = resultNoData
	ResultInvalidCostType = resultInvalidCostType
	ResultOutOfRange      = resultOutOfRange
)
