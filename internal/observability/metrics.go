package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pulseconnect/internal/models"
)

var (
	// ServiceCallsTotal counts service method invocations.
	ServiceCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_service_calls_total",
		Help: "Total number of service method calls",
	}, []string{"service", "method"})

	// ServiceErrorsTotal counts failed service calls by error code.
	ServiceErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_service_errors_total",
		Help: "Total number of failed service calls by error code",
	}, []string{"service", "method", "code"})

	// ServiceCallLatency records wall-clock service call duration, including
	// the simulated network delay.
	ServiceCallLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pulse_service_call_latency_seconds",
		Help:    "Service call latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "method"})

	// StoreRecords is the gauge of records held per in-memory table.
	StoreRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pulse_store_records",
		Help: "Number of records currently held per in-memory table",
	}, []string{"table"})
)

// ObserveCall records counters and latency for a completed service call.
// Intended for use with defer and a named error return:
//
//	defer observability.ObserveCall("post", "create", time.Now(), &err)
func ObserveCall(service, method string, start time.Time, errp *error) {
	ServiceCallsTotal.WithLabelValues(service, method).Inc()
	ServiceCallLatency.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
	if errp != nil && *errp != nil {
		code := models.ErrorCode(*errp)
		if code == "" {
			code = "UNKNOWN"
		}
		ServiceErrorsTotal.WithLabelValues(service, method, code).Inc()
	}
}

// SetStoreSize updates the record count gauge for a table.
func SetStoreSize(table string, n int) {
	StoreRecords.WithLabelValues(table).Set(float64(n))
}
