package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ajira",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ajira",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ajira",
		Name:      "emails_sent_total",
		Help:      "Outbound emails by template and result.",
	}, []string{"template", "result"})
)

// EmailResult records one send attempt.
func EmailResult(template string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EmailsSent.WithLabelValues(template, result).Inc()
}
