package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TranslationsTotal counts translations by operation, exchange and result.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normify_translations_total",
			Help: "Total number of instrument translations (by op, exchange, and result).",
		},
		[]string{"op", "exchange", "result"},
	)

	// TranslationDuration measures the time spent serving one translation.
	TranslationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "normify_translation_duration_seconds",
			Help:    "Duration of instrument translations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15), // 10µs → ~160ms
		},
		[]string{"op"},
	)

	// RateLimited counts HTTP requests refused by the per-client limiter.
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "normify_rate_limited_total",
			Help: "Number of HTTP requests rejected by the rate limiter.",
		},
	)

	// ReplyErrors tracks broker reply failures by transport (nats, amqp).
	ReplyErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normify_reply_errors_total",
			Help: "Number of broker reply publish failures by transport.",
		},
		[]string{"transport"},
	)
)

// IncTranslation increments the translation counter.
func IncTranslation(op, exchange, result string) {
	TranslationsTotal.WithLabelValues(op, exchange, result).Inc()
}

// IncRateLimited increments the rate-limited request counter.
func IncRateLimited() {
	RateLimited.Inc()
}

// IncReplyError increments the reply error counter for transport.
func IncReplyError(transport string) {
	ReplyErrors.WithLabelValues(transport).Inc()
}

// ObserveDuration records elapsed time since start into a HistogramVec or SummaryVec.
func ObserveDuration(v any, start time.Time, labels ...string) {
	duration := time.Since(start).Seconds()
	switch metric := v.(type) {
	case *prometheus.HistogramVec:
		metric.WithLabelValues(labels...).Observe(duration)
	case *prometheus.SummaryVec:
		metric.WithLabelValues(labels...).Observe(duration)
	}
}
