package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Enrollment outcomes recorded by RecordEnrollment.
const (
	OutcomeEnrolled   = "enrolled"
	OutcomeWaitlisted = "waitlisted"
	OutcomeRejected   = "rejected"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestDuration   *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	enrollments       *prometheus.CounterVec
	drops             *prometheus.CounterVec
	promotions        prometheus.Counter
	skippedPromotions prometheus.Counter

	requestCount         uint64
	requestDurationTotal uint64
	enrollmentCount      uint64
	dropCount            uint64
	promotionCount       uint64
	skippedCount         uint64
}

// MetricsSnapshot aggregates counters for quick inspection.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	Enrollments              uint64    `json:"enrollments"`
	Drops                    uint64    `json:"drops"`
	Promotions               uint64    `json:"promotions"`
	SkippedPromotions        uint64    `json:"skippedPromotions"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	enrollments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registration_enrollments_total",
		Help: "Enrollment attempts by outcome",
	}, []string{"outcome"})

	drops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registration_drops_total",
		Help: "Drops by source list",
	}, []string{"source"})

	promotions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registration_waitlist_promotions_total",
		Help: "Students moved from a waitlist onto a roster",
	})

	skippedPromotions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registration_waitlist_skipped_total",
		Help: "Waitlisted students skipped because their schedule no longer accepted the course",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, enrollments, drops, promotions, skippedPromotions, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:          registry,
		handler:           handler,
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		enrollments:       enrollments,
		drops:             drops,
		promotions:        promotions,
		skippedPromotions: skippedPromotions,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordEnrollment counts an enrollment attempt.
func (m *MetricsService) RecordEnrollment(outcome string) {
	if m == nil {
		return
	}
	m.enrollments.WithLabelValues(outcome).Inc()
	if outcome != OutcomeRejected {
		atomic.AddUint64(&m.enrollmentCount, 1)
	}
}

// RecordDrop counts a drop from a roster or a waitlist.
func (m *MetricsService) RecordDrop(fromWaitlist bool) {
	if m == nil {
		return
	}
	source := "roster"
	if fromWaitlist {
		source = "waitlist"
	}
	m.drops.WithLabelValues(source).Inc()
	atomic.AddUint64(&m.dropCount, 1)
}

// RecordPromotion counts promoted and skipped waitlisted students.
func (m *MetricsService) RecordPromotion(promoted, skipped int) {
	if m == nil {
		return
	}
	if promoted > 0 {
		m.promotions.Add(float64(promoted))
		atomic.AddUint64(&m.promotionCount, uint64(promoted))
	}
	if skipped > 0 {
		m.skippedPromotions.Add(float64(skipped))
		atomic.AddUint64(&m.skippedCount, uint64(skipped))
	}
}

// Snapshot returns aggregated metrics.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		Enrollments:              atomic.LoadUint64(&m.enrollmentCount),
		Drops:                    atomic.LoadUint64(&m.dropCount),
		Promotions:               atomic.LoadUint64(&m.promotionCount),
		SkippedPromotions:        atomic.LoadUint64(&m.skippedCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
