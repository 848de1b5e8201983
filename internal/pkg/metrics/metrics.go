package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors. Each instance registers on its own
// registerer so tests can build as many as they need.
type Metrics struct {
	bookingCreated  prometheus.Counter
	bookingDecision *prometheus.CounterVec
	commentAdded    prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		bookingCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		}),
		bookingDecision: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_decision_total",
			Help:      "Count of owner decisions over bookings by resulting status.",
		}, []string{"status"}),
		commentAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comment_added_total",
			Help:      "Count of comments left on items.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) BookingCreated() {
	m.bookingCreated.Inc()
}

func (m *Metrics) BookingDecided(status string) {
	m.bookingDecision.WithLabelValues(status).Inc()
}

func (m *Metrics) CommentAdded() {
	m.commentAdded.Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
