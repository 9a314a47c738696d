package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sharemart",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sharemart",
			Name:      "bookings_created_total",
			Help:      "Booking requests accepted.",
		},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sharemart",
			Name:      "booking_decisions_total",
			Help:      "Owner decisions by outcome.",
		},
		[]string{"outcome"},
	)

	commentsPosted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sharemart",
			Name:      "comments_posted_total",
			Help:      "Comments accepted after a completed booking.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingDecisions, commentsPosted)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

// IncBookingCreated counts an accepted booking request.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingDecision counts an owner decision, outcome is "approved" or "rejected".
func IncBookingDecision(outcome string) {
	bookingDecisions.WithLabelValues(outcome).Inc()
}

// IncCommentPosted counts an accepted comment.
func IncCommentPosted() {
	commentsPosted.Inc()
}
