package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	DailyChallengesServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "daily_challenges_served_total",
			Help: "Resolved daily challenge payloads delivered to clients",
		},
	)

	CompletionsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "challenge_completions_recorded_total",
			Help: "Completion events persisted",
		},
	)

	// SkippedChallengeRefs counts assignment references to challenges that
	// no longer resolve. A rising rate means content was deleted out from
	// under a published assignment.
	SkippedChallengeRefs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "daily_challenge_skipped_refs_total",
			Help: "Challenge references skipped during daily assignment resolution",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DailyChallengesServed)
	prometheus.MustRegister(CompletionsRecorded)
	prometheus.MustRegister(SkippedChallengeRefs)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
