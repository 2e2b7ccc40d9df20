package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets optimized for API response times ranging from
	// milliseconds to 30+ seconds (email provider calls with retries can be slow)
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Business Metrics
	LeadSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tropicacao_lead_submissions_total",
			Help: "Total number of lead form submissions",
		},
		[]string{"form_type", "status"},
	)

	HoneypotTriggers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tropicacao_honeypot_triggers_total",
			Help: "Total number of submissions caught by the honeypot field",
		},
		[]string{"form_type"},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tropicacao_rate_limit_rejections_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"scope"},
	)

	// Captcha Metrics
	CaptchaVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tropicacao_captcha_verifications_total",
			Help: "Total number of captcha verification outcomes",
		},
		[]string{"outcome"},
	)

	// Email Delivery Metrics
	EmailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_client_send_duration_seconds",
			Help:    "Email provider send duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"kind", "status"},
	)

	EmailSendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_client_send_total",
			Help: "Total number of email provider send attempts",
		},
		[]string{"kind", "status"},
	)

	// Analytics event intake
	AnalyticsEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tropicacao_analytics_events_total",
			Help: "Total number of analytics events received",
		},
		[]string{"event"},
	)
)

// Registry is the default prometheus registerer exposed at /api/metrics
var Registry = prometheus.DefaultGatherer

// MeasureDuration returns the elapsed seconds since start
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
