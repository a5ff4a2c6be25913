package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// gateway metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chimp_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"route", "method", "code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chimp_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chimp_active_requests",
		Help: "Current in-flight requests",
	})

	// upstream client metrics
	UpstreamCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chimp_upstream_calls_total",
		Help: "Calls made to remote MailChimp/Mandrill endpoints",
	}, []string{"api", "version", "outcome"})

	UpstreamCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chimp_upstream_call_duration_seconds",
		Help:    "Remote call latency including rate limiter wait",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"api", "version"})

	UpstreamInflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chimp_upstream_inflight",
		Help: "Remote calls currently in flight",
	})

	RateLimitWaitSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chimp_rate_limit_wait_seconds",
		Help:    "Time spent waiting on the client rate limiter",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	// oauth metrics
	OAuthEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chimp_oauth_events_total",
		Help: "OAuth flow events by type",
	}, []string{"event"})

	OAuthExchangeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chimp_oauth_exchange_duration_seconds",
		Help:    "Code to API key exchange duration",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	AccountsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chimp_accounts_stored_total",
		Help: "Authorized accounts upserted into the store",
	})
)

func RegisterAll(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration, ActiveRequests,
		UpstreamCallsTotal, UpstreamCallDuration, UpstreamInflight, RateLimitWaitSeconds,
		OAuthEventsTotal, OAuthExchangeDuration, AccountsStored,
	)
}
