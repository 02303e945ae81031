package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "varlife", Name: "session_changes_total", Help: "Applied session events by reason"},
		[]string{"reason", "async"},
	)
	ScreenViews = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "varlife", Name: "screen_views_total", Help: "Screens entered by navigation or timers"},
		[]string{"screen"},
	)
	RidesRequested = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "varlife", Name: "rides_requested_total", Help: "Ride requests by ride option"},
		[]string{"ride"},
	)
	ActiveSessions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "varlife", Name: "active_sessions", Help: "Open sessions by surface"},
		[]string{"surface"},
	)

	BotUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "varlife", Name: "bot_updates_total", Help: "Telegram updates handled"},
		[]string{"kind"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "varlife", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "varlife",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
