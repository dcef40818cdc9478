package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Pet metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameEventsPublished, Help: HelpTextEventsPublished},
		[]string{LabelType},
	)

	Actions = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameActions, Help: HelpTextActions},
		[]string{LabelAction, LabelOutcome},
	)

	DecayTicks = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameDecayTicks, Help: HelpTextDecayTicks},
	)

	CoinsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameCoinsEarned, Help: HelpTextCoinsEarned},
		[]string{LabelSource},
	)

	CoinsSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameCoinsSpent, Help: HelpTextCoinsSpent},
		[]string{LabelSource},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameDailyClaims, Help: HelpTextDailyClaims},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsBought, Help: HelpTextItemsBought},
		[]string{LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsUsed, Help: HelpTextItemsUsed},
		[]string{LabelItem},
	)

	XPGained = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameXPGained, Help: HelpTextXPGained},
		[]string{LabelSource},
	)

	Evolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameEvolutions, Help: HelpTextEvolutions},
		[]string{LabelStage},
	)

	PremiumUnlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNamePremiumUnlocks, Help: HelpTextPremiumUnlocks},
		[]string{LabelFeature},
	)
)
