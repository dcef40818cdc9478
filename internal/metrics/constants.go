package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "brandishpet_http_requests_total"
	MetricNameHTTPRequestDuration  = "brandishpet_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "brandishpet_http_requests_in_flight"

	MetricNameEventsPublished = "brandishpet_events_published_total"
	MetricNameActions         = "brandishpet_actions_total"
	MetricNameDecayTicks      = "brandishpet_decay_ticks_total"
	MetricNameCoinsEarned     = "brandishpet_coins_earned_total"
	MetricNameCoinsSpent      = "brandishpet_coins_spent_total"
	MetricNameDailyClaims     = "brandishpet_daily_claims_total"
	MetricNameItemsBought     = "brandishpet_items_bought_total"
	MetricNameItemsUsed       = "brandishpet_items_used_total"
	MetricNameXPGained        = "brandishpet_xp_gained_total"
	MetricNameEvolutions      = "brandishpet_evolutions_total"
	MetricNamePremiumUnlocks  = "brandishpet_premium_unlocks_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextEventsPublished = "Total number of domain events observed, by type"
	HelpTextActions         = "Care actions by action and outcome"
	HelpTextDecayTicks      = "Total decay ticks applied across all pets"
	HelpTextCoinsEarned     = "Coins credited to wallets, by source"
	HelpTextCoinsSpent      = "Coins debited from wallets, by purpose"
	HelpTextDailyClaims     = "Successful daily coin claims"
	HelpTextItemsBought     = "Shop purchases by item"
	HelpTextItemsUsed       = "Item uses by item"
	HelpTextXPGained        = "XP awarded, by source"
	HelpTextEvolutions      = "Stage transitions, by new stage"
	HelpTextPremiumUnlocks  = "Premium unlocks by feature"
)

// Labels
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelSource  = "source"
	LabelItem    = "item"
	LabelStage   = "stage"
	LabelFeature = "feature"
)

// Outcome label values
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
