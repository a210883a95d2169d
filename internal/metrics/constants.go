package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlantsPlanted     = "plants_planted_total"
	MetricNameHarvestsCollected = "harvests_collected_total"
	MetricNameItemsCrafted      = "items_crafted_total"
	MetricNameResourcesDumped   = "resources_dumped_total"
	MetricNameSlotsPurchased    = "slots_purchased_total"
	MetricNameWorkersHired      = "workers_hired_total"
	MetricNameTonEarned         = "ton_earned_total"
	MetricNameTonWithdrawn      = "ton_withdrawn_total"
	MetricNameTonBurned         = "ton_burned_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlantsPlanted     = "Total number of plants planted"
	HelpTextHarvestsCollected = "Total number of harvests collected"
	HelpTextItemsCrafted      = "Total number of items crafted"
	HelpTextResourcesDumped   = "Total number of resources dumped"
	HelpTextSlotsPurchased    = "Total number of slots purchased"
	HelpTextWorkersHired      = "Total number of workers hired"
	HelpTextTonEarned         = "Total TON credited to player balances"
	HelpTextTonWithdrawn      = "Total TON withdrawn by players"
	HelpTextTonBurned         = "Total TON burned by withdrawal fees"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelPlant    = "plant"
	LabelResource = "resource"
	LabelRecipe   = "recipe"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
