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

// Draw metric names
const (
	MetricNameDrawUnitsTotal   = "gacha_draw_units_total"
	MetricNameDrawRetriesTotal = "gacha_draw_retries_total"
	MetricNameDrawBatchesTotal = "gacha_draw_batches_total"
	MetricNameDrawUnitAttempts = "gacha_draw_unit_attempts"
)

// History metric names
const (
	MetricNameHistoryRowsScanned = "gacha_history_rows_scanned"
	MetricNameHistoryPagesTotal  = "gacha_history_pages_total"
)

// Catalog metric names
const (
	MetricNameCatalogCacheLookups = "gacha_catalog_cache_lookups_total"
)

// Discord bot metric names
const (
	MetricNameDiscordCommandsTotal = "gacha_discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextDrawUnitsTotal   = "Total number of draw units completed, by rarity"
	HelpTextDrawRetriesTotal = "Total number of draw unit retries, by error class"
	HelpTextDrawBatchesTotal = "Total number of draw batches, by outcome"
	HelpTextDrawUnitAttempts = "Remote calls spent per draw unit"

	HelpTextHistoryRowsScanned = "Ledger rows scanned to build one history page"
	HelpTextHistoryPagesTotal  = "Total number of history pages served, by exhaustion"

	HelpTextCatalogCacheLookups = "Catalog cache lookups, by kind and result"

	HelpTextDiscordCommandsTotal = "Slash commands received by the Discord bot, by command"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelRarity    = "rarity"
	LabelClass     = "class"
	LabelOutcome   = "outcome"
	LabelExhausted = "exhausted"
	LabelKind      = "kind"
	LabelResult    = "result"
	LabelCommand   = "command"
)

// Batch outcome label values
const (
	OutcomeComplete  = "complete"
	OutcomePartial   = "partial"
	OutcomeFatal     = "fatal"
	OutcomeCancelled = "cancelled"
)

// Cache lookup label values
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20}

	// Attempts per unit range from 1 to 11 (one initial call plus ten retries)
	DrawAttemptBuckets = []float64{1, 2, 3, 5, 8, 11}

	// The reconstructor scans at most 500 rows per page
	HistoryScanBuckets = []float64{50, 100, 200, 300, 400, 500}
)
