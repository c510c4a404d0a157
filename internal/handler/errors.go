package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Identity error messages
	ErrMsgMissingUserID = "Missing X-User-ID header"

	// Pool parameter error messages
	ErrMsgPoolIDRequired = "pool_id is required"
	ErrMsgPoolIDInvalid  = "pool_id must be a UUID"

	// Gacha operation error messages
	ErrMsgDrawFailed       = "Failed to draw"
	ErrMsgHistoryFailed    = "Failed to load history"
	ErrMsgListPoolsFailed  = "Failed to load pools"
	ErrMsgPoolItemsFailed  = "Failed to load pool items"
	ErrMsgGetStatusFailed  = "Failed to load gacha status"
	ErrMsgDrawNotPerformed = "No pulls could be completed"
)

// Machine-readable error codes returned alongside the message
const (
	CodeUserIDRequired     = "USER_ID_REQUIRED"
	CodePoolIDRequired     = "POOL_ID_REQUIRED"
	CodePoolIDInvalid      = "POOL_ID_INVALID"
	CodeDrawRejected       = "GACHA_DRAW_REJECTED"
	CodeHistoryQueryFailed = "GACHA_HISTORY_QUERY_FAILED"
)

// Success messages for API responses
const (
	MsgCatalogCacheInvalidated = "Catalog cache invalidated"
)

// Log messages
const (
	LogMsgDrawFailed          = "Gacha draw failed"
	LogMsgDrawNothingComplete = "Gacha draw completed no units"
	LogMsgHistoryFailed       = "Gacha history query failed"
	LogMsgListPoolsFailed     = "Failed to list gacha pools"
	LogMsgPoolItemsFailed     = "Failed to list gacha pool items"
	LogMsgGetStatusFailed     = "Failed to get gacha status"
	LogMsgMissingUserID       = "Request missing user identity"
)
