package history

// ============================================================================
// Scan Budget
// ============================================================================

const (
	// ChunkSize is how many ledger rows one remote read asks for
	ChunkSize = 50
	// ScanCap bounds the ledger rows examined for a single page
	ScanCap = 500
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPageCalled    = "History Page called"
	LogMsgPageCompleted = "History page assembled"
	LogMsgChunkFetched  = "Fetched ledger chunk"
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextLedgerRead = "failed to read pull ledger"
)
