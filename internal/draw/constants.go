package draw

import "time"

// ============================================================================
// Retry Budget
// ============================================================================

// MaxRetriesPerUnit is the number of retries allowed for one unit after its
// initial attempt, giving at most 11 remote calls per unit.
const MaxRetriesPerUnit = 10

// ============================================================================
// Backoff Tables
// ============================================================================

// Cooldown track: the remote is polled until the paid-pull cooldown boundary
// passes, so the floor is low and the cap is loose.
const (
	CooldownBaseDelay = 280 * time.Millisecond
	CooldownStepDelay = 140 * time.Millisecond
	CooldownMaxDelay  = 1600 * time.Millisecond
)

// Contention track: lock, serialization and statement-timeout failures.
const (
	ContentionBaseDelay = 120 * time.Millisecond
	ContentionStepDelay = 90 * time.Millisecond
	ContentionMaxDelay  = 900 * time.Millisecond
)

// ============================================================================
// Fatal Policies
// ============================================================================

// FatalPolicy decides what the caller sees when a unit fails fatally mid-batch.
type FatalPolicy string

const (
	// FatalPolicyAbort discards the batch and returns only a *FatalError.
	FatalPolicyAbort FatalPolicy = "abort"
	// FatalPolicyPartial returns the units completed so far with a fatal-tagged warning.
	FatalPolicyPartial FatalPolicy = "partial"
)

// ParseFatalPolicy maps a config string to a policy, defaulting to abort.
func ParseFatalPolicy(s string) FatalPolicy {
	if FatalPolicy(s) == FatalPolicyPartial {
		return FatalPolicyPartial
	}
	return FatalPolicyAbort
}

// ============================================================================
// Warning Formats
// ============================================================================

// Unit numbers in warnings are 1-based.
const (
	WarningFormatExhausted    = "unit %d of %d failed after %d retries: %s"
	WarningFormatUnclassified = "unit %d of %d failed: %s"
	WarningFormatFatal        = "unit %d of %d aborted (fatal): %s"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgExecuteBatchCalled  = "ExecuteBatch called"
	LogMsgAmountClamped       = "Draw amount clamped"
	LogMsgRetryingUnit        = "Retrying draw unit"
	LogMsgBatchCompleted      = "Draw batch completed"
	LogMsgBatchPartial        = "Draw batch stopped early"
	LogMsgBatchAbortedFatal   = "Draw batch aborted by fatal error"
	LogMsgBatchAbandoned      = "Draw batch abandoned by caller"
	LogMsgDiscardedCommitted  = "Discarding committed units from caller-visible outcome"
	LogMsgEmptyRemoteResponse = "Remote draw returned no row"
	LogMsgBatchLockAbandoned  = "Draw batch abandoned while waiting for member's previous batch"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextDrawUnitAbandoned = "draw unit abandoned"
	ErrContextWaitForBatch      = "waiting for previous draw batch"
	ErrMsgEmptyDrawResult       = "remote draw returned no result"
)
