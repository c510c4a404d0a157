package domain

import (
	"fmt"
	"time"
)

// ErrorCode is the stable tag the remote boundary attaches to a failed draw call.
// CodeUnknown means the adapter could not recognize the failure and callers
// must fall back to inspecting the message text.
type ErrorCode string

const (
	CodeUnknown              ErrorCode = ""
	CodeInsufficientPoints   ErrorCode = "INSUFFICIENT_POINTS"
	CodeNoActivePool         ErrorCode = "NO_ACTIVE_POOL"
	CodePaidCooldown         ErrorCode = "PAID_COOLDOWN"
	CodeLockContention       ErrorCode = "LOCK_CONTENTION"
	CodeSerializationFailure ErrorCode = "SERIALIZATION_FAILURE"
	CodeStatementTimeout     ErrorCode = "STATEMENT_TIMEOUT"
)

// RemoteError is a failure reported by the remote draw procedure or ledger.
type RemoteError struct {
	Code ErrorCode
	// Message is the remote's own text, kept verbatim for diagnostics.
	Message string
	// RetryAfter is an optional hint from the remote; zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Code == CodeUnknown {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match business sentinels against a tagged remote error.
func (e *RemoteError) Is(target error) bool {
	switch e.Code {
	case CodeInsufficientPoints:
		return target == ErrInsufficientPoints
	case CodeNoActivePool:
		return target == ErrNoEligiblePool
	case CodePaidCooldown:
		return target == ErrOnCooldown
	}
	return false
}
