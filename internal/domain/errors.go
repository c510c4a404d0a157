package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Draw errors
	ErrMsgInsufficientPoints = "insufficient points"
	ErrMsgNoEligiblePool     = "no eligible pool"
	ErrMsgOnCooldown         = "paid pull cooldown has not elapsed"

	// Pool errors
	ErrMsgInvalidPoolID = "invalid pool id"
	ErrMsgPoolNotFound  = "pool not found"

	// Identity errors
	ErrMsgMissingIdentity = "missing user identity"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)
	ErrNoEligiblePool     = errors.New(ErrMsgNoEligiblePool)
	ErrOnCooldown         = errors.New(ErrMsgOnCooldown)

	ErrInvalidPoolID = errors.New(ErrMsgInvalidPoolID)
	ErrPoolNotFound  = errors.New(ErrMsgPoolNotFound)

	ErrMissingIdentity = errors.New(ErrMsgMissingIdentity)

	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
