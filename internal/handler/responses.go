package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Code is a stable tag clients
// may branch on; RequestID lets operators find the matching log line.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so a failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondErrorCode sends a JSON error response carrying a machine-readable code
func respondErrorCode(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
	ErrMsgMissingIdentityError = "Missing user identity"
	ErrMsgInvalidPoolIDError   = "Invalid pool id"
	ErrMsgPoolNotFoundError    = "Pool not found"

	ErrMsgInsufficientPointsError = "Not enough points for this pull"
	ErrMsgNoEligiblePoolError     = "There is no active gacha pool right now"
	ErrMsgOnCooldownError         = "Paid pull is on cooldown. Try again later"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unrecognized errors become a generic 500 so remote text never reaches clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMissingIdentity):
		return http.StatusBadRequest, ErrMsgMissingIdentityError
	case errors.Is(err, domain.ErrInvalidPoolID):
		return http.StatusBadRequest, ErrMsgInvalidPoolIDError
	case errors.Is(err, domain.ErrPoolNotFound):
		return http.StatusNotFound, ErrMsgPoolNotFoundError
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusBadRequest, ErrMsgInsufficientPointsError
	case errors.Is(err, domain.ErrNoEligiblePool):
		return http.StatusBadRequest, ErrMsgNoEligiblePoolError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// errorCode returns the stable code of a remote failure, if it carries one.
func errorCode(err error) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Code != domain.CodeUnknown {
		return string(remote.Code)
	}
	if errors.Is(err, domain.ErrMissingIdentity) {
		return CodeUserIDRequired
	}
	return ""
}
