package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/tinklepaw-gacha/internal/logger"
)

// HeaderUserID carries the Discord user id of the member the request acts for.
// The upstream that holds the API key is trusted to have verified it.
const HeaderUserID = "X-User-ID"

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// An empty body decodes to the zero request. If this function returns an error,
// the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req DrawRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Gacha draw"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// requireUserID reads the member identity header. When it is missing the
// response has already been written and ok is false.
func requireUserID(w http.ResponseWriter, r *http.Request) (userID string, ok bool) {
	userID = strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingUserID, "path", r.URL.Path)
		respondErrorCode(w, http.StatusBadRequest, ErrMsgMissingUserID, CodeUserIDRequired)
		return "", false
	}
	return userID, true
}

// parseIntInRange reads a numeric query value, truncating fractions and
// clamping into [lo, hi]. Missing or non-numeric input yields fallback.
func parseIntInRange(raw string, fallback, lo, hi int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	f = math.Trunc(f)
	switch {
	case f < float64(lo):
		return lo
	case f > float64(hi):
		return hi
	}
	return int(f)
}

// isPoolID reports whether s is a canonical hyphenated UUID.
func isPoolID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// truncateRunes cuts s to at most n runes without splitting a character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
