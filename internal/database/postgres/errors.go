package postgres

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

var sqlStateCodes = map[string]domain.ErrorCode{
	SQLStateDeadlockDetected:     domain.CodeLockContention,
	SQLStateLockNotAvailable:     domain.CodeLockContention,
	SQLStateSerializationFailure: domain.CodeSerializationFailure,
	SQLStateQueryCanceled:        domain.CodeStatementTimeout,
}

// Procedure-raised tokens, matched against the upper-cased message
var messageCodes = []domain.ErrorCode{
	domain.CodeInsufficientPoints,
	domain.CodeNoActivePool,
	domain.CodePaidCooldown,
}

// toRemoteError tags a database failure with a stable ErrorCode. Errors the
// server never saw (dial, context) keep their text so callers can still
// pattern-match it.
func toRemoteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &domain.RemoteError{Message: err.Error(), Err: err}
	}

	code, ok := sqlStateCodes[pgErr.Code]
	if !ok {
		code = codeFromMessage(pgErr.Message)
	}

	return &domain.RemoteError{
		Code:       code,
		Message:    pgErr.Message,
		RetryAfter: parseRetryAfter(pgErr.Detail),
		Err:        err,
	}
}

func codeFromMessage(msg string) domain.ErrorCode {
	upper := strings.ToUpper(msg)
	for _, code := range messageCodes {
		if strings.Contains(upper, string(code)) {
			return code
		}
	}
	return domain.CodeUnknown
}

// parseRetryAfter reads "retry_after_ms=N" out of an error DETAIL
func parseRetryAfter(detail string) time.Duration {
	for _, field := range strings.FieldsFunc(detail, func(r rune) bool { return r == ' ' || r == ',' || r == ';' }) {
		value, found := strings.CutPrefix(field, RetryAfterDetailKey)
		if !found {
			continue
		}
		ms, err := strconv.ParseInt(value, 10, 64)
		if err != nil || ms <= 0 {
			return 0
		}
		return time.Duration(ms) * time.Millisecond
	}
	return 0
}
