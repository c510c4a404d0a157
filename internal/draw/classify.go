package draw

import (
	"errors"
	"strings"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// Class is the retry disposition of a failed draw call
type Class string

const (
	// ClassFatal is a violated business precondition; the batch aborts.
	ClassFatal Class = "fatal"
	// ClassCooldown is a pending paid-pull cooldown; retried on the cooldown track.
	ClassCooldown Class = "cooldown"
	// ClassContention is lock, serialization or timeout trouble; retried on the contention track.
	ClassContention Class = "contention"
	// ClassUnclassified is anything else; it exhausts the unit on first sight.
	ClassUnclassified Class = "unclassified"
)

// Retryable reports whether the class is worth another attempt.
func (c Class) Retryable() bool {
	return c == ClassCooldown || c == ClassContention
}

var codeClasses = map[domain.ErrorCode]Class{
	domain.CodeInsufficientPoints:   ClassFatal,
	domain.CodeNoActivePool:         ClassFatal,
	domain.CodePaidCooldown:         ClassCooldown,
	domain.CodeLockContention:       ClassContention,
	domain.CodeSerializationFailure: ClassContention,
	domain.CodeStatementTimeout:     ClassContention,
}

// Substring fallbacks, checked in order. Patterns are lower case.
var (
	fatalPatterns = []string{
		"insufficient_points",
		"insufficient points",
		"insufficient balance",
		"no_active_pool",
		"no active pool",
		"no eligible pool",
	}
	cooldownPatterns = []string{
		"paid_cooldown",
		"cooldown",
	}
	contentionPatterns = []string{
		"lock",
		"serializ",
		"statement timeout",
		"timeout",
		"timed out",
	}
)

// Classify tags a draw failure. A recognized ErrorCode on a *domain.RemoteError
// wins; otherwise the message and code text are matched case-insensitively
// against the known wordings.
func Classify(err error) Class {
	if err == nil {
		return ClassUnclassified
	}

	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		if class, ok := codeClasses[remote.Code]; ok {
			return class
		}
	}

	return classifyText(errorText(err))
}

func classifyText(text string) Class {
	text = strings.ToLower(text)
	switch {
	case containsAny(text, fatalPatterns):
		return ClassFatal
	case containsAny(text, cooldownPatterns):
		return ClassCooldown
	case containsAny(text, contentionPatterns):
		return ClassContention
	default:
		return ClassUnclassified
	}
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// errorText is the remote's message and code when available, else err.Error().
func errorText(err error) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		if remote.Code == domain.CodeUnknown {
			return remote.Message
		}
		return string(remote.Code) + " " + remote.Message
	}
	return err.Error()
}
