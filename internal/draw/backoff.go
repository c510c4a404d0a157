package draw

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// Delay returns how long to wait before retry number retryCount (1-based) of a
// unit that failed with the given class. A remote hint longer than the table
// value is honoured up to the track's cap. Non-retryable classes get zero.
func Delay(class Class, retryCount int, hint time.Duration) time.Duration {
	var base, step, ceiling time.Duration
	switch class {
	case ClassCooldown:
		base, step, ceiling = CooldownBaseDelay, CooldownStepDelay, CooldownMaxDelay
	case ClassContention:
		base, step, ceiling = ContentionBaseDelay, ContentionStepDelay, ContentionMaxDelay
	default:
		return 0
	}

	d := min(ceiling, base+time.Duration(retryCount)*step)
	if hint > d {
		d = min(ceiling, hint)
	}
	return d
}

// retryAfter extracts the remote's retry hint, if any.
func retryAfter(err error) time.Duration {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return remote.RetryAfter
	}
	return 0
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
