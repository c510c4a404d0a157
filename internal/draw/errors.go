package draw

import (
	"errors"
	"fmt"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// ErrEmptyDrawResult is returned when the remote reports success but yields no row.
var ErrEmptyDrawResult = errors.New(ErrMsgEmptyDrawResult)

// FatalError is the terminal failure of a batch aborted by a fatal unit.
// Discarded holds units that committed remotely before the abort; they are
// not part of any caller-visible outcome and are kept for logging only.
type FatalError struct {
	Unit      int
	Requested int
	Discarded []domain.DrawUnitOutcome
	Err       error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("draw unit %d of %d failed fatally: %v", e.Unit, e.Requested, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// unitError is a unit that could not complete: fatal, unclassified or out of retries.
type unitError struct {
	class   Class
	retries int
	err     error
}

func (e *unitError) Error() string {
	return e.err.Error()
}

func (e *unitError) Unwrap() error {
	return e.err
}
