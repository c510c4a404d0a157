package history

import (
	"context"
	"fmt"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// Scanner walks a member's pull ledger newest first, one row at a time,
// fetching ChunkSize rows per remote read and refusing to examine more than
// its budget. It is single use: once Next reports false it stays false.
type Scanner struct {
	ledger    repository.PullLedger
	userID    string
	chunkSize int
	budget    int

	buf        []domain.PullRow
	offset     int
	scanned    int
	remoteDone bool
	err        error
}

// NewScanner starts a scan at offset with the default chunk size and cap
func NewScanner(ledger repository.PullLedger, userID string, offset int) *Scanner {
	return &Scanner{
		ledger:    ledger,
		userID:    userID,
		chunkSize: ChunkSize,
		budget:    ScanCap,
		offset:    offset,
	}
}

// Next returns the next ledger row. ok is false once the ledger or the budget
// is used up, or after a read error, which is returned once and then sticks.
func (s *Scanner) Next(ctx context.Context) (row domain.PullRow, ok bool, err error) {
	if s.err != nil {
		return domain.PullRow{}, false, s.err
	}

	if len(s.buf) == 0 {
		if s.remoteDone || s.scanned >= s.budget {
			return domain.PullRow{}, false, nil
		}
		if err := s.fetch(ctx); err != nil {
			s.err = err
			return domain.PullRow{}, false, err
		}
		if len(s.buf) == 0 {
			return domain.PullRow{}, false, nil
		}
	}

	row = s.buf[0]
	s.buf = s.buf[1:]
	s.offset++
	s.scanned++
	return row, true, nil
}

func (s *Scanner) fetch(ctx context.Context) error {
	want := min(s.chunkSize, s.budget-s.scanned)

	rows, err := s.ledger.ListPulls(ctx, s.userID, s.offset, want)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextLedgerRead, err)
	}

	logger.FromContext(ctx).Debug(LogMsgChunkFetched, "offset", s.offset, "requested", want, "received", len(rows))
	if len(rows) < want {
		s.remoteDone = true
	}
	// never trust the remote to honour the limit
	if len(rows) > want {
		rows = rows[:want]
	}
	s.buf = rows
	return nil
}

// Offset is the ledger position just past the last row Next returned.
func (s *Scanner) Offset() int {
	return s.offset
}

// Scanned counts rows returned by Next so far.
func (s *Scanner) Scanned() int {
	return s.scanned
}

// Exhausted reports whether Next can never return another row.
func (s *Scanner) Exhausted() bool {
	if s.err != nil {
		return true
	}
	if len(s.buf) > 0 {
		return false
	}
	return s.remoteDone || s.scanned >= s.budget
}
