package history

import (
	"context"
	"strconv"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
	"github.com/osse101/tinklepaw-gacha/internal/metrics"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// Service defines the interface for history reads
type Service interface {
	// Page returns up to query.Limit matching pulls starting at query.Offset.
	// Any ledger error fails the whole page.
	Page(ctx context.Context, userID string, query domain.HistoryQuery) (*domain.HistoryPage, error)
}

type service struct {
	ledger repository.PullLedger
}

// NewService creates a new history reconstructor
func NewService(ledger repository.PullLedger) Service {
	return &service{ledger: ledger}
}

// Page implements Service
func (s *service) Page(ctx context.Context, userID string, query domain.HistoryQuery) (*domain.HistoryPage, error) {
	log := logger.FromContext(ctx)
	if userID == "" {
		return nil, domain.ErrMissingIdentity
	}

	query = query.Normalized()
	log.Debug(LogMsgPageCalled,
		"user_id", userID,
		"limit", query.Limit,
		"offset", query.Offset,
		"rarities", query.Rarities,
		"pity_only", query.PityOnly)

	filter := NewFilter(query)
	scanner := NewScanner(s.ledger, userID, query.Offset)
	entries := make([]domain.HistoryEntry, 0, query.Limit)

	for len(entries) < query.Limit {
		row, ok, err := scanner.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if filter.Match(row) {
			entries = append(entries, toEntry(row))
		}
	}

	page := &domain.HistoryPage{
		Entries:    entries,
		NextOffset: scanner.Offset(),
		Exhausted:  len(entries) < query.Limit,
	}

	metrics.HistoryRowsScanned.Observe(float64(scanner.Scanned()))
	metrics.HistoryPagesTotal.WithLabelValues(strconv.FormatBool(page.Exhausted)).Inc()
	log.Debug(LogMsgPageCompleted,
		"entries", len(entries),
		"scanned", scanner.Scanned(),
		"next_offset", page.NextOffset,
		"exhausted", page.Exhausted)

	return page, nil
}
