package history

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// MockPullLedger
type MockPullLedger struct {
	mock.Mock
}

func (m *MockPullLedger) ListPulls(ctx context.Context, userID string, offset, limit int) ([]domain.PullRow, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRow), args.Error(1)
}

// fakeLedger serves windows over a fixed newest-first slice and records each read
type fakeLedger struct {
	rows  []domain.PullRow
	reads []ledgerRead
}

type ledgerRead struct {
	offset, limit int
}

func (f *fakeLedger) ListPulls(_ context.Context, _ string, offset, limit int) ([]domain.PullRow, error) {
	f.reads = append(f.reads, ledgerRead{offset: offset, limit: limit})
	if offset >= len(f.rows) {
		return []domain.PullRow{}, nil
	}
	end := min(offset+limit, len(f.rows))
	out := make([]domain.PullRow, end-offset)
	copy(out, f.rows[offset:end])
	return out, nil
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func rarityPtr(r domain.Rarity) *domain.Rarity { return &r }

func intPtr(i int) *int { return &i }

// pull builds a ledger row with one result; index i sorts newest first
func pull(i int, poolID string, rarity domain.Rarity, name string, pity bool) domain.PullRow {
	kind := domain.PoolKindPermanent
	return domain.PullRow{
		PullID:      fmt.Sprintf("pull-%04d", i),
		CreatedAt:   baseTime.Add(-time.Duration(i) * time.Minute),
		PoolID:      poolID,
		SpentPoints: 10,
		Pool:        &domain.PullRowPool{Name: strPtr("Pool " + poolID), Kind: &kind},
		Result: &domain.PullRowResult{
			ItemID: fmt.Sprintf("item-%04d", i),
			Qty:    1,
			IsPity: pity,
			Item: &domain.PullRowItem{
				Name:         strPtr(name),
				Rarity:       rarityPtr(rarity),
				RewardPoints: intPtr(3),
			},
		},
	}
}

// emptyPull is a ledger row whose result join came back empty
func emptyPull(i int, poolID string) domain.PullRow {
	return domain.PullRow{
		PullID:    fmt.Sprintf("pull-%04d", i),
		CreatedAt: baseTime.Add(-time.Duration(i) * time.Minute),
		PoolID:    poolID,
	}
}

// ledgerOf builds n rows of common R pulls
func ledgerOf(n int) []domain.PullRow {
	rows := make([]domain.PullRow, n)
	for i := range rows {
		rows[i] = pull(i, "pool-a", domain.RarityR, "Plain Pebble", false)
	}
	return rows
}
