package repository

import (
	"context"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// DrawProcedure invokes the remote transactional draw for a single unit.
// Every call may debit balance, credit inventory and move pity state; callers
// must not assume a retried call is idempotent. Failures are returned as
// *domain.RemoteError whenever the adapter can tag them.
type DrawProcedure interface {
	Draw(ctx context.Context, userID string, poolID *string) (*domain.DrawUnitOutcome, error)
}

// PullLedger reads a user's pulls newest first over the unfiltered stream.
type PullLedger interface {
	ListPulls(ctx context.Context, userID string, offset, limit int) ([]domain.PullRow, error)
}

// Catalog defines the pass-through reads for pools and member status
type Catalog interface {
	ListActivePools(ctx context.Context) ([]domain.Pool, error)
	ListPoolItems(ctx context.Context, poolID string) ([]domain.PoolItem, error)
	GetUserStatus(ctx context.Context, userID string, poolID *string) (*domain.UserStatus, error)
}
