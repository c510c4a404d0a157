package domain

import "time"

// PoolKind distinguishes always-available pools from time-limited banners
type PoolKind string

const (
	PoolKindPermanent PoolKind = "permanent"
	PoolKindLimited   PoolKind = "limited"
)

// History paging bounds
const (
	MinHistoryLimit     = 1
	MaxHistoryLimit     = 50
	DefaultHistoryLimit = 30
	MaxHistoryOffset    = 100_000
	MaxHistoryQueryLen  = 120
)

// HistoryQuery selects a page of a user's completed pulls.
// Rarity, pity and name filters apply to the pull's representative result row.
type HistoryQuery struct {
	Limit    int
	Offset   int
	PoolID   *string
	Rarities []Rarity
	PityOnly bool
	Q        string
}

// HistoryPool identifies the pool a pull was made against
type HistoryPool struct {
	PoolID string    `json:"pool_id"`
	Name   *string   `json:"name"`
	Kind   *PoolKind `json:"kind"`
}

// HistoryResult is the representative result row of a pull
type HistoryResult struct {
	ItemID       string  `json:"item_id"`
	Name         *string `json:"name"`
	Rarity       *Rarity `json:"rarity"`
	RoleID       *string `json:"role_id"`
	RewardPoints int     `json:"reward_points"`
	Qty          int     `json:"qty"`
	IsPity       bool    `json:"is_pity"`
	IsVariant    bool    `json:"is_variant"`
}

// HistoryEntry is one completed pull as shown to the member
type HistoryEntry struct {
	PullID      string         `json:"pull_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Pool        HistoryPool    `json:"pool"`
	IsFree      bool           `json:"is_free"`
	SpentPoints int            `json:"spent_points"`
	Result      *HistoryResult `json:"result"`
}

// HistoryPage is a filtered window of history plus a resumable cursor.
// Exhausted means fewer than the requested entries could be found and paging should stop.
type HistoryPage struct {
	Entries    []HistoryEntry `json:"entries"`
	NextOffset int            `json:"next_offset"`
	Exhausted  bool           `json:"exhausted"`
}

// PullRow is a pull ledger row in the nested shape the ledger read returns:
// the pull, its pool and at most one representative result with its item.
type PullRow struct {
	PullID      string
	CreatedAt   time.Time
	PoolID      string
	IsFree      bool
	SpentPoints int
	Pool        *PullRowPool
	Result      *PullRowResult
}

// PullRowPool is the joined pool of a ledger row
type PullRowPool struct {
	Name *string
	Kind *PoolKind
}

// PullRowResult is the joined first result of a ledger row
type PullRowResult struct {
	ItemID    string
	Qty       int
	IsPity    bool
	IsVariant bool
	Item      *PullRowItem
}

// PullRowItem is the joined item of a ledger result
type PullRowItem struct {
	Name         *string
	Rarity       *Rarity
	RoleID       *string
	RewardPoints *int
}

// Normalized returns q with Limit and Offset forced into their allowed ranges.
// A non-positive Limit selects DefaultHistoryLimit.
func (q HistoryQuery) Normalized() HistoryQuery {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultHistoryLimit
	case q.Limit > MaxHistoryLimit:
		q.Limit = MaxHistoryLimit
	}
	q.Offset = max(0, min(q.Offset, MaxHistoryOffset))
	return q
}
