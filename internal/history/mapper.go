package history

import "github.com/osse101/tinklepaw-gacha/internal/domain"

// toEntry converts a nested ledger row into the member-facing entry shape
func toEntry(row domain.PullRow) domain.HistoryEntry {
	entry := domain.HistoryEntry{
		PullID:      row.PullID,
		CreatedAt:   row.CreatedAt,
		Pool:        domain.HistoryPool{PoolID: row.PoolID},
		IsFree:      row.IsFree,
		SpentPoints: row.SpentPoints,
	}
	if row.Pool != nil {
		entry.Pool.Name = row.Pool.Name
		entry.Pool.Kind = row.Pool.Kind
	}

	if row.Result == nil {
		return entry
	}

	result := &domain.HistoryResult{
		ItemID:    row.Result.ItemID,
		Qty:       row.Result.Qty,
		IsPity:    row.Result.IsPity,
		IsVariant: row.Result.IsVariant,
	}
	if item := row.Result.Item; item != nil {
		result.Name = item.Name
		result.Rarity = item.Rarity
		result.RoleID = item.RoleID
		if item.RewardPoints != nil {
			result.RewardPoints = *item.RewardPoints
		}
	}
	entry.Result = result
	return entry
}
