package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// LedgerRepository reads the pull ledger with its pool, first result and item joined
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db DBTX) repository.PullLedger {
	return &LedgerRepository{db: db}
}

// ListPulls returns up to limit pulls for userID, newest first, skipping offset rows
func (r *LedgerRepository) ListPulls(ctx context.Context, userID string, offset, limit int) ([]domain.PullRow, error) {
	rows, err := r.db.Query(ctx, queryListPulls, userID, offset, limit)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLedgerReadFailed, "user_id", userID, "offset", offset, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextListPulls, toRemoteError(err))
	}
	defer rows.Close()

	pulls := make([]domain.PullRow, 0, limit)
	for rows.Next() {
		var (
			row          domain.PullRow
			poolName     pgtype.Text
			poolKind     pgtype.Text
			itemID       pgtype.Text
			qty          pgtype.Int4
			isPity       pgtype.Bool
			isVariant    pgtype.Bool
			itemName     pgtype.Text
			itemRarity   pgtype.Text
			itemRoleID   pgtype.Text
			rewardPoints pgtype.Int4
		)
		if err := rows.Scan(
			&row.PullID, &row.CreatedAt, &row.PoolID, &row.IsFree, &row.SpentPoints,
			&poolName, &poolKind,
			&itemID, &qty, &isPity, &isVariant,
			&itemName, &itemRarity, &itemRoleID, &rewardPoints,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextScanPull, err)
		}

		if poolName.Valid || poolKind.Valid {
			row.Pool = &domain.PullRowPool{
				Name: textToPtr(poolName),
				Kind: poolKindPtr(poolKind),
			}
		}

		if itemID.Valid {
			row.Result = &domain.PullRowResult{
				ItemID:    itemID.String,
				Qty:       int(qty.Int32),
				IsPity:    isPity.Bool,
				IsVariant: isVariant.Bool,
			}
			if itemName.Valid || itemRarity.Valid {
				row.Result.Item = &domain.PullRowItem{
					Name:         textToPtr(itemName),
					Rarity:       rarityPtr(itemRarity),
					RoleID:       textToPtr(itemRoleID),
					RewardPoints: ptrInt(rewardPoints),
				}
			}
		}

		pulls = append(pulls, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPulls, toRemoteError(err))
	}

	return pulls, nil
}
