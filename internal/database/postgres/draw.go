package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// DrawRepository calls the remote draw procedure, one transaction per call
type DrawRepository struct {
	db DBTX
}

// NewDrawRepository creates a new DrawRepository
func NewDrawRepository(db DBTX) repository.DrawProcedure {
	return &DrawRepository{db: db}
}

// Draw performs exactly one pull. Failures come back as *domain.RemoteError
// carrying the procedure's own message, unwrapped, so callers can quote it.
// A call that succeeds without returning a row yields (nil, nil).
func (r *DrawRepository) Draw(ctx context.Context, userID string, poolID *string) (*domain.DrawUnitOutcome, error) {
	var (
		out          domain.DrawUnitOutcome
		rarity       string
		roleID       pgtype.Text
		rewardPoints pgtype.Int4
		refundPoints pgtype.Int4
		newBalance   pgtype.Int4
		isVariant    pgtype.Bool
		isFree       pgtype.Bool
	)

	err := r.db.QueryRow(ctx, queryPerformDraw, userID, poolID).Scan(
		&out.ItemID,
		&out.Name,
		&rarity,
		&roleID,
		&rewardPoints,
		&isVariant,
		&isFree,
		&refundPoints,
		&newBalance,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgDrawProcedureFailed, "user_id", userID, "error", err)
		return nil, toRemoteError(err)
	}

	out.Rarity = domain.Rarity(rarity)
	out.RoleID = textToPtr(roleID)
	out.RewardPoints = int(rewardPoints.Int32)
	out.RefundPoints = int(refundPoints.Int32)
	out.NewBalance = int(newBalance.Int32)
	out.IsVariant = isVariant.Valid && isVariant.Bool
	out.IsFree = isFree.Valid && isFree.Bool

	return &out, nil
}
