package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// CatalogRepository reads pools, pool contents and member draw state
type CatalogRepository struct {
	db DBTX
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db DBTX) repository.Catalog {
	return &CatalogRepository{db: db}
}

// ListActivePools returns active pools, most recently updated first
func (r *CatalogRepository) ListActivePools(ctx context.Context) ([]domain.Pool, error) {
	rows, err := r.db.Query(ctx, queryListActivePools)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPools, err)
	}
	defer rows.Close()

	pools := []domain.Pool{}
	for rows.Next() {
		var (
			p             domain.Pool
			kind          string
			banner        pgtype.Text
			freeInterval  pgtype.Int4
			pityThreshold pgtype.Int4
			pityRarity    pgtype.Text
		)
		if err := rows.Scan(
			&p.PoolID, &p.Name, &kind, &banner, &p.CostPoints,
			&freeInterval, &p.PaidPullCooldownSeconds,
			&pityThreshold, &pityRarity,
			&p.RateR, &p.RateS, &p.RateSS, &p.RateSSS,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextScanPool, err)
		}
		p.Kind = domain.PoolKind(kind)
		p.BannerImageURL = textToPtr(banner)
		p.FreePullIntervalSeconds = ptrInt(freeInterval)
		p.PityThreshold = ptrInt(pityThreshold)
		p.PityRarity = rarityPtr(pityRarity)
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPools, err)
	}
	return pools, nil
}

// ListPoolItems returns the items of a pool, rarest first
func (r *CatalogRepository) ListPoolItems(ctx context.Context, poolID string) ([]domain.PoolItem, error) {
	rows, err := r.db.Query(ctx, queryListPoolItems, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPoolItems, err)
	}
	defer rows.Close()

	items := []domain.PoolItem{}
	for rows.Next() {
		var (
			item   domain.PoolItem
			rarity string
			roleID pgtype.Text
		)
		if err := rows.Scan(&item.ItemID, &item.Name, &rarity, &roleID, &item.RewardPoints); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextScanPoolItem, err)
		}
		item.Rarity = domain.Rarity(rarity)
		item.RoleID = textToPtr(roleID)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPoolItems, err)
	}
	return items, nil
}

// GetUserStatus returns the member's balance and, when poolID is set, their
// pity and cooldown state in that pool. Missing rows read as zero values.
func (r *CatalogRepository) GetUserStatus(ctx context.Context, userID string, poolID *string) (*domain.UserStatus, error) {
	status := &domain.UserStatus{}

	err := r.db.QueryRow(ctx, queryBalance, userID).Scan(&status.Balance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrContextGetBalance, err)
	}

	if poolID == nil {
		return status, nil
	}

	var freeAt, paidAt pgtype.Timestamptz
	err = r.db.QueryRow(ctx, queryUserState, userID, *poolID).Scan(&status.PityCounter, &freeAt, &paidAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return status, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUserState, err)
	}
	status.FreeAvailableAt = ptrTime(freeAt)
	status.PaidAvailableAt = ptrTime(paidAt)

	return status, nil
}
