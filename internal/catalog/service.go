package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// Service defines the interface for pool and member status reads
type Service interface {
	ListPools(ctx context.Context) ([]domain.Pool, error)
	ListPoolItems(ctx context.Context, poolID string) ([]domain.PoolItem, error)
	// GetStatus is never cached: balances and cooldowns move with every pull.
	GetStatus(ctx context.Context, userID string, poolID *string) (*domain.UserStatus, error)
	// RefreshPools reloads the active pool list into the cache ahead of expiry.
	RefreshPools(ctx context.Context) error
	InvalidateCache()
	CacheStats() CacheStats
}

type service struct {
	repo  repository.Catalog
	cache *catalogCache
}

// NewService creates a catalog service backed by an expiring LRU
func NewService(repo repository.Catalog, cfg CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newCatalogCache(cfg),
	}
}

func (s *service) ListPools(ctx context.Context) ([]domain.Pool, error) {
	logger.FromContext(ctx).Debug(LogMsgListPoolsCalled)

	if pools, ok := s.cache.getPools(); ok {
		return pools, nil
	}

	pools, err := s.repo.ListActivePools(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPools, err)
	}
	s.cache.setPools(pools)
	return pools, nil
}

func (s *service) ListPoolItems(ctx context.Context, poolID string) ([]domain.PoolItem, error) {
	logger.FromContext(ctx).Debug(LogMsgListPoolItemsCalled, "pool_id", poolID)
	if poolID == "" {
		return nil, domain.ErrInvalidPoolID
	}

	if items, ok := s.cache.getItems(poolID); ok {
		return items, nil
	}

	items, err := s.repo.ListPoolItems(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListPoolItems, err)
	}
	s.cache.setItems(poolID, items)
	return items, nil
}

func (s *service) GetStatus(ctx context.Context, userID string, poolID *string) (*domain.UserStatus, error) {
	logger.FromContext(ctx).Debug(LogMsgGetStatusCalled, "user_id", userID, "pool_id", poolID)
	if userID == "" {
		return nil, domain.ErrMissingIdentity
	}

	status, err := s.repo.GetUserStatus(ctx, userID, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetStatus, err)
	}
	return status, nil
}

func (s *service) RefreshPools(ctx context.Context) error {
	pools, err := s.repo.ListActivePools(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextRefreshPools, err)
	}
	s.cache.setPools(pools)
	logger.FromContext(ctx).Debug(LogMsgPoolsRefreshed, "count", len(pools))
	return nil
}

func (s *service) InvalidateCache() {
	s.cache.Clear()
	logger.Info(LogMsgCacheInvalidated)
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}
