package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// MockCatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListActivePools(ctx context.Context) ([]domain.Pool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pool), args.Error(1)
}

func (m *MockCatalogRepository) ListPoolItems(ctx context.Context, poolID string) ([]domain.PoolItem, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PoolItem), args.Error(1)
}

func (m *MockCatalogRepository) GetUserStatus(ctx context.Context, userID string, poolID *string) (*domain.UserStatus, error) {
	args := m.Called(ctx, userID, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStatus), args.Error(1)
}
