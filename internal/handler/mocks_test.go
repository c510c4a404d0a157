package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tinklepaw-gacha/internal/catalog"
	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// MockDrawService
type MockDrawService struct {
	mock.Mock
}

func (m *MockDrawService) ExecuteBatch(ctx context.Context, req domain.DrawRequest) (*domain.BatchOutcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchOutcome), args.Error(1)
}

// MockHistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Page(ctx context.Context, userID string, query domain.HistoryQuery) (*domain.HistoryPage, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryPage), args.Error(1)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPools(ctx context.Context) ([]domain.Pool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pool), args.Error(1)
}

func (m *MockCatalogService) ListPoolItems(ctx context.Context, poolID string) ([]domain.PoolItem, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PoolItem), args.Error(1)
}

func (m *MockCatalogService) GetStatus(ctx context.Context, userID string, poolID *string) (*domain.UserStatus, error) {
	args := m.Called(ctx, userID, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStatus), args.Error(1)
}

func (m *MockCatalogService) RefreshPools(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogService) InvalidateCache() {
	m.Called()
}

func (m *MockCatalogService) CacheStats() catalog.CacheStats {
	args := m.Called()
	return args.Get(0).(catalog.CacheStats)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

const (
	testUserID = "123456789012345678"
	testPoolID = "8d6f0a52-3f8e-4b3c-9a57-1c2d3e4f5a6b"
)
