package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockSyncService is a mock implementation of service.SyncService.
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Sync(ctx context.Context, category domain.FolderCategory) (*domain.SyncReport, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncReport), args.Error(1)
}

func (m *MockSyncService) Status(ctx context.Context, category domain.FolderCategory) (*domain.SyncConfig, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncConfig), args.Error(1)
}
