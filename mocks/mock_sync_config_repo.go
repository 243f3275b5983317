package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockSyncConfigRepo is a mock implementation of port.SyncConfigRepository.
type MockSyncConfigRepo struct {
	mock.Mock
}

func (m *MockSyncConfigRepo) Get(ctx context.Context, category domain.FolderCategory) (*domain.SyncConfig, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncConfig), args.Error(1)
}

func (m *MockSyncConfigRepo) Update(ctx context.Context, cfg *domain.SyncConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
