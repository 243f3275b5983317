package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockFileIndexRepo is a mock implementation of port.FileIndexRepository.
type MockFileIndexRepo struct {
	mock.Mock
}

func (m *MockFileIndexRepo) UpsertBatch(ctx context.Context, files []domain.IndexedFile) (int, error) {
	args := m.Called(ctx, files)
	return args.Int(0), args.Error(1)
}

func (m *MockFileIndexRepo) GetByRemoteID(ctx context.Context, remoteID string) (*domain.IndexedFile, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndexedFile), args.Error(1)
}

func (m *MockFileIndexRepo) List(ctx context.Context, category domain.FolderCategory, offset, limit int) ([]domain.IndexedFile, int, error) {
	args := m.Called(ctx, category, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.IndexedFile), args.Int(1), args.Error(2)
}

func (m *MockFileIndexRepo) MarkProcessed(ctx context.Context, remoteID string, purchaseOrderID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, remoteID, purchaseOrderID, at)
	return args.Error(0)
}

func (m *MockFileIndexRepo) SetArchiveKey(ctx context.Context, remoteID, key string) error {
	args := m.Called(ctx, remoteID, key)
	return args.Error(0)
}
