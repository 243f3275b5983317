package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockSkuRepo is a mock implementation of port.SkuRepository.
type MockSkuRepo struct {
	mock.Mock
}

func (m *MockSkuRepo) FindByNames(ctx context.Context, supplierID uuid.UUID, names []string) ([]domain.SkuRecord, error) {
	args := m.Called(ctx, supplierID, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkuRecord), args.Error(1)
}

func (m *MockSkuRepo) Create(ctx context.Context, sku *domain.SkuRecord) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockSkuRepo) LinkItem(ctx context.Context, itemID uuid.UUID, skuCode string) error {
	args := m.Called(ctx, itemID, skuCode)
	return args.Error(0)
}
