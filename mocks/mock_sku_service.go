package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockSkuService is a mock implementation of service.SkuService.
type MockSkuService struct {
	mock.Mock
}

func (m *MockSkuService) ResolveBatch(ctx context.Context, supplierID uuid.UUID, items []domain.ResolveItem) (*domain.ResolveReport, error) {
	args := m.Called(ctx, supplierID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolveReport), args.Error(1)
}

func (m *MockSkuService) Resolve(ctx context.Context, item domain.ResolveItem, supplier *domain.Supplier) (string, error) {
	args := m.Called(ctx, item, supplier)
	return args.String(0), args.Error(1)
}
