package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
	"procura/internal/service"
)

// MockScanService is a mock implementation of service.ScanService.
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) Scan(ctx context.Context, input service.ScanInput) (*domain.MatchResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResult), args.Error(1)
}

func (m *MockScanService) Accept(ctx context.Context, input service.AcceptInput) (*domain.ResolveReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolveReport), args.Error(1)
}

func (m *MockScanService) ArchiveURL(ctx context.Context, remoteID string) (string, error) {
	args := m.Called(ctx, remoteID)
	return args.String(0), args.Error(1)
}
