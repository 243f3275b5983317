package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendSyncDigest(ctx context.Context, category domain.FolderCategory, report *domain.SyncReport) error {
	args := m.Called(ctx, category, report)
	return args.Error(0)
}
