package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"procura/internal/port"
)

// MockRemoteFolderClient is a mock implementation of port.RemoteFolderClient.
type MockRemoteFolderClient struct {
	mock.Mock
}

func (m *MockRemoteFolderClient) ListChildren(ctx context.Context, token, folderID, pageToken string) ([]port.RemoteEntry, string, error) {
	args := m.Called(ctx, token, folderID, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]port.RemoteEntry), args.String(1), args.Error(2)
}

func (m *MockRemoteFolderClient) Download(ctx context.Context, token, fileID string) ([]byte, error) {
	args := m.Called(ctx, token, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
