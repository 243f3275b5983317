package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAccessTokenProvider is a mock implementation of port.AccessTokenProvider.
type MockAccessTokenProvider struct {
	mock.Mock
}

func (m *MockAccessTokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
