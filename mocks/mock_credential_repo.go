package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCredentialRepo is a mock implementation of port.CredentialRepository.
type MockCredentialRepo struct {
	mock.Mock
}

func (m *MockCredentialRepo) GetRefreshToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
