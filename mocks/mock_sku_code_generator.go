package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"procura/internal/port"
)

// MockSkuCodeGenerator is a mock implementation of port.SkuCodeGenerator.
type MockSkuCodeGenerator struct {
	mock.Mock
}

func (m *MockSkuCodeGenerator) Generate(ctx context.Context, input port.SkuCodeInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
