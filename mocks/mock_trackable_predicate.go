package mocks

import (
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockTrackablePredicate is a mock implementation of port.TrackableGoodsPredicate.
type MockTrackablePredicate struct {
	mock.Mock
}

func (m *MockTrackablePredicate) IsTrackable(item domain.ResolveItem) bool {
	args := m.Called(item)
	return args.Bool(0)
}
