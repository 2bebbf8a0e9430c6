package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invotab/internal/port"
)

// MockModelClient is a mock implementation of port.ModelClient.
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) GenerateContent(ctx context.Context, input port.GenerateInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
