package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invotab/internal/domain"
	"invotab/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, input service.ExtractInput) (domain.ExtractedData, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.ExtractedData), args.Error(1)
}
