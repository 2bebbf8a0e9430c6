package mocks

import (
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockSpreadsheetProcessor is a mock implementation of port.SpreadsheetProcessor.
type MockSpreadsheetProcessor struct {
	mock.Mock
}

func (m *MockSpreadsheetProcessor) Process(data []byte) (json.RawMessage, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
