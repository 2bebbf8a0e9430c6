package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockImageRecompressor is a mock implementation of port.ImageRecompressor.
type MockImageRecompressor struct {
	mock.Mock
}

func (m *MockImageRecompressor) Recompress(data []byte, mimeType string) ([]byte, string, error) {
	args := m.Called(data, mimeType)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
