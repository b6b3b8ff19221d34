package chart

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRenderer is a test double for Renderer.
type MockRenderer struct {
	mock.Mock
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) Render(ctx context.Context, config Config) (string, error) {
	args := m.Called(ctx, config)
	return args.String(0), args.Error(1)
}
