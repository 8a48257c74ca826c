// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
)

// MockCapabilityUseCase is a mock implementation of CapabilityUseCase for testing.
type MockCapabilityUseCase struct {
	mock.Mock
}

// List mocks the List method of CapabilityUseCase.
func (m *MockCapabilityUseCase) List(ctx context.Context) ([]*capabilityDomain.Capability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*capabilityDomain.Capability), args.Error(1)
}

// Get mocks the Get method of CapabilityUseCase.
func (m *MockCapabilityUseCase) Get(
	ctx context.Context,
	name string,
) (*capabilityDomain.Capability, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*capabilityDomain.Capability), args.Error(1)
}
