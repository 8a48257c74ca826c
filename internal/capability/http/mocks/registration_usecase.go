package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// MockRegistrationUseCase is a mock implementation of RegistrationUseCase for testing.
type MockRegistrationUseCase struct {
	mock.Mock
}

// Register mocks the Register method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Register(
	ctx context.Context,
	capabilityName, targetEmail string,
	actingUser *authDomain.User,
) (string, error) {
	args := m.Called(ctx, capabilityName, targetEmail, actingUser)
	return args.String(0), args.Error(1)
}

// Unregister mocks the Unregister method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Unregister(
	ctx context.Context,
	capabilityName, targetEmail string,
	actingUser *authDomain.User,
) (string, error) {
	args := m.Called(ctx, capabilityName, targetEmail, actingUser)
	return args.String(0), args.Error(1)
}
