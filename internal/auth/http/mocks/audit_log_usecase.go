// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// MockAuditLogUseCase is a mock implementation of AuditLogUseCase for testing.
type MockAuditLogUseCase struct {
	mock.Mock
}

// Record mocks the Record method of AuditLogUseCase.
func (m *MockAuditLogUseCase) Record(
	ctx context.Context,
	action authDomain.Action,
	actor, details string,
) error {
	args := m.Called(ctx, action, actor, details)
	return args.Error(0)
}

// List mocks the List method of AuditLogUseCase.
func (m *MockAuditLogUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*authDomain.AuditLog, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.AuditLog), args.Error(1)
}

// VerifyEntry mocks the VerifyEntry method of AuditLogUseCase.
func (m *MockAuditLogUseCase) VerifyEntry(ctx context.Context, entry *authDomain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
