package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockAuthUseCase is a mock implementation of AuthUseCase for testing.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		output := &authDomain.LoginOutput{Token: "signed.session.token"}

		mockNext.On("Login", ctx, "alice.smith@slalom.com", "password123").Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, "alice.smith@slalom.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Login", ctx, "alice.smith@slalom.com", "wrong").
			Return(nil, authDomain.ErrInvalidCredentials).
			Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, "alice.smith@slalom.com", "wrong")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate success", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		user := &authDomain.User{Email: "bob.johnson@slalom.com", Role: authDomain.ConsultantRole}

		mockNext.On("Authenticate", ctx, "signed.session.token").Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "authenticate", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Authenticate(ctx, "signed.session.token")
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestAuditLogUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Record success", func(t *testing.T) {
		mockNext := &mockAuditLogUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuditLogUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Record", ctx, authDomain.LoginAction, "alice.smith@slalom.com", "User logged in").
			Return(nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "audit", "record", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "audit", "record", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		err := uc.Record(ctx, authDomain.LoginAction, "alice.smith@slalom.com", "User logged in")
		assert.NoError(t, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("List error", func(t *testing.T) {
		mockNext := &mockAuditLogUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuditLogUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("list failed")

		mockNext.On("List", ctx, 0, 10).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "audit", "list", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "audit", "list", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.List(ctx, 0, 10)
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("VerifyEntry success", func(t *testing.T) {
		mockNext := &mockAuditLogUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuditLogUseCaseWithMetrics(mockNext, mockMetrics)

		entry := &authDomain.AuditLog{ID: uuid.Must(uuid.NewV7())}

		mockNext.On("VerifyEntry", ctx, entry).Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "audit", "verify", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "audit", "verify", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		err := uc.VerifyEntry(ctx, entry)
		assert.NoError(t, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
