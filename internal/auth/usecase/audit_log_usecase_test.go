package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// mockAuditLogRepository is a mock implementation of AuditLogRepository for testing.
type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(ctx context.Context, auditLog *authDomain.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func (m *mockAuditLogRepository) List(ctx context.Context, offset, limit int) ([]*authDomain.AuditLog, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.AuditLog), args.Error(1)
}

// mockAuditSigner is a mock implementation of AuditSigner for testing.
type mockAuditSigner struct {
	mock.Mock
}

func (m *mockAuditSigner) Sign(secretKey []byte, auditLog *authDomain.AuditLog) ([]byte, error) {
	args := m.Called(secretKey, auditLog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockAuditSigner) Verify(secretKey []byte, auditLog *authDomain.AuditLog) error {
	args := m.Called(secretKey, auditLog)
	return args.Error(0)
}

func TestAuditLogUseCase_Record(t *testing.T) {
	secretKey := []byte("test-secret-key")
	signature := []byte("test-signature")

	t.Run("Success_RecordWithRequestID", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		requestID := uuid.Must(uuid.NewV7())
		ctx := WithRequestID(context.Background(), requestID)

		// Setup expectations
		mockSigner.On("Sign", secretKey, mock.MatchedBy(func(entry *authDomain.AuditLog) bool {
			return entry.ID != uuid.Nil &&
				entry.ID.Version() == 7 &&
				entry.RequestID == requestID &&
				entry.Action == authDomain.RegisterAction &&
				entry.Actor == "bob.johnson@slalom.com" &&
				entry.Details == "Registered bob.johnson@slalom.com for Cloud Architecture" &&
				!entry.CreatedAt.IsZero() &&
				entry.CreatedAt.Location() == time.UTC
		})).
			Return(signature, nil).
			Once()

		mockRepo.On("Create", ctx, mock.MatchedBy(func(entry *authDomain.AuditLog) bool {
			return bytes.Equal(signature, entry.Signature)
		})).
			Return(nil).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		err := uc.Record(
			ctx,
			authDomain.RegisterAction,
			"bob.johnson@slalom.com",
			"Registered bob.johnson@slalom.com for Cloud Architecture",
		)

		// Assert
		assert.NoError(t, err)
		mockSigner.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_RecordWithoutRequestID", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		ctx := context.Background()

		// Setup expectations - outside an HTTP request the id falls back to nil
		mockSigner.On("Sign", secretKey, mock.MatchedBy(func(entry *authDomain.AuditLog) bool {
			return entry.RequestID == uuid.Nil
		})).
			Return(signature, nil).
			Once()

		mockRepo.On("Create", ctx, mock.Anything).
			Return(nil).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		err := uc.Record(ctx, authDomain.LoginAction, "alice.smith@slalom.com", "User logged in")

		// Assert
		assert.NoError(t, err)
		mockSigner.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_SignFailed", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		ctx := context.Background()
		signErr := errors.New("signing failed")

		// Setup expectations
		mockSigner.On("Sign", secretKey, mock.Anything).
			Return(nil, signErr).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		err := uc.Record(ctx, authDomain.LoginAction, "alice.smith@slalom.com", "User logged in")

		// Assert - nothing is persisted when the entry cannot be signed
		assert.ErrorIs(t, err, signErr)
		assert.Contains(t, err.Error(), "failed to sign audit log")
		mockSigner.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_CreateFailed", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		ctx := context.Background()
		createErr := errors.New("append failed")

		// Setup expectations
		mockSigner.On("Sign", secretKey, mock.Anything).
			Return(signature, nil).
			Once()

		mockRepo.On("Create", ctx, mock.Anything).
			Return(createErr).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		err := uc.Record(ctx, authDomain.UnregisterAction, "alice.smith@slalom.com", "Unregistered")

		// Assert
		assert.ErrorIs(t, err, createErr)
		assert.Contains(t, err.Error(), "failed to create audit log")
		mockSigner.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_UniqueIdentifiers", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		ctx := context.Background()
		seen := make(map[uuid.UUID]bool)

		// Setup expectations
		mockSigner.On("Sign", secretKey, mock.Anything).
			Return(signature, nil).
			Times(3)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(entry *authDomain.AuditLog) bool {
			if seen[entry.ID] {
				return false
			}
			seen[entry.ID] = true
			return true
		})).
			Return(nil).
			Times(3)

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		for i := 0; i < 3; i++ {
			err := uc.Record(ctx, authDomain.LoginAction, "alice.smith@slalom.com", "User logged in")
			assert.NoError(t, err)
		}

		// Assert
		assert.Len(t, seen, 3)
		mockSigner.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuditLogUseCase_List(t *testing.T) {
	ctx := context.Background()
	secretKey := []byte("test-secret-key")

	t.Run("Success_ListEntries", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		entries := []*authDomain.AuditLog{
			{
				ID:        uuid.Must(uuid.NewV7()),
				Action:    authDomain.LoginAction,
				Actor:     "alice.smith@slalom.com",
				Details:   "User logged in",
				CreatedAt: time.Now().UTC(),
			},
			{
				ID:        uuid.Must(uuid.NewV7()),
				Action:    authDomain.RegisterAction,
				Actor:     "bob.johnson@slalom.com",
				Details:   "Registered bob.johnson@slalom.com for DevOps Engineering",
				CreatedAt: time.Now().UTC(),
			},
		}

		// Setup expectations
		mockRepo.On("List", ctx, 0, 0).
			Return(entries, nil).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		got, err := uc.List(ctx, 0, 0)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_ListWithPagination", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		// Setup expectations
		mockRepo.On("List", ctx, 10, 5).
			Return([]*authDomain.AuditLog{}, nil).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		got, err := uc.List(ctx, 10, 5)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_ListFailed", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		listErr := errors.New("list failed")

		// Setup expectations
		mockRepo.On("List", ctx, 0, 0).
			Return(nil, listErr).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		got, err := uc.List(ctx, 0, 0)

		// Assert
		assert.ErrorIs(t, err, listErr)
		assert.Contains(t, err.Error(), "failed to list audit logs")
		assert.Nil(t, got)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuditLogUseCase_VerifyEntry(t *testing.T) {
	ctx := context.Background()
	secretKey := []byte("test-secret-key")

	entry := &authDomain.AuditLog{
		ID:        uuid.Must(uuid.NewV7()),
		Action:    authDomain.LoginAction,
		Actor:     "alice.smith@slalom.com",
		Details:   "User logged in",
		Signature: []byte("test-signature"),
		CreatedAt: time.Now().UTC(),
	}

	t.Run("Success_ValidSignature", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		// Setup expectations
		mockSigner.On("Verify", secretKey, entry).
			Return(nil).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		err := uc.VerifyEntry(ctx, entry)

		// Assert
		assert.NoError(t, err)
		mockSigner.AssertExpectations(t)
	})

	t.Run("Error_TamperedEntry", func(t *testing.T) {
		// Setup mocks
		mockRepo := &mockAuditLogRepository{}
		mockSigner := &mockAuditSigner{}

		// Setup expectations
		mockSigner.On("Verify", secretKey, entry).
			Return(authDomain.ErrSignatureInvalid).
			Once()

		// Execute
		uc := NewAuditLogUseCase(mockRepo, mockSigner, secretKey)
		err := uc.VerifyEntry(ctx, entry)

		// Assert
		assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
		mockSigner.AssertExpectations(t)
	})
}
