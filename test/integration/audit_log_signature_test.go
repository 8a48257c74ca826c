package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slalombuild/capabilities/internal/app"
	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	authRepository "github.com/slalombuild/capabilities/internal/auth/repository"
	authService "github.com/slalombuild/capabilities/internal/auth/service"
	authUsecase "github.com/slalombuild/capabilities/internal/auth/usecase"
	"github.com/slalombuild/capabilities/internal/config"
)

// TestIntegration_AuditLogSignatures drives the use case layer directly and
// checks that every recorded entry carries a valid HMAC signature, that any
// field change is detected, and that verification only succeeds with the key
// the trail was signed under.
func TestIntegration_AuditLogSignatures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	const sessionSecret = "signature-test-session-secret" //nolint:gosec // test fixture, not a real credential

	cfg := &config.Config{
		ServerHost:       "localhost",
		ServerPort:       8080,
		LogLevel:         "error",
		SessionSecretKey: sessionSecret,
		SessionLifetime:  time.Hour,
	}

	container := app.NewContainer(cfg)
	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: failed to shutdown container: %v", err)
		}
	}()

	authUC, err := container.AuthUseCase()
	require.NoError(t, err)
	registrationUC, err := container.RegistrationUseCase()
	require.NoError(t, err)
	auditLogUC, err := container.AuditLogUseCase()
	require.NoError(t, err)

	ctx := context.Background()

	// Produce one entry per action type: two logins, a register, an unregister
	adminLogin, err := authUC.Login(ctx, adminEmail, seedPassword)
	require.NoError(t, err)
	consultantLogin, err := authUC.Login(ctx, consultantEmail, seedPassword)
	require.NoError(t, err)

	_, err = registrationUC.Register(ctx, "Data Analytics", consultantEmail, consultantLogin.User)
	require.NoError(t, err)
	_, err = registrationUC.Unregister(ctx, "Data Analytics", consultantEmail, adminLogin.User)
	require.NoError(t, err)

	entries, err := auditLogUC.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	t.Run("01_AllEntriesVerify", func(t *testing.T) {
		for i := 0; i < len(entries); i++ {
			assert.NoError(t, auditLogUC.VerifyEntry(ctx, entries[i]),
				"entry %d (%s) should verify", i, entries[i].Action)
			assert.Len(t, entries[i].Signature, 32, "HMAC-SHA256 signature is 32 bytes")
		}
	})

	t.Run("02_TamperedDetailsDetected", func(t *testing.T) {
		tampered := *entries[2]
		tampered.Details = "Registered mallory@slalom.com for Data Analytics"

		err := auditLogUC.VerifyEntry(ctx, &tampered)
		assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
	})

	t.Run("03_TamperedActorDetected", func(t *testing.T) {
		tampered := *entries[3]
		tampered.Actor = consultantEmail

		err := auditLogUC.VerifyEntry(ctx, &tampered)
		assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
	})

	t.Run("04_TamperedActionDetected", func(t *testing.T) {
		tampered := *entries[0]
		tampered.Action = authDomain.UnregisterAction

		err := auditLogUC.VerifyEntry(ctx, &tampered)
		assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
	})

	t.Run("05_TamperedTimestampDetected", func(t *testing.T) {
		tampered := *entries[1]
		tampered.CreatedAt = tampered.CreatedAt.Add(time.Hour)

		err := auditLogUC.VerifyEntry(ctx, &tampered)
		assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
	})

	t.Run("06_SwappedSignatureDetected", func(t *testing.T) {
		tampered := *entries[0]
		tampered.Signature = entries[1].Signature

		err := auditLogUC.VerifyEntry(ctx, &tampered)
		assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
	})

	// A separate verifier holding the same key accepts the trail. Entries are
	// self-contained, so verification does not depend on the recording process.
	t.Run("07_IndependentVerifierSameKey", func(t *testing.T) {
		verifier := authUsecase.NewAuditLogUseCase(
			authRepository.NewMemoryAuditLogRepository(),
			authService.NewAuditSigner(),
			[]byte(sessionSecret),
		)

		for i := 0; i < len(entries); i++ {
			assert.NoError(t, verifier.VerifyEntry(ctx, entries[i]))
		}
	})

	t.Run("08_IndependentVerifierWrongKey", func(t *testing.T) {
		verifier := authUsecase.NewAuditLogUseCase(
			authRepository.NewMemoryAuditLogRepository(),
			authService.NewAuditSigner(),
			[]byte("a-completely-different-secret"),
		)

		for i := 0; i < len(entries); i++ {
			err := verifier.VerifyEntry(ctx, entries[i])
			assert.ErrorIs(t, err, authDomain.ErrSignatureInvalid)
		}
	})
}
