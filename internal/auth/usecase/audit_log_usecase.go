// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	authService "github.com/slalombuild/capabilities/internal/auth/service"
	apperrors "github.com/slalombuild/capabilities/internal/errors"
)

// auditLogUseCase implements AuditLogUseCase for the signed, append-only audit trail.
type auditLogUseCase struct {
	auditLogRepo AuditLogRepository
	auditSigner  authService.AuditSigner
	secretKey    []byte
}

// Record appends an audit log entry for the action. Generates a UUIDv7
// identifier and UTC timestamp, recovers the request id from the context, and
// signs the entry before persisting it.
func (a *auditLogUseCase) Record(
	ctx context.Context,
	action authDomain.Action,
	actor, details string,
) error {
	// Create the audit log entity
	auditLog := &authDomain.AuditLog{
		ID:        uuid.Must(uuid.NewV7()),
		RequestID: GetRequestID(ctx),
		Action:    action,
		Actor:     actor,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	// Sign the entry so tampering is detectable later
	signature, err := a.auditSigner.Sign(a.secretKey, auditLog)
	if err != nil {
		return apperrors.Wrap(err, "failed to sign audit log")
	}
	auditLog.Signature = signature

	// Persist the audit log
	if err := a.auditLogRepo.Create(ctx, auditLog); err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}

	return nil
}

// List retrieves audit log entries in append (chronological) order with
// optional pagination. A limit of 0 means no cap, so List(ctx, 0, 0) returns
// the complete trail.
func (a *auditLogUseCase) List(ctx context.Context, offset, limit int) ([]*authDomain.AuditLog, error) {
	auditLogs, err := a.auditLogRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}

	return auditLogs, nil
}

// VerifyEntry recomputes the entry's signature and reports tampering.
func (a *auditLogUseCase) VerifyEntry(ctx context.Context, entry *authDomain.AuditLog) error {
	return a.auditSigner.Verify(a.secretKey, entry)
}

// NewAuditLogUseCase creates a new AuditLogUseCase with the provided dependencies.
// The secret key feeds the HKDF derivation of the audit signing key.
func NewAuditLogUseCase(
	auditLogRepo AuditLogRepository,
	auditSigner authService.AuditSigner,
	secretKey []byte,
) AuditLogUseCase {
	return &auditLogUseCase{
		auditLogRepo: auditLogRepo,
		auditSigner:  auditSigner,
		secretKey:    secretKey,
	}
}
