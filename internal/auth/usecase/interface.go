// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// UserRepository defines read access to the seeded user store.
// Users are immutable after seeding, so there are no write operations.
type UserRepository interface {
	// GetByEmail retrieves a user by email using exact, case-sensitive
	// matching. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)
}

// AuditLogRepository defines persistence operations for audit log entries.
// The log is append-only: entries are never mutated or deleted.
type AuditLogRepository interface {
	// Create appends a new audit log entry.
	Create(ctx context.Context, auditLog *authDomain.AuditLog) error

	// List retrieves entries in append (chronological) order.
	// A limit of 0 means no cap.
	List(ctx context.Context, offset, limit int) ([]*authDomain.AuditLog, error)
}

// AuthUseCase defines login and session authentication operations.
type AuthUseCase interface {
	// Login verifies the email/password pair, issues a session token, and
	// records a login audit entry.
	//
	// Returns ErrInvalidCredentials for unknown emails and wrong passwords
	// alike, to prevent user enumeration attacks.
	Login(ctx context.Context, email, password string) (*authDomain.LoginOutput, error)

	// Authenticate validates a session token and returns the user it
	// belongs to. A valid signature is not enough: the token's subject must
	// resolve to a seeded user record.
	//
	// Returns ErrInvalidCredentials for every failure mode (malformed token,
	// bad signature, expired, unknown subject) so callers cannot
	// distinguish them.
	Authenticate(ctx context.Context, token string) (*authDomain.User, error)
}

// AuditLogUseCase defines recording and inspection of the audit trail.
type AuditLogUseCase interface {
	// Record appends one immutable entry for the action. The entry gets a
	// UUIDv7 id, the request id recovered from ctx, a UTC timestamp, and an
	// HMAC signature over its canonical encoding.
	Record(ctx context.Context, action authDomain.Action, actor, details string) error

	// List retrieves entries in append (chronological) order.
	// A limit of 0 means no cap.
	List(ctx context.Context, offset, limit int) ([]*authDomain.AuditLog, error)

	// VerifyEntry recomputes the entry's signature and reports tampering.
	// Returns nil if valid, ErrSignatureInvalid otherwise.
	VerifyEntry(ctx context.Context, entry *authDomain.AuditLog) error
}
