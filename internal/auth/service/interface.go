// Package service provides technical services for authentication operations.
//
// This package implements reusable services for password verification, session
// token issuance, and audit log signing using industry-standard cryptographic
// practices.
package service

import (
	"time"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// PasswordService defines operations for password hashing and verification.
// Implementations must use industry-standard hashing algorithms and
// constant-time comparison to prevent timing attacks.
type PasswordService interface {
	// Hash hashes a plain text password using Argon2id.
	// Used by tooling that prepares seed data entries.
	Hash(plainPassword string) (hashedPassword string, err error)

	// HashBcrypt hashes a plain text password using bcrypt. The embedded seed
	// data ships bcrypt digests, so tooling that extends it can stay in the
	// same format.
	HashBcrypt(plainPassword string) (hashedPassword string, err error)

	// Verify compares a plain text password against a stored digest. The
	// digest format selects the algorithm: "$argon2*" digests verify with
	// Argon2id, anything else with bcrypt. Fails closed: malformed digests
	// and verifier errors return false, never an error.
	Verify(plainPassword string, hashedPassword string) bool
}

// TokenService defines operations for session token issuance and verification.
// Tokens are stateless: there is no server-side session storage and no
// revocation, so a token stays valid until its expiry.
type TokenService interface {
	// Issue creates a signed session token for the subject, expiring after
	// the configured session lifetime.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Verify parses and validates a session token, returning its subject.
	// All failure modes (malformed token, bad signature, expired) collapse
	// into ErrInvalidCredentials so callers cannot distinguish them.
	Verify(token string) (subject string, err error)
}

// AuditSigner defines operations for signing and verifying audit log entries.
// Signatures allow detecting tampering with recorded entries.
type AuditSigner interface {
	// Sign generates an HMAC-SHA256 signature over the entry's canonical
	// encoding, using a signing key derived from secretKey.
	Sign(secretKey []byte, log *authDomain.AuditLog) ([]byte, error)

	// Verify checks the entry's signature. Returns nil if valid,
	// ErrSignatureInvalid if the entry was tampered with.
	Verify(secretKey []byte, log *authDomain.AuditLog) error
}
