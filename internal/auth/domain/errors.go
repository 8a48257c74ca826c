package domain

import (
	"github.com/slalombuild/capabilities/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrUserNotFound indicates a user with the specified email was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrInvalidCredentials indicates the email/password pair or session token
	// could not be verified. All token and credential failure modes collapse
	// into this error so callers cannot distinguish them.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrAdminRequired indicates the operation is restricted to admin users.
	ErrAdminRequired = errors.Wrap(errors.ErrForbidden, "admin role required")

	// ErrSelfServiceOnly indicates a consultant tried to manage another
	// consultant's registrations.
	ErrSelfServiceOnly = errors.Wrap(errors.ErrForbidden, "consultants can only manage their own registrations")

	// ErrSignatureInvalid indicates an audit log entry's signature does not
	// match its contents, meaning the entry was tampered with.
	ErrSignatureInvalid = errors.New("audit log signature verification failed")
)
