// Package domain defines authentication and authorization domain models.
// Implements user-based authentication with role-based access control and audit logging.
package domain

// Role classifies a user's level of access. Consultants manage only their own
// capability registrations; admins manage anyone's and can read the audit log.
type Role string

const (
	// ConsultantRole allows self-service capability registration.
	ConsultantRole Role = "consultant"

	// AdminRole allows managing any consultant's registrations and viewing audit logs.
	AdminRole Role = "admin"
)

// Action identifies the kind of event recorded in the audit log.
type Action string

const (
	// LoginAction records a successful authentication.
	LoginAction Action = "login"

	// RegisterAction records a consultant being added to a capability roster.
	RegisterAction Action = "register"

	// UnregisterAction records a consultant being removed from a capability roster.
	UnregisterAction Action = "unregister"
)
