// Package usecase defines business logic interfaces for capability catalog operations.
package usecase

import (
	"context"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
)

// CapabilityRepository defines storage operations for the capability catalog.
// The catalog itself is fixed after seeding; only rosters are mutated.
type CapabilityRepository interface {
	// List retrieves all capabilities in seed order.
	List(ctx context.Context) ([]*capabilityDomain.Capability, error)

	// GetByName retrieves a capability by name using exact, case-sensitive
	// matching. Returns ErrCapabilityNotFound if not found.
	GetByName(ctx context.Context, name string) (*capabilityDomain.Capability, error)

	// AddConsultant appends the email to the capability's roster. The
	// duplicate check is atomic with the append: concurrent adds for the
	// same email cannot both succeed. Returns ErrAlreadyRegistered on
	// duplicates and ErrCapabilityNotFound for unknown capabilities.
	AddConsultant(ctx context.Context, name, email string) error

	// RemoveConsultant removes the email from the capability's roster.
	// Returns ErrNotRegistered if absent and ErrCapabilityNotFound for
	// unknown capabilities.
	RemoveConsultant(ctx context.Context, name, email string) error
}

// CapabilityUseCase defines read access to the capability catalog.
type CapabilityUseCase interface {
	// List retrieves all capabilities with their rosters in seed order.
	List(ctx context.Context) ([]*capabilityDomain.Capability, error)

	// Get retrieves a single capability by name.
	Get(ctx context.Context, name string) (*capabilityDomain.Capability, error)
}

// RegistrationUseCase defines roster mutations with authorization checks and
// audit trail recording. Both operations are idempotent-rejecting: repeating
// them fails with a conflict rather than silently succeeding.
type RegistrationUseCase interface {
	// Register adds targetEmail to the capability's roster on behalf of
	// actingUser and returns a human-readable confirmation. Non-admins may
	// only register themselves.
	//
	// Failure order: unknown capability, then authorization, then conflict.
	Register(
		ctx context.Context,
		capabilityName, targetEmail string,
		actingUser *authDomain.User,
	) (string, error)

	// Unregister removes targetEmail from the capability's roster on behalf
	// of actingUser and returns a human-readable confirmation. Admin access
	// is enforced by the HTTP middleware before this is invoked.
	Unregister(
		ctx context.Context,
		capabilityName, targetEmail string,
		actingUser *authDomain.User,
	) (string, error)
}
