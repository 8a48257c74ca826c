// Package domain defines the core domain models for the capability catalog.
package domain

import (
	"github.com/slalombuild/capabilities/internal/errors"
)

// Capability-specific error definitions.
var (
	// ErrCapabilityNotFound indicates the named capability is not in the catalog.
	ErrCapabilityNotFound = errors.Wrap(errors.ErrNotFound, "capability not found")

	// ErrAlreadyRegistered indicates the consultant is already in the roster.
	ErrAlreadyRegistered = errors.Wrap(errors.ErrConflict, "consultant is already registered for this capability")

	// ErrNotRegistered indicates the consultant is not in the roster.
	ErrNotRegistered = errors.Wrap(errors.ErrConflict, "consultant is not registered for this capability")
)
