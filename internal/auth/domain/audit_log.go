package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records authentication and registration events for compliance and
// security monitoring. Entries are append-only: once recorded they are never
// mutated or deleted, and their insertion order is their chronological order.
type AuditLog struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	Action    Action
	Actor     string // Email of the user who performed the action
	Details   string // Human-readable description of the event
	Signature []byte // HMAC-SHA256 over the entry's canonical encoding
	CreatedAt time.Time
}
