// Package repository provides in-memory storage for the capability catalog.
package repository

import (
	"context"
	"sync"

	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
)

// MemoryCapabilityRepository implements capability storage over a map keyed by
// name. The catalog is fixed at construction: only consultant rosters change.
// Seed order is preserved for listing.
type MemoryCapabilityRepository struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]*capabilityDomain.Capability
}

// List retrieves all capabilities in seed order.
func (m *MemoryCapabilityRepository) List(ctx context.Context) ([]*capabilityDomain.Capability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Initialize empty slice to avoid returning nil for empty results
	capabilities := make([]*capabilityDomain.Capability, 0, len(m.names))
	for _, name := range m.names {
		capabilities = append(capabilities, copyCapability(m.byName[name]))
	}

	return capabilities, nil
}

// GetByName retrieves a capability by name using exact, case-sensitive matching.
// Returns ErrCapabilityNotFound if the name is not in the catalog.
func (m *MemoryCapabilityRepository) GetByName(
	ctx context.Context,
	name string,
) (*capabilityDomain.Capability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	capability, ok := m.byName[name]
	if !ok {
		return nil, capabilityDomain.ErrCapabilityNotFound
	}

	return copyCapability(capability), nil
}

// AddConsultant appends the email to the capability's roster. The duplicate
// check and the append happen under one write lock, so two concurrent adds for
// the same email cannot both succeed. Returns ErrCapabilityNotFound if the
// capability is absent and ErrAlreadyRegistered if the email is in the roster.
func (m *MemoryCapabilityRepository) AddConsultant(ctx context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	capability, ok := m.byName[name]
	if !ok {
		return capabilityDomain.ErrCapabilityNotFound
	}

	if capability.HasConsultant(email) {
		return capabilityDomain.ErrAlreadyRegistered
	}

	capability.Consultants = append(capability.Consultants, email)
	return nil
}

// RemoveConsultant removes the email from the capability's roster, preserving
// the order of the remaining entries. The membership check and the removal
// happen under one write lock. Returns ErrCapabilityNotFound if the capability
// is absent and ErrNotRegistered if the email is not in the roster.
func (m *MemoryCapabilityRepository) RemoveConsultant(ctx context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	capability, ok := m.byName[name]
	if !ok {
		return capabilityDomain.ErrCapabilityNotFound
	}

	for i, consultant := range capability.Consultants {
		if consultant == email {
			capability.Consultants = append(capability.Consultants[:i], capability.Consultants[i+1:]...)
			return nil
		}
	}

	return capabilityDomain.ErrNotRegistered
}

// copyCapability returns a deep copy so callers cannot mutate stored state.
func copyCapability(capability *capabilityDomain.Capability) *capabilityDomain.Capability {
	copied := *capability
	copied.SkillLevels = append([]string(nil), capability.SkillLevels...)
	copied.Certifications = append([]string(nil), capability.Certifications...)
	copied.IndustryVerticals = append([]string(nil), capability.IndustryVerticals...)
	copied.Consultants = append([]string(nil), capability.Consultants...)
	return &copied
}

// NewMemoryCapabilityRepository creates a repository seeded with the given
// capabilities. Listing preserves the order of the input slice. The input is
// deep-copied, so later mutations of the arguments do not affect the store.
func NewMemoryCapabilityRepository(
	capabilities []*capabilityDomain.Capability,
) *MemoryCapabilityRepository {
	names := make([]string, 0, len(capabilities))
	byName := make(map[string]*capabilityDomain.Capability, len(capabilities))
	for _, capability := range capabilities {
		names = append(names, capability.Name)
		byName[capability.Name] = copyCapability(capability)
	}

	return &MemoryCapabilityRepository{
		names:  names,
		byName: byName,
	}
}
