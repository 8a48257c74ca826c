// Package usecase implements business logic orchestration for capability catalog operations.
package usecase

import (
	"context"

	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
	apperrors "github.com/slalombuild/capabilities/internal/errors"
)

// capabilityUseCase implements CapabilityUseCase for catalog reads.
type capabilityUseCase struct {
	capabilityRepo CapabilityRepository
}

// List retrieves all capabilities with their rosters in seed order.
func (c *capabilityUseCase) List(ctx context.Context) ([]*capabilityDomain.Capability, error) {
	capabilities, err := c.capabilityRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list capabilities")
	}

	return capabilities, nil
}

// Get retrieves a single capability by name.
func (c *capabilityUseCase) Get(ctx context.Context, name string) (*capabilityDomain.Capability, error) {
	return c.capabilityRepo.GetByName(ctx, name)
}

// NewCapabilityUseCase creates a new CapabilityUseCase with the provided repository.
func NewCapabilityUseCase(capabilityRepo CapabilityRepository) CapabilityUseCase {
	return &capabilityUseCase{
		capabilityRepo: capabilityRepo,
	}
}
