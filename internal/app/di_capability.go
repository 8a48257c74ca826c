package app

import (
	"fmt"

	capabilityRepository "github.com/slalombuild/capabilities/internal/capability/repository"
	capabilityUsecase "github.com/slalombuild/capabilities/internal/capability/usecase"
	"github.com/slalombuild/capabilities/internal/seed"
)

// CapabilityRepository returns the capability repository seeded from the startup dataset.
func (c *Container) CapabilityRepository() (capabilityUsecase.CapabilityRepository, error) {
	var err error
	c.capabilityRepositoryInit.Do(func() {
		c.capabilityRepository, err = c.initCapabilityRepository()
		if err != nil {
			c.initErrors["capabilityRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["capabilityRepository"]; exists {
		return nil, storedErr
	}
	return c.capabilityRepository, nil
}

// CapabilityUseCase returns the capability catalog use case.
func (c *Container) CapabilityUseCase() (capabilityUsecase.CapabilityUseCase, error) {
	var err error
	c.capabilityUseCaseInit.Do(func() {
		c.capabilityUseCase, err = c.initCapabilityUseCase()
		if err != nil {
			c.initErrors["capabilityUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["capabilityUseCase"]; exists {
		return nil, storedErr
	}
	return c.capabilityUseCase, nil
}

// RegistrationUseCase returns the capability registration use case.
func (c *Container) RegistrationUseCase() (capabilityUsecase.RegistrationUseCase, error) {
	var err error
	c.registrationUseCaseInit.Do(func() {
		c.registrationUseCase, err = c.initRegistrationUseCase()
		if err != nil {
			c.initErrors["registrationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["registrationUseCase"]; exists {
		return nil, storedErr
	}
	return c.registrationUseCase, nil
}

// initCapabilityRepository creates the in-memory capability repository from the seed data.
func (c *Container) initCapabilityRepository() (capabilityUsecase.CapabilityRepository, error) {
	seedData, err := c.SeedData()
	if err != nil {
		return nil, fmt.Errorf("failed to get seed data for capability repository: %w", err)
	}

	return capabilityRepository.NewMemoryCapabilityRepository(
		seed.MapCapabilities(seedData.Capabilities),
	), nil
}

// initCapabilityUseCase creates the capability catalog use case with all its dependencies.
func (c *Container) initCapabilityUseCase() (capabilityUsecase.CapabilityUseCase, error) {
	capabilityRepo, err := c.CapabilityRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get capability repository for capability use case: %w", err)
	}

	baseUseCase := capabilityUsecase.NewCapabilityUseCase(capabilityRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for capability use case: %w", err)
		}
		return capabilityUsecase.NewCapabilityUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRegistrationUseCase creates the registration use case with all its dependencies.
func (c *Container) initRegistrationUseCase() (capabilityUsecase.RegistrationUseCase, error) {
	capabilityRepo, err := c.CapabilityRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get capability repository for registration use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for registration use case: %w", err)
	}

	baseUseCase := capabilityUsecase.NewRegistrationUseCase(capabilityRepo, auditLogUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for registration use case: %w", err)
		}
		return capabilityUsecase.NewRegistrationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
