package app

import (
	"fmt"

	authRepository "github.com/slalombuild/capabilities/internal/auth/repository"
	authService "github.com/slalombuild/capabilities/internal/auth/service"
	authUsecase "github.com/slalombuild/capabilities/internal/auth/usecase"
	"github.com/slalombuild/capabilities/internal/seed"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = c.initPasswordService()
	})
	return c.passwordService
}

// TokenService returns the session token service.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = c.initTokenService()
	})
	return c.tokenService
}

// AuditSigner returns the audit log signing service.
func (c *Container) AuditSigner() authService.AuditSigner {
	c.auditSignerInit.Do(func() {
		c.auditSigner = c.initAuditSigner()
	})
	return c.auditSigner
}

// UserRepository returns the user repository seeded from the startup dataset.
func (c *Container) UserRepository() (authUsecase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// AuditLogRepository returns the append-only audit log repository.
func (c *Container) AuditLogRepository() authUsecase.AuditLogRepository {
	c.auditLogRepositoryInit.Do(func() {
		c.auditLogRepository = c.initAuditLogRepository()
	})
	return c.auditLogRepository
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuditLogUseCase returns the audit log use case.
func (c *Container) AuditLogUseCase() (authUsecase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		c.auditLogUseCase, err = c.initAuditLogUseCase()
		if err != nil {
			c.initErrors["auditLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

// initPasswordService creates the password hashing service.
func (c *Container) initPasswordService() authService.PasswordService {
	return authService.NewPasswordService()
}

// initTokenService creates the session token service keyed by the session secret.
func (c *Container) initTokenService() authService.TokenService {
	return authService.NewTokenService(
		[]byte(c.config.SessionSecretKey),
		c.config.SessionLifetime,
	)
}

// initAuditSigner creates the audit log signing service.
func (c *Container) initAuditSigner() authService.AuditSigner {
	return authService.NewAuditSigner()
}

// initUserRepository creates the in-memory user repository from the seed data.
func (c *Container) initUserRepository() (authUsecase.UserRepository, error) {
	seedData, err := c.SeedData()
	if err != nil {
		return nil, fmt.Errorf("failed to get seed data for user repository: %w", err)
	}

	return authRepository.NewMemoryUserRepository(seed.MapUsers(seedData.Users)), nil
}

// initAuditLogRepository creates the in-memory audit log repository.
func (c *Container) initAuditLogRepository() authUsecase.AuditLogRepository {
	return authRepository.NewMemoryAuditLogRepository()
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for auth use case: %w", err)
	}

	baseUseCase := authUsecase.NewAuthUseCase(
		userRepository,
		c.PasswordService(),
		c.TokenService(),
		auditLogUseCase,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUsecase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuditLogUseCase creates the audit log use case with all its dependencies.
func (c *Container) initAuditLogUseCase() (authUsecase.AuditLogUseCase, error) {
	baseUseCase := authUsecase.NewAuditLogUseCase(
		c.AuditLogRepository(),
		c.AuditSigner(),
		[]byte(c.config.SessionSecretKey),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for audit log use case: %w", err)
		}
		return authUsecase.NewAuditLogUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
