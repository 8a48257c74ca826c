package usecase

import (
	"context"
	"time"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
	"github.com/slalombuild/capabilities/internal/metrics"
)

// capabilityUseCaseWithMetrics decorates CapabilityUseCase with metrics instrumentation.
type capabilityUseCaseWithMetrics struct {
	next    CapabilityUseCase
	metrics metrics.BusinessMetrics
}

// NewCapabilityUseCaseWithMetrics wraps a CapabilityUseCase with metrics recording.
func NewCapabilityUseCaseWithMetrics(useCase CapabilityUseCase, m metrics.BusinessMetrics) CapabilityUseCase {
	return &capabilityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// List records metrics for catalog list operations.
func (c *capabilityUseCaseWithMetrics) List(ctx context.Context) ([]*capabilityDomain.Capability, error) {
	start := time.Now()
	capabilities, err := c.next.List(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "capability", "list", status)
	c.metrics.RecordDuration(ctx, "capability", "list", time.Since(start), status)

	return capabilities, err
}

// Get records metrics for catalog get operations.
func (c *capabilityUseCaseWithMetrics) Get(
	ctx context.Context,
	name string,
) (*capabilityDomain.Capability, error) {
	start := time.Now()
	capability, err := c.next.Get(ctx, name)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "capability", "get", status)
	c.metrics.RecordDuration(ctx, "capability", "get", time.Since(start), status)

	return capability, err
}

// registrationUseCaseWithMetrics decorates RegistrationUseCase with metrics instrumentation.
type registrationUseCaseWithMetrics struct {
	next    RegistrationUseCase
	metrics metrics.BusinessMetrics
}

// NewRegistrationUseCaseWithMetrics wraps a RegistrationUseCase with metrics recording.
func NewRegistrationUseCaseWithMetrics(
	useCase RegistrationUseCase,
	m metrics.BusinessMetrics,
) RegistrationUseCase {
	return &registrationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for roster register operations.
func (r *registrationUseCaseWithMetrics) Register(
	ctx context.Context,
	capabilityName, targetEmail string,
	actingUser *authDomain.User,
) (string, error) {
	start := time.Now()
	message, err := r.next.Register(ctx, capabilityName, targetEmail, actingUser)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "capability", "register", status)
	r.metrics.RecordDuration(ctx, "capability", "register", time.Since(start), status)

	return message, err
}

// Unregister records metrics for roster unregister operations.
func (r *registrationUseCaseWithMetrics) Unregister(
	ctx context.Context,
	capabilityName, targetEmail string,
	actingUser *authDomain.User,
) (string, error) {
	start := time.Now()
	message, err := r.next.Unregister(ctx, capabilityName, targetEmail, actingUser)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "capability", "unregister", status)
	r.metrics.RecordDuration(ctx, "capability", "unregister", time.Since(start), status)

	return message, err
}
