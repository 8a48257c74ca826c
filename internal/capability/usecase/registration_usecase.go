// Package usecase implements business logic orchestration for capability catalog operations.
package usecase

import (
	"context"
	"fmt"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	authUseCase "github.com/slalombuild/capabilities/internal/auth/usecase"
)

// registrationUseCase implements RegistrationUseCase for roster mutations.
type registrationUseCase struct {
	capabilityRepo  CapabilityRepository
	auditLogUseCase authUseCase.AuditLogUseCase
}

// Register adds targetEmail to the capability's roster on behalf of actingUser.
//
// This method:
// 1. Confirms the capability exists
// 2. Enforces the self-service rule (non-admins may only register themselves)
// 3. Appends the email, rejecting duplicates atomically
// 4. Records a register audit entry
//
// The existence check runs before authorization so probing a missing
// capability returns NotFound for every role. The confirmation message
// doubles as the audit entry details.
func (r *registrationUseCase) Register(
	ctx context.Context,
	capabilityName, targetEmail string,
	actingUser *authDomain.User,
) (string, error) {
	// Confirm the capability exists
	if _, err := r.capabilityRepo.GetByName(ctx, capabilityName); err != nil {
		return "", err
	}

	// Enforce the self-service rule
	if !actingUser.CanManage(targetEmail) {
		return "", authDomain.ErrSelfServiceOnly
	}

	// Append to the roster; the conflict check is atomic with the append
	if err := r.capabilityRepo.AddConsultant(ctx, capabilityName, targetEmail); err != nil {
		return "", err
	}

	// Record the mutation in the audit trail
	message := fmt.Sprintf("Registered %s for %s", targetEmail, capabilityName)
	if err := r.auditLogUseCase.Record(ctx, authDomain.RegisterAction, actingUser.Email, message); err != nil {
		return "", err
	}

	return message, nil
}

// Unregister removes targetEmail from the capability's roster on behalf of
// actingUser.
//
// This method:
// 1. Confirms the capability exists
// 2. Removes the email, rejecting absent entries as conflicts
// 3. Records an unregister audit entry
//
// Admin access is enforced by the HTTP middleware before this is invoked, so
// there is no role check here.
func (r *registrationUseCase) Unregister(
	ctx context.Context,
	capabilityName, targetEmail string,
	actingUser *authDomain.User,
) (string, error) {
	// Confirm the capability exists
	if _, err := r.capabilityRepo.GetByName(ctx, capabilityName); err != nil {
		return "", err
	}

	// Remove from the roster; absent entries are conflicts, not no-ops
	if err := r.capabilityRepo.RemoveConsultant(ctx, capabilityName, targetEmail); err != nil {
		return "", err
	}

	// Record the mutation in the audit trail
	message := fmt.Sprintf("Unregistered %s from %s", targetEmail, capabilityName)
	if err := r.auditLogUseCase.Record(ctx, authDomain.UnregisterAction, actingUser.Email, message); err != nil {
		return "", err
	}

	return message, nil
}

// NewRegistrationUseCase creates a new RegistrationUseCase with the provided dependencies.
func NewRegistrationUseCase(
	capabilityRepo CapabilityRepository,
	auditLogUseCase authUseCase.AuditLogUseCase,
) RegistrationUseCase {
	return &registrationUseCase{
		capabilityRepo:  capabilityRepo,
		auditLogUseCase: auditLogUseCase,
	}
}
