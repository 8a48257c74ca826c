// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	authService "github.com/slalombuild/capabilities/internal/auth/service"
)

// loginAuditDetails is the fixed details string recorded for successful logins.
const loginAuditDetails = "User logged in"

// authUseCase implements AuthUseCase for credential and session verification.
type authUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	auditLogUseCase AuditLogUseCase
}

// Login authenticates a user by email and password and issues a session token.
//
// This method:
// 1. Looks up the user by email (exact, case-sensitive)
// 2. Verifies the password against the stored digest
// 3. Issues a stateless session token
// 4. Records a login audit entry
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong
//     passwords to prevent user enumeration attacks
//   - The password digest format selects the verification algorithm
//     (bcrypt for seed data, argon2id for digests minted by tooling)
func (a *authUseCase) Login(
	ctx context.Context,
	email, password string,
) (*authDomain.LoginOutput, error) {
	// Get the user by email
	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// If user not found, return generic error to prevent enumeration
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	// Verify the password
	if !a.passwordService.Verify(password, user.HashedPassword) {
		return nil, authDomain.ErrInvalidCredentials
	}

	// Issue a session token
	token, expiresAt, err := a.tokenService.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	// Record the login in the audit trail
	if err := a.auditLogUseCase.Record(ctx, authDomain.LoginAction, user.Email, loginAuditDetails); err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Authenticate validates a session token and returns the associated user.
//
// This method:
// 1. Verifies the token signature and expiry
// 2. Resolves the token subject to a seeded user record
//
// Security Notes:
//   - Returns ErrInvalidCredentials for every failure mode so callers cannot
//     distinguish a forged token from one whose subject no longer resolves
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.User, error) {
	// Verify the token and extract its subject
	subject, err := a.tokenService.Verify(token)
	if err != nil {
		return nil, authDomain.ErrInvalidCredentials
	}

	// Resolve the subject to a user record
	user, err := a.userRepo.GetByEmail(ctx, subject)
	if err != nil {
		// A valid signature over an unknown subject is not trusted
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	auditLogUseCase AuditLogUseCase,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		auditLogUseCase: auditLogUseCase,
	}
}
