package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/slalombuild/capabilities/internal/errors"
)

// bcryptCost matches the cost factor of the digests shipped in the embedded
// seed data ($2b$12$...).
const bcryptCost = 12

// passwordService implements PasswordService using Argon2id for new digests
// and bcrypt for the legacy seed format.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plain text password using Argon2id.
func (s *passwordService) Hash(plainPassword string) (hashedPassword string, err error) {
	hashedPassword, err = s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// HashBcrypt hashes a plain text password using bcrypt at the seed data's cost factor.
func (s *passwordService) HashBcrypt(plainPassword string) (hashedPassword string, err error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(digest), nil
}

// Verify performs a constant-time comparison between a plain password and its
// stored digest, dispatching on the digest format. Verification failures of
// any kind report false.
func (s *passwordService) Verify(plainPassword string, hashedPassword string) bool {
	if strings.HasPrefix(hashedPassword, "$argon2") {
		ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
		if err != nil {
			return false
		}
		return ok
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

// NewPasswordService creates a new PasswordService instance.
// Uses the Moderate Argon2id policy for a balance between security and performance.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
