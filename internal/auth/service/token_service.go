package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	apperrors "github.com/slalombuild/capabilities/internal/errors"
)

// jwtTokenService implements TokenService using HS256-signed JWTs.
type jwtTokenService struct {
	secretKey []byte
	lifetime  time.Duration
}

// Issue creates a signed session token carrying the subject and expiry claims.
func (t *jwtTokenService) Issue(subject string) (token string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	expiresAt = now.Add(t.lifetime)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secretKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign session token")
	}

	return signed, expiresAt, nil
}

// Verify parses the token, enforcing the HMAC signing method, signature
// integrity, and expiry. Every failure mode reports ErrInvalidCredentials.
func (t *jwtTokenService) Verify(token string) (subject string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", authDomain.ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", authDomain.ErrInvalidCredentials
	}

	return claims.Subject, nil
}

// NewTokenService creates a new TokenService signing with the given secret key.
// Rotating the key invalidates every outstanding token.
func NewTokenService(secretKey []byte, lifetime time.Duration) TokenService {
	return &jwtTokenService{
		secretKey: secretKey,
		lifetime:  lifetime,
	}
}
