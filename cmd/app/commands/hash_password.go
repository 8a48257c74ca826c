package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/slalombuild/capabilities/internal/auth/service"
	customValidation "github.com/slalombuild/capabilities/internal/validation"
)

// RunHashPassword hashes a plain text password for use in seed data files.
// New digests default to Argon2id; bcrypt remains available because the
// embedded seed data ships bcrypt digests.
func RunHashPassword(
	passwordService authService.PasswordService,
	logger *slog.Logger,
	writer io.Writer,
	password, algorithm, format string,
) error {
	// Reject passwords that fail the minimum strength policy
	passwordRule := customValidation.PasswordStrength{
		MinLength:     8,
		RequireLower:  true,
		RequireNumber: true,
	}
	if err := passwordRule.Validate(password); err != nil {
		return fmt.Errorf("password rejected: %w", err)
	}

	var digest string
	var err error
	switch algorithm {
	case "argon2id":
		digest, err = passwordService.Hash(password)
	case "bcrypt":
		digest, err = passwordService.HashBcrypt(password)
	default:
		return fmt.Errorf("invalid algorithm: %s (valid options: argon2id, bcrypt)", algorithm)
	}
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	logger.Info("password hashed", slog.String("algorithm", algorithm))

	// Output result based on format
	if format == "json" {
		if err := outputHashJSON(writer, algorithm, digest); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
		return nil
	}

	outputHashText(writer, algorithm, digest)
	return nil
}

// outputHashText outputs the digest in human-readable text format.
func outputHashText(writer io.Writer, algorithm, digest string) {
	_, _ = fmt.Fprintf(writer, "Password Digest\n")
	_, _ = fmt.Fprintf(writer, "===============\n\n")
	_, _ = fmt.Fprintf(writer, "Algorithm: %s\n", algorithm)
	_, _ = fmt.Fprintf(writer, "Digest:    %s\n\n", digest)
	_, _ = fmt.Fprintf(writer, "# Paste the digest into the \"hashed_password\" field of a seed user record\n")
}

// outputHashJSON outputs the digest in JSON format for machine consumption.
func outputHashJSON(writer io.Writer, algorithm, digest string) error {
	result := map[string]interface{}{
		"algorithm": algorithm,
		"digest":    digest,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
