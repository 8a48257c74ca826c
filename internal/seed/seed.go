// Package seed provides the startup dataset of users and capabilities.
// Storage is volatile, so the dataset is loaded on every boot: either the
// embedded default or a JSON file named by configuration.
package seed

import (
	_ "embed"
	"encoding/json"
	"os"

	validation "github.com/jellydator/validation"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
	apperrors "github.com/slalombuild/capabilities/internal/errors"
	customValidation "github.com/slalombuild/capabilities/internal/validation"
)

//go:embed seed.json
var embeddedSeed []byte

// User is a seed record for an account. Passwords are stored as digests,
// never in the clear.
type User struct {
	Email          string `json:"email"`
	HashedPassword string `json:"hashed_password"`
	Name           string `json:"name"`
	Role           string `json:"role"`
}

// Validate checks if the user seed record is valid.
func (u *User) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
		validation.Field(&u.HashedPassword,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&u.Name,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&u.Role,
			validation.Required,
			validation.In(string(authDomain.ConsultantRole), string(authDomain.AdminRole)),
		),
	)
}

// Capability is a seed record for a catalog entry.
type Capability struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PracticeArea      string   `json:"practice_area"`
	SkillLevels       []string `json:"skill_levels"`
	Certifications    []string `json:"certifications"`
	IndustryVerticals []string `json:"industry_verticals"`
	Capacity          int      `json:"capacity"`
	Consultants       []string `json:"consultants"`
}

// Validate checks if the capability seed record is valid. Roster emails must
// be well formed but need not match any seeded user.
func (c *Capability) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&c.Description,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&c.PracticeArea,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&c.SkillLevels,
			validation.Each(customValidation.NotBlank),
		),
		validation.Field(&c.Capacity,
			validation.Min(0),
		),
		validation.Field(&c.Consultants,
			validation.Each(customValidation.Email),
		),
	)
}

// Data is the full startup dataset.
type Data struct {
	Users        []User       `json:"users"`
	Capabilities []Capability `json:"capabilities"`
}

// Validate checks every record and rejects duplicate user emails and
// duplicate capability names.
func (d *Data) Validate() error {
	seenEmails := make(map[string]struct{}, len(d.Users))
	for i := range d.Users {
		user := &d.Users[i]
		if err := user.Validate(); err != nil {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "user %q: %v", user.Email, err)
		}
		if _, ok := seenEmails[user.Email]; ok {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "duplicate user email %q", user.Email)
		}
		seenEmails[user.Email] = struct{}{}
	}

	seenNames := make(map[string]struct{}, len(d.Capabilities))
	for i := range d.Capabilities {
		capability := &d.Capabilities[i]
		if err := capability.Validate(); err != nil {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "capability %q: %v", capability.Name, err)
		}
		if _, ok := seenNames[capability.Name]; ok {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "duplicate capability name %q", capability.Name)
		}
		seenNames[capability.Name] = struct{}{}
	}

	return nil
}

// Default returns the embedded dataset.
func Default() (*Data, error) {
	return parse(embeddedSeed)
}

// Load reads and validates a dataset from path.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read seed file")
	}
	return parse(raw)
}

func parse(raw []byte) (*Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse seed data")
	}
	if err := data.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "invalid seed data")
	}
	return &data, nil
}

// MapUsers converts seed records to domain users.
func MapUsers(records []User) []*authDomain.User {
	users := make([]*authDomain.User, 0, len(records))
	for i := range records {
		users = append(users, &authDomain.User{
			Email:          records[i].Email,
			HashedPassword: records[i].HashedPassword,
			Name:           records[i].Name,
			Role:           authDomain.Role(records[i].Role),
		})
	}
	return users
}

// MapCapabilities converts seed records to domain capabilities.
func MapCapabilities(records []Capability) []*capabilityDomain.Capability {
	capabilities := make([]*capabilityDomain.Capability, 0, len(records))
	for i := range records {
		capabilities = append(capabilities, &capabilityDomain.Capability{
			Name:              records[i].Name,
			Description:       records[i].Description,
			PracticeArea:      records[i].PracticeArea,
			SkillLevels:       records[i].SkillLevels,
			Certifications:    records[i].Certifications,
			IndustryVerticals: records[i].IndustryVerticals,
			Capacity:          records[i].Capacity,
			Consultants:       records[i].Consultants,
		})
	}
	return capabilities
}
