// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/slalombuild/capabilities/internal/validation"
)

// RegisterCapabilityRequest contains the consultant to add to a capability
// roster. The capability itself is addressed by the URL path; CapabilityName
// is carried in the body for API compatibility and is not used for lookup.
type RegisterCapabilityRequest struct {
	Email          string `json:"email"`
	CapabilityName string `json:"capability_name"`
}

// Validate checks if the register request is valid.
func (r *RegisterCapabilityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
		validation.Field(&r.CapabilityName,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// UnregisterCapabilityRequest contains the consultant to remove from a
// capability roster. The capability itself is addressed by the URL path.
type UnregisterCapabilityRequest struct {
	Email          string `json:"email"`
	CapabilityName string `json:"capability_name"`
}

// Validate checks if the unregister request is valid.
func (r *UnregisterCapabilityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
		validation.Field(&r.CapabilityName,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
