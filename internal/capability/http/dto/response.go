package dto

import (
	capabilityDomain "github.com/slalombuild/capabilities/internal/capability/domain"
)

// CapabilityResponse represents a capability record in API responses.
type CapabilityResponse struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PracticeArea      string   `json:"practice_area"`
	SkillLevels       []string `json:"skill_levels"`
	Certifications    []string `json:"certifications"`
	IndustryVerticals []string `json:"industry_verticals"`
	Capacity          int      `json:"capacity"`
	Consultants       []string `json:"consultants"`
}

// MapCapabilityToResponse converts a domain capability to a response DTO.
func MapCapabilityToResponse(capability *capabilityDomain.Capability) CapabilityResponse {
	return CapabilityResponse{
		Name:              capability.Name,
		Description:       capability.Description,
		PracticeArea:      capability.PracticeArea,
		SkillLevels:       capability.SkillLevels,
		Certifications:    capability.Certifications,
		IndustryVerticals: capability.IndustryVerticals,
		Capacity:          capability.Capacity,
		Consultants:       capability.Consultants,
	}
}

// ListCapabilitiesResponse wraps the capability catalog in a data envelope.
type ListCapabilitiesResponse struct {
	Data []CapabilityResponse `json:"data"`
}

// MapCapabilitiesToListResponse converts domain capabilities to a list response DTO.
func MapCapabilitiesToListResponse(capabilities []*capabilityDomain.Capability) ListCapabilitiesResponse {
	data := make([]CapabilityResponse, 0, len(capabilities))
	for _, capability := range capabilities {
		data = append(data, MapCapabilityToResponse(capability))
	}
	return ListCapabilitiesResponse{Data: data}
}

// MessageResponse carries the human-readable confirmation for roster changes.
type MessageResponse struct {
	Message string `json:"message"`
}
