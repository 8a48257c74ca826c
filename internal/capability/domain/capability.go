// Package domain defines the core domain models for the capability catalog.
// The catalog is fixed at seed time: capabilities are never created or deleted
// at runtime, only their consultant rosters change.
package domain

// Capability represents one consulting capability and its registered consultants.
type Capability struct {
	// Name is the unique key used to address the capability (e.g., "Cloud Architecture").
	Name string
	// Description summarizes what the capability covers.
	Description string
	// PracticeArea groups the capability (e.g., "Technology", "Strategy", "Operations").
	PracticeArea string
	// SkillLevels is the ordered progression of proficiency names.
	SkillLevels []string
	// Certifications lists certifications relevant to the capability.
	Certifications []string
	// IndustryVerticals lists the industries where the capability applies.
	IndustryVerticals []string
	// Capacity is the available hours per week across the team.
	Capacity int
	// Consultants is the roster of registered consultant emails in insertion
	// order. Emails need not correspond to seeded user records.
	Consultants []string
}

// HasConsultant reports whether the email is in the roster (exact, case-sensitive).
func (c *Capability) HasConsultant(email string) bool {
	for _, consultant := range c.Consultants {
		if consultant == email {
			return true
		}
	}
	return false
}
