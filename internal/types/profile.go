// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile is the structured document that gets scored and optimized.
// A Profile owns its sections; sections never exist outside a Profile.
type Profile struct {
	ID           string       `json:"id,omitempty"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills" validate:"dive"`
	Projects     []Project    `json:"projects" validate:"dive"`
}

// PersonalInfo holds the contact block of a profile
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience represents a single work history entry. Description is free text
// made of line-delimited achievement statements.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}

// Education represents a single education entry
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	GPA          string `json:"gpa,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Skill is a named skill with a category. Names are unique per profile (case-insensitive).
type Skill struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category,omitempty"`
}

// Project represents a side project
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
}

// Validate checks field formats and skill-name uniqueness.
func (p *Profile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return &ValidationError{Field: "profile", Message: err.Error()}
	}

	seen := make(map[string]bool, len(p.Skills))
	for _, skill := range p.Skills {
		key := strings.ToLower(strings.TrimSpace(skill.Name))
		if seen[key] {
			return &ValidationError{Field: "skills", Message: "duplicate skill name: " + skill.Name}
		}
		seen[key] = true
	}
	return nil
}

// HasSkill reports whether the profile already declares a skill with the given name (case-insensitive).
func (p *Profile) HasSkill(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, skill := range p.Skills {
		if strings.ToLower(strings.TrimSpace(skill.Name)) == key {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the profile so callers can mutate it freely.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Experiences = append([]Experience(nil), p.Experiences...)
	clone.Education = append([]Education(nil), p.Education...)
	clone.Skills = append([]Skill(nil), p.Skills...)
	if p.Projects != nil {
		clone.Projects = make([]Project, len(p.Projects))
		for i, project := range p.Projects {
			clone.Projects[i] = project
			clone.Projects[i].Technologies = append([]string(nil), project.Technologies...)
		}
	}
	return &clone
}
