// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StructuredResume is the canonical structured representation of a parsed resume
type StructuredResume struct {
	Name           string       `json:"name"`
	Title          string       `json:"title,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Contact        Contact      `json:"contact"`
	Experiences    []Experience `json:"experiences"`
	Education      []Education  `json:"education"`
	Skills         []SkillGroup `json:"skills"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`
	Achievements   []string     `json:"achievements"`
}

// Contact holds contact fields; the struct is always present, fields individually optional
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// Date represents a resume date. Year is required whenever a Date is present.
type Date struct {
	Year  string `json:"year" validate:"required"`
	Month string `json:"month,omitempty"`
}

// Experience represents one work experience entry
type Experience struct {
	ID        string   `json:"id" validate:"required"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location,omitempty"`
	StartDate *Date    `json:"start_date,omitempty"`
	EndDate   *Date    `json:"end_date,omitempty"` // nil when Current is true
	Current   bool     `json:"current"`
	Bullets   []Bullet `json:"bullets"`
}

// Bullet is a single achievement line under an experience or project
type Bullet struct {
	ID         string   `json:"id" validate:"required"`
	Text       string   `json:"text"`
	Keywords   []string `json:"keywords"`
	HasMetrics bool     `json:"has_metrics"`
}

// Education represents one education entry
type Education struct {
	ID          string   `json:"id" validate:"required"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	EndDate     *Date    `json:"end_date,omitempty"`
	Coursework  []string `json:"coursework"`
}

// SkillGroup is a named category of skills
type SkillGroup struct {
	ID       string   `json:"id" validate:"required"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Project represents one project entry
type Project struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Bullets     []Bullet `json:"bullets"`
}

// NewStructuredResume returns a resume with all list fields initialized,
// so callers never branch on nil slices.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Experiences:    []Experience{},
		Education:      []Education{},
		Skills:         []SkillGroup{},
		Projects:       []Project{},
		Certifications: []string{},
		Achievements:   []string{},
	}
}
