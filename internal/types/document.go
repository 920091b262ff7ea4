package types

// RawDocument is the input unit for one parse attempt. Text is the flattened
// document text; LayoutBlocks and Sections are optional upstream hints.
type RawDocument struct {
	Text         string        `json:"text"`
	LayoutBlocks []LayoutBlock `json:"layout_blocks,omitempty"`
	Sections     []RawSection  `json:"sections,omitempty"`
}

// LayoutBlock is a positional text fragment supplied by upstream layout analysis
type LayoutBlock struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
	Page     int     `json:"page"`
}

// RawSection is a pre-segmented section supplied by upstream layout analysis
type RawSection struct {
	Heading    string  `json:"heading"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence,omitempty"`
}

// SectionType classifies a segmented chunk of the document
type SectionType string

// Section types recognized by the segmenter
const (
	SectionPersonal       SectionType = "personal"
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionAchievements   SectionType = "achievements"
	SectionOther          SectionType = "other"
)

// Section is a contiguous, heading-delimited chunk of the source document.
// Sections live only for the duration of one parse call.
type Section struct {
	Type       SectionType `json:"type"`
	Heading    string      `json:"heading"`
	Content    string      `json:"content"`
	Confidence float64     `json:"confidence"`
}
