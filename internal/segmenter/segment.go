// Package segmenter splits raw resume text into labeled sections using
// heading detection.
package segmenter

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

// maxHeadingLength is the length above which a line is never treated as a heading
const maxHeadingLength = 30

// Confidence contributions for detected headings
const (
	headingBaseConfidence     = 0.5
	canonicalPhraseBonus      = 0.3
	shortLineBonus            = 0.1
	upperCaseBonus            = 0.1
	defaultPresplitConfidence = 0.7
)

// canonicalHeadings maps section types to the heading phrases that identify them.
// Matching is case-insensitive substring matching.
var canonicalHeadings = map[types.SectionType][]string{
	types.SectionExperience:     {"experience", "employment", "professional experience", "work history", "career history"},
	types.SectionEducation:      {"education", "academic background", "qualifications"},
	types.SectionSkills:         {"skills", "technical skills", "competencies", "technologies"},
	types.SectionProjects:       {"projects", "portfolio"},
	types.SectionCertifications: {"certifications", "certificates", "licenses"},
	types.SectionAchievements:   {"achievements", "awards", "honors", "recognition"},
	types.SectionSummary:        {"summary", "profile", "objective", "about"},
	types.SectionPersonal:       {"contact"},
	types.SectionOther:          {"languages", "publications", "volunteer", "interests"},
}

// classificationOrder controls which type wins when a heading matches phrases
// of more than one type ("professional experience" also contains "profile"
// does not, but e.g. "skills summary" is ambiguous). More specific resume
// sections are checked before the generic ones.
var classificationOrder = []types.SectionType{
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionProjects,
	types.SectionCertifications,
	types.SectionAchievements,
	types.SectionSummary,
	types.SectionPersonal,
	types.SectionOther,
}

// Segment splits a raw document into labeled sections. If the document
// carries upstream pre-segmented sections, those are classified and passed
// through. A document with no detectable headings yields a single
// other-typed section holding the whole text.
func Segment(doc *types.RawDocument) []types.Section {
	if len(doc.Sections) > 0 {
		return segmentPresplit(doc.Sections)
	}
	return segmentText(doc.Text)
}

// segmentPresplit classifies sections produced by upstream layout analysis
func segmentPresplit(raw []types.RawSection) []types.Section {
	sections := make([]types.Section, 0, len(raw))
	for _, rs := range raw {
		confidence := rs.Confidence
		if confidence == 0 {
			confidence = defaultPresplitConfidence
		}
		sections = append(sections, types.Section{
			Type:       Classify(rs.Heading, rs.Content),
			Heading:    rs.Heading,
			Content:    rs.Content,
			Confidence: confidence,
		})
	}
	return sections
}

// segmentText scans lines for headings and accumulates content between them
func segmentText(text string) []types.Section {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var sections []types.Section
	var current *types.Section
	var content []string

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(strings.Join(content, "\n"))
			sections = append(sections, *current)
		}
		content = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isHeading(trimmed) {
			flush()
			current = &types.Section{
				Type:       Classify(trimmed, ""),
				Heading:    trimmed,
				Confidence: headingConfidence(trimmed),
			}
			continue
		}
		if current == nil && trimmed != "" {
			// Lines before the first heading form the personal header block.
			current = &types.Section{
				Type:       types.SectionPersonal,
				Confidence: headingBaseConfidence,
			}
		}
		if current != nil {
			content = append(content, line)
		}
	}
	flush()

	if len(sections) == 0 || noDetectedHeadings(sections) {
		return []types.Section{{
			Type:       types.SectionOther,
			Content:    strings.TrimSpace(text),
			Confidence: headingBaseConfidence,
		}}
	}

	return sections
}

// noDetectedHeadings reports whether segmentation found only the implicit
// personal header block
func noDetectedHeadings(sections []types.Section) bool {
	for _, s := range sections {
		if s.Heading != "" {
			return false
		}
	}
	return true
}

// isHeading reports whether a line starts a new section: short, and either
// fully upper-case or matching a canonical heading phrase. A colon with
// content after it marks an inline "Category: items" line, not a heading.
func isHeading(line string) bool {
	if line == "" || len(line) >= maxHeadingLength {
		return false
	}
	if idx := strings.Index(line, ":"); idx >= 0 && idx < len(line)-1 {
		return false
	}
	if isUpperCase(line) {
		return true
	}
	return matchesCanonicalPhrase(line)
}

// headingConfidence scores a detected heading per the segmentation rules
func headingConfidence(line string) float64 {
	confidence := headingBaseConfidence
	if matchesCanonicalPhrase(line) {
		confidence += canonicalPhraseBonus
	}
	if len(line) < maxHeadingLength {
		confidence += shortLineBonus
	}
	if isUpperCase(line) {
		confidence += upperCaseBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// matchesCanonicalPhrase reports whether the line contains any known heading phrase
func matchesCanonicalPhrase(line string) bool {
	lower := strings.ToLower(line)
	for _, phrases := range canonicalHeadings {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}

// isUpperCase reports whether a line contains letters and none of them lower-case
func isUpperCase(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// Classify maps a heading (or, when the heading is empty, a content sample)
// to a section type via case-insensitive keyword matching. Unmatched content
// classifies as other.
func Classify(heading, content string) types.SectionType {
	sample := strings.ToLower(strings.TrimSpace(heading))
	if sample == "" {
		sample = strings.ToLower(content)
		if len(sample) > 200 {
			sample = sample[:200]
		}
	}
	if sample == "" {
		return types.SectionOther
	}

	for _, sectionType := range classificationOrder {
		for _, phrase := range canonicalHeadings[sectionType] {
			if strings.Contains(sample, phrase) {
				return sectionType
			}
		}
	}
	return types.SectionOther
}
