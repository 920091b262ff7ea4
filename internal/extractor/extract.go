// Package extractor produces a best-effort structured resume from labeled
// sections using regular-expression and positional pattern matching.
//
// The extractor never fails on malformed input: absent matches leave fields
// empty and the function always returns a (possibly mostly-empty) candidate.
package extractor

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/ids"
	"github.com/jonathan/resume-parser/internal/types"
)

// Confidence contributions for successfully populated fields. Heuristics
// alone are never treated as fully confident, hence the cap.
const (
	baseConfidence         = 0.3
	personalFieldBonus     = 0.1
	experienceBonus        = 0.2
	educationBonus         = 0.1
	skillsBonus            = 0.1
	heuristicConfidenceCap = 0.75
)

// Extract runs the heuristic field extractors over segmented sections and
// returns a heuristic-sourced candidate. The raw document is consulted only
// as a fallback scan window for contact details when no personal section
// was detected.
func Extract(doc *types.RawDocument, sections []types.Section, gen ids.Generator) *types.ExtractionCandidate {
	resume := types.NewStructuredResume()

	personalContent := collectContent(sections, types.SectionPersonal, types.SectionOther)
	extractPersonal(resume, personalContent, doc.Text)

	if summary := collectContent(sections, types.SectionSummary); summary != "" {
		resume.Summary = strings.TrimSpace(summary)
	}

	resume.Experiences = extractExperiences(collectContent(sections, types.SectionExperience), gen)
	resume.Education = extractEducation(collectContent(sections, types.SectionEducation), gen)
	resume.Skills = extractSkills(collectContent(sections, types.SectionSkills), gen)
	resume.Projects = extractProjects(collectContent(sections, types.SectionProjects), gen)
	resume.Certifications = extractLineItems(collectContent(sections, types.SectionCertifications))
	resume.Achievements = extractLineItems(collectContent(sections, types.SectionAchievements))

	return &types.ExtractionCandidate{
		Resume:       resume,
		Confidence:   computeConfidence(resume),
		SourceMethod: types.SourceHeuristic,
		Warnings:     []string{},
	}
}

// collectContent concatenates the content of every section matching one of
// the given types, in document order
func collectContent(sections []types.Section, want ...types.SectionType) string {
	var parts []string
	for _, s := range sections {
		for _, t := range want {
			if s.Type == t && strings.TrimSpace(s.Content) != "" {
				parts = append(parts, s.Content)
				break
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

// computeConfidence scores the candidate by which fields were populated
func computeConfidence(resume *types.StructuredResume) float64 {
	confidence := baseConfidence
	if resume.Name != "" {
		confidence += personalFieldBonus
	}
	if resume.Contact.Email != "" {
		confidence += personalFieldBonus
	}
	if resume.Contact.Phone != "" {
		confidence += personalFieldBonus
	}
	if len(resume.Experiences) > 0 {
		confidence += experienceBonus
	}
	if len(resume.Education) > 0 {
		confidence += educationBonus
	}
	if len(resume.Skills) > 0 {
		confidence += skillsBonus
	}
	if confidence > heuristicConfidenceCap {
		confidence = heuristicConfidenceCap
	}
	return confidence
}

// splitBlocks splits section content into blocks separated by blank lines
func splitBlocks(content string) []string {
	var blocks []string
	var current []string

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// extractLineItems collects non-empty lines as flat string entries,
// stripping bullet glyphs
func extractLineItems(content string) []string {
	items := []string{}
	for _, line := range strings.Split(content, "\n") {
		line = stripBulletGlyph(strings.TrimSpace(line))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
