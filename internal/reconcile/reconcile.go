// Package reconcile merges the heuristic and AI extraction candidates into
// one structured resume using deterministic, field-specific precedence
// rules, recording which fields changed and why.
//
// Reconciliation is a pure function of its two input candidates: no network
// or I/O occurs here.
package reconcile

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Config holds the similarity thresholds and limits used by the merge
// rules. The defaults are carried over from the original tuning; they are
// named and overridable rather than inlined.
type Config struct {
	// ExperienceMatchThreshold is the company/title similarity above which
	// an AI experience is considered the same job as a heuristic one
	ExperienceMatchThreshold float64
	// SkillCategoryThreshold is the category similarity above which two
	// skill groups merge
	SkillCategoryThreshold float64
	// SkillItemDuplicateThreshold is the item similarity above which an AI
	// skill item is considered a duplicate and skipped
	SkillItemDuplicateThreshold float64
	// MaxTitleLength is the length above which an AI job title is rejected
	MaxTitleLength int
}

// DefaultConfig returns the default merge thresholds
func DefaultConfig() Config {
	return Config{
		ExperienceMatchThreshold:    0.8,
		SkillCategoryThreshold:      0.7,
		SkillItemDuplicateThreshold: 0.9,
		MaxTitleLength:              100,
	}
}

// Result carries the merged resume and the audit trail of the merge
type Result struct {
	Resume       *types.StructuredResume
	Improvements []string
	Warnings     []string
}

// Reconcile merges the heuristic candidate with the optional AI candidate.
// A nil AI candidate returns the heuristic resume unchanged with a warning.
func Reconcile(heuristic, ai *types.ExtractionCandidate, cfg Config) *Result {
	result := &Result{
		Resume:       cloneResume(heuristic.Resume),
		Improvements: []string{},
		Warnings:     []string{},
	}

	if ai == nil || ai.Resume == nil {
		result.Warnings = append(result.Warnings, "AI extraction unavailable; returning heuristic result")
		return result
	}

	mergeName(result, ai.Resume)
	mergeTitle(result, ai.Resume, cfg)
	mergeSummary(result, ai.Resume)
	mergeContact(result, ai.Resume)
	mergeExperiences(result, ai.Resume, cfg)
	mergeEducation(result, ai.Resume)
	mergeSkills(result, ai.Resume, cfg)
	mergeProjects(result, ai.Resume)
	mergeStringList(result, &result.Resume.Certifications, ai.Resume.Certifications, "certifications")
	mergeStringList(result, &result.Resume.Achievements, ai.Resume.Achievements, "achievements")

	return result
}

// cloneResume deep-copies a resume so the heuristic candidate is never
// mutated by the merge
func cloneResume(resume *types.StructuredResume) *types.StructuredResume {
	data, err := json.Marshal(resume)
	if err != nil {
		// Resume types contain only marshalable fields; this indicates a
		// programming defect.
		panic(fmt.Sprintf("reconcile: failed to clone resume: %v", err))
	}
	clone := types.NewStructuredResume()
	if err := json.Unmarshal(data, clone); err != nil {
		panic(fmt.Sprintf("reconcile: failed to clone resume: %v", err))
	}
	return clone
}

// mergeName adopts the AI name when it is a fuller name than the heuristic one
func mergeName(result *Result, ai *types.StructuredResume) {
	aiTokens := len(strings.Fields(ai.Name))
	heuristicTokens := len(strings.Fields(result.Resume.Name))
	if aiTokens >= 2 && heuristicTokens < 2 {
		result.Resume.Name = ai.Name
		result.Improvements = append(result.Improvements, fmt.Sprintf("name: adopted %q from AI extraction", ai.Name))
	}
}

// mergeTitle adopts the AI title; titles are effectively unextractable by
// pattern matching
func mergeTitle(result *Result, ai *types.StructuredResume, cfg Config) {
	title := strings.TrimSpace(ai.Title)
	if title == "" || len(title) >= cfg.MaxTitleLength || title == result.Resume.Title {
		return
	}
	result.Resume.Title = title
	result.Improvements = append(result.Improvements, fmt.Sprintf("title: adopted %q from AI extraction", title))
}

// mergeSummary adopts the AI summary when it is longer; the model tends to
// synthesize a summary where heuristics find nothing
func mergeSummary(result *Result, ai *types.StructuredResume) {
	if len(ai.Summary) > len(result.Resume.Summary) {
		result.Resume.Summary = ai.Summary
		result.Improvements = append(result.Improvements, "summary: adopted longer AI summary")
	}
}

// mergeContact fills empty contact fields from the AI candidate. A
// non-empty heuristic contact value is never overwritten: heuristics on
// contact fields are pattern-exact and trusted over generative text.
func mergeContact(result *Result, ai *types.StructuredResume) {
	contact := &result.Resume.Contact

	adopt := func(field *string, value, name string, valid func(string) bool) {
		if *field != "" || value == "" || !valid(value) {
			return
		}
		*field = value
		result.Improvements = append(result.Improvements, fmt.Sprintf("contact.%s: filled from AI extraction", name))
	}

	adopt(&contact.Email, ai.Contact.Email, "email", isPlausibleEmail)
	adopt(&contact.Phone, ai.Contact.Phone, "phone", notBlank)
	adopt(&contact.LinkedIn, ai.Contact.LinkedIn, "linkedin", isPlausibleURL)
	adopt(&contact.GitHub, ai.Contact.GitHub, "github", isPlausibleURL)
	adopt(&contact.Website, ai.Contact.Website, "website", isPlausibleURL)
	adopt(&contact.Location, ai.Contact.Location, "location", notBlank)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// isPlausibleEmail checks for an @ with a dot somewhere after it
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

// isPlausibleURL accepts values that parse as a URL, with or without scheme
func isPlausibleURL(raw string) bool {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	return err == nil && parsed.Host != "" && strings.Contains(parsed.Host, ".")
}

// mergeExperiences replaces the experience list wholesale when the AI
// structuring is trustworthy, otherwise merges entry-by-entry with fuzzy
// matching. An AI-found job with no heuristic match is always appended,
// never dropped.
func mergeExperiences(result *Result, ai *types.StructuredResume, cfg Config) {
	if len(ai.Experiences) == 0 {
		return
	}

	if len(result.Resume.Experiences) == 0 || allExperiencesComplete(ai.Experiences) {
		result.Resume.Experiences = ai.Experiences
		result.Improvements = append(result.Improvements,
			fmt.Sprintf("experiences: adopted %d AI-structured entries", len(ai.Experiences)))
		return
	}

	for _, aiExp := range ai.Experiences {
		matched := false
		for i := range result.Resume.Experiences {
			heuristicExp := &result.Resume.Experiences[i]
			if Similarity(aiExp.Company, heuristicExp.Company) > cfg.ExperienceMatchThreshold ||
				Similarity(aiExp.Title, heuristicExp.Title) > cfg.ExperienceMatchThreshold {
				matched = true
				if len(aiExp.Bullets) > len(heuristicExp.Bullets) {
					heuristicExp.Bullets = aiExp.Bullets
					result.Improvements = append(result.Improvements,
						fmt.Sprintf("experiences: replaced bullets for %q with richer AI bullets", displayName(heuristicExp.Title, heuristicExp.Company)))
				}
				break
			}
		}
		if !matched {
			result.Resume.Experiences = append(result.Resume.Experiences, aiExp)
			result.Improvements = append(result.Improvements,
				fmt.Sprintf("experiences: added %q found only by AI extraction", displayName(aiExp.Title, aiExp.Company)))
		}
	}
}

// allExperiencesComplete reports whether every AI experience has both
// company and title populated
func allExperiencesComplete(experiences []types.Experience) bool {
	for _, exp := range experiences {
		if strings.TrimSpace(exp.Company) == "" || strings.TrimSpace(exp.Title) == "" {
			return false
		}
	}
	return true
}

func displayName(title, company string) string {
	switch {
	case title != "" && company != "":
		return title + " at " + company
	case title != "":
		return title
	default:
		return company
	}
}

// mergeEducation adopts the AI education list wholesale under the same
// completeness condition as experiences
func mergeEducation(result *Result, ai *types.StructuredResume) {
	if len(ai.Education) == 0 {
		return
	}
	if len(result.Resume.Education) > 0 && !allEducationComplete(ai.Education) {
		return
	}
	result.Resume.Education = ai.Education
	result.Improvements = append(result.Improvements,
		fmt.Sprintf("education: adopted %d AI-structured entries", len(ai.Education)))
}

// allEducationComplete reports whether every AI education entry has both
// institution and degree populated
func allEducationComplete(education []types.Education) bool {
	for _, edu := range education {
		if strings.TrimSpace(edu.Institution) == "" || strings.TrimSpace(edu.Degree) == "" {
			return false
		}
	}
	return true
}

// mergeSkills merges AI skill groups into heuristic groups by category
// similarity, deduplicating near-identical items
func mergeSkills(result *Result, ai *types.StructuredResume, cfg Config) {
	for _, aiGroup := range ai.Skills {
		target := findSkillGroup(result.Resume.Skills, aiGroup.Category, cfg.SkillCategoryThreshold)
		if target == nil {
			if len(aiGroup.Items) == 0 {
				continue
			}
			result.Resume.Skills = append(result.Resume.Skills, aiGroup)
			result.Improvements = append(result.Improvements,
				fmt.Sprintf("skills: added %q category from AI extraction", aiGroup.Category))
			continue
		}

		added := 0
		for _, item := range aiGroup.Items {
			if !containsSimilarItem(target.Items, item, cfg.SkillItemDuplicateThreshold) {
				target.Items = append(target.Items, item)
				added++
			}
		}
		if added > 0 {
			result.Improvements = append(result.Improvements,
				fmt.Sprintf("skills: added %d items to %q from AI extraction", added, target.Category))
		}
	}
}

// findSkillGroup returns the existing group whose category is similar
// enough to the AI category, or nil
func findSkillGroup(groups []types.SkillGroup, category string, threshold float64) *types.SkillGroup {
	normalized := normalizeSkillCategory(category)
	for i := range groups {
		if Similarity(normalizeSkillCategory(groups[i].Category), normalized) > threshold {
			return &groups[i]
		}
	}
	return nil
}

// containsSimilarItem reports whether an item close enough to value already
// exists in the list
func containsSimilarItem(items []string, value string, threshold float64) bool {
	for _, item := range items {
		if Similarity(item, value) > threshold {
			return true
		}
	}
	return false
}

// mergeProjects adopts the AI project list wholesale when non-empty and
// well-formed; projects are rarely heuristically extracted at all
func mergeProjects(result *Result, ai *types.StructuredResume) {
	if len(ai.Projects) == 0 {
		return
	}
	for _, proj := range ai.Projects {
		if strings.TrimSpace(proj.Name) == "" || strings.TrimSpace(proj.Description) == "" {
			return
		}
	}
	result.Resume.Projects = ai.Projects
	result.Improvements = append(result.Improvements,
		fmt.Sprintf("projects: adopted %d AI-structured entries", len(ai.Projects)))
}

// mergeStringList adopts the AI list wholesale when non-empty; used for
// certifications and achievements
func mergeStringList(result *Result, target *[]string, aiList []string, field string) {
	if len(aiList) == 0 {
		return
	}
	for _, item := range aiList {
		if strings.TrimSpace(item) == "" {
			return
		}
	}
	*target = aiList
	result.Improvements = append(result.Improvements,
		fmt.Sprintf("%s: adopted %d entries from AI extraction", field, len(aiList)))
}
