// Package aigen formats raw resume text plus the heuristic baseline into a
// prompt, invokes a language-model executor, and parses the returned text as
// a second structured candidate.
package aigen

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-parser/internal/ids"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/types"
)

// Generate produces the AI extraction candidate. The executor is the sole
// network dependency; any provider failure is returned as a GenerationError
// and any malformed response as a ResponseParseError, both of which the
// pipeline treats as fall-back-to-heuristic conditions.
//
// Confidence is not computed here; the reconciler scores the merged result
// holistically.
func Generate(ctx context.Context, doc *types.RawDocument, baseline *types.ExtractionCandidate, exec llm.Executor, gen ids.Generator) (*types.ExtractionCandidate, error) {
	prompt, err := buildPrompt(doc, baseline)
	if err != nil {
		return nil, &GenerationError{Message: "failed to build prompt", Cause: err}
	}

	responseText, err := exec.Execute(ctx, prompt, llm.DefaultOptions())
	if err != nil {
		return nil, &GenerationError{Message: "executor call failed", Cause: err}
	}

	resume, err := coerceResponse(responseText)
	if err != nil {
		return nil, err
	}
	ensureIdentifiers(resume, gen)

	return &types.ExtractionCandidate{
		Resume:       resume,
		SourceMethod: types.SourceAI,
		Warnings:     []string{},
	}, nil
}

// buildPrompt renders the extraction prompt with the raw text and the
// heuristic baseline serialized as JSON
func buildPrompt(doc *types.RawDocument, baseline *types.ExtractionCandidate) (string, error) {
	baselineJSON, err := json.MarshalIndent(baseline.Resume, "", "  ")
	if err != nil {
		return "", err
	}

	template := prompts.MustGet("extract-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText": doc.Text,
		"Baseline":   string(baselineJSON),
	}), nil
}

// coerceResponse extracts the first top-level JSON object from the model's
// text, tolerating leading and trailing prose, and unmarshals it
func coerceResponse(responseText string) (*types.StructuredResume, error) {
	cleaned := llm.CleanJSONBlock(responseText)
	objectText := extractJSONObject(cleaned)
	if objectText == "" {
		return nil, &ResponseParseError{Message: "no JSON object found in response"}
	}

	var resume types.StructuredResume
	if err := json.Unmarshal([]byte(objectText), &resume); err != nil {
		return nil, &ResponseParseError{Message: "failed to unmarshal JSON object", Cause: err}
	}
	return &resume, nil
}

// extractJSONObject returns the first balanced top-level {...} substring.
// Braces inside JSON strings are ignored. Returns "" when no balanced
// object exists.
func extractJSONObject(text string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if inString {
				continue
			}
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if inString {
				continue
			}
			if start >= 0 {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}

// ensureIdentifiers guarantees a generated unique identifier on every list
// entry and coerces missing nested arrays to empty lists, so downstream
// code never branches on presence
func ensureIdentifiers(resume *types.StructuredResume, gen ids.Generator) {
	for i := range resume.Experiences {
		exp := &resume.Experiences[i]
		if exp.ID == "" {
			exp.ID = gen.NewID("exp")
		}
		if exp.Bullets == nil {
			exp.Bullets = []types.Bullet{}
		}
		for j := range exp.Bullets {
			if exp.Bullets[j].ID == "" {
				exp.Bullets[j].ID = gen.NewID("bullet")
			}
			if exp.Bullets[j].Keywords == nil {
				exp.Bullets[j].Keywords = []string{}
			}
		}
	}

	for i := range resume.Education {
		edu := &resume.Education[i]
		if edu.ID == "" {
			edu.ID = gen.NewID("edu")
		}
		if edu.Coursework == nil {
			edu.Coursework = []string{}
		}
	}

	for i := range resume.Skills {
		group := &resume.Skills[i]
		if group.ID == "" {
			group.ID = gen.NewID("skill")
		}
		if group.Items == nil {
			group.Items = []string{}
		}
	}

	for i := range resume.Projects {
		proj := &resume.Projects[i]
		if proj.ID == "" {
			proj.ID = gen.NewID("proj")
		}
		if proj.Bullets == nil {
			proj.Bullets = []types.Bullet{}
		}
		for j := range proj.Bullets {
			if proj.Bullets[j].ID == "" {
				proj.Bullets[j].ID = gen.NewID("bullet")
			}
			if proj.Bullets[j].Keywords == nil {
				proj.Bullets[j].Keywords = []string{}
			}
		}
	}

	if resume.Experiences == nil {
		resume.Experiences = []types.Experience{}
	}
	if resume.Education == nil {
		resume.Education = []types.Education{}
	}
	if resume.Skills == nil {
		resume.Skills = []types.SkillGroup{}
	}
	if resume.Projects == nil {
		resume.Projects = []types.Project{}
	}
	if resume.Certifications == nil {
		resume.Certifications = []string{}
	}
	if resume.Achievements == nil {
		resume.Achievements = []string{}
	}
}
