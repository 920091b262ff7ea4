package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func validResume() *types.StructuredResume {
	resume := types.NewStructuredResume()
	resume.Name = "Jane Doe"
	resume.Contact.Email = "jane@example.com"
	resume.Experiences = []types.Experience{
		{
			ID:        "exp-1",
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: &types.Date{Year: "2020", Month: "01"},
			Current:   true,
			Bullets: []types.Bullet{
				{ID: "bullet-1", Text: "shipped things", Keywords: []string{}},
			},
		},
	}
	resume.Education = []types.Education{
		{ID: "edu-1", Institution: "State University", EndDate: &types.Date{Year: "2017"}, Coursework: []string{}},
	}
	resume.Skills = []types.SkillGroup{
		{ID: "skill-1", Category: "Languages", Items: []string{"Go"}},
	}
	return resume
}

func TestValidateAcceptsWellFormedResume(t *testing.T) {
	result := Validate(validResume())
	assert.True(t, result.OK)
	assert.Empty(t, result.Errors)
}

func TestValidateAcceptsEmptyResume(t *testing.T) {
	result := Validate(types.NewStructuredResume())
	assert.True(t, result.OK, "an empty but well-shaped resume is structurally valid")
}

func TestValidateNilResume(t *testing.T) {
	result := Validate(nil)
	assert.False(t, result.OK)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "(root)", result.Errors[0].Field)
}

func TestValidateRejectsEmptyIdentifier(t *testing.T) {
	resume := validResume()
	resume.Skills[0].ID = ""

	result := Validate(resume)
	assert.False(t, result.OK)
	assert.NotEmpty(t, findErrors(result, "skills[0].id"))
}

func TestValidateRejectsDuplicateIdentifiers(t *testing.T) {
	resume := validResume()
	resume.Education[0].ID = "exp-1"

	result := Validate(resume)
	assert.False(t, result.OK)

	matches := findErrors(result, "education[0].id")
	require.NotEmpty(t, matches)
	assert.Contains(t, matches[0].Message, "duplicates")
}

func TestValidateRejectsCurrentWithEndDate(t *testing.T) {
	resume := validResume()
	resume.Experiences[0].Current = true
	resume.Experiences[0].EndDate = &types.Date{Year: "2024"}

	result := Validate(resume)
	assert.False(t, result.OK)

	matches := findErrors(result, "experiences[0].end_date")
	require.NotEmpty(t, matches)
	assert.Contains(t, matches[0].Message, "current experience")
}

func TestValidateRejectsDateWithoutYear(t *testing.T) {
	resume := validResume()
	resume.Education[0].EndDate = &types.Date{Month: "05"}

	result := Validate(resume)
	assert.False(t, result.OK)
	assert.NotEmpty(t, findErrors(result, "education[0].end_date"))
}

func TestValidateCollectsAllErrors(t *testing.T) {
	resume := validResume()
	resume.Skills[0].ID = ""
	resume.Experiences[0].EndDate = &types.Date{Year: "2024"}

	result := Validate(resume)
	assert.False(t, result.OK)
	assert.GreaterOrEqual(t, len(result.Errors), 2, "validation reports every failure, not just the first")
}

func TestResultStrings(t *testing.T) {
	result := &Result{Errors: []FieldError{{Field: "skills[0].id", Message: "identifier is empty"}}}
	assert.Equal(t, []string{"skills[0].id: identifier is empty"}, result.Strings())
}

func findErrors(result *Result, field string) []FieldError {
	var matches []FieldError
	for _, e := range result.Errors {
		if e.Field == field {
			matches = append(matches, e)
		}
	}
	return matches
}
