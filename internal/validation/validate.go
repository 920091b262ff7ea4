// Package validation checks a reconciled resume for structural conformance:
// required shape, non-empty unique identifiers, and date invariants.
// Validation failures are reported, never thrown; the pipeline demotes to
// the heuristic candidate on failure.
package validation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-parser/internal/types"
)

//go:embed resume.schema.json
var resumeSchema string

// structValidator checks the validate tags on the resume types
var structValidator = validator.New()

// FieldError is a single validation error at a specific field path
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the outcome of validating one resume
type Result struct {
	OK     bool
	Errors []FieldError
}

// Strings returns the errors as display strings for the result envelope
func (r *Result) Strings() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.String())
	}
	return out
}

// Validate checks a resume against the embedded JSON Schema, the struct
// validation tags, and the identifier/date invariants. It never returns an
// error for invalid content; content problems land in the Result.
func Validate(resume *types.StructuredResume) *Result {
	result := &Result{OK: true, Errors: []FieldError{}}

	if resume == nil {
		result.fail("(root)", "resume is nil")
		return result
	}

	validateSchema(resume, result)
	validateStructTags(resume, result)
	validateIdentifiers(resume, result)
	validateDates(resume, result)

	return result
}

func (r *Result) fail(field, message string) {
	r.OK = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// validateSchema runs the embedded JSON Schema over the serialized resume
func validateSchema(resume *types.StructuredResume, result *Result) {
	document, err := json.Marshal(resume)
	if err != nil {
		result.fail("(root)", fmt.Sprintf("resume is not serializable: %v", err))
		return
	}

	schemaLoader := gojsonschema.NewStringLoader(resumeSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	outcome, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		result.fail("(root)", fmt.Sprintf("schema validation could not run: %v", err))
		return
	}

	for _, desc := range outcome.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		result.fail(field, desc.Description())
	}
}

// validateStructTags runs the validate tags (required IDs, required years)
func validateStructTags(resume *types.StructuredResume, result *Result) {
	err := structValidator.Struct(resume)
	if err == nil {
		return
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result.fail("(root)", fmt.Sprintf("struct validation could not run: %v", err))
		return
	}
	for _, fieldErr := range validationErrors {
		result.fail(fieldErr.Namespace(), fmt.Sprintf("failed %q constraint", fieldErr.Tag()))
	}
}

// validateIdentifiers checks that every list entry has a unique, non-empty ID
func validateIdentifiers(resume *types.StructuredResume, result *Result) {
	seen := map[string]string{}

	check := func(id, field string) {
		if id == "" {
			result.fail(field, "identifier is empty")
			return
		}
		if previous, exists := seen[id]; exists {
			result.fail(field, fmt.Sprintf("identifier %q duplicates %s", id, previous))
			return
		}
		seen[id] = field
	}

	for i, exp := range resume.Experiences {
		check(exp.ID, fmt.Sprintf("experiences[%d].id", i))
		for j, bullet := range exp.Bullets {
			check(bullet.ID, fmt.Sprintf("experiences[%d].bullets[%d].id", i, j))
		}
	}
	for i, edu := range resume.Education {
		check(edu.ID, fmt.Sprintf("education[%d].id", i))
	}
	for i, group := range resume.Skills {
		check(group.ID, fmt.Sprintf("skills[%d].id", i))
	}
	for i, proj := range resume.Projects {
		check(proj.ID, fmt.Sprintf("projects[%d].id", i))
		for j, bullet := range proj.Bullets {
			check(bullet.ID, fmt.Sprintf("projects[%d].bullets[%d].id", i, j))
		}
	}
}

// validateDates enforces the date invariants: a present date always has a
// year, and a current experience has no end date.
func validateDates(resume *types.StructuredResume, result *Result) {
	checkDate := func(date *types.Date, field string) {
		if date != nil && date.Year == "" {
			result.fail(field, "date has no year")
		}
	}

	for i, exp := range resume.Experiences {
		checkDate(exp.StartDate, fmt.Sprintf("experiences[%d].start_date", i))
		checkDate(exp.EndDate, fmt.Sprintf("experiences[%d].end_date", i))
		if exp.Current && exp.EndDate != nil {
			result.fail(fmt.Sprintf("experiences[%d].end_date", i), "current experience must not have an end date")
		}
	}
	for i, edu := range resume.Education {
		checkDate(edu.EndDate, fmt.Sprintf("education[%d].end_date", i))
	}
}
