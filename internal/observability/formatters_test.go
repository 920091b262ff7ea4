package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.NewStructuredResume()
	resume.Name = "Jane Doe"
	resume.Contact.Email = "jane@example.com"
	resume.Experiences = []types.Experience{{ID: "exp-1"}}

	p.PrintResult(&types.ReconciliationResult{
		Resume:           resume,
		Confidence:       0.82,
		Method:           types.MethodAIEnhanced,
		Improvements:     []string{"title: adopted from AI extraction"},
		Warnings:         []string{},
		ValidationErrors: []string{},
		ProcessingTimeMs: 120,
	})
	output := buf.String()

	assert.Contains(t, output, "PARSE RESULT")
	assert.Contains(t, output, "ai-enhanced")
	assert.Contains(t, output, "0.82")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Improvements:")
	assert.NotContains(t, output, "Warnings:")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResult_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	warnings := make([]string, 8)
	for i := range warnings {
		warnings[i] = fmt.Sprintf("warning %d", i)
	}
	p.PrintResult(&types.ReconciliationResult{
		Resume:   types.NewStructuredResume(),
		Method:   types.MethodHeuristic,
		Warnings: warnings,
	})
	output := buf.String()

	assert.Contains(t, output, "... and 3 more")
	assert.NotContains(t, output, "warning 7")
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSections([]types.Section{
		{Type: types.SectionExperience, Heading: "EXPERIENCE", Confidence: 1.0},
		{Type: types.SectionPersonal, Confidence: 0.5},
	})
	output := buf.String()

	assert.Contains(t, output, "DETECTED SECTIONS")
	assert.Contains(t, output, "EXPERIENCE")
	assert.Contains(t, output, "(implicit)")
}

func TestPrintSections_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSections(nil)

	assert.Empty(t, buf.String())
}

func TestBoxLinesHaveUniformWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
