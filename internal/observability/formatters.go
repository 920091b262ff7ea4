// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs the detected sections with types and confidences
func (p *Printer) PrintSections(sections []types.Section) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	for _, section := range sections {
		heading := section.Heading
		if heading == "" {
			heading = "(implicit)"
		}
		if len(heading) > 30 {
			heading = heading[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-15s %.2f  %s\n", section.Type, section.Confidence, heading))
	}

	p.printBox("DETECTED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs a human-readable summary of a reconciliation result
func (p *Printer) PrintResult(result *types.ReconciliationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Method:      %s\n", result.Method))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Elapsed:     %dms\n", result.ProcessingTimeMs))

	if resume := result.Resume; resume != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Name:        %s\n", resume.Name))
		if resume.Contact.Email != "" {
			sb.WriteString(fmt.Sprintf("Email:       %s\n", resume.Contact.Email))
		}
		sb.WriteString(fmt.Sprintf("Experiences: %d   Education: %d   Skill groups: %d\n",
			len(resume.Experiences), len(resume.Education), len(resume.Skills)))
	}

	appendList(&sb, "Improvements", result.Improvements)
	appendList(&sb, "Warnings", result.Warnings)
	appendList(&sb, "Validation errors", result.ValidationErrors)

	p.printBox("PARSE RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// appendList writes a truncated bullet list under a header
func appendList(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(header + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
