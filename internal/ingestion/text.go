// Package ingestion turns caller-supplied resume content (plain text files,
// pasted text, HTML) into a RawDocument ready for the parsing pipeline.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	multiSpaceRegex = regexp.MustCompile(`[ \t]+`)
	blankRunsRegex  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes text content while preserving structure: line
// endings become LF, trailing whitespace is stripped, runs of spaces
// collapse, and runs of blank lines reduce to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRegex.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine strips trailing whitespace and collapses interior space runs,
// preserving leading indentation and bullet glyphs
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)
	content := multiSpaceRegex.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// FromText builds a RawDocument from already-extracted text
func FromText(text string) *types.RawDocument {
	return &types.RawDocument{Text: CleanText(text)}
}

// FromFile reads a plain-text resume file and returns a RawDocument with
// ingestion metadata
func FromFile(path string) (*types.RawDocument, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc := FromText(string(content))
	return doc, NewMetadata(doc.Text, path), nil
}
