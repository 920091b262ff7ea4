package extractor

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// fallbackScanLines bounds how far into the raw document the contact
// fallback scan looks when no personal section was detected
const fallbackScanLines = 10

var (
	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRegex    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`)
	linkedinRegex = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	githubRegex   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	websiteRegex  = regexp.MustCompile(`(?i)\bhttps?://[^\s]+`)
	nameShape     = regexp.MustCompile(`^[A-Z][A-Za-z'.-]+(?:\s+[A-Z][A-Za-z'.-]+)+$`)
)

// extractPersonal fills name and contact fields from the personal section
// content, falling back to the first few non-empty lines of the whole
// document when the section yields nothing.
func extractPersonal(resume *types.StructuredResume, personalContent, fullText string) {
	scanText := personalContent
	if strings.TrimSpace(scanText) == "" {
		scanText = headLines(fullText, fallbackScanLines)
	}

	extractContactFields(&resume.Contact, scanText)
	resume.Name = findName(scanText)

	// An upper-case name line is swallowed as a section heading, so a
	// personal block can carry contact hits while the name sits outside any
	// section content. Scan the document head for whichever field is still
	// missing.
	if (resume.Name == "" || resume.Contact.Email == "") && scanText != fullText {
		fallback := headLines(fullText, fallbackScanLines)
		if fallback != scanText {
			extractContactFields(&resume.Contact, fallback)
			if resume.Name == "" {
				resume.Name = findName(fallback)
			}
		}
	}
}

// extractContactFields fills empty contact fields from pattern matches in text
func extractContactFields(contact *types.Contact, text string) {
	if contact.Email == "" {
		contact.Email = emailRegex.FindString(text)
	}
	if contact.Phone == "" {
		contact.Phone = strings.TrimSpace(phoneRegex.FindString(text))
	}
	if contact.LinkedIn == "" {
		contact.LinkedIn = linkedinRegex.FindString(text)
	}
	if contact.GitHub == "" {
		contact.GitHub = githubRegex.FindString(text)
	}
	if contact.Website == "" {
		for _, match := range websiteRegex.FindAllString(text, -1) {
			lower := strings.ToLower(match)
			if !strings.Contains(lower, "linkedin.com") && !strings.Contains(lower, "github.com") {
				contact.Website = match
				break
			}
		}
	}
}

// findName returns the first line that is not an email/phone/URL match,
// is 2-50 characters, and looks like capitalized words
func findName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < 2 || len(line) > 50 {
			continue
		}
		if emailRegex.MatchString(line) || phoneRegex.MatchString(line) || websiteRegex.MatchString(line) {
			continue
		}
		if nameShape.MatchString(line) {
			return line
		}
	}
	return ""
}

// headLines returns the first n non-empty lines of text
func headLines(text string, n int) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= n {
			break
		}
	}
	return strings.Join(lines, "\n")
}
