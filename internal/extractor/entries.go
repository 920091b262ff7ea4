package extractor

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/ids"
	"github.com/jonathan/resume-parser/internal/types"
)

var (
	dateRangeRegex = regexp.MustCompile(`(?i)\b(?:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(\d{4})\s*(?:[-–—]|to)\s*(?:(?:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(\d{4})|(present|current|now))`)
	yearRegex      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	digitRegex     = regexp.MustCompile(`\d`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// titleCompanySeparators are tried in order when splitting a job header line
var titleCompanySeparators = []string{" at ", " - ", " – ", " | ", " @ "}

var bulletGlyphs = []string{"•", "·", "‣", "▪", "-", "*"}

// stripBulletGlyph removes a leading bullet glyph and surrounding space.
// Returns the line unchanged when no glyph is present.
func stripBulletGlyph(line string) string {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph+" ") {
			return strings.TrimSpace(strings.TrimPrefix(line, glyph+" "))
		}
	}
	return line
}

// isBulletLine reports whether a trimmed line starts with a bullet glyph
func isBulletLine(line string) bool {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph+" ") {
			return true
		}
	}
	return false
}

// extractExperiences parses the experience section: blocks separated by
// blank lines, first line "title [at/-] company", second line date range
// plus location, bullet-glyph lines as achievement bullets.
func extractExperiences(content string, gen ids.Generator) []types.Experience {
	experiences := []types.Experience{}

	for _, block := range splitBlocks(content) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		exp := types.Experience{
			ID:      gen.NewID("exp"),
			Bullets: []types.Bullet{},
		}
		exp.Title, exp.Company = splitTitleCompany(lines[0])

		rest := lines[1:]
		if len(rest) > 0 && !isBulletLine(rest[0]) {
			parseDateLocationLine(&exp, rest[0])
			rest = rest[1:]
		}

		for _, line := range rest {
			if !isBulletLine(line) {
				continue
			}
			text := stripBulletGlyph(line)
			exp.Bullets = append(exp.Bullets, types.Bullet{
				ID:         gen.NewID("bullet"),
				Text:       text,
				Keywords:   []string{},
				HasMetrics: digitRegex.MatchString(text),
			})
		}

		experiences = append(experiences, exp)
	}

	return experiences
}

// splitTitleCompany splits a job header line into title and company
func splitTitleCompany(line string) (title, company string) {
	line = strings.TrimSpace(line)
	for _, sep := range titleCompanySeparators {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return line, ""
}

// parseDateLocationLine parses "<month? year> - <month? year|present>, location"
func parseDateLocationLine(exp *types.Experience, line string) {
	match := dateRangeRegex.FindStringSubmatch(line)
	if match == nil {
		exp.Location = strings.Trim(strings.TrimSpace(line), ",;")
		return
	}

	exp.StartDate = &types.Date{Year: match[2], Month: monthNumber(match[1])}
	if match[5] != "" {
		exp.Current = true
		exp.EndDate = nil
	} else if match[4] != "" {
		exp.EndDate = &types.Date{Year: match[4], Month: monthNumber(match[3])}
	}

	remainder := strings.Replace(line, match[0], "", 1)
	exp.Location = strings.Trim(strings.TrimSpace(remainder), ",;-– ")
}

// monthNumber converts a month-name prefix to its two-digit number
func monthNumber(name string) string {
	return monthNumbers[strings.ToLower(name)]
}

// extractEducation parses the education section: first line of each block is
// the institution, second the degree (and field after a comma), and any
// 4-digit year becomes the end date.
func extractEducation(content string, gen ids.Generator) []types.Education {
	education := []types.Education{}

	for _, block := range splitBlocks(content) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		edu := types.Education{
			ID:          gen.NewID("edu"),
			Institution: strings.TrimSpace(lines[0]),
			Coursework:  []string{},
		}
		if len(lines) > 1 {
			degree := strings.TrimSpace(lines[1])
			if idx := strings.Index(degree, ","); idx > 0 {
				edu.Degree = strings.TrimSpace(degree[:idx])
				edu.Field = strings.TrimSpace(degree[idx+1:])
			} else {
				edu.Degree = degree
			}
		}
		if years := yearRegex.FindAllString(block, -1); len(years) > 0 {
			// The last year in the block is the graduation year when the
			// block carries a range.
			edu.EndDate = &types.Date{Year: years[len(years)-1]}
		}

		education = append(education, edu)
	}

	return education
}

// extractProjects parses the projects section: first line of each block is
// "name - description", bullet-glyph lines become project bullets.
func extractProjects(content string, gen ids.Generator) []types.Project {
	projects := []types.Project{}

	for _, block := range splitBlocks(content) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		proj := types.Project{
			ID:      gen.NewID("proj"),
			Bullets: []types.Bullet{},
		}
		header := strings.TrimSpace(lines[0])
		if idx := strings.Index(header, " - "); idx > 0 {
			proj.Name = strings.TrimSpace(header[:idx])
			proj.Description = strings.TrimSpace(header[idx+3:])
		} else {
			proj.Name = header
		}

		for _, line := range lines[1:] {
			if !isBulletLine(line) {
				continue
			}
			text := stripBulletGlyph(line)
			proj.Bullets = append(proj.Bullets, types.Bullet{
				ID:         gen.NewID("bullet"),
				Text:       text,
				Keywords:   []string{},
				HasMetrics: digitRegex.MatchString(text),
			})
		}

		projects = append(projects, proj)
	}

	return projects
}

// nonEmptyLines returns the trimmed non-empty lines of a block
func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
