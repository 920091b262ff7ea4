package extractor

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/ids"
	"github.com/jonathan/resume-parser/internal/types"
)

// defaultSkillCategory collects skills listed without an explicit category
const defaultSkillCategory = "Skills"

// extractSkills parses the skills section. Lines with a colon are
// "Category: item, item" pairs; lines without accumulate under an implicit
// Skills category.
func extractSkills(content string, gen ids.Generator) []types.SkillGroup {
	groups := []types.SkillGroup{}
	groupIndex := map[string]int{}

	addItems := func(category string, items []string) {
		if len(items) == 0 {
			return
		}
		idx, ok := groupIndex[strings.ToLower(category)]
		if !ok {
			groups = append(groups, types.SkillGroup{
				ID:       gen.NewID("skill"),
				Category: category,
				Items:    []string{},
			})
			idx = len(groups) - 1
			groupIndex[strings.ToLower(category)] = idx
		}
		groups[idx].Items = append(groups[idx].Items, items...)
	}

	for _, line := range strings.Split(content, "\n") {
		line = stripBulletGlyph(strings.TrimSpace(line))
		if line == "" {
			continue
		}

		if idx := strings.Index(line, ":"); idx > 0 {
			category := strings.TrimSpace(line[:idx])
			addItems(category, splitSkillItems(line[idx+1:]))
			continue
		}
		addItems(defaultSkillCategory, splitSkillItems(line))
	}

	return groups
}

// splitSkillItems splits a skill list on commas, semicolons, pipes, and
// bullet glyphs
func splitSkillItems(text string) []string {
	for _, sep := range []string{";", "|", "•", "·"} {
		text = strings.ReplaceAll(text, sep, ",")
	}

	var items []string
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item != "" && len(item) < 50 {
			items = append(items, item)
		}
	}
	return items
}
