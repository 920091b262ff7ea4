package extractor

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// MinimalFallback builds the smallest useful resume from raw text: a name
// guess from the leading lines plus any email hit. Used when the full
// heuristic path fails, so the caller still receives a recoverable result.
func MinimalFallback(text string) *types.StructuredResume {
	resume := types.NewStructuredResume()
	resume.Contact.Email = emailRegex.FindString(text)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || emailRegex.MatchString(line) {
			continue
		}
		if len(line) >= 2 && len(line) <= 50 {
			resume.Name = line
		}
		break
	}

	return resume
}
