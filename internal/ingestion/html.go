package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-parser/internal/types"
)

// blockSelectors are elements whose text is emitted as its own line so that
// heading-based segmentation still works after tag stripping
const blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, div, section, td, br"

// FromHTML extracts the visible text of an HTML resume into a RawDocument.
// Script and style content is discarded; block-level elements become lines.
func FromHTML(htmlContent string) (*types.RawDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &HTMLParseError{Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: skip containers whose children are also
		// block elements, otherwise text duplicates at every nesting level.
		if s.ChildrenFiltered(blockSelectors).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		// Fall back to the document's flattened text for unstructured HTML.
		lines = append(lines, strings.TrimSpace(doc.Text()))
	}

	return FromText(strings.Join(lines, "\n")), nil
}

// HTMLParseError represents HTML that could not be parsed
type HTMLParseError struct {
	Cause error
}

func (e *HTMLParseError) Error() string {
	return "failed to parse HTML: " + e.Cause.Error()
}

func (e *HTMLParseError) Unwrap() error {
	return e.Cause
}
