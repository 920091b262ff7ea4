package extractor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/ids"
	"github.com/jonathan/resume-parser/internal/segmenter"
	"github.com/jonathan/resume-parser/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567
linkedin.com/in/janedoe
github.com/janedoe

SUMMARY
Backend engineer focused on data infrastructure.

EXPERIENCE
Senior Engineer - Acme Corp
Jan 2020 - Present, Remote
• Shipped X
• Led Y

Software Engineer at Initech
Mar 2017 - Dec 2019, Austin, TX
• Cut p99 latency by 40%

EDUCATION
State University
BS, Computer Science
2013 - 2017

SKILLS
Languages: Go, Python, SQL
Cloud: AWS; GCP
Docker, Kubernetes

PROJECTS
ChessBot - a UCI chess engine
• Reached 2100 elo on lichess
`

func extractSample(t *testing.T) *types.ExtractionCandidate {
	t.Helper()
	doc := &types.RawDocument{Text: sampleResume}
	return Extract(doc, segmenter.Segment(doc), ids.NewSequential())
}

func TestExtractPersonal(t *testing.T) {
	resume := extractSample(t).Resume

	assert.Equal(t, "Jane Doe", resume.Name)
	assert.Equal(t, "jane.doe@example.com", resume.Contact.Email)
	assert.Equal(t, "(555) 123-4567", resume.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", resume.Contact.LinkedIn)
	assert.Equal(t, "github.com/janedoe", resume.Contact.GitHub)
	assert.Equal(t, "Backend engineer focused on data infrastructure.", resume.Summary)
}

func TestExtractAllCapsNameLine(t *testing.T) {
	// An all-caps name line is short and fully upper-case, so segmentation
	// treats it as a heading and it never lands in section content. The
	// name must still come out of the document-head scan even though the
	// email was already found in the personal block.
	doc := &types.RawDocument{
		Text: "JANE DOE\njane.doe@example.com\n(555) 123-4567\n\nEXPERIENCE\nSenior Engineer - Acme Corp\n• Shipped X",
	}
	resume := Extract(doc, segmenter.Segment(doc), ids.NewSequential()).Resume

	assert.Equal(t, "JANE DOE", resume.Name)
	assert.Equal(t, "jane.doe@example.com", resume.Contact.Email)
	assert.Equal(t, "(555) 123-4567", resume.Contact.Phone)
	require.Len(t, resume.Experiences, 1)
}

func TestExtractExperiences(t *testing.T) {
	resume := extractSample(t).Resume
	require.Len(t, resume.Experiences, 2)

	first := resume.Experiences[0]
	assert.Equal(t, "Senior Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Remote", first.Location)
	assert.True(t, first.Current)
	assert.Nil(t, first.EndDate, "current experience has no end date")
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2020", first.StartDate.Year)
	assert.Equal(t, "01", first.StartDate.Month)
	require.Len(t, first.Bullets, 2)
	assert.Equal(t, "Shipped X", first.Bullets[0].Text)
	assert.False(t, first.Bullets[0].HasMetrics)

	second := resume.Experiences[1]
	assert.Equal(t, "Software Engineer", second.Title)
	assert.Equal(t, "Initech", second.Company)
	assert.False(t, second.Current)
	require.NotNil(t, second.EndDate)
	assert.Equal(t, "2019", second.EndDate.Year)
	assert.Equal(t, "12", second.EndDate.Month)
	require.Len(t, second.Bullets, 1)
	assert.True(t, second.Bullets[0].HasMetrics, "bullet with digits has metrics")
}

func TestExtractEducation(t *testing.T) {
	resume := extractSample(t).Resume
	require.Len(t, resume.Education, 1)

	edu := resume.Education[0]
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "BS", edu.Degree)
	assert.Equal(t, "Computer Science", edu.Field)
	require.NotNil(t, edu.EndDate)
	assert.Equal(t, "2017", edu.EndDate.Year, "last year in the block is the graduation year")
}

func TestExtractSkills(t *testing.T) {
	resume := extractSample(t).Resume
	require.Len(t, resume.Skills, 3)

	assert.Equal(t, "Languages", resume.Skills[0].Category)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, resume.Skills[0].Items)

	assert.Equal(t, "Cloud", resume.Skills[1].Category)
	assert.Equal(t, []string{"AWS", "GCP"}, resume.Skills[1].Items)

	assert.Equal(t, "Skills", resume.Skills[2].Category, "colon-less lines fall into the implicit category")
	assert.Equal(t, []string{"Docker", "Kubernetes"}, resume.Skills[2].Items)
}

func TestExtractProjects(t *testing.T) {
	resume := extractSample(t).Resume
	require.Len(t, resume.Projects, 1)

	proj := resume.Projects[0]
	assert.Equal(t, "ChessBot", proj.Name)
	assert.Equal(t, "a UCI chess engine", proj.Description)
	require.Len(t, proj.Bullets, 1)
	assert.True(t, proj.Bullets[0].HasMetrics)
}

func TestExtractConfidence(t *testing.T) {
	candidate := extractSample(t)
	// base 0.3 + name/email/phone 0.3 + experience 0.2 + education 0.1 +
	// skills 0.1 exceeds the heuristic cap
	assert.InDelta(t, 0.75, candidate.Confidence, 0.001)
	assert.Equal(t, types.SourceHeuristic, candidate.SourceMethod)
	assert.Empty(t, candidate.Warnings)
}

func TestExtractConfidenceEmptyDocument(t *testing.T) {
	doc := &types.RawDocument{Text: "lorem ipsum dolor sit amet and nothing else useful here"}
	candidate := Extract(doc, segmenter.Segment(doc), ids.NewSequential())

	assert.InDelta(t, 0.3, candidate.Confidence, 0.001)
	assert.Empty(t, candidate.Resume.Experiences)
	assert.Empty(t, candidate.Resume.Education)
}

func TestExtractNeverFailsOnMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only headings", "EXPERIENCE\nEDUCATION\nSKILLS"},
		{"only separators", "-----\n•\n|||\n:::"},
		{"binary-ish noise", "\x00\x01\x02 EXPERIENCE \x03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.RawDocument{Text: tt.text}
			candidate := Extract(doc, segmenter.Segment(doc), ids.NewSequential())
			require.NotNil(t, candidate)
			require.NotNil(t, candidate.Resume)
			assert.NotNil(t, candidate.Resume.Experiences)
			assert.NotNil(t, candidate.Resume.Skills)
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	doc := &types.RawDocument{Text: sampleResume}

	first := Extract(doc, segmenter.Segment(doc), ids.NewSequential())
	second := Extract(doc, segmenter.Segment(doc), ids.NewSequential())

	firstJSON, err := json.Marshal(first.Resume)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second.Resume)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestMinimalFallback(t *testing.T) {
	resume := MinimalFallback("Jane Doe\njane@example.com\nsomething else")
	assert.Equal(t, "Jane Doe", resume.Name)
	assert.Equal(t, "jane@example.com", resume.Contact.Email)

	empty := MinimalFallback("")
	assert.Empty(t, empty.Name)
	assert.NotNil(t, empty.Experiences)
}
