package qa

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// cleanDoc builds the canonical two-style document: a bold 16pt level-1
// heading followed by one body paragraph. No pass finds anything in it.
func cleanDoc() *docmodel.Structure {
	return &docmodel.Structure{
		Metadata: docmodel.Metadata{Title: "Annual Report", PageCount: 3, WordCount: 1200},
		Styles: []docmodel.Style{
			{Name: "Heading 1", Type: docmodel.StyleParagraph,
				Font: docmodel.FontSpec{EastAsian: "宋体", SizePt: 16, Bold: true}},
			{Name: "Normal", Type: docmodel.StyleParagraph,
				Font:      docmodel.FontSpec{EastAsian: "宋体", SizePt: 12},
				Paragraph: &docmodel.ParagraphSpec{SpacingMode: docmodel.SpacingSingle}},
		},
		Paragraphs: []docmodel.Paragraph{
			{Index: 0, StyleName: "Heading 1", PreviewText: "Overview", IsHeading: true, HeadingLevel: 1},
			{Index: 1, StyleName: "Normal", PreviewText: "Body text."},
		},
		Headings: []docmodel.Heading{
			{ParagraphIndex: 0, Level: 1, Text: "Overview", StyleName: "Heading 1"},
		},
	}
}

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return e
}

func TestAssessCleanDocumentGradesA(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	a, err := e.Assess(context.Background(), cleanDoc())
	require.NoError(t, err)

	assert.Empty(t, a.Issues)
	assert.Equal(t, 1.0, a.Metrics.Overall)
	assert.Equal(t, "A", a.Metrics.Grade)
	assert.Empty(t, a.Metrics.Recommendations)
}

func TestAssessTinyHeadingLowersAccessibility(t *testing.T) {
	doc := cleanDoc()
	doc.Styles[0].Font.SizePt = 6

	e := newEngine(t, DefaultConfig())
	a, err := e.Assess(context.Background(), doc)
	require.NoError(t, err)

	require.NotEmpty(t, a.Issues)
	found := false
	for _, is := range a.Issues {
		if is.Category == checks.CategoryAccessibility && is.Severity == checks.SeverityWarning {
			found = true
		}
	}
	assert.True(t, found, "expected an accessibility warning, got %+v", a.Issues)
	assert.Less(t, a.Metrics.AccessibilityScore, 1.0)
	assert.Less(t, a.Metrics.Overall, 1.0)
}

func TestNewRejectsBadWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Formatting = 0.1 // sum is now 0.9

	_, err := New(cfg, zerolog.Nop())
	require.Error(t, err)
	var ce *ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestNewRejectsBadThresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min font size", func(c *Config) { c.MinFontSizePt = 0 }},
		{"legible below floor", func(c *Config) { c.LegibleHeadingSizePt = 4 }},
		{"zero level skip", func(c *Config) { c.MaxHeadingLevelSkip = 0 }},
		{"toc ratio above one", func(c *Config) { c.TOCCoverageRatio = 1.5 }},
		{"negative recommendation cap", func(c *Config) { c.MaxRecommendations = -1 }},
		{"inverted penalties", func(c *Config) { c.Penalties.Warning = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, zerolog.Nop())
			var ce *ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestAssessRejectsContractViolations(t *testing.T) {
	doc := cleanDoc()
	doc.Metadata.WordCount = -1

	e := newEngine(t, DefaultConfig())
	_, err := e.Assess(context.Background(), doc)
	require.Error(t, err)
	var ie *InputError
	assert.ErrorAs(t, err, &ie)
}

func TestAssessDefectiveDocumentIsNotAnError(t *testing.T) {
	doc := cleanDoc()
	doc.Paragraphs[1].StyleName = "Ghost" // quality defect, not bad input

	e := newEngine(t, DefaultConfig())
	a, err := e.Assess(context.Background(), doc)
	require.NoError(t, err)
	assert.NotEmpty(t, a.Issues)
	assert.Positive(t, a.Metrics.Counts.Errors)
}

func TestAssessDeterministic(t *testing.T) {
	doc := cleanDoc()
	doc.Styles[0].Font.SizePt = 6
	doc.Paragraphs[1].StyleName = "Ghost"

	e := newEngine(t, DefaultConfig())
	first, err := e.Assess(context.Background(), doc)
	require.NoError(t, err)
	second, err := e.Assess(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssessInfoFiltering(t *testing.T) {
	doc := cleanDoc()
	doc.Fields = []docmodel.Field{
		{ParagraphIndex: 1, FieldType: "PAGEREF", FieldCode: `PAGEREF _Toc42 \h`},
	}

	quiet := newEngine(t, DefaultConfig())
	a, err := quiet.Assess(context.Background(), doc)
	require.NoError(t, err)
	assert.Empty(t, a.Issues)
	assert.Equal(t, 1.0, a.Metrics.Overall, "filtered findings must not score")

	cfg := DefaultConfig()
	cfg.IncludeInfo = true
	verbose := newEngine(t, cfg)
	a, err = verbose.Assess(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, a.Issues, 1)
	assert.Equal(t, checks.SeverityInfo, a.Issues[0].Severity)
	assert.Less(t, a.Metrics.CrossReferenceScore, 1.0)
}

func TestAssessRecommendationCap(t *testing.T) {
	doc := cleanDoc()
	doc.Styles[0].Font.SizePt = 6
	doc.Paragraphs[1].StyleName = "Ghost"
	doc.Headings[0].StyleName = "Ghost 2"

	cfg := DefaultConfig()
	cfg.MaxRecommendations = 1
	e := newEngine(t, cfg)
	a, err := e.Assess(context.Background(), doc)
	require.NoError(t, err)
	assert.Greater(t, len(a.Issues), 1)
	assert.Len(t, a.Metrics.Recommendations, 1)
}

func TestAssessCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newEngine(t, DefaultConfig())
	_, err := e.Assess(ctx, cleanDoc())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssessDoesNotMutateInput(t *testing.T) {
	doc := cleanDoc()
	doc.Styles[0].Font.SizePt = 6
	before := *doc

	e := newEngine(t, DefaultConfig())
	_, err := e.Assess(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, before.Metadata, doc.Metadata)
	assert.Equal(t, before.Styles, doc.Styles)
	assert.Equal(t, before.Paragraphs, doc.Paragraphs)
}
