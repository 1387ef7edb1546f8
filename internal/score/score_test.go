package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

func issue(sev checks.Severity, cat checks.Category) checks.Issue {
	return checks.Issue{Severity: sev, Category: cat, Message: "x"}
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{name: "defaults", weights: DefaultWeights(), wantErr: false},
		{name: "sum below one", weights: Weights{Style: 0.3, CrossReference: 0.2, Accessibility: 0.2, Formatting: 0.2}, wantErr: true},
		{name: "sum above one", weights: Weights{Style: 0.5, CrossReference: 0.3, Accessibility: 0.2, Formatting: 0.2}, wantErr: true},
		{name: "negative weight", weights: Weights{Style: 1.2, CrossReference: -0.2, Accessibility: 0.0, Formatting: 0.0}, wantErr: true},
		{name: "within tolerance", weights: Weights{Style: 0.25, CrossReference: 0.25, Accessibility: 0.25, Formatting: 0.2500000001}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPenaltiesValidate(t *testing.T) {
	assert.NoError(t, DefaultPenalties().Validate())
	assert.Error(t, Penalties{Error: 0.1, Warning: 0.1, Info: 0.02}.Validate())
	assert.Error(t, Penalties{Error: 0.25, Warning: 0.02, Info: 0.1}.Validate())
	assert.Error(t, Penalties{Error: -0.25, Warning: -0.5, Info: -0.75}.Validate())
}

func TestComputeCleanCategoriesScoreOne(t *testing.T) {
	issues := []checks.Issue{issue(checks.SeverityWarning, checks.CategoryStyle)}
	m := Compute(&docmodel.Structure{}, issues, DefaultWeights(), DefaultPenalties())

	assert.Less(t, m.StyleScore, 1.0)
	assert.Equal(t, 1.0, m.CrossReferenceScore)
	assert.Equal(t, 1.0, m.AccessibilityScore)
	assert.Equal(t, 1.0, m.FormattingScore)
}

func TestComputeSaturatesAtZero(t *testing.T) {
	var issues []checks.Issue
	for i := 0; i < 50; i++ {
		issues = append(issues, issue(checks.SeverityError, checks.CategoryIntegrity))
	}
	m := Compute(&docmodel.Structure{}, issues, DefaultWeights(), DefaultPenalties())
	assert.Equal(t, 0.0, m.FormattingScore)
	assert.GreaterOrEqual(t, m.Overall, 0.0)
	assert.LessOrEqual(t, m.Overall, 1.0)
}

func TestComputeSeverityOrdering(t *testing.T) {
	p := DefaultPenalties()
	w := DefaultWeights()
	errScore := Compute(&docmodel.Structure{}, []checks.Issue{issue(checks.SeverityError, checks.CategoryStyle)}, w, p)
	warnScore := Compute(&docmodel.Structure{}, []checks.Issue{issue(checks.SeverityWarning, checks.CategoryStyle)}, w, p)
	infoScore := Compute(&docmodel.Structure{}, []checks.Issue{issue(checks.SeverityInfo, checks.CategoryStyle)}, w, p)

	assert.Less(t, errScore.StyleScore, warnScore.StyleScore)
	assert.Less(t, warnScore.StyleScore, infoScore.StyleScore)
}

func TestComputeCounts(t *testing.T) {
	issues := []checks.Issue{
		issue(checks.SeverityError, checks.CategoryIntegrity),
		issue(checks.SeverityWarning, checks.CategoryStyle),
		issue(checks.SeverityWarning, checks.CategoryAccessibility),
		issue(checks.SeverityInfo, checks.CategoryCrossReference),
	}
	m := Compute(&docmodel.Structure{}, issues, DefaultWeights(), DefaultPenalties())
	require.Equal(t, 1, m.Counts.Errors)
	require.Equal(t, 2, m.Counts.Warnings)
	require.Equal(t, 1, m.Counts.Infos)
	require.Equal(t, 4, m.Counts.Total())
	require.Equal(t, 1, m.Counts.Integrity)
	require.Equal(t, 1, m.Counts.Style)
	require.Equal(t, 1, m.Counts.Accessibility)
	require.Equal(t, 1, m.Counts.CrossReference)
}

func TestGradeThresholds(t *testing.T) {
	tests := []struct {
		score float64
		grade string
	}{
		{1.00, "A"},
		{0.90, "A"},
		{0.8999, "B"},
		{0.75, "B"},
		{0.7499, "C"},
		{0.60, "C"},
		{0.5999, "D"},
		{0.40, "D"},
		{0.3999, "F"},
		{0.0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.grade, GradeFor(tt.score), "score %.4f", tt.score)
	}
}

func TestGradeMonotonic(t *testing.T) {
	order := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}
	prev := "F"
	for s := 0.0; s <= 1.0; s += 0.01 {
		g := GradeFor(s)
		assert.GreaterOrEqual(t, order[g], order[prev], "grade regressed at %.2f", s)
		prev = g
	}
}

func TestSpacingDriftLowersFormatting(t *testing.T) {
	doc := &docmodel.Structure{
		Styles: []docmodel.Style{
			{Name: "Normal", Type: docmodel.StyleParagraph, Font: docmodel.FontSpec{SizePt: 12},
				Paragraph: &docmodel.ParagraphSpec{SpacingMode: docmodel.SpacingSingle}},
			{Name: "Quote", Type: docmodel.StyleParagraph, Font: docmodel.FontSpec{SizePt: 12},
				Paragraph: &docmodel.ParagraphSpec{SpacingMode: docmodel.SpacingDouble}},
			{Name: "Caption", Type: docmodel.StyleParagraph, Font: docmodel.FontSpec{SizePt: 9},
				Paragraph: &docmodel.ParagraphSpec{SpacingMode: docmodel.SpacingExactly, LineSpacing: 18}},
		},
	}
	m := Compute(doc, nil, DefaultWeights(), DefaultPenalties())
	assert.InDelta(t, 0.90, m.FormattingScore, 1e-9) // two extra modes, 0.05 each
	assert.Equal(t, 1.0, m.StyleScore)
}

func TestSpacingDriftIgnoresHeadingStyles(t *testing.T) {
	doc := &docmodel.Structure{
		Styles: []docmodel.Style{
			{Name: "Normal", Type: docmodel.StyleParagraph, Font: docmodel.FontSpec{SizePt: 12},
				Paragraph: &docmodel.ParagraphSpec{SpacingMode: docmodel.SpacingSingle}},
			{Name: "Heading 1", Type: docmodel.StyleParagraph, Font: docmodel.FontSpec{SizePt: 16, Bold: true},
				Paragraph: &docmodel.ParagraphSpec{SpacingMode: docmodel.SpacingDouble}},
		},
	}
	m := Compute(doc, nil, DefaultWeights(), DefaultPenalties())
	assert.Equal(t, 1.0, m.FormattingScore)
}

func TestSubScoreFor(t *testing.T) {
	m := Metrics{StyleScore: 0.1, CrossReferenceScore: 0.2, AccessibilityScore: 0.3, FormattingScore: 0.4}
	assert.Equal(t, 0.1, m.SubScoreFor(checks.CategoryStyle))
	assert.Equal(t, 0.2, m.SubScoreFor(checks.CategoryCrossReference))
	assert.Equal(t, 0.3, m.SubScoreFor(checks.CategoryAccessibility))
	assert.Equal(t, 0.4, m.SubScoreFor(checks.CategoryIntegrity))
}
