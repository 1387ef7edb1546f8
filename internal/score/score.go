// Package score turns a merged issue list into the four quality sub-scores,
// the weighted overall score, and the letter grade. Everything here is a
// pure, deterministic function of its input.
package score

import (
	"fmt"
	"math"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// weightTolerance is how far the weight sum may drift from 1.0 before the
// configuration is rejected.
const weightTolerance = 1e-6

// Weights distributes the overall score across the four sub-scores. The
// four values must be non-negative and sum to 1.0 within tolerance.
type Weights struct {
	Style          float64 `yaml:"style" json:"style"`
	CrossReference float64 `yaml:"crossReference" json:"crossReference"`
	Accessibility  float64 `yaml:"accessibility" json:"accessibility"`
	Formatting     float64 `yaml:"formatting" json:"formatting"`
}

// DefaultWeights returns the calibration used when the caller supplies none.
func DefaultWeights() Weights {
	return Weights{Style: 0.30, CrossReference: 0.25, Accessibility: 0.25, Formatting: 0.20}
}

// Validate rejects weight sets that cannot produce a [0,1] overall score.
func (w Weights) Validate() error {
	if w.Style < 0 || w.CrossReference < 0 || w.Accessibility < 0 || w.Formatting < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	sum := w.Style + w.CrossReference + w.Accessibility + w.Formatting
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.6f, want 1.0", sum)
	}
	return nil
}

// Penalties is the per-issue deduction applied to a sub-score, by severity.
// Deductions saturate: a sub-score never drops below zero.
type Penalties struct {
	Error   float64 `yaml:"error" json:"error"`
	Warning float64 `yaml:"warning" json:"warning"`
	Info    float64 `yaml:"info" json:"info"`
}

// DefaultPenalties returns the default deduction scheme. The ordering
// error > warning > info is a hard requirement; the magnitudes are tunable.
func DefaultPenalties() Penalties {
	return Penalties{Error: 0.25, Warning: 0.10, Info: 0.02}
}

// Validate rejects penalty sets that invert the severity ordering.
func (p Penalties) Validate() error {
	if p.Error < 0 || p.Warning < 0 || p.Info < 0 {
		return fmt.Errorf("penalties must be non-negative")
	}
	if !(p.Error > p.Warning && p.Warning > p.Info) {
		return fmt.Errorf("penalties must satisfy error > warning > info")
	}
	return nil
}

func (p Penalties) forSeverity(s checks.Severity) float64 {
	switch s {
	case checks.SeverityError:
		return p.Error
	case checks.SeverityWarning:
		return p.Warning
	case checks.SeverityInfo:
		return p.Info
	}
	return 0
}

// Counts summarizes the issue list by severity and category.
type Counts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`

	Integrity      int `json:"integrity"`
	Style          int `json:"style"`
	Accessibility  int `json:"accessibility"`
	CrossReference int `json:"cross_reference"`
}

// Total returns the number of counted issues.
func (c Counts) Total() int { return c.Errors + c.Warnings + c.Infos }

// Metrics is the assembled quality result for one validation run. It is
// created once and never mutated afterwards.
type Metrics struct {
	StyleScore          float64 `json:"style_score"`
	CrossReferenceScore float64 `json:"cross_reference_score"`
	AccessibilityScore  float64 `json:"accessibility_score"`
	FormattingScore     float64 `json:"formatting_score"`
	Overall             float64 `json:"overall_score"`
	Grade               string  `json:"grade"`

	Counts          Counts   `json:"counts"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// SubScoreFor maps a category to the sub-score it feeds. Integrity findings
// feed the formatting-quality dimension; the other three map one to one.
func (m Metrics) SubScoreFor(c checks.Category) float64 {
	switch c {
	case checks.CategoryStyle:
		return m.StyleScore
	case checks.CategoryCrossReference:
		return m.CrossReferenceScore
	case checks.CategoryAccessibility:
		return m.AccessibilityScore
	default:
		return m.FormattingScore
	}
}

// Compute derives the four sub-scores, the weighted overall score, and the
// grade from a snapshot and its merged issue list. Weights and penalties
// must already be validated; Compute assumes them well-formed.
func Compute(doc *docmodel.Structure, issues []checks.Issue, w Weights, p Penalties) Metrics {
	var m Metrics
	var deduct [4]float64 // style, xref, accessibility, formatting

	for _, is := range issues {
		pen := p.forSeverity(is.Severity)
		switch is.Category {
		case checks.CategoryStyle:
			deduct[0] += pen
			m.Counts.Style++
		case checks.CategoryCrossReference:
			deduct[1] += pen
			m.Counts.CrossReference++
		case checks.CategoryAccessibility:
			deduct[2] += pen
			m.Counts.Accessibility++
		case checks.CategoryIntegrity:
			deduct[3] += pen
			m.Counts.Integrity++
		}
		switch is.Severity {
		case checks.SeverityError:
			m.Counts.Errors++
		case checks.SeverityWarning:
			m.Counts.Warnings++
		case checks.SeverityInfo:
			m.Counts.Infos++
		}
	}

	// Formatting quality also looks at the snapshot itself: body-text
	// styles drifting across several line-spacing modes read as sloppy
	// formatting even when no pass flags them individually.
	deduct[3] += spacingDriftPenalty(doc)

	m.StyleScore = saturate(deduct[0])
	m.CrossReferenceScore = saturate(deduct[1])
	m.AccessibilityScore = saturate(deduct[2])
	m.FormattingScore = saturate(deduct[3])

	m.Overall = w.Style*m.StyleScore +
		w.CrossReference*m.CrossReferenceScore +
		w.Accessibility*m.AccessibilityScore +
		w.Formatting*m.FormattingScore
	m.Grade = GradeFor(m.Overall)
	return m
}

// spacingDriftPenalty charges 0.05 per extra line-spacing mode found across
// body-text paragraph styles.
func spacingDriftPenalty(doc *docmodel.Structure) float64 {
	if doc == nil {
		return 0
	}
	modes := map[docmodel.LineSpacingMode]bool{}
	for _, st := range doc.Styles {
		if st.Type != docmodel.StyleParagraph || st.Paragraph == nil {
			continue
		}
		if checks.HeadingStyleLevel(st.Name) > 0 {
			continue
		}
		modes[st.Paragraph.SpacingMode] = true
	}
	if len(modes) <= 1 {
		return 0
	}
	return 0.05 * float64(len(modes)-1)
}

func saturate(deduction float64) float64 {
	s := 1.0 - deduction
	if s < 0 {
		return 0
	}
	return s
}

// GradeFor maps an overall score to the discrete letter grade. Thresholds
// are left-inclusive: 0.90 is still an A.
func GradeFor(overall float64) string {
	switch {
	case overall >= 0.90:
		return "A"
	case overall >= 0.75:
		return "B"
	case overall >= 0.60:
		return "C"
	case overall >= 0.40:
		return "D"
	default:
		return "F"
	}
}
