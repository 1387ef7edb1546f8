// Package report renders an already-computed quality result. Everything
// here is a deterministic, side-effect-free view over the metrics and the
// issue list.
package report

import (
	"fmt"
	"strings"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/score"
)

// Flatten renders the metrics as a flat scalar mapping for machine
// consumption (structured logs, CSV rows, spreadsheet import).
func Flatten(m score.Metrics) map[string]any {
	return map[string]any{
		"style_score":            m.StyleScore,
		"cross_reference_score":  m.CrossReferenceScore,
		"accessibility_score":    m.AccessibilityScore,
		"formatting_score":       m.FormattingScore,
		"overall_score":          m.Overall,
		"grade":                  m.Grade,
		"error_count":            m.Counts.Errors,
		"warning_count":          m.Counts.Warnings,
		"info_count":             m.Counts.Infos,
		"integrity_issues":       m.Counts.Integrity,
		"style_issues":           m.Counts.Style,
		"accessibility_issues":   m.Counts.Accessibility,
		"cross_reference_issues": m.Counts.CrossReference,
		"recommendation_count":   len(m.Recommendations),
	}
}

// Summary renders a multi-section plain-text report for human consumption.
func Summary(m score.Metrics, issues []checks.Issue) string {
	var b strings.Builder

	b.WriteString("DOCUMENT QUALITY REPORT\n")
	b.WriteString("=======================\n\n")

	fmt.Fprintf(&b, "Overall: %.2f  Grade: %s\n\n", m.Overall, m.Grade)

	b.WriteString("Scores\n------\n")
	fmt.Fprintf(&b, "  Style consistency       %.2f\n", m.StyleScore)
	fmt.Fprintf(&b, "  Cross-reference         %.2f\n", m.CrossReferenceScore)
	fmt.Fprintf(&b, "  Accessibility           %.2f\n", m.AccessibilityScore)
	fmt.Fprintf(&b, "  Formatting quality      %.2f\n", m.FormattingScore)
	b.WriteString("\n")

	b.WriteString("Issues\n------\n")
	fmt.Fprintf(&b, "  %d error(s), %d warning(s), %d info\n",
		m.Counts.Errors, m.Counts.Warnings, m.Counts.Infos)
	for _, is := range issues {
		fmt.Fprintf(&b, "  [%s/%s] %s", strings.ToUpper(string(is.Severity)), is.Category, is.Message)
		if is.Location != "" {
			fmt.Fprintf(&b, " (%s)", is.Location)
		}
		b.WriteString("\n")
	}
	if len(issues) == 0 {
		b.WriteString("  none\n")
	}
	b.WriteString("\n")

	b.WriteString("Recommendations\n---------------\n")
	if len(m.Recommendations) == 0 {
		b.WriteString("  none\n")
	}
	for i, r := range m.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, r)
	}

	return b.String()
}
