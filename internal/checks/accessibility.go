package checks

import (
	"fmt"

	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// AccessibilityPass verifies that the heading outline stays navigable for
// assistive tooling: no level is skipped beyond the configured step, a
// level-1 heading exists, and heading fonts stay legible.
type AccessibilityPass struct {
	// MaxLevelSkip is the largest permitted jump between consecutive
	// headings when descending the outline. Zero selects the default of 1.
	MaxLevelSkip int
	// MinFontSizePt is the accessibility floor for heading font sizes.
	// Zero selects the default of 8pt.
	MinFontSizePt float64
	// LegibleSizePt is the size at which a non-bold heading still counts
	// as legible. Zero selects the default of 14pt.
	LegibleSizePt float64
}

// Name implements Pass.
func (AccessibilityPass) Name() string { return "accessibility" }

// Check implements Pass.
func (p AccessibilityPass) Check(doc *docmodel.Structure) []Issue {
	maxSkip := p.MaxLevelSkip
	if maxSkip <= 0 {
		maxSkip = 1
	}
	minSize := p.MinFontSizePt
	if minSize <= 0 {
		minSize = 8
	}
	legible := p.LegibleSizePt
	if legible <= 0 {
		legible = 14
	}

	var issues []Issue
	add := func(sev Severity, location, message, fix string) {
		issues = append(issues, Issue{
			Severity:     sev,
			Category:     CategoryAccessibility,
			Location:     location,
			Message:      message,
			SuggestedFix: fix,
		})
	}

	if len(doc.Headings) == 0 {
		return issues
	}

	// An outline without a level-1 heading has no root to navigate from.
	hasTop := false
	for _, h := range doc.Headings {
		if h.Level == 1 {
			hasTop = true
			break
		}
	}
	if !hasTop {
		add(SeverityError, "", "document has headings but no level-1 heading", "promote the first heading to level 1")
	}

	// Level transitions in document order. Only descents can skip; moving
	// back up the outline is always permitted.
	for i := 1; i < len(doc.Headings); i++ {
		prev, cur := doc.Headings[i-1], doc.Headings[i]
		if cur.Level > prev.Level+maxSkip {
			add(SeverityWarning, atParagraph(cur.ParagraphIndex),
				fmt.Sprintf("outline skips from level %d to level %d", prev.Level, cur.Level),
				fmt.Sprintf("insert a level-%d heading or demote %q", prev.Level+1, cur.Text))
		}
	}

	// Font legibility per heading, resolved through its style.
	for _, h := range doc.Headings {
		st, ok := doc.StyleByName(h.StyleName)
		if !ok {
			continue // integrity territory
		}
		size := st.Font.SizePt
		if size > 0 && size < minSize {
			add(SeverityWarning, atParagraph(h.ParagraphIndex),
				fmt.Sprintf("heading %q uses %.4gpt, below the %.4gpt accessibility floor", h.Text, size, minSize),
				fmt.Sprintf("increase the font size of style %q", st.Name))
			continue
		}
		if !st.Font.Bold && size > 0 && size < legible {
			add(SeverityWarning, atParagraph(h.ParagraphIndex),
				fmt.Sprintf("heading %q is neither bold nor at least %.4gpt", h.Text, legible),
				fmt.Sprintf("make style %q bold or larger", st.Name))
		}
	}

	return issues
}
