package checks

import (
	"fmt"
	"sort"

	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// IntegrityPass verifies the structural invariants of a snapshot: unique
// style names, contiguous paragraph indices, and resolvable cross-references
// from headings, fields, and tables. Every violation is reported; the pass
// never stops at the first finding.
type IntegrityPass struct{}

// Name implements Pass.
func (IntegrityPass) Name() string { return "integrity" }

// Check implements Pass. All findings are errors: a document failing this
// pass is structurally broken, not merely low quality.
func (IntegrityPass) Check(doc *docmodel.Structure) []Issue {
	var issues []Issue
	add := func(location, message, fix string) {
		issues = append(issues, Issue{
			Severity:     SeverityError,
			Category:     CategoryIntegrity,
			Location:     location,
			Message:      message,
			SuggestedFix: fix,
		})
	}

	// Duplicate style names break resolution for every referrer.
	seenStyle := make(map[string]bool, len(doc.Styles))
	for _, st := range doc.Styles {
		if seenStyle[st.Name] {
			add(atStyle(st.Name), "duplicate style definition", "remove or rename the duplicate style")
			continue
		}
		seenStyle[st.Name] = true
	}

	// Paragraph indices must be unique and contiguous from 0. Findings are
	// emitted in ascending index order so identical snapshots always yield
	// identical issue lists.
	byIndex := make(map[int]int, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		byIndex[p.Index]++
	}
	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		if n := byIndex[idx]; n > 1 {
			add(atParagraph(idx), fmt.Sprintf("paragraph index appears %d times", n), "re-extract the snapshot; indices must be unique")
		}
	}
	next := 0
	for _, idx := range indices {
		if idx > next {
			add(atParagraph(idx), fmt.Sprintf("paragraph index gap: expected %d, found %d", next, idx), "re-extract the snapshot; indices must be contiguous from 0")
		}
		next = idx + 1
	}

	// Paragraph style references.
	for _, p := range doc.Paragraphs {
		if _, ok := doc.StyleByName(p.StyleName); !ok {
			add(atParagraph(p.Index), fmt.Sprintf("style %q is not defined", p.StyleName), "define the style or reassign the paragraph")
		}
	}

	// Heading references: target must exist, be a heading, and agree on level.
	for _, h := range doc.Headings {
		p, ok := doc.ParagraphByIndex(h.ParagraphIndex)
		if !ok {
			add(atParagraph(h.ParagraphIndex), fmt.Sprintf("heading %q references a missing paragraph", h.Text), "")
			continue
		}
		if !p.IsHeading {
			add(atParagraph(h.ParagraphIndex), fmt.Sprintf("heading %q references a non-heading paragraph", h.Text), "")
			continue
		}
		if p.HeadingLevel != h.Level {
			add(atParagraph(h.ParagraphIndex), fmt.Sprintf("heading %q declares level %d but the paragraph carries level %d", h.Text, h.Level, p.HeadingLevel), "")
		}
		if _, ok := doc.StyleByName(h.StyleName); !ok {
			add(atParagraph(h.ParagraphIndex), fmt.Sprintf("heading style %q is not defined", h.StyleName), "define the style or update the heading reference")
		}
	}

	// Field and table anchors.
	for _, f := range doc.Fields {
		if _, ok := doc.ParagraphByIndex(f.ParagraphIndex); !ok {
			add(atParagraph(f.ParagraphIndex), fmt.Sprintf("%s field anchored at a missing paragraph", f.FieldType), "")
		}
	}
	for _, tb := range doc.Tables {
		if _, ok := doc.ParagraphByIndex(tb.ParagraphIndex); !ok {
			add(atParagraph(tb.ParagraphIndex), fmt.Sprintf("%dx%d table anchored at a missing paragraph", tb.Rows, tb.Columns), "")
		}
	}

	return issues
}
