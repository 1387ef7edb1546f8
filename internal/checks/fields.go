package checks

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// FieldsPass validates field instructions against the rest of the snapshot:
// stale table-of-contents results and hyperlink/page-reference anchors that
// no longer resolve.
type FieldsPass struct {
	// TOCCoverageRatio is the fraction of headings a TOC result must still
	// list before it counts as stale. Zero selects the default of 0.5.
	TOCCoverageRatio float64
}

// Name implements Pass.
func (FieldsPass) Name() string { return "fields" }

var quotedAnchorRe = regexp.MustCompile(`"([^"]+)"`)

// Check implements Pass.
func (p FieldsPass) Check(doc *docmodel.Structure) []Issue {
	ratio := p.TOCCoverageRatio
	if ratio <= 0 {
		ratio = 0.5
	}

	var issues []Issue
	add := func(sev Severity, location, message, fix string) {
		issues = append(issues, Issue{
			Severity:     sev,
			Category:     CategoryCrossReference,
			Location:     location,
			Message:      message,
			SuggestedFix: fix,
		})
	}

	for _, f := range doc.Fields {
		switch strings.ToUpper(strings.TrimSpace(f.FieldType)) {
		case "TOC":
			entries := countEntries(f.ResultText)
			if entries == 0 {
				add(SeverityWarning, atParagraph(f.ParagraphIndex),
					"TOC field has an empty result", "update fields before exporting")
				continue
			}
			if need := int(math.Ceil(ratio * float64(len(doc.Headings)))); len(doc.Headings) > 0 && entries < need {
				add(SeverityWarning, atParagraph(f.ParagraphIndex),
					fmt.Sprintf("TOC lists %d entries for %d headings; likely stale", entries, len(doc.Headings)),
					"update fields before exporting")
			}
		case "HYPERLINK":
			// Only internal links (\l) can be resolved against the snapshot.
			if !strings.Contains(f.FieldCode, `\l`) {
				continue
			}
			p.checkAnchor(doc, f, add)
		case "PAGEREF":
			p.checkAnchor(doc, f, add)
		}
	}

	return issues
}

func (FieldsPass) checkAnchor(doc *docmodel.Structure, f docmodel.Field, add func(Severity, string, string, string)) {
	anchor := extractAnchor(f.FieldCode)
	if anchor == "" {
		add(SeverityWarning, atParagraph(f.ParagraphIndex),
			fmt.Sprintf("%s field has no anchor in its code %q", f.FieldType, f.FieldCode), "")
		return
	}
	// Auto-generated bookmarks live outside the snapshot; their targets
	// cannot be confirmed or refuted here.
	if strings.HasPrefix(anchor, "_Toc") || strings.HasPrefix(anchor, "_Ref") {
		add(SeverityInfo, atParagraph(f.ParagraphIndex),
			fmt.Sprintf("%s anchor %q is an auto bookmark and cannot be verified from the snapshot", f.FieldType, anchor), "")
		return
	}
	for _, h := range doc.Headings {
		if strings.EqualFold(strings.TrimSpace(h.Text), anchor) {
			return
		}
	}
	add(SeverityWarning, atParagraph(f.ParagraphIndex),
		fmt.Sprintf("%s anchor %q matches no heading", f.FieldType, anchor),
		"retarget the field or restore the heading")
}

// extractAnchor pulls the referenced bookmark or heading name out of a raw
// field instruction: the first quoted string when present, otherwise the
// first bare token after the field keyword that is not a switch.
func extractAnchor(code string) string {
	if m := quotedAnchorRe.FindStringSubmatch(code); m != nil {
		return strings.TrimSpace(m[1])
	}
	tokens := strings.Fields(code)
	for i, tok := range tokens {
		if i == 0 {
			continue // field keyword
		}
		if strings.HasPrefix(tok, `\`) {
			continue
		}
		return tok
	}
	return ""
}

// countEntries counts non-blank lines in a cached field result.
func countEntries(result string) int {
	n := 0
	for _, line := range strings.Split(result, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
