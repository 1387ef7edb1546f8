package checks

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// headingStyleRe matches the designated heading style families, both the
// English built-ins ("Heading 1") and their east-Asian counterparts
// ("标题 1"), with the level as the trailing number.
var headingStyleRe = regexp.MustCompile(`(?i)^(?:heading|标题)\s*([1-9])$`)

// StylePass inspects the style set and paragraph usage for internal
// inconsistency. Findings here are quality concerns, not structural
// defects, so everything is a warning.
type StylePass struct {
	// MaxHeadingSizeRatio bounds how far apart two heading-family sizes may
	// be before they count as drastically different. Zero selects the
	// default of 2.0.
	MaxHeadingSizeRatio float64
}

// Name implements Pass.
func (StylePass) Name() string { return "style" }

// Check implements Pass.
func (p StylePass) Check(doc *docmodel.Structure) []Issue {
	ratio := p.MaxHeadingSizeRatio
	if ratio <= 0 {
		ratio = 2.0
	}

	var issues []Issue
	warn := func(location, message, fix string) {
		issues = append(issues, Issue{
			Severity:     SeverityWarning,
			Category:     CategoryStyle,
			Location:     location,
			Message:      message,
			SuggestedFix: fix,
		})
	}

	// Heading paragraphs must use a designated heading style.
	for _, para := range doc.Paragraphs {
		if !para.IsHeading {
			continue
		}
		if st, ok := doc.StyleByName(para.StyleName); ok && HeadingStyleLevel(st.Name) == 0 {
			warn(atParagraph(para.Index),
				fmt.Sprintf("heading paragraph uses non-heading style %q", para.StyleName),
				fmt.Sprintf("apply a Heading %d style", para.HeadingLevel))
		}
	}

	// Heading references whose style disagrees with the paragraph they
	// point at. The reference should mirror the paragraph.
	for _, h := range doc.Headings {
		para, ok := doc.ParagraphByIndex(h.ParagraphIndex)
		if !ok || !para.IsHeading {
			continue // integrity territory
		}
		if h.StyleName != "" && para.StyleName != "" && h.StyleName != para.StyleName {
			warn(atParagraph(h.ParagraphIndex),
				fmt.Sprintf("heading reference carries style %q but the paragraph uses %q", h.StyleName, para.StyleName), "")
		}
	}

	// Paragraph styles with an unset font size render unpredictably.
	for _, st := range doc.Styles {
		if st.Type == docmodel.StyleParagraph && st.Font.SizePt == 0 {
			warn(atStyle(st.Name), "paragraph style has no font size", "set an explicit font size")
		}
	}

	// Heading family coherence: same role, same font family, sane size
	// hierarchy.
	type headingStyle struct {
		level int
		style docmodel.Style
	}
	var family []headingStyle
	for _, st := range doc.Styles {
		if lvl := HeadingStyleLevel(st.Name); lvl > 0 {
			family = append(family, headingStyle{level: lvl, style: st})
		}
	}
	sort.Slice(family, func(i, j int) bool { return family[i].level < family[j].level })

	fonts := map[string]bool{}
	for _, hs := range family {
		if f := strings.TrimSpace(hs.style.Font.EastAsian); f != "" {
			fonts[f] = true
		}
	}
	if len(fonts) > 1 {
		names := make([]string, 0, len(fonts))
		for f := range fonts {
			names = append(names, f)
		}
		sort.Strings(names)
		warn("", fmt.Sprintf("heading styles mix font families: %s", strings.Join(names, ", ")),
			"use one font family across all heading levels")
	}

	for i := 1; i < len(family); i++ {
		prev, cur := family[i-1], family[i]
		if prev.style.Font.SizePt == 0 || cur.style.Font.SizePt == 0 {
			continue
		}
		// Same point size at adjacent levels flattens the visual hierarchy.
		// A quality concern, not a structural defect.
		if cur.level == prev.level+1 && prev.style.Font.SizePt == cur.style.Font.SizePt {
			warn(atStyle(cur.style.Name),
				fmt.Sprintf("levels %d and %d share the same %.4gpt size", prev.level, cur.level, cur.style.Font.SizePt),
				"differentiate adjacent heading levels by size")
			continue
		}
		big := math.Max(prev.style.Font.SizePt, cur.style.Font.SizePt)
		small := math.Min(prev.style.Font.SizePt, cur.style.Font.SizePt)
		if small > 0 && big/small > ratio {
			warn(atStyle(cur.style.Name),
				fmt.Sprintf("size jumps from %.4gpt to %.4gpt between levels %d and %d", prev.style.Font.SizePt, cur.style.Font.SizePt, prev.level, cur.level),
				"keep heading sizes within a consistent scale")
		}
	}

	return issues
}

// HeadingStyleLevel returns the heading level encoded in a designated
// heading style name ("Heading 2", "标题 2"), or 0 when the name is not a
// heading style.
func HeadingStyleLevel(name string) int {
	m := headingStyleRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
