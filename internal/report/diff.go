package report

import (
	"fmt"
	"strings"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/score"
)

// Delta compares two assessments of the same document, typically taken
// before and after an external edit pass.
type Delta struct {
	OverallBefore float64 `json:"overall_before"`
	OverallAfter  float64 `json:"overall_after"`
	GradeBefore   string  `json:"grade_before"`
	GradeAfter    string  `json:"grade_after"`

	Resolved   []checks.Issue `json:"resolved,omitempty"`
	Introduced []checks.Issue `json:"introduced,omitempty"`
	Unchanged  int            `json:"unchanged"`
}

// Improved reports whether the edit pass raised the overall score.
func (d Delta) Improved() bool { return d.OverallAfter > d.OverallBefore }

// Diff matches the two issue lists by identity (severity, category,
// location, message) and reports what the edit pass resolved and what it
// introduced, alongside the score movement.
func Diff(before, after score.Metrics, beforeIssues, afterIssues []checks.Issue) Delta {
	d := Delta{
		OverallBefore: before.Overall,
		OverallAfter:  after.Overall,
		GradeBefore:   before.Grade,
		GradeAfter:    after.Grade,
	}

	afterKeys := make(map[string]int, len(afterIssues))
	for _, is := range afterIssues {
		afterKeys[issueKey(is)]++
	}
	beforeKeys := make(map[string]int, len(beforeIssues))
	for _, is := range beforeIssues {
		beforeKeys[issueKey(is)]++
	}

	for _, is := range beforeIssues {
		k := issueKey(is)
		if afterKeys[k] > 0 {
			afterKeys[k]--
			d.Unchanged++
			continue
		}
		d.Resolved = append(d.Resolved, is)
	}
	for _, is := range afterIssues {
		k := issueKey(is)
		if beforeKeys[k] > 0 {
			beforeKeys[k]--
			continue
		}
		d.Introduced = append(d.Introduced, is)
	}
	return d
}

func issueKey(is checks.Issue) string {
	return strings.Join([]string{string(is.Severity), string(is.Category), is.Location, is.Message}, "\x1f")
}

// FormatDelta renders a short plain-text comparison section.
func FormatDelta(d Delta) string {
	var b strings.Builder
	b.WriteString("BEFORE / AFTER\n")
	b.WriteString("--------------\n")
	fmt.Fprintf(&b, "  Overall: %.2f (%s) -> %.2f (%s)\n",
		d.OverallBefore, d.GradeBefore, d.OverallAfter, d.GradeAfter)
	fmt.Fprintf(&b, "  Resolved %d issue(s), introduced %d, unchanged %d\n",
		len(d.Resolved), len(d.Introduced), d.Unchanged)
	for _, is := range d.Resolved {
		fmt.Fprintf(&b, "  - resolved: [%s/%s] %s\n", is.Severity, is.Category, is.Message)
	}
	for _, is := range d.Introduced {
		fmt.Fprintf(&b, "  + introduced: [%s/%s] %s\n", is.Severity, is.Category, is.Message)
	}
	return b.String()
}
