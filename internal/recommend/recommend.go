// Package recommend derives ranked, human-readable remediation suggestions
// from an issue list and the computed sub-scores. It performs no validation
// of its own.
package recommend

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/score"
)

var numRe = regexp.MustCompile(`\d+(\.\d+)?`)

// Build returns remediation suggestions ordered by descending impact:
// issues feeding the weakest sub-score first, then by severity, then by
// input order. Suggestions are deduplicated by category plus message
// template (digits normalized away) and capped at max when max > 0.
func Build(issues []checks.Issue, metrics score.Metrics, max int) []string {
	if len(issues) == 0 {
		return nil
	}

	type ranked struct {
		issue checks.Issue
		pos   int
	}
	items := make([]ranked, 0, len(issues))
	for i, is := range issues {
		items = append(items, ranked{issue: is, pos: i})
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].issue, items[j].issue
		sa, sb := metrics.SubScoreFor(a.Category), metrics.SubScoreFor(b.Category)
		if sa != sb {
			return sa < sb // weakest dimension surfaces first
		}
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		return items[i].pos < items[j].pos
	})

	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		key := string(it.issue.Category) + "|" + template(it.issue.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, phrase(it.issue))
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}

// template collapses the variable parts of a message so repeated findings of
// the same kind deduplicate to one suggestion.
func template(msg string) string {
	return numRe.ReplaceAllString(msg, "N")
}

// phrase renders one issue as an actionable sentence, preferring its
// suggested fix when the pass supplied one.
func phrase(is checks.Issue) string {
	var b strings.Builder
	if is.SuggestedFix != "" {
		r, n := utf8.DecodeRuneInString(is.SuggestedFix)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(is.SuggestedFix[n:])
	} else {
		b.WriteString("Fix: ")
		b.WriteString(is.Message)
	}
	if is.Location != "" {
		b.WriteString(" (")
		b.WriteString(is.Location)
		b.WriteString(")")
	}
	return b.String()
}
