// Package checks contains the individual quality passes run against a
// structural snapshot. Each pass is independent: it reads the snapshot,
// never another pass's output, and returns its findings as Issue values.
package checks

import (
	"fmt"

	"github.com/introvert24312/autoword-sub003/internal/docmodel"
)

// Severity ranks how serious a finding is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Rank orders severities for sorting: error > warning > info.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// Category identifies which quality concern a finding belongs to. Each
// category feeds exactly one sub-score.
type Category string

const (
	CategoryIntegrity      Category = "integrity"
	CategoryStyle          Category = "style"
	CategoryAccessibility  Category = "accessibility"
	CategoryCrossReference Category = "cross_reference"
)

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryIntegrity, CategoryStyle, CategoryAccessibility, CategoryCrossReference:
		return true
	}
	return false
}

// Issue is one discrete finding. Location is a human-readable anchor
// (paragraph index or style name) and may be empty for document-wide
// findings.
type Issue struct {
	Severity     Severity `json:"severity"`
	Category     Category `json:"category"`
	Location     string   `json:"location,omitempty"`
	Message      string   `json:"message"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
}

// Pass is one quality check over a snapshot. Implementations must be pure:
// no I/O, no mutation of the snapshot, deterministic output for identical
// input.
type Pass interface {
	Name() string
	Check(doc *docmodel.Structure) []Issue
}

// Merge concatenates per-pass issue lists in the order given. Passes are
// order-independent, so the merge only has to be stable with respect to the
// registry order to keep runs byte-identical.
func Merge(lists ...[]Issue) []Issue {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Issue, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func atParagraph(idx int) string {
	return fmt.Sprintf("paragraph %d", idx)
}

func atStyle(name string) string {
	return fmt.Sprintf("style %q", name)
}
