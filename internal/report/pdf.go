package report

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/introvert24312/autoword-sub003/internal/checks"
	"github.com/introvert24312/autoword-sub003/internal/score"
)

// WritePDF renders the summary report to an A4 PDF. Layout is intentionally
// minimal: section headers from the summary's underlined titles, body lines
// as-is.
func WritePDF(m score.Metrics, issues []checks.Issue, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	lines := strings.Split(Summary(m, issues), "\n")
	for i, line := range lines {
		s := strings.TrimRight(line, " ")
		if s == "" {
			pdf.Ln(4)
			continue
		}
		// Underline rows ("=====", "-----") mark the previous line as a
		// section header; skip them and restyle retroactively instead.
		if isRule(s) {
			continue
		}
		size := 11.0
		style := ""
		if i+1 < len(lines) && isRule(strings.TrimSpace(lines[i+1])) {
			style = "B"
			if strings.HasPrefix(strings.TrimSpace(lines[i+1]), "=") {
				size = 14
			} else {
				size = 12
			}
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.MultiCell(0, 5, s, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
	}

	return pdf.OutputFileAndClose(outPath)
}

func isRule(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '=' && r != '-' {
			return false
		}
	}
	return true
}
