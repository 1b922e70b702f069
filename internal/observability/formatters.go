// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/jsonrepair"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintRecord outputs a summary of a parsed résumé record.
func (p *Printer) PrintRecord(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", rec.Name))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", rec.Phone))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", rec.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(rec.Education)))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", len(rec.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(rec.Projects)))

	if len(rec.Experience) > 0 {
		sb.WriteString("\n")
		count := min(len(rec.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := rec.Experience[i]
			sb.WriteString(fmt.Sprintf("• %s / %s (%d)\n", exp.Company, exp.Position, len(exp.Achievements)))
		}
		if len(rec.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Experience)-maxItemsToShow))
		}
	}

	if len(rec.Skills) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Skills: %s\n", truncate(strings.Join(rec.Skills, "、"), 40)))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParseResult outputs which recovery strategy produced a record.
func (p *Printer) PrintParseResult(result *jsonrepair.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", result.Strategy))
	if result.Complete {
		sb.WriteString("Complete: yes")
	} else {
		sb.WriteString("Complete: no (only name, phone and email recovered)")
	}

	p.printBox("JSON RECOVERY", sb.String())
	p.PrintRecord(&result.Record)
}

// PrintDiagnosis outputs the grade and the issues found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDiagnosis(result *types.DiagnosisResult) {
	if result == nil {
		return
	}
	if len(result.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ NO ISSUES FOUND (%d, %s)", result.OverallScore, result.Grade))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d  Grade: %s\n", result.OverallScore, result.Grade))
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(result.Issues)))

	for i, issue := range result.Issues {
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", issue.Type, issue.Title))
		if issue.Location != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", issue.Location))
		}
		sb.WriteString(fmt.Sprintf("  → %s\n", issue.FixSuggestion))
		if i < len(result.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DIAGNOSIS", strings.TrimSuffix(sb.String(), "\n"))
}
