package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
)

// reportStyles styles the run report. Output that is not a terminal is left plain.
type reportStyles struct {
	updated lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	plain := lipgloss.NewStyle()
	s := reportStyles{updated: plain, skipped: plain, failed: plain, heading: plain, muted: plain}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s
	}

	s.updated = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	s.skipped = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	s.failed = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	s.heading = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	s.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	return s
}

// displayPath shows path relative to dir when possible.
func displayPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}
	return path
}

// fileLines renders the report lines for one document.
func fileLines(st reportStyles, dir string, fr domain.FileResult) []string {
	name := displayPath(dir, fr.Path)

	var lines []string
	switch {
	case fr.Failed():
		lines = append(lines, st.failed.Render(fmt.Sprintf("Failed: %s: %v", name, fr.Err)))
	case fr.Written:
		lines = append(lines, st.updated.Render("Updated: "+name))
	case fr.Changed:
		lines = append(lines, st.updated.Render("Would update: "+name))
	default:
		lines = append(lines, st.skipped.Render("No changes needed: "+name))
	}

	for _, c := range fr.Changes {
		lines = append(lines, "  - "+c.String())
	}
	return lines
}

func printFileResult(w io.Writer, st reportStyles, dir string, fr domain.FileResult) {
	for _, line := range fileLines(st, dir, fr) {
		fmt.Fprintln(w, line)
	}
}

// printBatchResult prints one block per document and the final tally.
func printBatchResult(w io.Writer, st reportStyles, result *domain.BatchResult) {
	for _, fr := range result.Files {
		printFileResult(w, st, result.Dir, fr)
	}

	verb := "Fixed"
	if result.DryRun {
		verb = "Would fix"
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Complete! %s %d files out of %d total.",
		verb, result.ChangedCount(), result.Total())))
	if failed := result.FailedCount(); failed > 0 {
		fmt.Fprintln(w, st.failed.Render(fmt.Sprintf("%d files could not be processed.", failed)))
	}
	fmt.Fprintln(w, st.muted.Render("Run "+result.RunID))
}

// printDistribution prints a frequency table. Category values outside the
// approved set are flagged.
func printDistribution(w io.Writer, st reportStyles, field string, rows []domain.Count, table domain.CategoryTable) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Final %s distribution:", field)))
	if len(rows) == 0 {
		fmt.Fprintln(w, st.muted.Render("  (none)"))
		return
	}
	for _, row := range rows {
		line := fmt.Sprintf("  %s: %d exhibits", row.Value, row.Count)
		if field == domain.FieldCategory && !table.IsApproved(row.Value) {
			fmt.Fprintln(w, st.failed.Render(line+" (not approved)"))
			continue
		}
		fmt.Fprintln(w, line)
	}
}
