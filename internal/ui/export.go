package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

// ExportTab writes the rows of one dashboard tab to a markdown file
// in the working directory and returns the filename.
func ExportTab(tabName string, t table.Model, summary models.Summary) (string, error) {
	timestamp := time.Now().Format("2006-01-02")
	safeName := strings.ToLower(strings.ReplaceAll(tabName, " ", "-"))
	filename := fmt.Sprintf("filminsight-%s-%s.md", safeName, timestamp)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# FilmInsight — %s\n\n", tabName))

	sb.WriteString(fmt.Sprintf("**Movies:** %s\n", humanize.Comma(int64(summary.TotalMovies))))
	if summary.MeanRating != nil {
		sb.WriteString(fmt.Sprintf("**Average Rating:** %.2f\n", *summary.MeanRating))
	}
	sb.WriteString(fmt.Sprintf("**Total Revenue:** $%s\n", humanize.Comma(summary.TotalRevenue)))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	// Table header from the live table's columns
	cols := t.Columns()
	header := make([]string, len(cols))
	divider := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Title
		divider[i] = "---"
	}
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sb.WriteString("| " + strings.Join(divider, " | ") + " |\n")

	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file: %w", err)
	}

	return filename, nil
}

// ExportTabByName builds the dashboard tables over the full dataset
// and exports the named tab without entering the TUI. The name matches
// the tab label, case-insensitive, with spaces or dashes.
func ExportTabByName(movies []models.Movie, name string) (string, error) {
	m := NewDashboard(movies)
	for i, tab := range tabNames {
		if strings.EqualFold(tab, name) || strings.EqualFold(strings.ReplaceAll(tab, " ", "-"), name) {
			return ExportTab(tab, m.tables[i], m.summary)
		}
	}
	return "", fmt.Errorf("unknown tab %q (expected one of: %s)", name, strings.Join(tabNames, ", "))
}
