package ui

// columns.go provides generic column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of duplicating percentage-based math.

import (
	"github.com/charmbracelet/bubbles/table"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns
// are allocated, respecting minimums.
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	// First pass: allocate fixed widths and sum flex ratios
	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	// Second pass: calculate final widths
	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// =============================================================================
// Dashboard column layouts
// =============================================================================

// MovieListColumns returns column specs for the browsable movie table.
func MovieListColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Title", FlexRatio: 45, MinWidth: 24},
		{Title: "Year", FixedWidth: 6},
		{Title: "Rating", FixedWidth: 8},
		{Title: "Runtime", FixedWidth: 9},
		{Title: "Genre", FlexRatio: 20, MinWidth: 10},
		{Title: "Director", FlexRatio: 25, MinWidth: 14},
	}
}

// YearlyColumns returns column specs for the per-year overview table.
func YearlyColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Year", FixedWidth: 8},
		{Title: "Movies", FixedWidth: 10},
		{Title: "Avg Rating", FixedWidth: 12},
		{Title: "Trend", FlexRatio: 100, MinWidth: 20},
	}
}

// GenreColumns returns column specs for the genre breakdown table.
func GenreColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Genre", FlexRatio: 35, MinWidth: 16},
		{Title: "Movies", FixedWidth: 10},
		{Title: "Avg Rating", FixedWidth: 12},
		{Title: "Share", FlexRatio: 65, MinWidth: 20},
	}
}

// RankingColumns returns column specs for the top-movies table.
func RankingColumns(metric string) []ColumnSpec {
	return []ColumnSpec{
		{Title: "Rank", FixedWidth: 6},
		{Title: "Title", FlexRatio: 50, MinWidth: 24},
		{Title: metric, FixedWidth: 14},
		{Title: "Year", FixedWidth: 6},
		{Title: "Rating", FixedWidth: 8},
		{Title: "Votes", FixedWidth: 10},
	}
}

// FinanceColumns returns column specs for the budget-vs-revenue table.
func FinanceColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Title", FlexRatio: 50, MinWidth: 24},
		{Title: "Budget", FixedWidth: 14},
		{Title: "Revenue", FixedWidth: 14},
		{Title: "Profit", FixedWidth: 14},
		{Title: "ROI %", FixedWidth: 10},
	}
}

// DecadeColumns returns column specs for the decade rollup table.
func DecadeColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Decade", FixedWidth: 8},
		{Title: "Movies", FixedWidth: 10},
		{Title: "Avg Rating", FixedWidth: 12},
		{Title: "Avg Runtime", FixedWidth: 13},
		{Title: "Total Revenue", FlexRatio: 50, MinWidth: 16},
		{Title: "Total Budget", FlexRatio: 50, MinWidth: 16},
	}
}

// SingleColumnSpec returns a column spec for single-column selectors.
func SingleColumnSpec(title string) []ColumnSpec {
	return []ColumnSpec{
		{Title: title, FlexRatio: 100},
	}
}
