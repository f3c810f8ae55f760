package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth  = 100
	MaxViewportWidth  = 140
	DefaultWidth      = 110 // Used when terminal size is unknown
	DefaultHeight     = 32
	MinViewportHeight = 20
	FooterHeight      = 3 // help box: border + one text row
	ChromeHeight      = 7 // title, subtitle, divider, tab bar, stats row
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // clamped terminal height
	ContentWidth   int // ViewportWidth - border chars
	TableWidth     int // sum of column widths + separators
	InnerWidth     int // exact width for content inside borders
}

// NewLayout creates a Layout from the terminal size, clamping width
// to min/max and height to a usable floor.
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	height := terminalHeight
	if height < MinViewportHeight {
		height = MinViewportHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: height,
		ContentWidth:   width - 2, // minus border chars
		TableWidth:     width - 4, // minus border + padding
		InnerWidth:     width - 2,
	}
}

// DefaultLayout returns a layout using the default size
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// TableHeight returns how many data rows fit in the main box beneath
// the dashboard chrome.
func (l Layout) TableHeight() int {
	h := l.ViewportHeight - ChromeHeight - FooterHeight - 3 // main box border + header
	if h < 5 {
		h = 5
	}
	return h
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette
var (
	ColorBorder    = lipgloss.Color("172") // amber
	ColorHighlight = lipgloss.Color("94")  // dark amber background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("226") // bright yellow
	ColorAccentDim = lipgloss.Color("220") // yellow (progress)
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorGood      = lipgloss.Color("82")  // green
	ColorBad       = lipgloss.Color("196") // red
)

// Common styles - reusable style definitions
var (
	// Border style for main viewport.
	// Content inside borders must use InnerWidth (ViewportWidth - 2).
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Dim style for subtitles and secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	// Accent style for highlighted text (yellow)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Tab styles
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 2)

	// Stats footer style
	StatsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Success/error message styles for non-TUI output
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGood).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorBad).
			Bold(true)
)

// ApplyTableStyles configures a bubbles table for the app look:
// bold white header, neutral selected style so
// RenderTableWithSelection controls the visible highlight.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(ColorText).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorTextDim).
		BorderBottom(false)
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.Foreground(ColorText)
	t.SetStyles(s)
}

// NewAppTheme creates a huh theme matching the app's style guide:
// white text, amber highlights/selection.
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorHighlight).
		Bold(true).
		Padding(0, 1)

	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}

// =============================================================================
// Rendering primitives
// =============================================================================

// RenderTitle renders bold white title text.
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderDim renders dim gray text.
func RenderDim(text string) string {
	return DimStyle.Render(text)
}

// RenderNormal renders plain white text.
func RenderNormal(text string) string {
	return NormalStyle.Render(text)
}

// RenderSelectedWidth renders text with the selection background
// padded to the given width.
func RenderSelectedWidth(text string, width int) string {
	if StringWidth(text) < width {
		text += strings.Repeat(" ", width-StringWidth(text))
	}
	return SelectedStyle.Render(text)
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripEscapeCodes removes ANSI color sequences so a line can be
// restyled without embedded resets killing the background.
func stripEscapeCodes(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// StringWidth returns the display width of a string, ignoring ANSI
// sequences and counting wide runes properly.
func StringWidth(s string) int {
	return runewidth.StringWidth(stripEscapeCodes(s))
}

// truncateToWidth cuts a plain string to the given display width.
func truncateToWidth(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// PadContentToHeight pads content with newlines to fill target height.
func PadContentToHeight(content string, targetHeight int) string {
	lines := strings.Count(content, "\n") + 1
	if lines >= targetHeight {
		return content
	}
	return content + strings.Repeat("\n", targetHeight-lines)
}

// BuildTwoBoxView renders the standard layout: a bordered main box
// with the content, and a one-row bordered footer with centered help
// text.
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	mainHeight := layout.ViewportHeight - FooterHeight - 2
	if mainHeight < 8 {
		mainHeight = 8
	}

	mainBox := BorderStyle.
		Width(layout.InnerWidth).
		Height(mainHeight).
		Render(PadContentToHeight(content, mainHeight))

	footer := BorderStyle.
		BorderForeground(ColorTextDim).
		Width(layout.InnerWidth).
		Render(CenterText(HintStyle.Render(helpText), layout.InnerWidth))

	return mainBox + "\n" + footer
}

// =============================================================================
// Plain terminal output (outside the TUI)
// =============================================================================

// PrintError prints an error message in red to the terminal.
func PrintError(msg string) {
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintSuccess prints a success message in green to the terminal.
func PrintSuccess(msg string) {
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}
