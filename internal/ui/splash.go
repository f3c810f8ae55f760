package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is the TUI model for the startup splash screen.
type SplashModel struct {
	width  int
	height int
	done   bool
}

type splashTimeoutMsg struct{}

func waitForTimeout() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

func (m SplashModel) Init() tea.Cmd {
	return waitForTimeout()
}

func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case splashTimeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SplashModel) View() string {
	if m.done {
		return ""
	}

	layout := NewLayout(m.width, m.height)

	title := "FILMINSIGHT"
	tagline := "movie dataset analysis"

	boxHeight := layout.ViewportHeight - 4
	if boxHeight < 10 {
		boxHeight = 10
	}

	var b strings.Builder
	titleLine := boxHeight / 2
	for i := 0; i < boxHeight; i++ {
		switch i {
		case titleLine:
			b.WriteString(CenterTextPadded(AccentStyle.Render(title), layout.InnerWidth))
		case titleLine + 1:
			b.WriteString(CenterTextPadded(RenderDim(tagline), layout.InnerWidth))
		default:
			b.WriteString(strings.Repeat(" ", layout.InnerWidth))
		}
		b.WriteString("\n")
	}

	return BorderStyle.
		Width(layout.InnerWidth).
		Height(boxHeight).
		Render(b.String())
}

// ShowSplash displays the splash screen for 2 seconds or until a key
// is pressed.
func ShowSplash() {
	model := SplashModel{
		width:  DefaultWidth,
		height: DefaultHeight,
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	p.Run()

	// Clear screen before continuing
	fmt.Print("\033[2J\033[H")
}
