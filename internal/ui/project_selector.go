package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cheeku2609/FilmInsight4/internal/db"
)

// ProjectResult represents the user's selection from the cache selector
type ProjectResult struct {
	Action    string // "open", "create", "exit"
	CachePath string // path to the selected/created dataset cache
}

// ProjectSelectorModel picks which dataset cache (.db file) to open.
// A cache holds one cleaned unified dataset; keeping several lets the
// user switch between dataset snapshots without re-cleaning CSVs.
type ProjectSelectorModel struct {
	caches      []string // list of .db files
	cursor      int
	createMode  bool   // true when naming a new cache
	createInput string // input for the new cache name
	result      *ProjectResult
	quitting    bool
	layout      Layout
}

// NewProjectSelectorModel creates a new cache selector
func NewProjectSelectorModel(caches []string) ProjectSelectorModel {
	return ProjectSelectorModel{
		caches: caches,
		layout: DefaultLayout(),
	}
}

func (m ProjectSelectorModel) Init() tea.Cmd {
	return StandardInit()
}

func (m ProjectSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.createMode {
			return m.handleCreateMode(msg)
		}
		return m.handleSelectMode(msg)
	}
	return m, nil
}

func (m ProjectSelectorModel) handleSelectMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	totalOptions := len(m.caches) + 2 // caches + "Create New" + "Exit"

	switch msg.String() {
	case "esc", "q", "ctrl+c":
		m.result = &ProjectResult{Action: "exit"}
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < totalOptions-1 {
			m.cursor++
		}

	case "enter":
		switch {
		case m.cursor < len(m.caches):
			m.result = &ProjectResult{Action: "open", CachePath: m.caches[m.cursor]}
			m.quitting = true
			return m, tea.Quit
		case m.cursor == len(m.caches):
			m.createMode = true
			m.createInput = ""
			return m, nil
		default:
			m.result = &ProjectResult{Action: "exit"}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ProjectSelectorModel) handleCreateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.createMode = false
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.createInput)
		if name == "" {
			return m, nil
		}
		if filepath.Ext(name) != ".db" {
			name += ".db"
		}
		m.result = &ProjectResult{Action: "create", CachePath: name}
		m.quitting = true
		return m, tea.Quit

	case "backspace":
		if len(m.createInput) > 0 {
			m.createInput = m.createInput[:len(m.createInput)-1]
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.createInput += string(msg.Runes)
		}
		return m, nil
	}
}

func (m ProjectSelectorModel) View() string {
	if m.quitting {
		return ""
	}

	if m.createMode {
		content := ViewHeader("New Dataset Cache", m.layout.InnerWidth)
		content += RenderNormal("Cache file name:") + "\n\n"
		content += AccentStyle.Render("> "+m.createInput+"█") + "\n"
		return BuildTwoBoxView(content, "Enter: create | Esc: back", m.layout)
	}

	subtitle := fmt.Sprintf("%d cache(s) found in the working directory", len(m.caches))
	content := ViewHeaderWithSubtitle("Select Dataset Cache", subtitle, m.layout.InnerWidth)

	for i, cache := range m.caches {
		content += RenderListItem(cache, i == m.cursor, m.layout.InnerWidth) + "\n"
	}
	content += RenderListItem("Create new cache...", m.cursor == len(m.caches), m.layout.InnerWidth) + "\n"
	content += RenderListItem("Exit", m.cursor == len(m.caches)+1, m.layout.InnerWidth) + "\n"

	return BuildTwoBoxView(content, "↑/↓: navigate | Enter: select | q: exit", m.layout)
}

// RunProjectSelector shows the cache selector and returns the choice.
func RunProjectSelector() (*ProjectResult, error) {
	caches, err := db.ListProjectFiles(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list dataset caches: %w", err)
	}

	p := tea.NewProgram(NewProjectSelectorModel(caches), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run cache selector: %w", err)
	}

	final := finalModel.(ProjectSelectorModel)
	if final.result == nil {
		return &ProjectResult{Action: "exit"}, nil
	}
	return final.result, nil
}
