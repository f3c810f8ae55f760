package ui

// dashboard.go is the main analysis view: one tabbed table per
// analysis angle, all derived from Filter(dataset, spec). The dataset
// slice is read-only; every filter change rebuilds the tab tables
// from scratch.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/cheeku2609/FilmInsight4/internal/dataset"
	"github.com/cheeku2609/FilmInsight4/internal/models"
)

const (
	tabMovies = iota
	tabOverview
	tabGenres
	tabTop
	tabFinancial
	tabDecades
	tabCount
)

var tabNames = []string{"Movies", "Overview", "Genres", "Top Movies", "Financial", "Decades"}

// rankMetrics are the orderings offered on the Top Movies tab.
var rankMetrics = []string{"Rating", "Runtime", "Revenue"}

const rankingSize = 25

// DashboardModel is the Bubble Tea model for the analysis dashboard.
type DashboardModel struct {
	all    []models.Movie // full unified dataset, never mutated
	genres []string       // all genre labels, for the filter form

	spec     models.FilterSpec
	filtered []models.Movie
	summary  models.Summary

	tables     [tabCount]table.Model
	currentTab int
	rankMetric int

	search      textinput.Model
	searching   bool
	searchQuery string

	filters *FilterForm

	layout    Layout
	statusMsg string
	quitting  bool
}

// NewDashboard creates the dashboard over a loaded dataset. The
// initial spec spans the whole dataset, so everything filterable is
// visible on first render.
func NewDashboard(movies []models.Movie) DashboardModel {
	search := textinput.New()
	search.Placeholder = "title contains... (d:name for directors)"
	search.CharLimit = 128
	search.Prompt = "/ "

	m := DashboardModel{
		all:    movies,
		genres: dataset.AllGenres(movies),
		spec:   initialSpec(movies),
		layout: DefaultLayout(),
		search: search,
	}
	m.applyFilters()
	return m
}

// initialSpec spans the dataset: the year range observed in the data,
// the full rating scale, and the longest runtime present.
func initialSpec(movies []models.Movie) models.FilterSpec {
	spec := dataset.DefaultSpec()
	s := dataset.Summarize(movies)
	if s.YearMax > 0 {
		spec.YearMin = s.YearMin
		spec.YearMax = s.YearMax
	}
	maxRuntime := 0.0
	for _, m := range movies {
		if m.RuntimeMinutes != nil && *m.RuntimeMinutes > maxRuntime {
			maxRuntime = *m.RuntimeMinutes
		}
	}
	if maxRuntime > 0 {
		spec.RuntimeMax = maxRuntime
	}
	return spec
}

// applyFilters recomputes the filtered subset and rebuilds every tab.
func (m *DashboardModel) applyFilters() {
	m.filtered = dataset.Filter(m.all, m.spec)
	m.summary = dataset.Summarize(m.filtered)
	m.rebuildTables()
}

func (m *DashboardModel) rebuildTables() {
	m.tables[tabMovies] = m.buildMoviesTable()
	m.tables[tabOverview] = m.buildOverviewTable()
	m.tables[tabGenres] = m.buildGenresTable()
	m.tables[tabTop] = m.buildTopTable()
	m.tables[tabFinancial] = m.buildFinancialTable()
	m.tables[tabDecades] = m.buildDecadesTable()
}

func (m *DashboardModel) buildMoviesTable() table.Model {
	movies := m.filtered
	// "d:" searches directors instead of titles
	if q, ok := strings.CutPrefix(m.searchQuery, "d:"); ok {
		movies = dataset.ByDirector(m.filtered, q)
	} else if m.searchQuery != "" {
		movies = dataset.SearchTitle(m.filtered, m.searchQuery)
	}
	rows := make([]table.Row, 0, len(movies))
	for _, mov := range movies {
		rows = append(rows, table.Row{
			mov.Title,
			formatYear(mov.ReleaseYear),
			formatRating(mov.VoteAverage),
			formatRuntime(mov.RuntimeMinutes),
			mov.PrimaryGenre,
			mov.Director,
		})
	}
	return InitTable(CalculateColumns(MovieListColumns(), m.layout.TableWidth), rows, m.layout, true)
}

func (m *DashboardModel) buildOverviewTable() table.Model {
	counts := dataset.CountByYear(m.filtered)
	ratings := make(map[int]float64)
	for _, r := range dataset.MeanRatingByYear(m.filtered) {
		ratings[r.Year] = r.MeanRating
	}

	maxCount := 0
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	barWidth := m.layout.TableWidth / 3
	rows := make([]table.Row, 0, len(counts))
	for _, c := range counts {
		rating := "—"
		if v, ok := ratings[c.Year]; ok {
			rating = fmt.Sprintf("%.2f", v)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", c.Year),
			humanize.Comma(int64(c.Count)),
			rating,
			RenderBar(float64(c.Count), float64(maxCount), barWidth),
		})
	}
	return InitTable(CalculateColumns(YearlyColumns(), m.layout.TableWidth), rows, m.layout, true)
}

func (m *DashboardModel) buildGenresTable() table.Model {
	stats := dataset.GenreStats(m.filtered)

	maxCount := 0
	for _, s := range stats {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}

	barWidth := m.layout.TableWidth / 3
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		rating := "—"
		if s.Rated > 0 {
			rating = fmt.Sprintf("%.2f", s.MeanRating)
		}
		rows = append(rows, table.Row{
			s.Genre,
			humanize.Comma(int64(s.Count)),
			rating,
			RenderBar(float64(s.Count), float64(maxCount), barWidth),
		})
	}
	return InitTable(CalculateColumns(GenreColumns(), m.layout.TableWidth), rows, m.layout, true)
}

func (m *DashboardModel) buildTopTable() table.Model {
	var ranked []models.Movie
	metric := rankMetrics[m.rankMetric]
	switch metric {
	case "Runtime":
		ranked = dataset.Longest(m.filtered, rankingSize)
	case "Revenue":
		ranked = dataset.TopGrossing(m.filtered, rankingSize)
	default:
		ranked = dataset.TopRated(m.filtered, rankingSize)
	}

	rows := make([]table.Row, 0, len(ranked))
	for i, mov := range ranked {
		var value string
		switch metric {
		case "Runtime":
			value = formatRuntime(mov.RuntimeMinutes)
		case "Revenue":
			value = formatMoney(mov.Revenue)
		default:
			value = formatRating(mov.VoteAverage)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			mov.Title,
			value,
			formatYear(mov.ReleaseYear),
			formatRating(mov.VoteAverage),
			humanize.Comma(mov.VoteCount),
		})
	}
	return InitTable(CalculateColumns(RankingColumns(metric), m.layout.TableWidth), rows, m.layout, true)
}

func (m *DashboardModel) buildFinancialTable() table.Model {
	points := dataset.BudgetRevenuePoints(m.filtered)
	rows := make([]table.Row, 0, len(points))
	for _, p := range points {
		roi := float64(p.Profit) / float64(p.Budget) * 100
		rows = append(rows, table.Row{
			p.Title,
			formatMoney(p.Budget),
			formatMoney(p.Revenue),
			formatMoney(p.Profit),
			fmt.Sprintf("%.0f", roi),
		})
	}
	return InitTable(CalculateColumns(FinanceColumns(), m.layout.TableWidth), rows, m.layout, true)
}

func (m *DashboardModel) buildDecadesTable() table.Model {
	stats := dataset.DecadeRollup(m.filtered)
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, table.Row{
			fmt.Sprintf("%ds", s.Decade),
			humanize.Comma(int64(s.Count)),
			fmt.Sprintf("%.2f", s.MeanRating),
			fmt.Sprintf("%.0f min", s.MeanRuntime),
			formatMoney(s.TotalRevenue),
			formatMoney(s.TotalBudget),
		})
	}
	return InitTable(CalculateColumns(DecadeColumns(), m.layout.TableWidth), rows, m.layout, true)
}

// =============================================================================
// Bubble Tea interface
// =============================================================================

func (m DashboardModel) Init() tea.Cmd {
	return StandardInit()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.rebuildTables()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.filters != nil {
		return m.updateFilterForm(msg)
	}

	var cmd tea.Cmd
	m.tables[m.currentTab], cmd = m.tables[m.currentTab].Update(msg)
	return m, cmd
}

func (m DashboardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filters != nil {
		return m.updateFilterForm(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	key := msg.String()
	m.statusMsg = ""

	if quit, cmd := HandleQuitKeys(key); quit {
		m.quitting = true
		return m, cmd
	}

	switch key {
	case "tab", "right", "l":
		m.currentTab = CycleTab(m.currentTab, 1, tabCount)
		return m, nil
	case "shift+tab", "left", "h":
		m.currentTab = CycleTab(m.currentTab, -1, tabCount)
		return m, nil
	case "f":
		m.filters = NewFilterForm(m.spec, m.genres)
		return m, m.filters.Init()
	case "r":
		m.spec = initialSpec(m.all)
		m.searchQuery = ""
		m.applyFilters()
		m.statusMsg = "Filters reset"
		return m, nil
	case "m":
		if m.currentTab == tabTop {
			m.rankMetric = (m.rankMetric + 1) % len(rankMetrics)
			m.tables[tabTop] = m.buildTopTable()
		}
		return m, nil
	case "/":
		if m.currentTab == tabMovies {
			m.searching = true
			m.search.SetValue(m.searchQuery)
			m.search.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "e":
		filename, err := ExportTab(tabNames[m.currentTab], m.tables[m.currentTab], m.summary)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Export failed: %v", err)
		} else {
			m.statusMsg = fmt.Sprintf("Exported to %s", filename)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tables[m.currentTab], cmd = m.tables[m.currentTab].Update(msg)
	return m, cmd
}

func (m DashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.searchQuery = m.search.Value()
		m.tables[tabMovies] = m.buildMoviesTable()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.filters.Update(msg)
	switch form.State() {
	case FilterFormCompleted:
		m.spec = form.Spec(m.spec)
		m.filters = nil
		m.applyFilters()
		m.statusMsg = "Filters applied"
		return m, nil
	case FilterFormAborted:
		m.filters = nil
		return m, nil
	}
	m.filters = form
	return m, cmd
}

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	if m.filters != nil {
		content := ViewHeader("Edit Filters", m.layout.InnerWidth)
		content += m.filters.View()
		return BuildTwoBoxView(content, "Enter: next field | Esc: cancel", m.layout)
	}

	content := ViewHeaderWithSubtitle("FilmInsight", m.specLine(), m.layout.InnerWidth)
	content += RenderTabBar(tabNames, m.currentTab)
	content += "\n"
	content += StatsStyle.Render(m.statsLine())
	content += "\n\n"

	if len(m.filtered) == 0 {
		content += RenderDim("No movies match the current filters. Press f to adjust them or r to reset.")
	} else {
		if m.currentTab == tabMovies && (m.searching || m.searchQuery != "") {
			content += m.search.View()
			content += "\n"
		}
		content += RenderTableWithSelection(m.tables[m.currentTab], m.layout)
	}

	if m.statusMsg != "" {
		content += "\n" + AccentStyle.Render(m.statusMsg)
	}

	return BuildTwoBoxView(content, m.helpText(), m.layout)
}

// specLine describes the active filter spec in one line.
func (m DashboardModel) specLine() string {
	genres := "all genres"
	if len(m.spec.Genres) > 0 {
		genres = joinLimited(m.spec.Genres, 4)
	}
	return fmt.Sprintf("Years %d–%d · Rating %.1f–%.1f · Runtime %.0f–%.0f min · %s",
		m.spec.YearMin, m.spec.YearMax,
		m.spec.RatingMin, m.spec.RatingMax,
		m.spec.RuntimeMin, m.spec.RuntimeMax,
		genres)
}

// statsLine is the always-visible summary of the filtered subset.
func (m DashboardModel) statsLine() string {
	s := m.summary
	line := fmt.Sprintf("%s movies", humanize.Comma(int64(s.TotalMovies)))
	if s.MeanRating != nil {
		line += fmt.Sprintf(" · avg rating %.2f", *s.MeanRating)
	}
	if s.MeanRuntime != nil {
		line += fmt.Sprintf(" · avg runtime %.0f min", *s.MeanRuntime)
	}
	line += fmt.Sprintf(" · total revenue %s", formatMoney(s.TotalRevenue))
	if m.currentTab == tabGenres && s.TotalMovies > 0 {
		line += fmt.Sprintf(" · top genre %s", s.TopGenre)
	}
	if m.currentTab == tabOverview {
		for _, c := range dataset.RatingCategoryCounts(m.filtered) {
			line += fmt.Sprintf(" · %s %s", c.Category, humanize.Comma(int64(c.Count)))
		}
	}
	if m.currentTab == tabFinancial {
		metrics := dataset.Success(m.filtered)
		line += fmt.Sprintf(" · %.0f%% profitable · mean ROI %.0f%%",
			metrics.ProfitabilityRate, metrics.MeanROI)
	}
	return line
}

func (m DashboardModel) helpText() string {
	if m.searching {
		return "Enter: apply search | Esc: cancel"
	}
	help := "Tab/←/→: switch tab | ↑/↓: scroll | f: filters | r: reset | e: export | q: quit"
	switch m.currentTab {
	case tabMovies:
		help = "/: search | " + help
	case tabTop:
		help = "m: rank by " + rankMetrics[(m.rankMetric+1)%len(rankMetrics)] + " | " + help
	}
	return help
}

// RunDashboard launches the dashboard over a loaded dataset.
func RunDashboard(movies []models.Movie) error {
	p := tea.NewProgram(NewDashboard(movies), tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// =============================================================================
// Cell formatting
// =============================================================================

func formatYear(year *int) string {
	if year == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *year)
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", *rating)
}

func formatRuntime(minutes *float64) string {
	if minutes == nil {
		return "—"
	}
	return fmt.Sprintf("%.0f min", *minutes)
}

// formatMoney compacts dollar amounts the way the summary cards do:
// $1.2B / $340.0M / $512K, falling back to comma grouping below that.
func formatMoney(amount int64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", float64(amount)/1e9)
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", float64(amount)/1e6)
	case abs >= 1_000:
		return fmt.Sprintf("$%dK", amount/1000)
	default:
		return "$" + humanize.Comma(amount)
	}
}

func joinLimited(items []string, max int) string {
	if len(items) <= max {
		return joinComma(items)
	}
	return fmt.Sprintf("%s +%d more", joinComma(items[:max]), len(items)-max)
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
