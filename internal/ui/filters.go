package ui

// filters.go wraps a huh form for editing the FilterSpec. The form
// edits text fields with validation and a genre multi-select; parsing
// back into a spec falls back to the previous value for any field
// left unparsable.

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

// FilterFormState reports where the embedded form is in its lifecycle.
type FilterFormState int

const (
	FilterFormEditing FilterFormState = iota
	FilterFormCompleted
	FilterFormAborted
)

// FilterForm is an embeddable filter editor.
type FilterForm struct {
	form *huh.Form

	yearMin, yearMax       string
	ratingMin, ratingMax   string
	runtimeMin, runtimeMax string
	genres                 []string
}

// NewFilterForm builds the form pre-filled from the current spec.
func NewFilterForm(spec models.FilterSpec, allGenres []string) *FilterForm {
	f := &FilterForm{
		yearMin:    strconv.Itoa(spec.YearMin),
		yearMax:    strconv.Itoa(spec.YearMax),
		ratingMin:  formatFloatField(spec.RatingMin),
		ratingMax:  formatFloatField(spec.RatingMax),
		runtimeMin: formatFloatField(spec.RuntimeMin),
		runtimeMax: formatFloatField(spec.RuntimeMax),
		genres:     append([]string(nil), spec.Genres...),
	}

	genreOptions := make([]huh.Option[string], len(allGenres))
	for i, g := range allGenres {
		genreOptions[i] = huh.NewOption(g, g).Selected(contains(f.genres, g))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Year from").
				Value(&f.yearMin).
				Validate(validateInt),
			huh.NewInput().
				Title("Year to").
				Value(&f.yearMax).
				Validate(validateInt),
			huh.NewInput().
				Title("Rating from (0-10)").
				Value(&f.ratingMin).
				Validate(validateFloat),
			huh.NewInput().
				Title("Rating to (0-10)").
				Value(&f.ratingMax).
				Validate(validateFloat),
			huh.NewInput().
				Title("Runtime from (minutes)").
				Value(&f.runtimeMin).
				Validate(validateFloat),
			huh.NewInput().
				Title("Runtime to (minutes)").
				Value(&f.runtimeMax).
				Validate(validateFloat),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Genres (none selected = all)").
				Options(genreOptions...).
				Value(&f.genres),
		),
	).WithTheme(NewAppTheme()).WithShowHelp(false)

	return f
}

func (f *FilterForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *FilterForm) Update(msg tea.Msg) (*FilterForm, tea.Cmd) {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return f, cmd
}

func (f *FilterForm) View() string {
	return f.form.View()
}

// State maps the huh form state onto the editor lifecycle.
func (f *FilterForm) State() FilterFormState {
	switch f.form.State {
	case huh.StateCompleted:
		return FilterFormCompleted
	case huh.StateAborted:
		return FilterFormAborted
	default:
		return FilterFormEditing
	}
}

// Spec parses the edited values into a FilterSpec. Fields that fail
// to parse keep their previous value; validation makes that rare.
func (f *FilterForm) Spec(prev models.FilterSpec) models.FilterSpec {
	spec := models.FilterSpec{
		YearMin:    parseIntField(f.yearMin, prev.YearMin),
		YearMax:    parseIntField(f.yearMax, prev.YearMax),
		RatingMin:  parseFloatField(f.ratingMin, prev.RatingMin),
		RatingMax:  parseFloatField(f.ratingMax, prev.RatingMax),
		RuntimeMin: parseFloatField(f.runtimeMin, prev.RuntimeMin),
		RuntimeMax: parseFloatField(f.runtimeMax, prev.RuntimeMax),
		Genres:     append([]string(nil), f.genres...),
	}

	// swapped bounds are a typo, not a request for an empty set
	if spec.YearMin > spec.YearMax {
		spec.YearMin, spec.YearMax = spec.YearMax, spec.YearMin
	}
	if spec.RatingMin > spec.RatingMax {
		spec.RatingMin, spec.RatingMax = spec.RatingMax, spec.RatingMin
	}
	if spec.RuntimeMin > spec.RuntimeMax {
		spec.RuntimeMin, spec.RuntimeMax = spec.RuntimeMax, spec.RuntimeMin
	}

	return spec
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func parseIntField(s string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	return fallback
}

func parseFloatField(s string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}
	return fallback
}

func formatFloatField(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
