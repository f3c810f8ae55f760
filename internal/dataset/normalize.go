package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

// normalize.go converts raw cells into typed records. Every failure
// here resolves to an absent or default value for that one field;
// nothing in this file returns an error.

// releaseDateLayouts are tried in order. The source is normally
// YYYY-MM-DD but exports with timestamps, US dates, or bare years
// show up in the wild.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006",
}

// NormalizeMovie types one raw movies row. The id is already
// validated by the loader.
func NormalizeMovie(raw RawMovieRow) models.MovieRecord {
	id, _ := strconv.ParseInt(strings.TrimSpace(raw.ID), 10, 64)

	return models.MovieRecord{
		ID:             id,
		Title:          strings.TrimSpace(raw.Title),
		ReleaseDate:    parseDate(raw.ReleaseDate),
		RuntimeMinutes: parseFloatPtr(raw.Runtime),
		VoteAverage:    parseFloatPtr(raw.VoteAverage),
		VoteCount:      parseIntOrZero(raw.VoteCount),
		Revenue:        parseIntOrZero(raw.Revenue),
		Budget:         parseIntOrZero(raw.Budget),
		Popularity:     parseFloatOrZero(raw.Popularity),
		Genres:         decodeNameList(raw.Genres),
		Keywords:       decodeNameList(raw.Keywords),
		Overview:       strings.TrimSpace(raw.Overview),
		Tagline:        strings.TrimSpace(raw.Tagline),
	}
}

// NormalizeCredit types one raw credits row.
func NormalizeCredit(raw RawCreditRow) models.CreditRecord {
	id, _ := strconv.ParseInt(strings.TrimSpace(raw.MovieID), 10, 64)

	cr := models.CreditRecord{MovieID: id}
	decodeStructured(raw.Cast, &cr.Cast)
	decodeStructured(raw.Crew, &cr.Crew)
	return cr
}

// parseDate applies the tolerant layouts. Unparsable dates are
// absent, never a fabricated epoch.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseFloatPtr is for rating-like fields where zero would bias
// aggregates: failure means absent, not 0.
func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseIntOrZero is for count/sum fields where 0 is the documented
// default. Fractional cells are truncated rather than rejected.
func parseIntOrZero(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int64(f)
	}
	return 0
}

func parseFloatOrZero(s string) float64 {
	if p := parseFloatPtr(s); p != nil {
		return *p
	}
	return 0
}

// namedObject is the minimal shape shared by genre and keyword
// entries: a list of objects each carrying at least "name".
type namedObject struct {
	Name string `json:"name"`
}

// decodeNameList extracts the name field from a structured-text cell.
// Any shape mismatch yields an empty list; parse failures never leave
// this package.
func decodeNameList(s string) []string {
	var objs []namedObject
	if !decodeStructured(s, &objs) {
		return nil
	}
	names := make([]string, 0, len(objs))
	for _, o := range objs {
		if o.Name != "" {
			names = append(names, o.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// decodeStructured decodes a JSON-encoded cell into dst. Cells that
// carry Python-repr quoting (single quotes) get one repair pass
// before giving up. Returns false when the cell could not be decoded;
// dst is left untouched in that case.
func decodeStructured(s string, dst any) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return false
	}
	if err := json.Unmarshal([]byte(s), dst); err == nil {
		return true
	}
	repaired := repairQuotes(s)
	if repaired == s {
		return false
	}
	return json.Unmarshal([]byte(repaired), dst) == nil
}

// repairQuotes converts single-quoted pseudo-JSON to double-quoted
// JSON. Apostrophes inside values are escaped with a backslash in the
// source convention, so a bare single quote is always a delimiter.
func repairQuotes(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '\'':
			b.WriteByte('\'')
			i++
		case c == '\'':
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unify joins one movie record with its credits and derives the
// analysis columns.
func unify(m models.MovieRecord, c models.CreditRecord) models.Movie {
	movie := models.Movie{
		MovieRecord: m,
		Cast:        c.Cast,
		Crew:        c.Crew,
	}

	if m.ReleaseDate != nil {
		year := m.ReleaseDate.Year()
		movie.ReleaseYear = &year
	}

	movie.Profit = m.Revenue - m.Budget
	if m.Budget > 0 {
		movie.ROI = float64(movie.Profit) / float64(m.Budget) * 100
	}
	if m.VoteAverage != nil {
		score := *m.VoteAverage*0.7 + math.Log1p(m.Popularity)*0.3
		movie.SuccessScore = &score
	}

	movie.GenreCount = len(m.Genres)
	movie.PrimaryGenre = "Unknown"
	if len(m.Genres) > 0 {
		movie.PrimaryGenre = m.Genres[0]
	}

	movie.MainCast = mainCast(c.Cast, 5)
	movie.Director = director(c.Crew)

	movie.RatingCategory = ratingCategory(m.VoteAverage)
	movie.RuntimeCategory = runtimeCategory(m.RuntimeMinutes)
	movie.BudgetCategory = budgetCategory(m.Budget)

	return movie
}

func mainCast(cast []models.CastMember, n int) []string {
	if len(cast) == 0 {
		return nil
	}
	if len(cast) < n {
		n = len(cast)
	}
	names := make([]string, 0, n)
	for _, actor := range cast[:n] {
		names = append(names, actor.Name)
	}
	return names
}

func director(crew []models.CrewMember) string {
	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return "Unknown"
}

func ratingCategory(v *float64) string {
	if v == nil {
		return ""
	}
	switch {
	case *v <= 4:
		return "Poor"
	case *v <= 6:
		return "Average"
	case *v <= 8:
		return "Good"
	default:
		return "Excellent"
	}
}

func runtimeCategory(v *float64) string {
	if v == nil {
		return ""
	}
	switch {
	case *v <= 90:
		return "Short"
	case *v <= 120:
		return "Medium"
	case *v <= 180:
		return "Long"
	default:
		return "Epic"
	}
}

func budgetCategory(budget int64) string {
	if budget <= 0 {
		return ""
	}
	switch {
	case budget <= 1_000_000:
		return "Low"
	case budget <= 10_000_000:
		return "Medium"
	case budget <= 50_000_000:
		return "High"
	default:
		return "Blockbuster"
	}
}

// Screen drops records whose present values are out of plausible
// range: year before 1900 or in the future, runtime outside 10..500
// minutes, vote average outside 0..10. Absent values never cause a
// drop; a movie with an unknown date stays in the set.
func Screen(movies []models.Movie) []models.Movie {
	currentYear := time.Now().Year()
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if m.ReleaseYear != nil && (*m.ReleaseYear < 1900 || *m.ReleaseYear > currentYear) {
			continue
		}
		if m.RuntimeMinutes != nil && (*m.RuntimeMinutes < 10 || *m.RuntimeMinutes > 500) {
			continue
		}
		if m.VoteAverage != nil && (*m.VoteAverage < 0 || *m.VoteAverage > 10) {
			continue
		}
		out = append(out, m)
	}
	return out
}
