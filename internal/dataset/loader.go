package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// loader.go reads the two tabular sources into raw row sets.
// Cell-level problems are tolerated here (bad numbers become absent
// later, in normalize.go); file-level problems are fatal and returned
// to the caller so the app can stop before anything renders.

// RawMovieRow holds the untyped cells of one movies-source row,
// keyed by the columns the pipeline cares about. Columns missing from
// the source are empty strings.
type RawMovieRow struct {
	ID          string
	Title       string
	ReleaseDate string
	Runtime     string
	VoteAverage string
	VoteCount   string
	Revenue     string
	Budget      string
	Popularity  string
	Genres      string
	Keywords    string
	Overview    string
	Tagline     string
}

// RawCreditRow holds the untyped cells of one credits-source row.
type RawCreditRow struct {
	MovieID string
	Cast    string
	Crew    string
}

// LoadMovieRows reads the movies CSV. The header row maps column
// names to positions, so source column order does not matter. Rows
// with an unparsable id are skipped with a warning; an unreadable or
// headerless file is a fatal error.
func LoadMovieRows(path string) ([]RawMovieRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open movies source: %w", err)
	}
	defer f.Close()

	r := newCSVReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read movies header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols["id"]; !ok {
		return nil, fmt.Errorf("movies source %s has no id column", path)
	}

	var rows []RawMovieRow
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read movies row %d: %w", line, err)
		}

		cell := cellGetter(rec, cols)
		if _, err := strconv.ParseInt(strings.TrimSpace(cell("id")), 10, 64); err != nil {
			log.Warn("skipping movies row with bad id", "line", line, "id", cell("id"))
			continue
		}

		rows = append(rows, RawMovieRow{
			ID:          cell("id"),
			Title:       firstNonEmpty(cell("title"), cell("original_title")),
			ReleaseDate: cell("release_date"),
			Runtime:     cell("runtime"),
			VoteAverage: cell("vote_average"),
			VoteCount:   cell("vote_count"),
			Revenue:     cell("revenue"),
			Budget:      cell("budget"),
			Popularity:  cell("popularity"),
			Genres:      cell("genres"),
			Keywords:    cell("keywords"),
			Overview:    cell("overview"),
			Tagline:     cell("tagline"),
		})
	}

	return rows, nil
}

// LoadCreditRows reads the credits CSV. Same contract as
// LoadMovieRows: row-level id problems are skipped, file-level
// problems are fatal.
func LoadCreditRows(path string) ([]RawCreditRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credits source: %w", err)
	}
	defer f.Close()

	r := newCSVReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read credits header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols["movie_id"]; !ok {
		return nil, fmt.Errorf("credits source %s has no movie_id column", path)
	}

	var rows []RawCreditRow
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read credits row %d: %w", line, err)
		}

		cell := cellGetter(rec, cols)
		if _, err := strconv.ParseInt(strings.TrimSpace(cell("movie_id")), 10, 64); err != nil {
			log.Warn("skipping credits row with bad movie_id", "line", line, "movie_id", cell("movie_id"))
			continue
		}

		rows = append(rows, RawCreditRow{
			MovieID: cell("movie_id"),
			Cast:    cell("cast"),
			Crew:    cell("crew"),
		})
	}

	return rows, nil
}

func newCSVReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are a cell problem, not a file problem
	r.LazyQuotes = true
	return r
}

// indexColumns maps lowercased header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// cellGetter returns a lookup for one record that tolerates both
// missing columns and short rows.
func cellGetter(rec []string, cols map[string]int) func(string) string {
	return func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
