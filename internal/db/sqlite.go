package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cheeku2609/FilmInsight4/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite cache of the cleaned unified dataset. The cache
// lets the app skip the CSV clean on every start; -refresh rebuilds it.
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createMoviesTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create movies schema: %w", err)
	}
	if _, err := conn.Exec(createLoadInfoTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create load_info schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// HasDataset reports whether a cached dataset is present.
func (db *DB) HasDataset() (bool, error) {
	var count int
	if err := db.conn.QueryRow(selectMovieCount).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count cached movies: %w", err)
	}
	return count > 0, nil
}

// ReplaceDataset swaps the cached dataset for the given one inside a
// single transaction, recording the load info alongside it.
func (db *DB) ReplaceDataset(movies []models.Movie, info models.LoadInfo) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM movies`); err != nil {
		return fmt.Errorf("failed to clear cached movies: %w", err)
	}

	stmt, err := tx.Prepare(insertMovie)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, m := range movies {
		_, err := stmt.Exec(
			m.ID,
			i,
			m.Title,
			nullableDate(m.ReleaseDate),
			nullableInt(m.ReleaseYear),
			nullableFloat(m.RuntimeMinutes),
			nullableFloat(m.VoteAverage),
			m.VoteCount,
			m.Revenue,
			m.Budget,
			m.Popularity,
			marshalList(m.Genres),
			marshalList(m.Keywords),
			m.Overview,
			m.Tagline,
			marshalList(m.Cast),
			marshalList(m.Crew),
			m.Profit,
			m.ROI,
			nullableFloat(m.SuccessScore),
			m.PrimaryGenre,
			m.GenreCount,
			marshalList(m.MainCast),
			m.Director,
			m.RatingCategory,
			m.RuntimeCategory,
			m.BudgetCategory,
		)
		if err != nil {
			return fmt.Errorf("failed to insert movie %d: %w", m.ID, err)
		}
	}

	if _, err := tx.Exec(upsertLoadInfo,
		info.MoviesPath, info.CreditsPath,
		info.MovieRows, info.CreditRows, info.Unified,
		info.LoadedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to record load info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LoadDataset reads the cached dataset back in its original order.
func (db *DB) LoadDataset() ([]models.Movie, error) {
	rows, err := db.conn.Query(selectMovies)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var (
			m            models.Movie
			releaseDate  sql.NullString
			releaseYear  sql.NullInt64
			runtime      sql.NullFloat64
			voteAverage  sql.NullFloat64
			successScore sql.NullFloat64
			genresJSON   sql.NullString
			keywordsJSON sql.NullString
			castJSON     sql.NullString
			crewJSON     sql.NullString
			mainCastJSON sql.NullString
		)
		if err := rows.Scan(
			&m.ID, &m.Title, &releaseDate, &releaseYear, &runtime,
			&voteAverage, &m.VoteCount, &m.Revenue, &m.Budget, &m.Popularity,
			&genresJSON, &keywordsJSON, &m.Overview, &m.Tagline, &castJSON, &crewJSON,
			&m.Profit, &m.ROI, &successScore, &m.PrimaryGenre, &m.GenreCount,
			&mainCastJSON, &m.Director, &m.RatingCategory, &m.RuntimeCategory, &m.BudgetCategory,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if releaseDate.Valid {
			if t, err := time.Parse("2006-01-02", releaseDate.String); err == nil {
				m.ReleaseDate = &t
			}
		}
		if releaseYear.Valid {
			y := int(releaseYear.Int64)
			m.ReleaseYear = &y
		}
		if runtime.Valid {
			v := runtime.Float64
			m.RuntimeMinutes = &v
		}
		if voteAverage.Valid {
			v := voteAverage.Float64
			m.VoteAverage = &v
		}
		if successScore.Valid {
			v := successScore.Float64
			m.SuccessScore = &v
		}
		unmarshalList(genresJSON, &m.Genres)
		unmarshalList(keywordsJSON, &m.Keywords)
		unmarshalList(castJSON, &m.Cast)
		unmarshalList(crewJSON, &m.Crew)
		unmarshalList(mainCastJSON, &m.MainCast)

		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached movies: %w", err)
	}

	return movies, nil
}

// GetLoadInfo returns the recorded load info, or nil when the cache
// has never been populated.
func (db *DB) GetLoadInfo() (*models.LoadInfo, error) {
	var (
		info     models.LoadInfo
		loadedAt string
	)
	err := db.conn.QueryRow(selectLoadInfo).Scan(
		&info.MoviesPath, &info.CreditsPath,
		&info.MovieRows, &info.CreditRows, &info.Unified, &loadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get load info: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, loadedAt); err == nil {
		info.LoadedAt = t
	}
	return &info, nil
}

// YearSpan returns the min and max release year in the cache, 0,0
// when no cached record has a year.
func (db *DB) YearSpan() (int, int, error) {
	var min, max int
	if err := db.conn.QueryRow(selectYearSpan).Scan(&min, &max); err != nil {
		return 0, 0, fmt.Errorf("failed to get year span: %w", err)
	}
	return min, max, nil
}

// ListProjectFiles returns a list of .db files in the given directory
func ListProjectFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var projects []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".db" {
			projects = append(projects, name)
		}
	}
	return projects, nil
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// marshalList stores nil and empty slices as NULL so the round trip
// keeps nil slices nil.
func marshalList(v any) any {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" || string(data) == "[]" {
		return nil
	}
	return string(data)
}

func unmarshalList[T any](s sql.NullString, dst *T) {
	if !s.Valid || s.String == "" {
		return
	}
	// a corrupt cache cell degrades to an empty list, same as a
	// corrupt source cell
	_ = json.Unmarshal([]byte(s.String), dst)
}
