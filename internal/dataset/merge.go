package dataset

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

// Merge inner-joins movie records with credit records on the movie
// id. Movies without credits, and credits without movies, are dropped
// rather than padded. Output order follows the movie-side input, so
// merging identical inputs twice yields identical output.
func Merge(movies []models.MovieRecord, credits []models.CreditRecord) []models.Movie {
	byID := make(map[int64]models.CreditRecord, len(credits))
	for _, c := range credits {
		if _, seen := byID[c.MovieID]; seen {
			// first credit row wins
			continue
		}
		byID[c.MovieID] = c
	}

	unified := make([]models.Movie, 0, len(movies))
	seen := make(map[int64]bool, len(movies))
	for _, m := range movies {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		c, ok := byID[m.ID]
		if !ok {
			continue
		}
		unified = append(unified, unify(m, c))
	}
	return unified
}

// BuildOptions control the load pipeline.
type BuildOptions struct {
	// SkipScreen disables the plausibility screen on merged records.
	SkipScreen bool
}

// Build runs the full pipeline: load both sources, normalize, merge,
// screen. The unified slice is complete at return and must be treated
// as read-only by callers.
func Build(moviesPath, creditsPath string, opts BuildOptions) ([]models.Movie, models.LoadInfo, error) {
	info := models.LoadInfo{MoviesPath: moviesPath, CreditsPath: creditsPath}

	movieRows, err := LoadMovieRows(moviesPath)
	if err != nil {
		return nil, info, fmt.Errorf("failed to load movies: %w", err)
	}
	creditRows, err := LoadCreditRows(creditsPath)
	if err != nil {
		return nil, info, fmt.Errorf("failed to load credits: %w", err)
	}
	info.MovieRows = len(movieRows)
	info.CreditRows = len(creditRows)

	movies := make([]models.MovieRecord, len(movieRows))
	for i, raw := range movieRows {
		movies[i] = NormalizeMovie(raw)
	}
	credits := make([]models.CreditRecord, len(creditRows))
	for i, raw := range creditRows {
		credits[i] = NormalizeCredit(raw)
	}

	unified := Merge(movies, credits)
	if !opts.SkipScreen {
		before := len(unified)
		unified = Screen(unified)
		if dropped := before - len(unified); dropped > 0 {
			log.Debug("screened implausible records", "dropped", dropped)
		}
	}
	info.Unified = len(unified)

	return unified, info, nil
}
