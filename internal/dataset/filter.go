package dataset

import "github.com/cheeku2609/FilmInsight4/internal/models"

// Filter returns the subset of movies matching spec, preserving the
// input's relative order. It is a pure function: the input slice is
// never mutated, and filtering an already-filtered set with the same
// spec changes nothing.
//
// A record with an absent value for a ranged field fails that range
// regardless of the bounds; a movie with an unknown year cannot
// satisfy a year constraint, even an unbounded one. The genre
// constraint passes when spec.Genres is empty or when any of the
// record's genres is selected.
func Filter(movies []models.Movie, spec models.FilterSpec) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if Matches(m, spec) {
			out = append(out, m)
		}
	}
	return out
}

// Matches reports whether a single movie satisfies the spec.
func Matches(m models.Movie, spec models.FilterSpec) bool {
	if m.ReleaseYear == nil || *m.ReleaseYear < spec.YearMin || *m.ReleaseYear > spec.YearMax {
		return false
	}
	if m.VoteAverage == nil || *m.VoteAverage < spec.RatingMin || *m.VoteAverage > spec.RatingMax {
		return false
	}
	if m.RuntimeMinutes == nil || *m.RuntimeMinutes < spec.RuntimeMin || *m.RuntimeMinutes > spec.RuntimeMax {
		return false
	}
	return matchesGenres(m.Genres, spec.Genres)
}

func matchesGenres(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, g := range have {
			if g == w {
				return true
			}
		}
	}
	return false
}

// DefaultSpec returns a spec wide enough to match every record that
// has all three ranged values present.
func DefaultSpec() models.FilterSpec {
	return models.FilterSpec{
		YearMin:    0,
		YearMax:    9999,
		RatingMin:  0,
		RatingMax:  10,
		RuntimeMin: 0,
		RuntimeMax: 10000,
	}
}
