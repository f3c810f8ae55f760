package dataset

import (
	"testing"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

// TestFilterScenario walks the unified record from one fully populated
// movie through matching and non-matching constraints
func TestFilterScenario(t *testing.T) {
	m := NormalizeMovie(RawMovieRow{
		ID:          "1",
		Title:       "A",
		ReleaseDate: "2010-05-01",
		VoteAverage: "7.5",
		Runtime:     "120",
		Genres:      `[{"name": "Action"}]`,
	})
	c := NormalizeCredit(RawCreditRow{MovieID: "1"})
	unified := Merge([]models.MovieRecord{m}, []models.CreditRecord{c})
	if len(unified) != 1 {
		t.Fatalf("unified set has %d records, want 1", len(unified))
	}
	rec := unified[0]

	if rec.ReleaseYear == nil || *rec.ReleaseYear != 2010 {
		t.Errorf("ReleaseYear = %v, want 2010", rec.ReleaseYear)
	}
	if len(rec.Genres) != 1 || rec.Genres[0] != "Action" {
		t.Errorf("Genres = %v, want [Action]", rec.Genres)
	}

	matching := models.FilterSpec{
		YearMin: 2005, YearMax: 2015,
		RatingMin: 7, RatingMax: 8,
		RuntimeMin: 100, RuntimeMax: 150,
		Genres: []string{"Action"},
	}
	if got := Filter(unified, matching); len(got) != 1 {
		t.Errorf("Filter with matching spec retained %d records, want 1", len(got))
	}

	wrongGenre := matching
	wrongGenre.Genres = []string{"Comedy"}
	if got := Filter(unified, wrongGenre); len(got) != 0 {
		t.Errorf("Filter with genre Comedy retained %d records, want 0", len(got))
	}
}

// TestFilterAbsentExcludes verifies a record with an absent ranged
// value never matches, even against an unbounded range
func TestFilterAbsentExcludes(t *testing.T) {
	noYear := testMovie(2, nil, floatPtr(100), floatPtr(7))
	spec := DefaultSpec() // year 0..9999

	if Matches(noYear, spec) {
		t.Error("record with absent year matched an unbounded year range")
	}

	noRating := testMovie(3, intPtr(2000), floatPtr(100), nil)
	if Matches(noRating, spec) {
		t.Error("record with absent rating matched an unbounded rating range")
	}

	noRuntime := testMovie(4, intPtr(2000), nil, floatPtr(7))
	if Matches(noRuntime, spec) {
		t.Error("record with absent runtime matched an unbounded runtime range")
	}
}

func TestFilterEmptyGenreSet(t *testing.T) {
	movies := []models.Movie{
		testMovie(1, intPtr(2000), floatPtr(100), floatPtr(7), "Action"),
		testMovie(2, intPtr(2001), floatPtr(110), floatPtr(6), "Comedy"),
		testMovie(3, intPtr(2002), floatPtr(120), floatPtr(8)), // no genres at all
	}

	got := Filter(movies, DefaultSpec())
	if len(got) != 3 {
		t.Errorf("Filter with empty genre set retained %d records, want all 3", len(got))
	}
}

func TestFilterGenreAnyOf(t *testing.T) {
	m := testMovie(1, intPtr(2000), floatPtr(100), floatPtr(7), "Drama", "Thriller")

	spec := DefaultSpec()
	spec.Genres = []string{"Comedy", "Thriller"}
	if !Matches(m, spec) {
		t.Error("record sharing one selected genre did not match")
	}

	spec.Genres = []string{"Comedy", "Romance"}
	if Matches(m, spec) {
		t.Error("record sharing no selected genre matched")
	}
}

func TestFilterInclusiveBounds(t *testing.T) {
	m := testMovie(1, intPtr(2010), floatPtr(120), floatPtr(7.5))

	spec := models.FilterSpec{
		YearMin: 2010, YearMax: 2010,
		RatingMin: 7.5, RatingMax: 7.5,
		RuntimeMin: 120, RuntimeMax: 120,
	}
	if !Matches(m, spec) {
		t.Error("record exactly on all bounds did not match inclusive ranges")
	}
}

// TestFilterIdempotent checks filter(filter(set, spec), spec) ==
// filter(set, spec)
func TestFilterIdempotent(t *testing.T) {
	movies := []models.Movie{
		testMovie(1, intPtr(1995), floatPtr(90), floatPtr(6), "Action"),
		testMovie(2, nil, floatPtr(100), floatPtr(7), "Drama"),
		testMovie(3, intPtr(2005), floatPtr(130), floatPtr(8), "Drama"),
		testMovie(4, intPtr(2015), floatPtr(200), floatPtr(5), "Action", "Drama"),
	}
	spec := models.FilterSpec{
		YearMin: 1990, YearMax: 2020,
		RatingMin: 5, RatingMax: 9,
		RuntimeMin: 80, RuntimeMax: 150,
		Genres: []string{"Drama"},
	}

	once := Filter(movies, spec)
	twice := Filter(once, spec)

	if len(once) != len(twice) {
		t.Fatalf("second filter pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second filter pass changed record %d: %d vs %d", i, once[i].ID, twice[i].ID)
		}
	}
}

// TestFilterPreservesOrder verifies output order and input immutability
func TestFilterPreservesOrder(t *testing.T) {
	movies := []models.Movie{
		testMovie(9, intPtr(2001), floatPtr(100), floatPtr(7)),
		testMovie(3, intPtr(2002), floatPtr(100), floatPtr(2)), // filtered out
		testMovie(7, intPtr(2003), floatPtr(100), floatPtr(8)),
		testMovie(1, intPtr(2004), floatPtr(100), floatPtr(6)),
	}
	spec := DefaultSpec()
	spec.RatingMin = 5

	got := Filter(movies, spec)

	want := []int64{9, 7, 1}
	if len(got) != len(want) {
		t.Fatalf("Filter retained %d records, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("Filter[%d].ID = %d, want %d", i, got[i].ID, w)
		}
	}

	// the input slice must be untouched
	inputIDs := []int64{9, 3, 7, 1}
	for i, w := range inputIDs {
		if movies[i].ID != w {
			t.Errorf("input[%d].ID = %d after Filter, want %d", i, movies[i].ID, w)
		}
	}
}
