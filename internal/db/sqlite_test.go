package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func sampleMovies() []models.Movie {
	date := time.Date(2009, 12, 10, 0, 0, 0, 0, time.UTC)
	year := 2009
	runtime := 162.0
	rating := 7.2
	score := rating*0.7 + 1.5

	full := models.Movie{
		MovieRecord: models.MovieRecord{
			ID:             19995,
			Title:          "Avatar",
			ReleaseDate:    &date,
			RuntimeMinutes: &runtime,
			VoteAverage:    &rating,
			VoteCount:      11800,
			Revenue:        2787965087,
			Budget:         237000000,
			Popularity:     150.43,
			Genres:         []string{"Action", "Adventure"},
			Keywords:       []string{"space"},
			Overview:       "A marine on an alien moon.",
		},
		Cast:         []models.CastMember{{Name: "Sam Worthington", Character: "Jake Sully", Order: 0}},
		Crew:         []models.CrewMember{{Name: "James Cameron", Job: "Director", Department: "Directing"}},
		ReleaseYear:  &year,
		Profit:       2550965087,
		ROI:          1076.35,
		SuccessScore: &score,
		PrimaryGenre: "Action",
		GenreCount:   2,
		MainCast:     []string{"Sam Worthington"},
		Director:     "James Cameron",

		RatingCategory:  "Good",
		RuntimeCategory: "Long",
		BudgetCategory:  "Blockbuster",
	}

	sparse := models.Movie{
		MovieRecord: models.MovieRecord{
			ID:    7,
			Title: "Obscure",
		},
		PrimaryGenre: "Unknown",
		Director:     "Unknown",
	}

	return []models.Movie{full, sparse}
}

// TestDatasetRoundTrip verifies a cached dataset reads back with the
// same order, values, and absence
func TestDatasetRoundTrip(t *testing.T) {
	database := openTestDB(t)

	movies := sampleMovies()
	info := models.LoadInfo{
		MoviesPath:  "movies.csv",
		CreditsPath: "credits.csv",
		MovieRows:   3,
		CreditRows:  2,
		Unified:     2,
		LoadedAt:    time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	if err := database.ReplaceDataset(movies, info); err != nil {
		t.Fatalf("ReplaceDataset() error = %v", err)
	}

	got, err := database.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadDataset() returned %d movies, want 2", len(got))
	}

	// insertion order, not id order
	if got[0].ID != 19995 || got[1].ID != 7 {
		t.Errorf("order = [%d %d], want [19995 7]", got[0].ID, got[1].ID)
	}

	full := got[0]
	if full.Title != "Avatar" || full.Revenue != 2787965087 {
		t.Errorf("full record = %+v, want Avatar with original revenue", full.MovieRecord)
	}
	if full.ReleaseYear == nil || *full.ReleaseYear != 2009 {
		t.Errorf("ReleaseYear = %v, want 2009", full.ReleaseYear)
	}
	if full.ReleaseDate == nil || full.ReleaseDate.Format("2006-01-02") != "2009-12-10" {
		t.Errorf("ReleaseDate = %v, want 2009-12-10", full.ReleaseDate)
	}
	if full.VoteAverage == nil || *full.VoteAverage != 7.2 {
		t.Errorf("VoteAverage = %v, want 7.2", full.VoteAverage)
	}
	if len(full.Genres) != 2 || full.Genres[0] != "Action" {
		t.Errorf("Genres = %v, want [Action Adventure]", full.Genres)
	}
	if len(full.Cast) != 1 || full.Cast[0].Character != "Jake Sully" {
		t.Errorf("Cast = %+v, want Jake Sully preserved", full.Cast)
	}
	if len(full.Crew) != 1 || full.Crew[0].Job != "Director" {
		t.Errorf("Crew = %+v, want the Director entry preserved", full.Crew)
	}
	if full.Director != "James Cameron" || full.BudgetCategory != "Blockbuster" {
		t.Errorf("derived columns lost: director=%q budget=%q", full.Director, full.BudgetCategory)
	}

	sparse := got[1]
	if sparse.ReleaseYear != nil || sparse.VoteAverage != nil || sparse.RuntimeMinutes != nil {
		t.Errorf("sparse record grew values: %+v", sparse)
	}
	if sparse.SuccessScore != nil {
		t.Errorf("SuccessScore = %v, want nil after round trip", *sparse.SuccessScore)
	}
	if sparse.Genres != nil || sparse.Cast != nil {
		t.Errorf("sparse lists = %v/%v, want nil after round trip", sparse.Genres, sparse.Cast)
	}
}

func TestHasDataset(t *testing.T) {
	database := openTestDB(t)

	has, err := database.HasDataset()
	if err != nil {
		t.Fatalf("HasDataset() error = %v", err)
	}
	if has {
		t.Error("HasDataset() = true on a fresh cache")
	}

	if err := database.ReplaceDataset(sampleMovies(), models.LoadInfo{LoadedAt: time.Now()}); err != nil {
		t.Fatalf("ReplaceDataset() error = %v", err)
	}

	has, err = database.HasDataset()
	if err != nil {
		t.Fatalf("HasDataset() error = %v", err)
	}
	if !has {
		t.Error("HasDataset() = false after caching a dataset")
	}
}

// TestReplaceDatasetSwaps verifies a refresh replaces rather than
// appends
func TestReplaceDatasetSwaps(t *testing.T) {
	database := openTestDB(t)

	if err := database.ReplaceDataset(sampleMovies(), models.LoadInfo{LoadedAt: time.Now()}); err != nil {
		t.Fatalf("first ReplaceDataset() error = %v", err)
	}

	replacement := []models.Movie{{
		MovieRecord: models.MovieRecord{ID: 99, Title: "Only One"},
	}}
	if err := database.ReplaceDataset(replacement, models.LoadInfo{LoadedAt: time.Now()}); err != nil {
		t.Fatalf("second ReplaceDataset() error = %v", err)
	}

	got, err := database.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 99 {
		t.Errorf("after refresh got %d movies, want just id 99", len(got))
	}
}

func TestGetLoadInfo(t *testing.T) {
	database := openTestDB(t)

	info, err := database.GetLoadInfo()
	if err != nil {
		t.Fatalf("GetLoadInfo() error = %v", err)
	}
	if info != nil {
		t.Errorf("GetLoadInfo() = %+v on a fresh cache, want nil", info)
	}

	loadedAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	want := models.LoadInfo{
		MoviesPath:  "m.csv",
		CreditsPath: "c.csv",
		MovieRows:   4803,
		CreditRows:  4803,
		Unified:     4800,
		LoadedAt:    loadedAt,
	}
	if err := database.ReplaceDataset(nil, want); err != nil {
		t.Fatalf("ReplaceDataset() error = %v", err)
	}

	info, err = database.GetLoadInfo()
	if err != nil {
		t.Fatalf("GetLoadInfo() error = %v", err)
	}
	if info == nil {
		t.Fatal("GetLoadInfo() = nil after caching")
	}
	if info.MoviesPath != "m.csv" || info.Unified != 4800 {
		t.Errorf("load info = %+v, want %+v", *info, want)
	}
	if !info.LoadedAt.Equal(loadedAt) {
		t.Errorf("LoadedAt = %v, want %v", info.LoadedAt, loadedAt)
	}
}

func TestYearSpan(t *testing.T) {
	database := openTestDB(t)

	min, max, err := database.YearSpan()
	if err != nil {
		t.Fatalf("YearSpan() error = %v", err)
	}
	if min != 0 || max != 0 {
		t.Errorf("YearSpan() on empty cache = %d..%d, want 0..0", min, max)
	}

	y1, y2 := 1977, 2015
	movies := []models.Movie{
		{MovieRecord: models.MovieRecord{ID: 1}, ReleaseYear: &y2},
		{MovieRecord: models.MovieRecord{ID: 2}, ReleaseYear: &y1},
		{MovieRecord: models.MovieRecord{ID: 3}}, // no year
	}
	if err := database.ReplaceDataset(movies, models.LoadInfo{LoadedAt: time.Now()}); err != nil {
		t.Fatalf("ReplaceDataset() error = %v", err)
	}

	min, max, err = database.YearSpan()
	if err != nil {
		t.Fatalf("YearSpan() error = %v", err)
	}
	if min != 1977 || max != 2015 {
		t.Errorf("YearSpan() = %d..%d, want 1977..2015", min, max)
	}
}
