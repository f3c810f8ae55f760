package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadMovieRows(t *testing.T) {
	path := writeTempCSV(t, "movies.csv",
		"budget,genres,id,original_title,release_date,revenue,runtime,title,vote_average,vote_count\n"+
			`237000000,"[{""name"": ""Action""}]",19995,Avatar,2009-12-10,2787965087,162,Avatar,7.2,11800`+"\n"+
			"0,,not-a-number,Broken,,,,Broken Row,,\n"+
			"0,[],285,Pirates,2007-05-19,961000000,169,,7.1,4500\n")

	rows, err := LoadMovieRows(path)
	if err != nil {
		t.Fatalf("LoadMovieRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("LoadMovieRows() returned %d rows, want 2 (bad id skipped)", len(rows))
	}
	if rows[0].ID != "19995" || rows[0].Title != "Avatar" {
		t.Errorf("row 0 = %+v, want id 19995 titled Avatar", rows[0])
	}
	if rows[0].Genres != `[{"name": "Action"}]` {
		t.Errorf("row 0 genres cell = %q, want the raw structured text", rows[0].Genres)
	}
	// empty title falls back to original_title
	if rows[1].Title != "Pirates" {
		t.Errorf("row 1 title = %q, want original_title fallback Pirates", rows[1].Title)
	}
}

// TestLoadMovieRowsColumnOrder verifies the header drives column
// lookup, not position
func TestLoadMovieRowsColumnOrder(t *testing.T) {
	path := writeTempCSV(t, "movies.csv",
		"title,id,vote_average\nReordered,7,6.5\n")

	rows, err := LoadMovieRows(path)
	if err != nil {
		t.Fatalf("LoadMovieRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("LoadMovieRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].ID != "7" || rows[0].Title != "Reordered" || rows[0].VoteAverage != "6.5" {
		t.Errorf("row = %+v, want cells keyed by header name", rows[0])
	}
	if rows[0].Revenue != "" {
		t.Errorf("Revenue = %q, want empty for a column the source lacks", rows[0].Revenue)
	}
}

func TestLoadMovieRowsShortRow(t *testing.T) {
	path := writeTempCSV(t, "movies.csv",
		"id,title,runtime\n5,Short Row\n")

	rows, err := LoadMovieRows(path)
	if err != nil {
		t.Fatalf("LoadMovieRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("LoadMovieRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Runtime != "" {
		t.Errorf("Runtime = %q, want empty for a cell past the row's end", rows[0].Runtime)
	}
}

func TestLoadMovieRowsMissingFile(t *testing.T) {
	_, err := LoadMovieRows(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("LoadMovieRows() on a missing file returned nil error")
	}
}

func TestLoadMovieRowsNoIDColumn(t *testing.T) {
	path := writeTempCSV(t, "movies.csv", "title,runtime\nNo ID Here,90\n")

	_, err := LoadMovieRows(path)
	if err == nil {
		t.Fatal("LoadMovieRows() without an id column returned nil error")
	}
}

func TestLoadCreditRows(t *testing.T) {
	path := writeTempCSV(t, "credits.csv",
		"movie_id,title,cast,crew\n"+
			`19995,Avatar,"[{""name"": ""Sam Worthington""}]","[{""name"": ""James Cameron"", ""job"": ""Director""}]"`+"\n"+
			"bad-id,Broken,,\n")

	rows, err := LoadCreditRows(path)
	if err != nil {
		t.Fatalf("LoadCreditRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("LoadCreditRows() returned %d rows, want 1 (bad movie_id skipped)", len(rows))
	}
	if rows[0].MovieID != "19995" {
		t.Errorf("MovieID = %q, want 19995", rows[0].MovieID)
	}
}

func TestLoadCreditRowsNoIDColumn(t *testing.T) {
	path := writeTempCSV(t, "credits.csv", "title,cast\nNo ID,\n")

	_, err := LoadCreditRows(path)
	if err == nil {
		t.Fatal("LoadCreditRows() without a movie_id column returned nil error")
	}
}

// TestBuild runs the whole pipeline against small fixtures
func TestBuild(t *testing.T) {
	dir := t.TempDir()
	moviesPath := filepath.Join(dir, "movies.csv")
	creditsPath := filepath.Join(dir, "credits.csv")

	moviesCSV := "id,title,release_date,runtime,vote_average,vote_count,revenue,budget,genres\n" +
		`1,A,2010-05-01,120,7.5,500,1000,400,"[{""name"": ""Action""}]"` + "\n" +
		"2,B,,95,6.0,200,0,0,\n" +
		"3,C,2015-03-02,110,7.0,300,0,0,\n" // no matching credit
	creditsCSV := "movie_id,cast,crew\n" +
		`1,"[{""name"": ""Lead""}]","[{""name"": ""Dir"", ""job"": ""Director""}]"` + "\n" +
		"2,,\n"

	if err := os.WriteFile(moviesPath, []byte(moviesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(creditsPath, []byte(creditsCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	movies, info, err := Build(moviesPath, creditsPath, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if info.MovieRows != 3 || info.CreditRows != 2 {
		t.Errorf("info rows = %d/%d, want 3/2", info.MovieRows, info.CreditRows)
	}
	if info.Unified != 2 || len(movies) != 2 {
		t.Fatalf("unified set has %d records, want 2 (movie without credit dropped)", len(movies))
	}

	// movie-side ordering survives the join
	if movies[0].ID != 1 || movies[1].ID != 2 {
		t.Errorf("unified ids = [%d %d], want [1 2]", movies[0].ID, movies[1].ID)
	}
	if movies[0].Director != "Dir" {
		t.Errorf("Director = %q, want Dir", movies[0].Director)
	}
	// empty release_date stays absent through the whole pipeline
	if movies[1].ReleaseYear != nil {
		t.Errorf("ReleaseYear for empty date = %d, want absent", *movies[1].ReleaseYear)
	}
}
