package db

// The movies table flattens the unified record. Nullable columns map
// to pointer fields on the model; list-valued columns are stored as
// JSON text. position preserves the movie-side input order so a
// cached dataset round-trips with identical ordering.

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id INTEGER PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT,
    release_date TEXT,
    release_year INTEGER,
    runtime REAL,
    vote_average REAL,
    vote_count INTEGER NOT NULL DEFAULT 0,
    revenue INTEGER NOT NULL DEFAULT 0,
    budget INTEGER NOT NULL DEFAULT 0,
    popularity REAL NOT NULL DEFAULT 0,
    genres_json TEXT,
    keywords_json TEXT,
    overview TEXT,
    tagline TEXT,
    cast_json TEXT,
    crew_json TEXT,
    profit INTEGER NOT NULL DEFAULT 0,
    roi REAL NOT NULL DEFAULT 0,
    success_score REAL,
    primary_genre TEXT,
    genre_count INTEGER NOT NULL DEFAULT 0,
    main_cast_json TEXT,
    director TEXT,
    rating_category TEXT,
    runtime_category TEXT,
    budget_category TEXT
);

CREATE INDEX IF NOT EXISTS idx_movies_year ON movies(release_year);
CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies(vote_average);
CREATE INDEX IF NOT EXISTS idx_movies_position ON movies(position);
`

const createLoadInfoTable = `
CREATE TABLE IF NOT EXISTS load_info (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    movies_path TEXT NOT NULL,
    credits_path TEXT NOT NULL,
    movie_rows INTEGER NOT NULL,
    credit_rows INTEGER NOT NULL,
    unified INTEGER NOT NULL,
    loaded_at TEXT NOT NULL
);
`

const insertMovie = `
INSERT INTO movies (
    id, position, title, release_date, release_year, runtime,
    vote_average, vote_count, revenue, budget, popularity,
    genres_json, keywords_json, overview, tagline, cast_json, crew_json,
    profit, roi, success_score, primary_genre, genre_count,
    main_cast_json, director, rating_category, runtime_category, budget_category
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const selectMovies = `
SELECT
    id, title, release_date, release_year, runtime,
    vote_average, vote_count, revenue, budget, popularity,
    genres_json, keywords_json, overview, tagline, cast_json, crew_json,
    profit, roi, success_score, primary_genre, genre_count,
    main_cast_json, director, rating_category, runtime_category, budget_category
FROM movies
ORDER BY position
`

const upsertLoadInfo = `
INSERT OR REPLACE INTO load_info (
    id, movies_path, credits_path, movie_rows, credit_rows, unified, loaded_at
) VALUES (1, ?, ?, ?, ?, ?, ?)
`

const selectLoadInfo = `
SELECT movies_path, credits_path, movie_rows, credit_rows, unified, loaded_at
FROM load_info WHERE id = 1
`

const selectMovieCount = `SELECT COUNT(*) FROM movies`

const selectYearSpan = `
SELECT COALESCE(MIN(release_year), 0), COALESCE(MAX(release_year), 0)
FROM movies WHERE release_year IS NOT NULL
`
