package models

import "time"

// MovieRecord represents one typed row from the movies source.
// Pointer fields are nil when the source value was missing or unparsable.
type MovieRecord struct {
	ID             int64
	Title          string
	ReleaseDate    *time.Time
	RuntimeMinutes *float64
	VoteAverage    *float64 // 0-10 scale, nil when absent
	VoteCount      int64
	Revenue        int64 // 0 means unknown by source convention
	Budget         int64 // 0 means unknown by source convention
	Popularity     float64
	Genres         []string
	Keywords       []string
	Overview       string
	Tagline        string
}

// CastMember is one billed actor from the credits source.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is one crew entry from the credits source.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// CreditRecord represents one typed row from the credits source.
type CreditRecord struct {
	MovieID int64
	Cast    []CastMember
	Crew    []CrewMember
}

// Movie is the unified record: movie fields joined with credits plus
// derived columns. The unified dataset is built once per load and is
// read-only afterwards; filtering only derives subsets.
type Movie struct {
	MovieRecord

	Cast []CastMember
	Crew []CrewMember

	// ReleaseYear is nil exactly when ReleaseDate is nil.
	ReleaseYear *int

	Profit       int64
	ROI          float64 // percent, 0 when budget is unknown
	SuccessScore *float64

	PrimaryGenre string
	GenreCount   int
	MainCast     []string
	Director     string

	RatingCategory  string
	RuntimeCategory string
	BudgetCategory  string
}

// FilterSpec holds the range and genre constraints for one query.
// An empty Genres slice means no genre constraint. Ranges are
// inclusive; records with an absent value for a ranged field never
// match that range.
type FilterSpec struct {
	YearMin, YearMax       int
	RatingMin, RatingMax   float64
	RuntimeMin, RuntimeMax float64
	Genres                 []string
}

// Summary holds dataset-level statistics for a (possibly filtered) set.
type Summary struct {
	TotalMovies   int
	MeanRating    *float64 // nil when no record has a rating
	MeanRuntime   *float64
	MeanVoteCount float64
	TotalRevenue  int64
	TotalBudget   int64
	YearMin       int // zero values when no record has a year
	YearMax       int
	TopGenre      string
}

// YearCount is one point of the movies-per-year trend.
type YearCount struct {
	Year  int
	Count int
}

// YearRating is one point of the mean-rating-per-year trend.
type YearRating struct {
	Year       int
	MeanRating float64
	Count      int
}

// GenreStat aggregates one genre across a record set.
type GenreStat struct {
	Genre      string
	Count      int
	MeanRating float64 // over records with a present rating
	Rated      int     // how many records contributed to MeanRating
}

// CategoryCount is one bucket of a categorical distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// FinancePoint is one budget-vs-revenue sample. Only records where
// both figures are known (non-zero) produce points.
type FinancePoint struct {
	Title   string
	Budget  int64
	Revenue int64
	Profit  int64
}

// DecadeStat is one row of the per-decade rollup.
type DecadeStat struct {
	Decade       int // e.g. 1990
	Count        int
	MeanRating   float64
	MeanRuntime  float64
	TotalRevenue int64
	TotalBudget  int64
}

// SuccessMetrics summarizes financial and rating outcomes for a set.
type SuccessMetrics struct {
	ProfitabilityRate float64 // % of known-finance movies with profit > 0
	MeanProfit        float64 // over known-finance movies
	MeanROI           float64 // percent
	HighRatedShare    float64 // % rated >= 7 of rated movies
	BlockbusterShare  float64 // % with budget >= 100M of all movies
}

// LoadInfo describes one cached dataset build.
type LoadInfo struct {
	MoviesPath  string
	CreditsPath string
	MovieRows   int
	CreditRows  int
	Unified     int
	LoadedAt    time.Time
}
