package dataset

import (
	"sort"
	"strings"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

// stats.go derives chart-ready aggregates from a (usually filtered)
// record set. Every function tolerates an empty input and returns
// empty aggregates rather than failing; an empty filter result is a
// normal outcome.

// Summarize computes dataset-level statistics. Ratings and runtimes
// are averaged over records where the value is present; absent values
// are excluded, not treated as zero.
func Summarize(movies []models.Movie) models.Summary {
	s := models.Summary{TotalMovies: len(movies)}
	if len(movies) == 0 {
		return s
	}

	var ratingSum, runtimeSum float64
	var rated, timed int
	var voteSum float64
	yearSeen := false

	for _, m := range movies {
		if m.VoteAverage != nil {
			ratingSum += *m.VoteAverage
			rated++
		}
		if m.RuntimeMinutes != nil {
			runtimeSum += *m.RuntimeMinutes
			timed++
		}
		voteSum += float64(m.VoteCount)
		s.TotalRevenue += m.Revenue
		s.TotalBudget += m.Budget
		if m.ReleaseYear != nil {
			y := *m.ReleaseYear
			if !yearSeen || y < s.YearMin {
				s.YearMin = y
			}
			if !yearSeen || y > s.YearMax {
				s.YearMax = y
			}
			yearSeen = true
		}
	}

	if rated > 0 {
		mean := ratingSum / float64(rated)
		s.MeanRating = &mean
	}
	if timed > 0 {
		mean := runtimeSum / float64(timed)
		s.MeanRuntime = &mean
	}
	s.MeanVoteCount = voteSum / float64(len(movies))
	s.TopGenre = topGenre(movies)

	return s
}

// AllGenres returns the sorted unique genre labels across the set.
// Feed this to the genre selector so it only offers labels that exist.
func AllGenres(movies []models.Movie) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, m := range movies {
		for _, g := range m.Genres {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	sort.Strings(genres)
	return genres
}

func topGenre(movies []models.Movie) string {
	counts := make(map[string]int)
	for _, m := range movies {
		for _, g := range m.Genres {
			counts[g]++
		}
	}
	top := "Unknown"
	best := 0
	for _, g := range sortedKeys(counts) {
		if counts[g] > best {
			best = counts[g]
			top = g
		}
	}
	return top
}

// sortedKeys keeps map iteration deterministic for tie-breaking.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CountByYear returns the movies-per-year trend, ascending by year.
// Records without a year do not contribute a point.
func CountByYear(movies []models.Movie) []models.YearCount {
	counts := make(map[int]int)
	for _, m := range movies {
		if m.ReleaseYear != nil {
			counts[*m.ReleaseYear]++
		}
	}
	out := make([]models.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, models.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// MeanRatingByYear returns the per-year mean rating trend, ascending
// by year. Only records with both a year and a rating contribute.
func MeanRatingByYear(movies []models.Movie) []models.YearRating {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, m := range movies {
		if m.ReleaseYear == nil || m.VoteAverage == nil {
			continue
		}
		sums[*m.ReleaseYear] += *m.VoteAverage
		counts[*m.ReleaseYear]++
	}
	out := make([]models.YearRating, 0, len(counts))
	for year, n := range counts {
		out = append(out, models.YearRating{
			Year:       year,
			MeanRating: sums[year] / float64(n),
			Count:      n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// GenreStats aggregates counts and mean ratings per genre, descending
// by count. A movie carrying three genres contributes to three rows.
func GenreStats(movies []models.Movie) []models.GenreStat {
	counts := make(map[string]int)
	ratingSums := make(map[string]float64)
	rated := make(map[string]int)
	for _, m := range movies {
		for _, g := range m.Genres {
			counts[g]++
			if m.VoteAverage != nil {
				ratingSums[g] += *m.VoteAverage
				rated[g]++
			}
		}
	}
	out := make([]models.GenreStat, 0, len(counts))
	for _, g := range sortedKeys(counts) {
		stat := models.GenreStat{Genre: g, Count: counts[g], Rated: rated[g]}
		if stat.Rated > 0 {
			stat.MeanRating = ratingSums[g] / float64(stat.Rated)
		}
		out = append(out, stat)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// minVotesForRanking keeps thin-air ratings (three votes, all tens)
// out of the top-rated board.
const minVotesForRanking = 100

// TopRated returns the n highest-rated movies among those with at
// least minVotesForRanking votes.
func TopRated(movies []models.Movie, n int) []models.Movie {
	qualified := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if m.VoteAverage != nil && m.VoteCount >= minVotesForRanking {
			qualified = append(qualified, m)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return *qualified[i].VoteAverage > *qualified[j].VoteAverage
	})
	return truncate(qualified, n)
}

// Longest returns the n longest movies by runtime.
func Longest(movies []models.Movie, n int) []models.Movie {
	timed := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if m.RuntimeMinutes != nil {
			timed = append(timed, m)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return *timed[i].RuntimeMinutes > *timed[j].RuntimeMinutes
	})
	return truncate(timed, n)
}

// LongerThan returns movies with runtime >= minutes, descending by
// runtime.
func LongerThan(movies []models.Movie, minutes float64) []models.Movie {
	var out []models.Movie
	for _, m := range movies {
		if m.RuntimeMinutes != nil && *m.RuntimeMinutes >= minutes {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].RuntimeMinutes > *out[j].RuntimeMinutes
	})
	return out
}

// TopGrossing returns the n highest-revenue movies. Zero revenue
// means "unknown" in the source, so those records never rank.
func TopGrossing(movies []models.Movie, n int) []models.Movie {
	earning := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Revenue > 0 {
			earning = append(earning, m)
		}
	}
	sort.SliceStable(earning, func(i, j int) bool {
		return earning[i].Revenue > earning[j].Revenue
	})
	return truncate(earning, n)
}

// BudgetRevenuePoints returns the scatter samples where both figures
// are known.
func BudgetRevenuePoints(movies []models.Movie) []models.FinancePoint {
	var points []models.FinancePoint
	for _, m := range movies {
		if m.Budget > 0 && m.Revenue > 0 {
			points = append(points, models.FinancePoint{
				Title:   m.Title,
				Budget:  m.Budget,
				Revenue: m.Revenue,
				Profit:  m.Profit,
			})
		}
	}
	return points
}

// DecadeRollup aggregates per decade, ascending. Records without a
// year are excluded.
func DecadeRollup(movies []models.Movie) []models.DecadeStat {
	type acc struct {
		count, rated, timed   int
		ratingSum, runtimeSum float64
		revenueSum, budgetSum int64
	}
	buckets := make(map[int]*acc)
	for _, m := range movies {
		if m.ReleaseYear == nil {
			continue
		}
		decade := *m.ReleaseYear / 10 * 10
		a := buckets[decade]
		if a == nil {
			a = &acc{}
			buckets[decade] = a
		}
		a.count++
		if m.VoteAverage != nil {
			a.ratingSum += *m.VoteAverage
			a.rated++
		}
		if m.RuntimeMinutes != nil {
			a.runtimeSum += *m.RuntimeMinutes
			a.timed++
		}
		a.revenueSum += m.Revenue
		a.budgetSum += m.Budget
	}

	out := make([]models.DecadeStat, 0, len(buckets))
	for decade, a := range buckets {
		stat := models.DecadeStat{
			Decade:       decade,
			Count:        a.count,
			TotalRevenue: a.revenueSum,
			TotalBudget:  a.budgetSum,
		}
		if a.rated > 0 {
			stat.MeanRating = a.ratingSum / float64(a.rated)
		}
		if a.timed > 0 {
			stat.MeanRuntime = a.runtimeSum / float64(a.timed)
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade < out[j].Decade })
	return out
}

// RatingCategoryCounts returns the Poor/Average/Good/Excellent
// distribution in severity order. Unrated movies are not counted.
func RatingCategoryCounts(movies []models.Movie) []models.CategoryCount {
	order := []string{"Poor", "Average", "Good", "Excellent"}
	counts := make(map[string]int)
	for _, m := range movies {
		if m.RatingCategory != "" {
			counts[m.RatingCategory]++
		}
	}
	out := make([]models.CategoryCount, 0, len(order))
	for _, cat := range order {
		if counts[cat] > 0 {
			out = append(out, models.CategoryCount{Category: cat, Count: counts[cat]})
		}
	}
	return out
}

// Success computes outcome metrics. Finance ratios only consider
// movies with a known budget; rating shares only consider rated
// movies.
func Success(movies []models.Movie) models.SuccessMetrics {
	var metrics models.SuccessMetrics
	if len(movies) == 0 {
		return metrics
	}

	var financed, profitable int
	var profitSum, roiSum float64
	var rated, highRated, blockbusters int

	for _, m := range movies {
		if m.Budget > 0 {
			financed++
			profitSum += float64(m.Profit)
			roiSum += m.ROI
			if m.Profit > 0 {
				profitable++
			}
			if m.Budget >= 100_000_000 {
				blockbusters++
			}
		}
		if m.VoteAverage != nil {
			rated++
			if *m.VoteAverage >= 7 {
				highRated++
			}
		}
	}

	if financed > 0 {
		metrics.ProfitabilityRate = float64(profitable) / float64(financed) * 100
		metrics.MeanProfit = profitSum / float64(financed)
		metrics.MeanROI = roiSum / float64(financed)
	}
	if rated > 0 {
		metrics.HighRatedShare = float64(highRated) / float64(rated) * 100
	}
	metrics.BlockbusterShare = float64(blockbusters) / float64(len(movies)) * 100

	return metrics
}

// SearchTitle returns movies whose title contains the query,
// case-insensitive, in dataset order.
func SearchTitle(movies []models.Movie, query string) []models.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []models.Movie
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), query) {
			out = append(out, m)
		}
	}
	return out
}

// ByDirector returns movies whose director matches the query,
// case-insensitive substring, in dataset order.
func ByDirector(movies []models.Movie, director string) []models.Movie {
	director = strings.ToLower(strings.TrimSpace(director))
	if director == "" {
		return nil
	}
	var out []models.Movie
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Director), director) {
			out = append(out, m)
		}
	}
	return out
}

func truncate(movies []models.Movie, n int) []models.Movie {
	if n > 0 && len(movies) > n {
		return movies[:n]
	}
	return movies
}
