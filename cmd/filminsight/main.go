package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/cheeku2609/FilmInsight4/internal/dataset"
	"github.com/cheeku2609/FilmInsight4/internal/db"
	"github.com/cheeku2609/FilmInsight4/internal/models"
	"github.com/cheeku2609/FilmInsight4/internal/ui"
)

const (
	defaultMoviesPath  = "tmdb_5000_movies.csv"
	defaultCreditsPath = "tmdb_5000_credits.csv"
)

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	moviesFlag := flag.String("movies", "", "Path to the movies CSV")
	creditsFlag := flag.String("credits", "", "Path to the credits CSV")
	dbPath := flag.String("db", "", "Path to the dataset cache file (bypasses cache selector)")
	refreshFlag := flag.Bool("refresh", false, "Rebuild the dataset from the CSV sources even when cached")
	noScreenFlag := flag.Bool("no-screen", false, "Keep records with implausible values instead of screening them")
	exportFlag := flag.String("export", "", "Export one dashboard tab to markdown and exit (e.g. movies, genres, top-movies)")
	flag.Parse()

	moviesPath := resolvePath(*moviesFlag, "FILMINSIGHT_MOVIES", defaultMoviesPath)
	creditsPath := resolvePath(*creditsFlag, "FILMINSIGHT_CREDITS", defaultCreditsPath)

	// Route warnings to a file so they don't tear the TUI
	setupLogging()

	if *exportFlag != "" {
		runExport(moviesPath, creditsPath, *noScreenFlag, *exportFlag)
		return
	}

	// Show splash screen on startup
	ui.ShowSplash()

	// Determine cache path
	var cachePath string
	if *dbPath != "" {
		cachePath = *dbPath
	} else {
		result, err := ui.RunProjectSelector()
		if err != nil {
			ui.PrintError(fmt.Sprintf("Cache selector failed: %v", err))
			os.Exit(1)
		}
		switch result.Action {
		case "exit":
			return
		case "open", "create":
			cachePath = result.CachePath
		}
		if result.Action == "create" {
			ui.PrintSuccess(fmt.Sprintf("Creating new dataset cache: %s", cachePath))
		}
	}

	database, err := db.New(cachePath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to initialize dataset cache: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	movies, err := loadDataset(database, moviesPath, creditsPath, *refreshFlag, *noScreenFlag)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	if len(movies) == 0 {
		ui.PrintError("The unified dataset is empty: no movie row has a matching credit row.")
		os.Exit(1)
	}

	if err := ui.RunDashboard(movies); err != nil {
		ui.PrintError(fmt.Sprintf("Dashboard failed: %v", err))
		os.Exit(1)
	}
}

// loadDataset returns the cached dataset when present, otherwise runs
// the clean pipeline over the CSV sources and caches the result.
func loadDataset(database *db.DB, moviesPath, creditsPath string, refresh, noScreen bool) ([]models.Movie, error) {
	cached, err := database.HasDataset()
	if err != nil {
		return nil, fmt.Errorf("failed to inspect dataset cache: %w", err)
	}

	if cached && !refresh {
		var movies []models.Movie
		var loadErr error
		if err := spinner.New().
			Title("Loading cached dataset...").
			Action(func() {
				movies, loadErr = database.LoadDataset()
			}).
			Run(); err != nil {
			return nil, fmt.Errorf("failed to run spinner: %w", err)
		}
		if loadErr != nil {
			return nil, loadErr
		}
		if info, err := database.GetLoadInfo(); err == nil && info != nil {
			span := ""
			if min, max, err := database.YearSpan(); err == nil && max > 0 {
				span = fmt.Sprintf(", years %d-%d", min, max)
			}
			ui.PrintSuccess(fmt.Sprintf("Loaded %d movies from cache (built %s%s)",
				len(movies), info.LoadedAt.Format("2006-01-02 15:04"), span))
		}
		return movies, nil
	}

	var movies []models.Movie
	var info models.LoadInfo
	var buildErr error
	if err := spinner.New().
		Title("Cleaning and merging the movie dataset...").
		Action(func() {
			movies, info, buildErr = dataset.Build(moviesPath, creditsPath, dataset.BuildOptions{
				SkipScreen: noScreen,
			})
		}).
		Run(); err != nil {
		return nil, fmt.Errorf("failed to run spinner: %w", err)
	}
	if buildErr != nil {
		return nil, buildErr
	}

	info.LoadedAt = time.Now()
	if err := database.ReplaceDataset(movies, info); err != nil {
		return nil, fmt.Errorf("failed to cache dataset: %w", err)
	}

	ui.PrintSuccess(fmt.Sprintf("Cleaned %d movie rows and %d credit rows into %d unified records",
		info.MovieRows, info.CreditRows, info.Unified))
	return movies, nil
}

// runExport cleans the CSV sources and writes one dashboard tab to
// markdown without entering the TUI.
func runExport(moviesPath, creditsPath string, noScreen bool, tab string) {
	movies, _, err := dataset.Build(moviesPath, creditsPath, dataset.BuildOptions{SkipScreen: noScreen})
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	filename, err := ui.ExportTabByName(movies, tab)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	ui.PrintSuccess(fmt.Sprintf("Exported to %s", filename))
}

func resolvePath(flagValue, envVar, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}

func setupLogging() {
	f, err := os.OpenFile("filminsight.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	log.SetOutput(f)
	if os.Getenv("FILMINSIGHT_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}
}
