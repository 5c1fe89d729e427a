package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"moviecatalog/datafile"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
	"moviecatalog/review"

	"gorm.io/gorm"
)

func main() {
	var (
		moviesPath  string
		reviewsPath string
	)

	flag.StringVar(&moviesPath, "movies", "", "Path to a movies JSON or YAML file (default: bundled data)")
	flag.StringVar(&reviewsPath, "reviews", "", "Path to a reviews JSON or YAML file (default: bundled data)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	movies, reviews, err := seed(ctx, db,
		datafile.NewMovieLoader(source(moviesPath, datafile.MoviesFile)),
		datafile.NewReviewLoader(source(reviewsPath, datafile.ReviewsFile)),
	)
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed completed", "movies", movies, "reviews", reviews)
}

func source(path, bundled string) datafile.Source {
	if path == "" {
		return datafile.Embedded(bundled)
	}
	return datafile.File(path)
}

// seed reads both files before touching the database so a bad file leaves
// the tables as they were.
func seed(ctx context.Context, db *gorm.DB, ml movie.Loader, rl review.Loader) (int, int, error) {
	movies, err := ml.LoadAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("read movies: %w", err)
	}
	reviews, err := rl.LoadAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("read reviews: %w", err)
	}

	if err := postgres.ReplaceCatalog(ctx, db, movies, reviews); err != nil {
		return 0, 0, err
	}
	return len(movies), len(reviews), nil
}
