package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"moviecatalog/datafile"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/postgres"
	"moviecatalog/review"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	movieLoader, reviewLoader, err := loaders(cfg)
	if err != nil {
		slog.Error("Cannot open catalog source", "source", cfg.Catalog.Source, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// A broken source leaves the catalog empty; the server still starts.
	catalog, err := movie.LoadCatalog(ctx, movieLoader)
	if err != nil {
		slog.Error("Cannot load movies", "error", err)
		sentry.WithTags(map[string]string{"stage": "catalog"}).Error(err)
	}
	reviews, err := review.LoadIndex(ctx, reviewLoader)
	if err != nil {
		slog.Error("Cannot load reviews", "error", err)
		sentry.WithTags(map[string]string{"stage": "reviews"}).Error(err)
	}
	slog.Info("catalog loaded", "source", cfg.Catalog.Source, "movies", catalog.Len(), "reviews", reviews.Len())

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.MovieService = movie.NewUsecase(catalog)
	server.ReviewService = review.NewUsecase(reviews)

	go func() {
		slog.Info("server started!", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		return
	}
	slog.Info("server stopped")
}

func loaders(cfg *config.Config) (movie.Loader, review.Loader, error) {
	if cfg.Catalog.Source == config.SourcePostgres {
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewMovieRepository(db), postgres.NewReviewRepository(db), nil
	}

	movies := fileSource(cfg.Catalog.MoviesFile, datafile.MoviesFile)
	reviews := fileSource(cfg.Catalog.ReviewsFile, datafile.ReviewsFile)
	slog.Info("reading catalog files", "movies", movies.String(), "reviews", reviews.String())
	return datafile.NewMovieLoader(movies), datafile.NewReviewLoader(reviews), nil
}

func fileSource(path, bundled string) datafile.Source {
	if path == "" {
		return datafile.Embedded(bundled)
	}
	return datafile.File(path)
}
