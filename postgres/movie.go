package postgres

import (
	"context"
	"fmt"

	"moviecatalog/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// Position keeps the catalog order; ids may repeat.
type MovieModel struct {
	Position    int     `gorm:"primaryKey;autoIncrement:false"`
	MovieID     int64   `gorm:"column:movie_id;not null;index"`
	MovieName   string  `gorm:"column:movie_name;not null"`
	Director    string  `gorm:"not null"`
	Year        int     `gorm:"not null"`
	Genre       string  `gorm:"not null"`
	Description string  `gorm:"not null"`
	Duration    int     `gorm:"not null"`
	IMDBRating  float64 `gorm:"column:imdb_rating;not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.MovieID,
		MovieName:   m.MovieName,
		Director:    m.Director,
		Year:        m.Year,
		Genre:       m.Genre,
		Description: m.Description,
		Duration:    m.Duration,
		IMDBRating:  m.IMDBRating,
	}
}

func newMovieModel(position int, m movie.Movie) MovieModel {
	return MovieModel{
		Position:    position,
		MovieID:     m.ID,
		MovieName:   m.MovieName,
		Director:    m.Director,
		Year:        m.Year,
		Genre:       m.Genre,
		Description: m.Description,
		Duration:    m.Duration,
		IMDBRating:  m.IMDBRating,
	}
}

// MovieRepository implements movie.Loader on top of the movies table.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) LoadAll(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("position").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

// ReplaceAll swaps the table contents for movies in a single transaction.
func (r *MovieRepository) ReplaceAll(ctx context.Context, movies []movie.Movie) error {
	models := make([]MovieModel, len(movies))
	for i, m := range movies {
		models[i] = newMovieModel(i, m)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&MovieModel{}).Error; err != nil {
			return fmt.Errorf("clear movies: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, 100).Error; err != nil {
			return fmt.Errorf("insert movies: %w", err)
		}
		return nil
	})
}
