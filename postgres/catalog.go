package postgres

import (
	"context"

	"moviecatalog/movie"
	"moviecatalog/review"

	"gorm.io/gorm"
)

// ReplaceCatalog swaps both the movies and the reviews tables in one
// transaction. Either both tables hold the new data or neither changes.
func ReplaceCatalog(ctx context.Context, db *gorm.DB, movies []movie.Movie, reviews []review.Review) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewMovieRepository(tx).ReplaceAll(ctx, movies); err != nil {
			return err
		}
		return NewReviewRepository(tx).ReplaceAll(ctx, reviews)
	})
}
