package postgres

import (
	"context"
	"fmt"

	"moviecatalog/review"

	"gorm.io/gorm"
)

// ReviewModel represents the database model for reviews
type ReviewModel struct {
	Position     int     `gorm:"primaryKey;autoIncrement:false"`
	ReviewID     int64   `gorm:"column:review_id;not null"`
	MovieID      int64   `gorm:"column:movie_id;not null;index"`
	ReviewerName string  `gorm:"column:reviewer_name;not null"`
	Rating       float64 `gorm:"not null"`
	Comment      string  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewRepository implements review.Loader on top of the reviews table.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) LoadAll(ctx context.Context) ([]review.Review, error) {
	var models []ReviewModel
	if err := r.db.WithContext(ctx).Order("position").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	reviews := make([]review.Review, len(models))
	for i, model := range models {
		reviews[i] = review.Review{
			ID:           model.ReviewID,
			MovieID:      model.MovieID,
			ReviewerName: model.ReviewerName,
			Rating:       model.Rating,
			Comment:      model.Comment,
		}
	}
	return reviews, nil
}

func (r *ReviewRepository) ReplaceAll(ctx context.Context, reviews []review.Review) error {
	models := make([]ReviewModel, len(reviews))
	for i, rv := range reviews {
		models[i] = ReviewModel{
			Position:     i,
			ReviewID:     rv.ID,
			MovieID:      rv.MovieID,
			ReviewerName: rv.ReviewerName,
			Rating:       rv.Rating,
			Comment:      rv.Comment,
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ReviewModel{}).Error; err != nil {
			return fmt.Errorf("clear reviews: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, 100).Error; err != nil {
			return fmt.Errorf("insert reviews: %w", err)
		}
		return nil
	})
}
