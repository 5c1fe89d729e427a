package datafile

import (
	"context"

	"moviecatalog/review"
)

type reviewRecord struct {
	ID           *int64   `json:"id" yaml:"id" validate:"required"`
	MovieID      *int64   `json:"movieId" yaml:"movieId" validate:"required"`
	ReviewerName *string  `json:"reviewerName" yaml:"reviewerName" validate:"required"`
	Rating       *float64 `json:"rating" yaml:"rating" validate:"required"`
	Comment      *string  `json:"comment" yaml:"comment" validate:"required"`
}

// ReviewLoader implements review.Loader over a data file.
type ReviewLoader struct {
	Source Source
}

func NewReviewLoader(s Source) *ReviewLoader {
	return &ReviewLoader{Source: s}
}

func (l *ReviewLoader) LoadAll(_ context.Context) ([]review.Review, error) {
	records, err := decodeRecords[reviewRecord](l.Source)
	if err != nil {
		return nil, err
	}

	reviews := make([]review.Review, len(records))
	for i, r := range records {
		reviews[i] = review.Review{
			ID:           *r.ID,
			MovieID:      *r.MovieID,
			ReviewerName: *r.ReviewerName,
			Rating:       *r.Rating,
			Comment:      *r.Comment,
		}
	}
	return reviews, nil
}
