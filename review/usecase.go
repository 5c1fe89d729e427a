package review

import (
	"context"
	"log/slog"
)

type Service interface {
	ReviewsForMovie(ctx context.Context, movieID int64) []Review
}

type Usecase struct {
	idx *Index
}

func NewUsecase(idx *Index) *Usecase {
	if idx == nil {
		idx = NewIndex(nil)
	}
	return &Usecase{idx: idx}
}

func (uc *Usecase) ReviewsForMovie(ctx context.Context, movieID int64) []Review {
	reviews := uc.idx.ForMovie(movieID)
	slog.DebugContext(ctx, "fetched reviews", "movie_id", movieID, "count", len(reviews))
	return reviews
}
