package review

import (
	"context"
	"slices"
)

type Review struct {
	ID           int64   `json:"id"`
	MovieID      int64   `json:"movieId"`
	ReviewerName string  `json:"reviewerName"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
}

type Loader interface {
	LoadAll(ctx context.Context) ([]Review, error)
}

// Index groups reviews by movie. It is read-only once built.
type Index struct {
	byMovie map[int64][]Review
	total   int
}

func NewIndex(reviews []Review) *Index {
	idx := &Index{byMovie: make(map[int64][]Review), total: len(reviews)}
	for _, r := range reviews {
		idx.byMovie[r.MovieID] = append(idx.byMovie[r.MovieID], r)
	}
	return idx
}

// LoadIndex builds an index from l. On failure the index is empty and the
// error is returned for the caller to report.
func LoadIndex(ctx context.Context, l Loader) (*Index, error) {
	reviews, err := l.LoadAll(ctx)
	if err != nil {
		return NewIndex(nil), err
	}
	return NewIndex(reviews), nil
}

func (idx *Index) Len() int {
	return idx.total
}

// ForMovie returns the reviews of a movie in source order, never nil.
func (idx *Index) ForMovie(movieID int64) []Review {
	if movieID <= 0 {
		return []Review{}
	}
	reviews := slices.Clone(idx.byMovie[movieID])
	if reviews == nil {
		return []Review{}
	}
	return reviews
}
