package review_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviecatalog/review"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) LoadAll(ctx context.Context) ([]review.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]review.Review)
	return reviews, args.Error(1)
}

func testReviews() []review.Review {
	return []review.Review{
		{ID: 1, MovieID: 1, ReviewerName: "Alice", Rating: 5, Comment: "A masterpiece."},
		{ID: 2, MovieID: 2, ReviewerName: "Bob", Rating: 4, Comment: "Gripping."},
		{ID: 3, MovieID: 1, ReviewerName: "Carol", Rating: 4.5, Comment: "Hopeful."},
	}
}

func TestIndex_ForMovie(t *testing.T) {
	idx := review.NewIndex(testReviews())

	t.Run("returns reviews in source order", func(t *testing.T) {
		got := idx.ForMovie(1)

		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].ReviewerName)
		assert.Equal(t, "Carol", got[1].ReviewerName)
	})

	t.Run("unknown and invalid ids return an empty list", func(t *testing.T) {
		for _, id := range []int64{99, 0, -5} {
			got := idx.ForMovie(id)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		}
	})

	t.Run("returned slice does not alias the index", func(t *testing.T) {
		got := idx.ForMovie(2)
		got[0].Comment = "changed"

		assert.Equal(t, "Gripping.", idx.ForMovie(2)[0].Comment)
	})

	t.Run("counts every review", func(t *testing.T) {
		assert.Equal(t, 3, idx.Len())
	})
}

func TestLoadIndex(t *testing.T) {
	t.Run("should build index from loader", func(t *testing.T) {
		l := new(MockLoader)
		l.On("LoadAll", mock.Anything).Return(testReviews(), nil).Once()

		idx, err := review.LoadIndex(context.Background(), l)

		require.NoError(t, err)
		assert.Len(t, idx.ForMovie(1), 2)
		l.AssertExpectations(t)
	})

	t.Run("should return empty index on failure", func(t *testing.T) {
		l := new(MockLoader)
		l.On("LoadAll", mock.Anything).Return(nil, errors.New("boom")).Once()

		idx, err := review.LoadIndex(context.Background(), l)

		assert.Error(t, err)
		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.ForMovie(1))
	})
}

func TestUsecase_ReviewsForMovie(t *testing.T) {
	uc := review.NewUsecase(review.NewIndex(testReviews()))

	assert.Len(t, uc.ReviewsForMovie(context.Background(), 1), 2)
	assert.Empty(t, uc.ReviewsForMovie(context.Background(), 3))
	assert.Empty(t, review.NewUsecase(nil).ReviewsForMovie(context.Background(), 1))
}
