package movie_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviecatalog/movie"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) LoadAll(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

func testMovies() []movie.Movie {
	return []movie.Movie{
		{ID: 1, MovieName: "The Prison Escape", Director: "John Director", Year: 1994, Genre: "Drama", Duration: 142, IMDBRating: 5.0},
		{ID: 2, MovieName: "The Family Boss", Director: "Michael Filmmaker", Year: 1972, Genre: "Crime/Drama", Duration: 175, IMDBRating: 5.0},
		{ID: 3, MovieName: "The Masked Hero", Director: "Chris Moviemaker", Year: 2008, Genre: "Action/Crime", Duration: 152, IMDBRating: 5.0},
		{ID: 4, MovieName: "Urban Stories", Director: "Quentin Storyteller", Year: 1994, Genre: "Crime/Drama", Duration: 154, IMDBRating: 4.5},
		{ID: 5, MovieName: "Life Journey", Director: "Robert Filmmaker", Year: 1994, Genre: "Drama/Romance", Duration: 142, IMDBRating: 4.5},
	}
}

func TestNewCatalog(t *testing.T) {
	movies := testMovies()
	c := movie.NewCatalog(movies)

	t.Run("keeps source order", func(t *testing.T) {
		if diff := cmp.Diff(movies, c.All()); diff != "" {
			t.Errorf("All() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, len(movies), c.Len())
	})

	t.Run("every movie is reachable by id", func(t *testing.T) {
		for _, m := range movies {
			got, ok := c.ByID(m.ID)
			assert.True(t, ok, "movie %d should be found", m.ID)
			assert.Equal(t, m, got)
		}
	})

	t.Run("is not affected by changes to the input slice", func(t *testing.T) {
		movies[0].MovieName = "changed"

		got, ok := c.ByID(1)
		require.True(t, ok)
		assert.Equal(t, "The Prison Escape", got.MovieName)
		assert.Equal(t, "The Prison Escape", c.All()[0].MovieName)
	})

	t.Run("is not affected by changes to the returned slice", func(t *testing.T) {
		all := c.All()
		all[1].MovieName = "changed"

		assert.Equal(t, "The Family Boss", c.All()[1].MovieName)
	})
}

func TestCatalog_ByID(t *testing.T) {
	c := movie.NewCatalog(testMovies())

	tests := []struct {
		name string
		id   int64
	}{
		{name: "zero id", id: 0},
		{name: "negative id", id: -1},
		{name: "unknown id", id: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ByID(tt.id)
			assert.False(t, ok)
			assert.Equal(t, movie.Movie{}, got)
		})
	}
}

func TestCatalog_DuplicateIDs(t *testing.T) {
	c := movie.NewCatalog([]movie.Movie{
		{ID: 7, MovieName: "First"},
		{ID: 8, MovieName: "Other"},
		{ID: 7, MovieName: "Second"},
	})

	got, ok := c.ByID(7)
	require.True(t, ok)
	assert.Equal(t, "Second", got.MovieName, "last occurrence should win in the index")

	names := make([]string, 0, c.Len())
	for _, m := range c.All() {
		names = append(names, m.MovieName)
	}
	assert.Equal(t, []string{"First", "Other", "Second"}, names)
}

func TestCatalog_Genres(t *testing.T) {
	t.Run("sorted and duplicate free", func(t *testing.T) {
		c := movie.NewCatalog([]movie.Movie{
			{ID: 1, Genre: "Drama"},
			{ID: 2, Genre: "Drama"},
			{ID: 3, Genre: "Action/Crime"},
		})

		assert.Equal(t, []string{"Action/Crime", "Drama"}, c.Genres())
	})

	t.Run("case is preserved and compound genres are not split", func(t *testing.T) {
		c := movie.NewCatalog([]movie.Movie{
			{ID: 1, Genre: "drama"},
			{ID: 2, Genre: "Drama"},
			{ID: 3, Genre: "Crime/Drama"},
		})

		assert.Equal(t, []string{"Crime/Drama", "Drama", "drama"}, c.Genres())
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Empty(t, movie.NewCatalog(nil).Genres())
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("should build catalog from loader", func(t *testing.T) {
		l := new(MockLoader)
		l.On("LoadAll", mock.Anything).Return(testMovies(), nil).Once()

		c, err := movie.LoadCatalog(context.Background(), l)

		require.NoError(t, err)
		assert.Equal(t, 5, c.Len())
		l.AssertExpectations(t)
	})

	t.Run("should return empty catalog on load failure", func(t *testing.T) {
		l := new(MockLoader)
		loadErr := errors.New("malformed data")
		l.On("LoadAll", mock.Anything).Return(nil, loadErr).Once()

		c, err := movie.LoadCatalog(context.Background(), l)

		assert.ErrorIs(t, err, loadErr)
		require.NotNil(t, c)
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.All())
		assert.Empty(t, c.Genres())
		l.AssertExpectations(t)
	})

	t.Run("should not keep partial data", func(t *testing.T) {
		l := new(MockLoader)
		l.On("LoadAll", mock.Anything).Return(testMovies()[:2], errors.New("record 3: missing field")).Once()

		c, err := movie.LoadCatalog(context.Background(), l)

		assert.Error(t, err)
		assert.Equal(t, 0, c.Len())
		_, ok := c.ByID(1)
		assert.False(t, ok)
	})
}
