package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/review"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Catalog.Source = config.SourceFile
	return cfg
}

func testMovies() []movie.Movie {
	return []movie.Movie{
		{ID: 1, MovieName: "The Prison Escape", Director: "John Director", Year: 1994, Genre: "Drama", Description: "Two imprisoned men bond.", Duration: 142, IMDBRating: 5.0},
		{ID: 2, MovieName: "The Family Boss", Director: "Michael Filmmaker", Year: 1972, Genre: "Crime/Drama", Description: "A crime dynasty.", Duration: 175, IMDBRating: 5.0},
		{ID: 3, MovieName: "The Masked Hero", Director: "Chris Moviemaker", Year: 2008, Genre: "Action/Crime", Description: "A masked vigilante.", Duration: 152, IMDBRating: 5.0},
		{ID: 4, MovieName: "Life Journey", Director: "Robert Filmmaker", Year: 1994, Genre: "Drama/Romance", Description: "Decades of history.", Duration: 142, IMDBRating: 4.5},
	}
}

func testReviews() []review.Review {
	return []review.Review{
		{ID: 1, MovieID: 1, ReviewerName: "Emma Watson", Rating: 5, Comment: "A timeless story about hope."},
		{ID: 2, MovieID: 1, ReviewerName: "Liam Chen", Rating: 4.5, Comment: "Outstanding performances."},
		{ID: 3, MovieID: 3, ReviewerName: "Ava Patel", Rating: 5, Comment: "The villain steals every scene."},
	}
}

// newTestServer wires the real usecases over fixture data.
func newTestServer() *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.MovieService = movie.NewUsecase(movie.NewCatalog(testMovies()))
	server.ReviewService = review.NewUsecase(review.NewIndex(testReviews()))
	return server
}

func makeRequest(server *httpserver.Server, method, target string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	return recorder
}

func decodeAPIResponse(t *testing.T, recorder *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), "body: %s", recorder.Body.String())
	return resp
}

func decodeAPIResult(t *testing.T, result interface{}, target interface{}) {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) All(ctx context.Context) []movie.Movie {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie)
}

func (m *MockMovieService) ByID(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, c movie.Criteria) []movie.Movie {
	args := m.Called(ctx, c)
	return args.Get(0).([]movie.Movie)
}

func (m *MockMovieService) Genres(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

var _ http.Handler = (*httpserver.Server)(nil)
