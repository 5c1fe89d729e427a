package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/review"

	"github.com/labstack/echo/v4"
)

const (
	noCriteriaMessage = "Please provide search criteria. Showing all movies instead."
	noResultsMessage  = "No movies found matching your search criteria. Try different terms."
)

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

type moviesPage struct {
	Title           string
	Movies          []movie.Movie
	Genres          []string
	SearchPerformed bool
	SearchMessage   string
	SearchName      string
	SearchID        string
	SearchGenre     string
}

type movieDetailsPage struct {
	Title   string
	Movie   movie.Movie
	Reviews []review.Review
}

func (s *Server) RegisterPageRoutes() {
	s.Router.GET("/", s.handleIndex)
	s.Router.GET("/movies", s.handleMoviesPage)
	s.Router.GET("/movies/search", s.handleSearchPage)
	s.Router.GET("/movies/:id/details", s.handleMovieDetailsPage)
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/movies")
}

func (s *Server) handleMoviesPage(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}
	ctx := c.Request().Context()

	slog.InfoContext(ctx, "listing all movies")
	return c.Render(http.StatusOK, "movies.html", moviesPage{
		Title:  "All Movies",
		Movies: s.MovieService.All(ctx),
		Genres: s.MovieService.Genres(ctx),
	})
}

func (s *Server) handleSearchPage(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}
	ctx := c.Request().Context()

	req, criteria, err := bindSearch(c)
	if err != nil {
		return err
	}

	page := moviesPage{
		Title:           "Search Results",
		Genres:          s.MovieService.Genres(ctx),
		SearchPerformed: true,
	}

	if !criteria.Valid() {
		slog.WarnContext(ctx, "no valid search criteria, showing all movies")
		page.Movies = s.MovieService.All(ctx)
		page.SearchMessage = noCriteriaMessage
		return c.Render(http.StatusOK, "movies.html", page)
	}

	page.Movies = s.MovieService.Search(ctx, criteria)
	page.SearchMessage = resultMessage(len(page.Movies))
	page.SearchName = req.Name
	page.SearchID = req.ID
	page.SearchGenre = req.Genre
	return c.Render(http.StatusOK, "movies.html", page)
}

func (s *Server) handleMovieDetailsPage(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	m, err := s.MovieService.ByID(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "movie not found", "id", id)
		return err
	}

	return c.Render(http.StatusOK, "movie-details.html", movieDetailsPage{
		Title:   m.MovieName,
		Movie:   m,
		Reviews: s.reviewsFor(c, m.ID),
	})
}

func (s *Server) reviewsFor(c echo.Context, movieID int64) []review.Review {
	if s.ReviewService == nil {
		return []review.Review{}
	}
	return s.ReviewService.ReviewsForMovie(c.Request().Context(), movieID)
}

func bindSearch(c echo.Context) (SearchRequest, movie.Criteria, error) {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return req, movie.Criteria{}, err
	}
	if err := c.Validate(&req); err != nil {
		return req, movie.Criteria{}, err
	}
	criteria, err := req.Criteria()
	return req, criteria, err
}

func resultMessage(n int) string {
	if n == 0 {
		return noResultsMessage
	}
	if n == 1 {
		return "Found 1 movie matching your search."
	}
	return fmt.Sprintf("Found %d movies matching your search.", n)
}
