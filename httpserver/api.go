package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type searchResult struct {
	Data            interface{} `json:"data"`
	SearchPerformed bool        `json:"searchPerformed"`
	Message         string      `json:"message"`
}

// RegisterSwaggerRoutes serves the swagger UI for the JSON API.
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}

func (s *Server) RegisterPublicMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/movies/search", s.handleSearchMovies)
	g.GET("/movies/:id", s.handleGetMovie)
	g.GET("/movies/:id/reviews", s.handleListReviews)
	g.GET("/genres", s.handleListGenres)
}

// handleListMovies godoc
// @Summary List Movies
// @Description All movies in catalog order
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}
	return writeList(c, http.StatusOK, s.MovieService.All(c.Request().Context()))
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Filter movies by name substring, exact id and genre substring
// @Tags movies
// @Produce json
// @Param name query string false "Name substring, case-insensitive"
// @Param id query int false "Exact movie id"
// @Param genre query string false "Genre substring, case-insensitive"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} APIResponse
// @Router /api/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}
	ctx := c.Request().Context()

	_, criteria, err := bindSearch(c)
	if err != nil {
		return err
	}

	if !criteria.Valid() {
		return writeSuccess(c, http.StatusOK, searchResult{
			Data:            s.MovieService.All(ctx),
			SearchPerformed: true,
			Message:         noCriteriaMessage,
		})
	}

	results := s.MovieService.Search(ctx, criteria)
	return writeSuccess(c, http.StatusOK, searchResult{
		Data:            results,
		SearchPerformed: true,
		Message:         resultMessage(len(results)),
	})
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	m, err := s.MovieService.ByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, m)
}

// handleListReviews godoc
// @Summary List Reviews
// @Description Reviews of a movie, empty when the movie has none
// @Tags reviews
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {array} review.Review
// @Router /api/movies/{id}/reviews [get]
func (s *Server) handleListReviews(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	return writeList(c, http.StatusOK, s.reviewsFor(c, id))
}

// handleListGenres godoc
// @Summary List Genres
// @Description Distinct genres, sorted
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Router /api/genres [get]
func (s *Server) handleListGenres(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}
	return writeList(c, http.StatusOK, s.MovieService.Genres(c.Request().Context()))
}
