package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthStatus struct {
	Status string `json:"status"`
	Movies int    `json:"movies"`
}

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive and report the catalog size
// @Tags health
// @Success 200 {object} healthStatus
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	status := healthStatus{Status: "OK"}
	if s.MovieService != nil {
		status.Movies = len(s.MovieService.All(c.Request().Context()))
	}
	return writeSuccess(c, http.StatusOK, status)
}
