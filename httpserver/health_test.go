package httpserver_test

import (
	"net/http"
	"testing"

	"moviecatalog/httpserver"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheck(t *testing.T) {
	server := newTestServer()

	rec := makeRequest(server, http.MethodGet, "/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"200"`)
	assert.Contains(t, rec.Body.String(), `"message":"OK"`)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.Contains(t, rec.Body.String(), `"movies":4`)
}

func TestHealthcheck_WithoutMovieService(t *testing.T) {
	server := httpserver.Default(testConfig())

	rec := makeRequest(server, http.MethodGet, "/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"movies":0`)
}
