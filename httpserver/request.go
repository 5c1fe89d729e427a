package httpserver

import (
	"strconv"
	"strings"

	"moviecatalog/movie"
)

// SearchRequest carries the optional search form fields as typed by the user.
type SearchRequest struct {
	Name  string `query:"name" validate:"max=200"`
	ID    string `query:"id" validate:"max=32"`
	Genre string `query:"genre" validate:"max=200"`
}

// Criteria converts the request into search criteria. A blank id means no
// id filter; anything that is not an integer is rejected.
func (r SearchRequest) Criteria() (movie.Criteria, error) {
	id, err := parseOptionalID(r.ID)
	if err != nil {
		return movie.Criteria{}, err
	}
	return movie.Criteria{Name: r.Name, ID: id, Genre: r.Genre}, nil
}

func parseOptionalID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return parseID(raw)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, movie.ErrInvalidID
	}
	return id, nil
}
