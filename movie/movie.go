package movie

import (
	"strings"

	"moviecatalog/errs"
)

var ErrInvalidID = errs.Errorf(errs.EINVALID, "invalid movie id")

type Movie struct {
	ID          int64   `json:"id"`
	MovieName   string  `json:"movieName"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	IMDBRating  float64 `json:"imdbRating"`
}

// Criteria holds the optional search filters. Blank strings and
// non-positive ids mean "not provided".
type Criteria struct {
	Name  string
	ID    int64
	Genre string
}

func (c Criteria) name() string  { return strings.TrimSpace(c.Name) }
func (c Criteria) genre() string { return strings.TrimSpace(c.Genre) }

// Valid reports whether at least one filter would narrow the catalog.
func (c Criteria) Valid() bool {
	return c.name() != "" || c.ID > 0 || c.genre() != ""
}

func ErrNotFound(id int64) error {
	return errs.Errorf(errs.ENOTFOUND, "Movie with ID %d was not found.", id)
}
