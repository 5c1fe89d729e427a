package movie

import (
	"context"
	"slices"
)

// Loader reads the full movie list from its backing source, in source order.
type Loader interface {
	LoadAll(ctx context.Context) ([]Movie, error)
}

// Catalog is the read-only set of movies known to the application.
// It is never mutated after NewCatalog returns, so it can be shared
// between goroutines without locking.
type Catalog struct {
	movies []Movie
	byID   map[int64]Movie
}

// NewCatalog indexes movies by id. On duplicate ids the last record wins
// in the index while every record keeps its place in All.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{
		movies: append(make([]Movie, 0, len(movies)), movies...),
		byID:   make(map[int64]Movie, len(movies)),
	}
	for _, m := range c.movies {
		c.byID[m.ID] = m
	}
	return c
}

// LoadCatalog builds a catalog from l. A failed load yields an empty
// catalog together with the error, so callers can log and carry on.
func LoadCatalog(ctx context.Context, l Loader) (*Catalog, error) {
	movies, err := l.LoadAll(ctx)
	if err != nil {
		return NewCatalog(nil), err
	}
	return NewCatalog(movies), nil
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

// All returns every movie in source order.
func (c *Catalog) All() []Movie {
	return slices.Clone(c.movies)
}

func (c *Catalog) ByID(id int64) (Movie, bool) {
	if id <= 0 {
		return Movie{}, false
	}
	m, ok := c.byID[id]
	return m, ok
}

// Genres returns the distinct genre strings, sorted ascending.
// Compound genres such as "Action/Crime" are kept whole.
func (c *Catalog) Genres() []string {
	genres := make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		genres = append(genres, m.Genre)
	}
	slices.Sort(genres)
	return slices.Compact(genres)
}
