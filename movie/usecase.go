package movie

import (
	"context"
	"log/slog"
	"strings"
)

type Service interface {
	All(ctx context.Context) []Movie
	ByID(ctx context.Context, id int64) (Movie, error)
	Search(ctx context.Context, c Criteria) []Movie
	Genres(ctx context.Context) []string
}

type Usecase struct {
	catalog *Catalog
}

func NewUsecase(c *Catalog) *Usecase {
	if c == nil {
		c = NewCatalog(nil)
	}
	return &Usecase{catalog: c}
}

func (uc *Usecase) All(_ context.Context) []Movie {
	return uc.catalog.All()
}

func (uc *Usecase) ByID(_ context.Context, id int64) (Movie, error) {
	m, ok := uc.catalog.ByID(id)
	if !ok {
		return Movie{}, ErrNotFound(id)
	}
	return m, nil
}

func (uc *Usecase) Genres(_ context.Context) []string {
	return uc.catalog.Genres()
}

// Search narrows the catalog by name, then id, then genre. Filters that
// were not provided are skipped, so empty criteria return every movie.
// Matching on name and genre is a case-insensitive substring match.
func (uc *Usecase) Search(ctx context.Context, c Criteria) []Movie {
	slog.InfoContext(ctx, "searching movies", "name", c.Name, "id", c.ID, "genre", c.Genre)

	results := uc.catalog.All()

	if name := strings.ToLower(c.name()); name != "" {
		results = filter(results, func(m Movie) bool {
			return strings.Contains(strings.ToLower(m.MovieName), name)
		})
		slog.DebugContext(ctx, "applied name filter", "name", name, "count", len(results))
	}

	if c.ID > 0 {
		results = filter(results, func(m Movie) bool {
			return m.ID == c.ID
		})
		slog.DebugContext(ctx, "applied id filter", "id", c.ID, "count", len(results))
	}

	if genre := strings.ToLower(c.genre()); genre != "" {
		results = filter(results, func(m Movie) bool {
			return strings.Contains(strings.ToLower(m.Genre), genre)
		})
		slog.DebugContext(ctx, "applied genre filter", "genre", genre, "count", len(results))
	}

	slog.InfoContext(ctx, "search completed", "count", len(results))
	return results
}

func filter(movies []Movie, keep func(Movie) bool) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
