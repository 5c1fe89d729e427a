package datafile

import (
	"context"

	"moviecatalog/movie"
)

// movieRecord mirrors one entry of the movies file. Pointer fields let the
// validator tell a missing field from a zero value.
type movieRecord struct {
	ID          *int64   `json:"id" yaml:"id" validate:"required"`
	MovieName   *string  `json:"movieName" yaml:"movieName" validate:"required"`
	Director    *string  `json:"director" yaml:"director" validate:"required"`
	Year        *int     `json:"year" yaml:"year" validate:"required"`
	Genre       *string  `json:"genre" yaml:"genre" validate:"required"`
	Description *string  `json:"description" yaml:"description" validate:"required"`
	Duration    *int     `json:"duration" yaml:"duration" validate:"required"`
	IMDBRating  *float64 `json:"imdbRating" yaml:"imdbRating" validate:"required"`
}

func (r movieRecord) toMovie() movie.Movie {
	return movie.Movie{
		ID:          *r.ID,
		MovieName:   *r.MovieName,
		Director:    *r.Director,
		Year:        *r.Year,
		Genre:       *r.Genre,
		Description: *r.Description,
		Duration:    *r.Duration,
		IMDBRating:  *r.IMDBRating,
	}
}

// MovieLoader implements movie.Loader over a data file.
type MovieLoader struct {
	Source Source
}

func NewMovieLoader(s Source) *MovieLoader {
	return &MovieLoader{Source: s}
}

func (l *MovieLoader) LoadAll(_ context.Context) ([]movie.Movie, error) {
	records, err := decodeRecords[movieRecord](l.Source)
	if err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(records))
	for i, r := range records {
		movies[i] = r.toMovie()
	}
	return movies, nil
}
