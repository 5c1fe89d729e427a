// Package datafile loads the movie catalog and its reviews from static data
// files. The default data set is compiled into the binary; a JSON or YAML
// file on disk can be used instead.
package datafile

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	MoviesFile  = "movies.json"
	ReviewsFile = "reviews.json"
)

//go:embed movies.json reviews.json
var bundled embed.FS

var validate = validator.New()

// Source points at a single data file inside FS.
type Source struct {
	FS   fs.FS
	Path string

	origin string
}

// Embedded returns the bundled copy of name.
func Embedded(name string) Source {
	return Source{FS: bundled, Path: name}
}

// File returns a source reading p from disk.
func File(p string) Source {
	return Source{FS: os.DirFS(filepath.Dir(p)), Path: filepath.Base(p), origin: p}
}

// String names the source for logs: the file path on disk, or the bundled
// file name.
func (s Source) String() string {
	if s.origin != "" {
		return s.origin
	}
	return "bundled:" + s.Path
}

// decodeRecords reads every record of s and validates each of them. The first
// bad record fails the whole file.
func decodeRecords[T any](s Source) ([]T, error) {
	if s.FS == nil || s.Path == "" {
		return nil, errors.New("datafile: source is not configured")
	}

	raw, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return nil, fmt.Errorf("datafile: read %s: %w", s.Path, err)
	}

	var records []T
	switch ext := strings.ToLower(path.Ext(s.Path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &records)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &records)
	default:
		return nil, fmt.Errorf("datafile: unsupported format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("datafile: decode %s: %w", s.Path, err)
	}

	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("datafile: %s record %d: %w", s.Path, i, err)
		}
	}
	return records, nil
}
