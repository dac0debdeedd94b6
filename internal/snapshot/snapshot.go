// Package snapshot writes the catalog to a TOML file and reads it back.
// Snapshots are a convenience export of the sorted view; importing one runs
// every record back through the course builder so a hand-edited file cannot
// smuggle invalid data into the catalog.
package snapshot

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/abcu/advisor/internal/course"
)

// ErrFileExists indicates the output file already exists and Overwrite was not set.
var ErrFileExists = errors.New("snapshot file already exists")

// WriteOptions controls how a snapshot is written to disk.
type WriteOptions struct {
	Overwrite bool // If true, overwrite an existing snapshot file.
}

// document is the on-disk TOML shape.
type document struct {
	Courses []record `toml:"courses"`
}

type record struct {
	ID            string   `toml:"id"`
	Title         string   `toml:"title"`
	Prerequisites []string `toml:"prerequisites,omitempty"`
}

// Write marshals courses (in the order given, normally the sorted view) to
// path. The file is written to a temp path first and renamed into place, so
// a failed write never leaves a truncated snapshot behind.
func Write(path string, courses []*course.Course, opts WriteOptions) error {
	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		return fmt.Errorf("%w: %s; use --force to overwrite", ErrFileExists, path)
	}

	doc := document{Courses: make([]record, 0, len(courses))}
	for _, c := range courses {
		doc.Courses = append(doc.Courses, record{
			ID:            c.ID(),
			Title:         c.Title(),
			Prerequisites: c.Prerequisites(),
		})
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalizing snapshot: %w", err)
	}
	return nil
}

// Read parses a snapshot file back into courses. Each record is rebuilt
// through the course builder; a record that fails validation fails the
// whole read so partial imports never happen silently.
func Read(path string) ([]*course.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	courses := make([]*course.Course, 0, len(doc.Courses))
	for i, r := range doc.Courses {
		fields := append([]string{r.ID, r.Title}, r.Prerequisites...)
		crs, err := course.Build(fields)
		if err != nil {
			return nil, fmt.Errorf("snapshot record %d: %w", i+1, err)
		}
		courses = append(courses, crs)
	}
	return courses, nil
}
