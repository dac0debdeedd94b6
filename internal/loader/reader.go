package loader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/course"
)

// ErrNoFile is returned when the file name is empty.
var ErrNoFile = errors.New("no file name given")

// LineError records a line that failed to parse into a course.
type LineError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Report summarizes a completed load.
type Report struct {
	File       string
	Loaded     int         // courses now in the catalog
	Duplicates int         // duplicate ids skipped during inject
	BadLines   []LineError // lines that failed to parse
}

// ReadFile parses every line of the named file into courses. Blank lines are
// skipped; lines that fail to parse are collected as LineErrors and do not
// stop the read. Only opening the file can fail outright.
func ReadFile(path, delimiter string) ([]*course.Course, []LineError, error) {
	if path == "" {
		return nil, nil, ErrNoFile
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		courses  []*course.Course
		badLines []LineError
		lineNo   int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		crs, err := ParseLine(line, delimiter, lineNo)
		if err != nil {
			badLines = append(badLines, LineError{Line: lineNo, Err: err})
			continue
		}
		courses = append(courses, crs)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return courses, badLines, nil
}

// Load reads the named file and replaces the catalog's contents with it.
// A file that yields no valid courses leaves the catalog untouched and
// reports catalog.ErrEmptyBatch.
func Load(cat *catalog.Catalog, path, delimiter string) (Report, error) {
	courses, badLines, err := ReadFile(path, delimiter)
	if err != nil {
		return Report{File: path}, err
	}

	stats, err := cat.Inject(courses)
	if err != nil {
		return Report{File: path, BadLines: badLines}, err
	}
	return Report{
		File:       path,
		Loaded:     stats.Loaded,
		Duplicates: stats.Skipped,
		BadLines:   badLines,
	}, nil
}
