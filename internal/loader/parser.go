// Package loader reads delimited course files into the catalog. Parsing is
// line-oriented: each line splits into fields, the course builder validates
// them, and bad lines are collected as diagnostics instead of aborting the
// load.
package loader

import (
	"fmt"
	"strings"

	"github.com/abcu/advisor/internal/course"
)

// DefaultDelimiter is the field separator assumed for course files.
const DefaultDelimiter = ","

// Split breaks a line into fields on the delimiter's first byte, honoring
// single and double quotes: a delimiter inside a quoted run does not split.
// Quote characters are stripped from the output and consecutive delimiters
// collapse, though a delimiter at the start of the input still yields one
// leading empty field.
func Split(input, delimiter string) []string {
	if input == "" || delimiter == "" {
		return nil
	}
	sep := delimiter[0]

	var fields []string
	start := 0
	for start < len(input) {
		i := start
		inQuotes := false
		var quote byte

		for i < len(input) {
			c := input[i]
			if c == '"' || c == '\'' {
				if !inQuotes {
					inQuotes = true
					quote = c
				} else if c == quote {
					inQuotes = false
				}
			} else if c == sep && !inQuotes {
				break
			}
			i++
		}

		field := strings.Map(func(r rune) rune {
			if r == '"' || r == '\'' {
				return -1
			}
			return r
		}, input[start:i])
		fields = append(fields, field)

		start = i + 1
		for start < len(input) && input[start] == sep {
			start++
		}
	}
	return fields
}

// ParseLine splits a raw line and builds a course from it. lineNo is used
// only for diagnostics.
func ParseLine(line, delimiter string, lineNo int) (*course.Course, error) {
	fields := Split(line, delimiter)
	if len(fields) < 2 {
		return nil, fmt.Errorf("line %d: %w", lineNo, course.ErrTooFewFields)
	}
	crs, err := course.Build(fields)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}
	return crs, nil
}
