package course

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooFewFields is returned when a record has fewer than two fields.
var ErrTooFewFields = errors.New("record needs at least an id and a title")

// ErrInvalidID is returned when an identifier does not match the
// four-letters-three-digits schema.
var ErrInvalidID = errors.New("invalid course id")

// ErrInvalidTitle is returned when a title is empty or contains control bytes.
var ErrInvalidTitle = errors.New("invalid course title")

// ValidID reports whether s matches the course identifier schema:
// exactly four alphabetic characters followed by three digits (e.g. MATH201).
func ValidID(s string) bool {
	if len(s) != 7 {
		return false
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	for i := 4; i < 7; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// validTitle reports whether s is non-empty and free of raw newline,
// carriage-return, and tab bytes.
func validTitle(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, "\n\r\t")
}

// Clean strips quote characters and escape bytes from s and trims
// surrounding whitespace. Every raw field passes through here before
// validation.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\'', '\n', '\r', '\t':
		default:
			b.WriteByte(s[i])
		}
	}
	return strings.TrimSpace(b.String())
}

// Build validates raw fields and constructs a Course. Field 0 is the
// identifier, field 1 the title, and any remaining fields are prerequisite
// identifiers. Prerequisite tokens that fail the identifier schema are
// dropped silently; a malformed id or title rejects the whole record.
func Build(fields []string) (*Course, error) {
	if len(fields) == 0 {
		return nil, ErrTooFewFields
	}

	cleaned := make([]string, len(fields))
	for i, f := range fields {
		cleaned[i] = Clean(f)
	}

	if len(cleaned) < 2 {
		return nil, fmt.Errorf("%w: got %d field(s)", ErrTooFewFields, len(cleaned))
	}
	if !ValidID(cleaned[0]) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, cleaned[0])
	}
	if !validTitle(cleaned[1]) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTitle, cleaned[1])
	}

	var prereqs []string
	for _, p := range cleaned[2:] {
		if ValidID(p) {
			prereqs = append(prereqs, p)
		}
	}

	return New(cleaned[0], cleaned[1], prereqs), nil
}
