// Package course defines the immutable course record and the builder that
// validates raw text fields into one.
package course

import "strings"

// Course is an immutable course record. Construct one with New or Build;
// fields are never mutated afterward.
type Course struct {
	id      string
	title   string
	prereqs []string
}

// New creates a Course from already-validated parts. The prerequisite slice
// is copied so the caller cannot alias internal state.
func New(id, title string, prereqs []string) *Course {
	var p []string
	if len(prereqs) > 0 {
		p = make([]string, len(prereqs))
		copy(p, prereqs)
	}
	return &Course{id: id, title: title, prereqs: p}
}

// ID returns the unique course identifier (schema: 4 letters + 3 digits).
func (c *Course) ID() string { return c.id }

// Title returns the course title.
func (c *Course) Title() string { return c.title }

// Prerequisites returns a copy of the prerequisite identifiers, in the
// order they appeared in the source data.
func (c *Course) Prerequisites() []string {
	if len(c.prereqs) == 0 {
		return nil
	}
	p := make([]string, len(c.prereqs))
	copy(p, c.prereqs)
	return p
}

// HasPrerequisite reports whether id appears in the prerequisite list.
func (c *Course) HasPrerequisite(id string) bool {
	for _, p := range c.prereqs {
		if p == id {
			return true
		}
	}
	return false
}

// String renders the course in the catalog's one-line display format.
func (c *Course) String() string {
	prereqs := "None"
	if len(c.prereqs) > 0 {
		prereqs = strings.Join(c.prereqs, ", ")
	}
	return c.id + ": " + c.title + "; Prerequisites: " + prereqs
}
