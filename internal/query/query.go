// Package query implements listing and searching over the catalog's sorted
// view. All functions iterate catalog.Sorted() so results come back in
// ascending id order; nothing here touches the buckets directly.
package query

import (
	"errors"
	"strings"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/course"
)

// ErrUnknownCategory is returned by Search for a category it does not know.
var ErrUnknownCategory = errors.New("unknown search category")

// Category selects which course attribute a search matches against.
type Category string

const (
	// ByID matches the course identifier exactly.
	ByID Category = "id"
	// ByTitle matches a substring of the course title.
	ByTitle Category = "title"
	// ByPrerequisite matches any prerequisite entry exactly.
	ByPrerequisite Category = "prereq"
)

// All returns every course in ascending id order.
func All(cat *catalog.Catalog) []*course.Course {
	return cat.Sorted()
}

// WithPrefix returns the courses whose id starts with prefix, in order.
// Used for department listings (e.g. prefix "CS").
func WithPrefix(cat *catalog.Catalog, prefix string) []*course.Course {
	if prefix == "" {
		return cat.Sorted()
	}
	var out []*course.Course
	for _, crs := range cat.Sorted() {
		if strings.HasPrefix(crs.ID(), prefix) {
			out = append(out, crs)
		}
	}
	return out
}

// Search returns the courses matching criteria under the given category.
func Search(cat *catalog.Catalog, category Category, criteria string) ([]*course.Course, error) {
	var match func(*course.Course) bool
	switch category {
	case ByID:
		match = func(c *course.Course) bool { return c.ID() == criteria }
	case ByTitle:
		match = func(c *course.Course) bool { return strings.Contains(c.Title(), criteria) }
	case ByPrerequisite:
		match = func(c *course.Course) bool { return c.HasPrerequisite(criteria) }
	default:
		return nil, ErrUnknownCategory
	}

	var out []*course.Course
	for _, crs := range cat.Sorted() {
		if match(crs) {
			out = append(out, crs)
		}
	}
	return out, nil
}
