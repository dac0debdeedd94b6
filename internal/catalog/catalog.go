// Package catalog implements the in-memory course table: a hash table with
// separate chaining, load-factor driven resizing, and a lazily rebuilt
// sorted view. It holds the canonical course state for the whole program;
// all listing and searching goes through Sorted rather than the buckets.
//
// The catalog is not safe for concurrent use. The single menu loop (or a
// single command invocation) owns it for the life of the process.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abcu/advisor/internal/course"
)

// ErrDuplicate is returned when an insert collides with an existing id.
// The original record is retained.
var ErrDuplicate = errors.New("duplicate course")

// ErrNotFound is returned when a lookup or removal misses.
var ErrNotFound = errors.New("course not found")

// ErrEmptyBatch is returned when Inject is called with nothing to load.
var ErrEmptyBatch = errors.New("empty course batch")

// ErrNilCourse is returned when Insert is handed a nil record.
var ErrNilCourse = errors.New("nil course")

const (
	// DefaultCapacity is the initial bucket count for a zero-argument New.
	DefaultCapacity = 1024

	// MinCapacity is the smallest bucket count the catalog will use.
	MinCapacity = 16

	// loadFactorThreshold triggers a resize when size/capacity exceeds it
	// immediately after an insert.
	loadFactorThreshold = 0.75
)

// Catalog maps course id to course using separate chaining. Each bucket is
// a slice of records rather than a linked chain, which keeps removal and
// rehashing free of pointer rewiring.
type Catalog struct {
	buckets  [][]*course.Course
	capacity int
	size     int

	// sorted caches the ascending-by-id view. Every mutation invalidates
	// it; Sorted rebuilds it on demand.
	sorted      []*course.Course
	sortedValid bool
}

// New creates an empty catalog with the default capacity.
func New() *Catalog {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates an empty catalog with at least MinCapacity buckets.
func NewWithCapacity(capacity int) *Catalog {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Catalog{
		buckets:  make([][]*course.Course, capacity),
		capacity: capacity,
	}
}

// hash computes the bucket index for key: a polynomial rolling hash over
// the key's bytes, reduced modulo the current capacity. It must be
// recomputed after any capacity change.
func (c *Catalog) hash(key string) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*31 + int(key[i])) % c.capacity
	}
	return h
}

// Len returns the number of live courses.
func (c *Catalog) Len() int { return c.size }

// Capacity returns the current bucket count.
func (c *Catalog) Capacity() int { return c.capacity }

// LoadFactor returns size divided by capacity.
func (c *Catalog) LoadFactor() float64 {
	return float64(c.size) / float64(c.capacity)
}

// Insert adds crs to the catalog. A record with the same id already present
// leaves the table unchanged and returns ErrDuplicate. After a successful
// insert the catalog resizes if the load factor exceeded the threshold, so
// the bound holds before Insert returns.
func (c *Catalog) Insert(crs *course.Course) error {
	if crs == nil {
		return ErrNilCourse
	}

	idx := c.hash(crs.ID())
	for _, existing := range c.buckets[idx] {
		if existing.ID() == crs.ID() {
			return fmt.Errorf("%w: %s", ErrDuplicate, crs.ID())
		}
	}

	c.buckets[idx] = append(c.buckets[idx], crs)
	c.size++
	c.sortedValid = false

	if c.LoadFactor() > loadFactorThreshold {
		c.resize()
	}
	return nil
}

// resize doubles the capacity and rehashes every record. Hash values depend
// on the modulus, so each record's index is recomputed against the new
// capacity. Every record survives exactly once.
func (c *Catalog) resize() {
	old := c.buckets
	c.capacity *= 2
	c.buckets = make([][]*course.Course, c.capacity)

	for _, chain := range old {
		for _, crs := range chain {
			idx := c.hash(crs.ID())
			c.buckets[idx] = append(c.buckets[idx], crs)
		}
	}
}

// Remove deletes the course with the given id. Returns ErrNotFound if no
// such course exists; the table is unchanged in that case.
func (c *Catalog) Remove(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrNotFound)
	}

	idx := c.hash(id)
	chain := c.buckets[idx]
	for i, crs := range chain {
		if crs.ID() == id {
			c.buckets[idx] = append(chain[:i], chain[i+1:]...)
			c.size--
			c.sortedValid = false
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// InjectStats reports what a bulk replace did.
type InjectStats struct {
	Loaded  int // records now in the catalog
	Skipped int // nil records and duplicate ids dropped
}

// Inject replaces the entire catalog contents with the given batch. An empty
// batch returns ErrEmptyBatch and leaves the catalog untouched. Otherwise the
// old table is discarded and rebuilt with capacity sized to the incoming
// count; duplicate ids within the batch are skipped, first occurrence wins.
func (c *Catalog) Inject(courses []*course.Course) (InjectStats, error) {
	if len(courses) == 0 {
		return InjectStats{}, ErrEmptyBatch
	}

	capacity := DefaultCapacity
	if n := 2 * len(courses); n > capacity {
		capacity = n
	}

	c.buckets = make([][]*course.Course, capacity)
	c.capacity = capacity
	c.size = 0
	c.sorted = nil
	c.sortedValid = false

	var stats InjectStats
	for _, crs := range courses {
		if crs == nil {
			stats.Skipped++
			continue
		}
		if err := c.Insert(crs); err != nil {
			stats.Skipped++
			continue
		}
	}
	stats.Loaded = c.size
	return stats, nil
}

// Get returns a snapshot of the course with the given id, or ErrNotFound.
// The returned value is a copy; mutating it cannot affect catalog state.
func (c *Catalog) Get(id string) (course.Course, error) {
	if id == "" {
		return course.Course{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	idx := c.hash(id)
	for _, crs := range c.buckets[idx] {
		if crs.ID() == id {
			return *crs, nil
		}
	}
	return course.Course{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Sorted returns every live course in ascending id order. The slice is
// cached: repeated calls without intervening mutation return the same
// backing array. Callers must not modify the returned slice.
func (c *Catalog) Sorted() []*course.Course {
	if !c.sortedValid {
		c.rebuildSorted()
	}
	return c.sorted
}

func (c *Catalog) rebuildSorted() {
	all := make([]*course.Course, 0, c.size)
	for _, chain := range c.buckets {
		all = append(all, chain...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID() < all[j].ID()
	})
	c.sorted = all
	c.sortedValid = true
}
