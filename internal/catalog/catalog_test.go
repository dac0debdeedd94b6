package catalog

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/abcu/advisor/internal/course"
)

// mustInsert inserts a course built from the given parts and fails the test
// on any error.
func mustInsert(t *testing.T, c *Catalog, id, title string, prereqs ...string) {
	t.Helper()
	if err := c.Insert(course.New(id, title, prereqs)); err != nil {
		t.Fatalf("Insert(%s): %v", id, err)
	}
}

// traverseCount walks every bucket and counts reachable courses, bypassing
// the sorted cache.
func traverseCount(c *Catalog) int {
	n := 0
	for _, chain := range c.buckets {
		n += len(chain)
	}
	return n
}

// syntheticID produces a valid-schema id from an integer: AAAA000, AAAB001...
func syntheticID(i int) string {
	letters := []byte{
		byte('A' + (i/26/26/26)%26),
		byte('A' + (i/26/26)%26),
		byte('A' + (i/26)%26),
		byte('A' + i%26),
	}
	return fmt.Sprintf("%s%03d", letters, i%1000)
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := New()
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
}

func TestNewWithCapacity(t *testing.T) {
	t.Parallel()

	if got := NewWithCapacity(64).Capacity(); got != 64 {
		t.Errorf("Capacity() = %d, want 64", got)
	}
	// Requests below the floor are clamped.
	if got := NewWithCapacity(3).Capacity(); got != MinCapacity {
		t.Errorf("Capacity() = %d, want %d", got, MinCapacity)
	}
	if got := NewWithCapacity(0).Capacity(); got != MinCapacity {
		t.Errorf("Capacity() = %d, want %d", got, MinCapacity)
	}
}

func TestInsert(t *testing.T) {
	t.Parallel()

	t.Run("basic insert and get", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI101", "Intro to Computer Science")

		got, err := c.Get("CSCI101")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Title() != "Intro to Computer Science" {
			t.Errorf("Title = %q", got.Title())
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
	})

	t.Run("nil course", func(t *testing.T) {
		t.Parallel()
		c := New()
		if err := c.Insert(nil); !errors.Is(err, ErrNilCourse) {
			t.Errorf("err = %v, want ErrNilCourse", err)
		}
		if c.Len() != 0 {
			t.Errorf("Len() = %d after rejected insert, want 0", c.Len())
		}
	})

	t.Run("duplicate keeps original", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI101", "Intro")

		err := c.Insert(course.New("CSCI101", "Dup", nil))
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("err = %v, want ErrDuplicate", err)
		}
		got, err := c.Get("CSCI101")
		if err != nil {
			t.Fatalf("Get after duplicate: %v", err)
		}
		if got.Title() != "Intro" {
			t.Errorf("Title = %q, want original %q", got.Title(), "Intro")
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
	})
}

func TestLoadFactorBound(t *testing.T) {
	t.Parallel()

	c := NewWithCapacity(MinCapacity)
	for i := 0; i < 200; i++ {
		mustInsert(t, c, syntheticID(i), "Course")
		if lf := c.LoadFactor(); lf > 0.75 {
			t.Fatalf("load factor %.3f > 0.75 after insert %d (capacity %d)", lf, i+1, c.Capacity())
		}
	}
}

func TestResizePreservesAllRecords(t *testing.T) {
	t.Parallel()

	const n = 500 // well past the initial capacity, forcing several resizes
	c := NewWithCapacity(MinCapacity)
	for i := 0; i < n; i++ {
		mustInsert(t, c, syntheticID(i), fmt.Sprintf("Course %d", i), syntheticID((i+1)%n))
	}

	if c.Len() != n {
		t.Fatalf("Len() = %d, want %d", c.Len(), n)
	}
	if got := traverseCount(c); got != n {
		t.Fatalf("bucket traversal found %d records, want %d", got, n)
	}
	if c.Capacity() <= MinCapacity {
		t.Errorf("Capacity() = %d, expected growth past %d", c.Capacity(), MinCapacity)
	}

	// Every record retrievable with content intact across capacity changes.
	for i := 0; i < n; i++ {
		id := syntheticID(i)
		got, err := c.Get(id)
		if err != nil {
			t.Fatalf("Get(%s) after resize: %v", id, err)
		}
		if want := fmt.Sprintf("Course %d", i); got.Title() != want {
			t.Errorf("Get(%s).Title = %q, want %q", id, got.Title(), want)
		}
		if !got.HasPrerequisite(syntheticID((i + 1) % n)) {
			t.Errorf("Get(%s) lost its prerequisite", id)
		}
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes and frees the id for reuse", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI101", "Intro")
		mustInsert(t, c, "CSCI200", "Data Structures")

		if err := c.Remove("CSCI101"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
		if _, err := c.Get("CSCI101"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get after remove: err = %v, want ErrNotFound", err)
		}
		// The slot is free again.
		mustInsert(t, c, "CSCI101", "Intro v2")
	})

	t.Run("missing id leaves table unchanged", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI101", "Intro")

		if err := c.Remove("ZZZZ999"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		c := New()
		if err := c.Remove(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("removes from a shared bucket", func(t *testing.T) {
		t.Parallel()
		// A tiny catalog guarantees chain collisions.
		c := NewWithCapacity(MinCapacity)
		ids := []string{"AAAA001", "AAAB002", "AAAC003", "AAAD004", "AAAE005"}
		for _, id := range ids {
			mustInsert(t, c, id, "Course "+id)
		}
		if err := c.Remove("AAAC003"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		for _, id := range ids {
			_, err := c.Get(id)
			if id == "AAAC003" {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Get(%s) err = %v, want ErrNotFound", id, err)
				}
			} else if err != nil {
				t.Errorf("Get(%s): %v", id, err)
			}
		}
	})
}

func TestSizeConsistency(t *testing.T) {
	t.Parallel()

	c := NewWithCapacity(MinCapacity)
	for i := 0; i < 100; i++ {
		mustInsert(t, c, syntheticID(i), "Course")
	}
	for i := 0; i < 50; i++ {
		if err := c.Remove(syntheticID(i)); err != nil {
			t.Fatalf("Remove(%s): %v", syntheticID(i), err)
		}
	}
	_ = c.Insert(course.New(syntheticID(60), "Dup", nil)) // duplicate, no-op
	_ = c.Remove("ZZZZ999")                               // miss, no-op

	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
	if got := traverseCount(c); got != c.Len() {
		t.Errorf("traversal found %d records, Len() reports %d", got, c.Len())
	}
	if got := len(c.Sorted()); got != c.Len() {
		t.Errorf("Sorted() has %d records, Len() reports %d", got, c.Len())
	}
}

func TestInject(t *testing.T) {
	t.Parallel()

	t.Run("replaces rather than merges", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "OLDC100", "Old Course")
		mustInsert(t, c, "OLDC200", "Another Old Course")

		stats, err := c.Inject([]*course.Course{
			course.New("NEWC100", "New Course", nil),
			course.New("NEWC200", "Newer Course", []string{"NEWC100"}),
		})
		if err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if stats.Loaded != 2 || stats.Skipped != 0 {
			t.Errorf("stats = %+v, want Loaded=2 Skipped=0", stats)
		}
		for _, old := range []string{"OLDC100", "OLDC200"} {
			if _, err := c.Get(old); !errors.Is(err, ErrNotFound) {
				t.Errorf("old id %s still retrievable after inject", old)
			}
		}
		if _, err := c.Get("NEWC200"); err != nil {
			t.Errorf("Get(NEWC200): %v", err)
		}
		if c.Len() != 2 {
			t.Errorf("Len() = %d, want 2", c.Len())
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI101", "Intro")

		if _, err := c.Inject(nil); !errors.Is(err, ErrEmptyBatch) {
			t.Errorf("err = %v, want ErrEmptyBatch", err)
		}
		if _, err := c.Inject([]*course.Course{}); !errors.Is(err, ErrEmptyBatch) {
			t.Errorf("err = %v, want ErrEmptyBatch", err)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d after empty inject, want 1", c.Len())
		}
		if _, err := c.Get("CSCI101"); err != nil {
			t.Errorf("prior contents disturbed: %v", err)
		}
	})

	t.Run("first occurrence wins on duplicate ids", func(t *testing.T) {
		t.Parallel()
		c := New()
		stats, err := c.Inject([]*course.Course{
			course.New("CSCI101", "First", nil),
			course.New("CSCI101", "Second", nil),
			nil,
			course.New("CSCI200", "Data Structures", nil),
		})
		if err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if stats.Loaded != 2 {
			t.Errorf("Loaded = %d, want 2", stats.Loaded)
		}
		if stats.Skipped != 2 {
			t.Errorf("Skipped = %d, want 2 (one duplicate, one nil)", stats.Skipped)
		}
		got, err := c.Get("CSCI101")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Title() != "First" {
			t.Errorf("Title = %q, want first occurrence %q", got.Title(), "First")
		}
	})

	t.Run("capacity sized to batch", func(t *testing.T) {
		t.Parallel()
		c := New()
		batch := make([]*course.Course, 3000)
		for i := range batch {
			batch[i] = course.New(syntheticID(i), "Course", nil)
		}
		stats, err := c.Inject(batch)
		if err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if stats.Loaded != 3000 {
			t.Errorf("Loaded = %d, want 3000", stats.Loaded)
		}
		if c.Capacity() < 2*3000 {
			t.Errorf("Capacity() = %d, want at least %d", c.Capacity(), 2*3000)
		}
	})
}

func TestSorted(t *testing.T) {
	t.Parallel()

	t.Run("ascending order", func(t *testing.T) {
		t.Parallel()
		c := NewWithCapacity(MinCapacity)
		// Insert out of order across several resizes.
		for i := 99; i >= 0; i-- {
			mustInsert(t, c, syntheticID(i), "Course")
		}
		got := c.Sorted()
		if len(got) != 100 {
			t.Fatalf("Sorted() has %d records, want 100", len(got))
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].ID() < got[j].ID() }) {
			t.Error("Sorted() output not in ascending id order")
		}
	})

	t.Run("cache is reference-stable without mutation", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI200", "Data Structures")
		mustInsert(t, c, "CSCI101", "Intro")

		first := c.Sorted()
		second := c.Sorted()
		if &first[0] != &second[0] || len(first) != len(second) {
			t.Error("Sorted() rebuilt despite no intervening mutation")
		}
	})

	t.Run("every mutation invalidates the cache", func(t *testing.T) {
		t.Parallel()
		c := New()
		mustInsert(t, c, "CSCI101", "Intro")
		_ = c.Sorted()

		mustInsert(t, c, "CSCI200", "Data Structures")
		if got := c.Sorted(); len(got) != 2 {
			t.Errorf("after insert: Sorted() has %d records, want 2", len(got))
		}

		if err := c.Remove("CSCI101"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if got := c.Sorted(); len(got) != 1 || got[0].ID() != "CSCI200" {
			t.Errorf("after remove: Sorted() = %v", got)
		}

		if _, err := c.Inject([]*course.Course{course.New("MATH201", "Calculus", nil)}); err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if got := c.Sorted(); len(got) != 1 || got[0].ID() != "MATH201" {
			t.Errorf("after inject: Sorted() = %v", got)
		}
	})
}

func TestGetReturnsSnapshot(t *testing.T) {
	t.Parallel()

	c := New()
	mustInsert(t, c, "CSCI200", "Data Structures", "CSCI101")

	got, err := c.Get("CSCI200")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	p := got.Prerequisites()
	p[0] = "HACK999"

	again, err := c.Get("CSCI200")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Prerequisites()[0] != "CSCI101" {
		t.Error("mutating a Get snapshot leaked into catalog state")
	}
}

// TestCatalogWalkthrough covers the insert/duplicate/listing path end to end.
func TestCatalogWalkthrough(t *testing.T) {
	t.Parallel()

	c := New()
	mustInsert(t, c, "CSCI101", "Intro")
	mustInsert(t, c, "CSCI202", "Data Structures", "CSCI101")
	if err := c.Insert(course.New("CSCI101", "Dup", nil)); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate insert err = %v", err)
	}

	got := c.Sorted()
	if len(got) != 2 || got[0].ID() != "CSCI101" || got[1].ID() != "CSCI202" {
		t.Fatalf("Sorted() = %v, want [CSCI101 CSCI202]", got)
	}
	if got[0].Title() != "Intro" {
		t.Errorf("CSCI101 title = %q, want original", got[0].Title())
	}
}
