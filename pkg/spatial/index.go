package spatial

import "image"

// Entry wraps a user-supplied value with an integer ID.
type Entry[T Spatial] struct {
	ID   int
	Data T
}

// Index is an ordered collection of Spatial values. Later entries are
// considered on top of earlier ones for hit testing.
type Index[T Spatial] struct {
	entries map[int]*Entry[T]
	order   []int
	nextID  int
}

// New creates an empty index.
func New[T Spatial]() *Index[T] {
	return &Index[T]{entries: make(map[int]*Entry[T])}
}

// Add inserts a value and returns its assigned ID.
func (ix *Index[T]) Add(data T) int {
	id := ix.nextID
	ix.nextID++
	ix.entries[id] = &Entry[T]{ID: id, Data: data}
	ix.order = append(ix.order, id)
	return id
}

// Get returns the entry with the given ID, or nil.
func (ix *Index[T]) Get(id int) *Entry[T] {
	return ix.entries[id]
}

// Len returns the number of entries.
func (ix *Index[T]) Len() int {
	return len(ix.order)
}

// Entries returns all entries in insertion order.
func (ix *Index[T]) Entries() []*Entry[T] {
	result := make([]*Entry[T], 0, len(ix.order))
	for _, id := range ix.order {
		result = append(result, ix.entries[id])
	}
	return result
}

// HitTest returns the topmost (last-inserted) entry containing pt, or nil.
func (ix *Index[T]) HitTest(pt image.Point) *Entry[T] {
	for i := len(ix.order) - 1; i >= 0; i-- {
		e := ix.entries[ix.order[i]]
		if pt.In(BoundsOf(e.Data)) {
			return e
		}
	}
	return nil
}

// Neighbor returns the closest entry lying entirely in direction d from
// the entry with the given ID, or nil.
//
// Left and Right only consider entries sharing rows with the origin. Up and
// Down pick the nearest row first, then the entry whose center is closest
// horizontally. Ties go to the earlier entry.
func (ix *Index[T]) Neighbor(id int, d Direction) *Entry[T] {
	from := ix.entries[id]
	if from == nil {
		return nil
	}
	fb := BoundsOf(from.Data)
	fc := CenterOf(from.Data)

	var (
		best       *Entry[T]
		bestGap    int
		bestOffset int
	)
	for _, oid := range ix.order {
		if oid == id {
			continue
		}
		e := ix.entries[oid]
		b := BoundsOf(e.Data)
		c := CenterOf(e.Data)

		var gap, offset int
		switch d {
		case Up:
			if b.Max.Y > fb.Min.Y {
				continue
			}
			gap, offset = fb.Min.Y-b.Max.Y, abs(c.X-fc.X)
		case Down:
			if b.Min.Y < fb.Max.Y {
				continue
			}
			gap, offset = b.Min.Y-fb.Max.Y, abs(c.X-fc.X)
		case Left:
			if b.Max.X > fb.Min.X || !spansRows(b, fb) {
				continue
			}
			gap, offset = fb.Min.X-b.Max.X, abs(c.Y-fc.Y)
		case Right:
			if b.Min.X < fb.Max.X || !spansRows(b, fb) {
				continue
			}
			gap, offset = b.Min.X-fb.Max.X, abs(c.Y-fc.Y)
		default:
			return nil
		}

		if best == nil || gap < bestGap || (gap == bestGap && offset < bestOffset) {
			best, bestGap, bestOffset = e, gap, offset
		}
	}
	return best
}

// spansRows reports whether a and b overlap vertically.
func spansRows(a, b image.Rectangle) bool {
	return a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
