package spatial

import (
	"iter"

	"github.com/katalvlaran/spatialhash/coord"
)

// QueryOneRing returns a lazy sequence of per-cell value lists for the cell
// containing (x, y) followed by each of its ring neighbors. Cells with
// nothing stored are skipped rather than yielded empty, so the sequence has
// at most NEIGHBORS+1 entries. Each yielded slice is a read-only view.
// Complexity: O(NEIGHBORS) expected.
func (h *SpatialHash[T]) QueryOneRing(x, y float64) iter.Seq[[]T] {
	keys := h.ringKeys(x, y)

	return func(yield func([]T) bool) {
		for _, k := range keys {
			if vs := h.lookup(k); len(vs) > 0 {
				if !yield(vs) {
					return
				}
			}
		}
	}
}

// QueryRingClipped behaves like QueryOneRing but, on the square tiling,
// prunes corner neighbors whose shared corner lies a full side length or
// more from the query point — those cells cannot contain anything within
// one cell's reach of (x, y). Hexagonal and triangular tilings have no such
// cheap geometric cut and fall back to the full ring.
func (h *SpatialHash[T]) QueryRingClipped(x, y float64) iter.Seq[[]T] {
	if h.kind.Shape() != coord.ShapeCube {
		return h.QueryOneRing(x, y)
	}

	scale := h.kind.Scale()
	c := coord.SquareAt(x, y, scale)
	keys := make([]coord.Key, 0, 9)
	keys = append(keys, c.Key())
	for _, n := range c.RingClipped(x, y, scale) {
		keys = append(keys, n.Key())
	}

	return func(yield func([]T) bool) {
		for _, k := range keys {
			if vs := h.lookup(k); len(vs) > 0 {
				if !yield(vs) {
					return
				}
			}
		}
	}
}

// AddOneRing duplicates v into the cell containing (x, y) and every one of
// its ring neighbors, so that a later exact-cell or ring query issued from
// an adjacent cell still finds it. fn, when non-nil, is invoked with each
// touched cell's updated value list in turn. Requires a copyable value; the
// same v is stored NEIGHBORS+1 times and Len grows by that amount.
// Complexity: O(NEIGHBORS) expected.
func (h *SpatialHash[T]) AddOneRing(x, y float64, v T, fn func(cell []T)) {
	for _, k := range h.ringKeys(x, y) {
		vs := h.appendAt(k, v)
		if fn != nil {
			fn(vs)
		}
	}
}
