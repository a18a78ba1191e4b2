package spatial

import (
	"iter"

	"github.com/katalvlaran/spatialhash/coord"
)

// All returns every non-empty cell across all buckets as an (approximate
// continuous center, values) pair. Square and hexagonal centers are exact;
// the triangular center is an approximation (the reconstruction from a
// triangular cell back to the plane is an acknowledged incomplete mapping),
// though it always lands inside the originating cell. Iteration order is
// unspecified. Each yielded slice is a read-only view.
// Complexity: O(N + non-empty cells).
func (h *SpatialHash[T]) All() iter.Seq2[coord.Point, []T] {
	return func(yield func(coord.Point, []T) bool) {
		for _, b := range h.buckets {
			for k, vs := range b {
				if len(vs) == 0 {
					continue
				}
				if !yield(h.centerOf(k), vs) {
					return
				}
			}
		}
	}
}

// centerOf reconstructs the approximate continuous center of the cell a
// canonical key addresses, dispatched on the tiling.
func (h *SpatialHash[T]) centerOf(k coord.Key) coord.Point {
	scale := h.kind.Scale()
	switch h.kind.Shape() {
	case coord.ShapeCube:
		return coord.SquareFromKey(k).Center(scale)
	case coord.ShapeHexagon:
		return coord.HexFromKey(k).Center(scale)
	default:
		return coord.TriFromKey(k).Center(scale)
	}
}
