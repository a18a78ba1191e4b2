package spatial

import (
	"github.com/katalvlaran/spatialhash/coord"
	"github.com/katalvlaran/spatialhash/lines"
)

// AddLineBresenham stamps v into every cell crossed by the segment from
// (x0, y0) to (x1, y1). Both endpoints are discretised onto the square grid
// at the container's scale and the integer path between them is rasterised
// with Bresenham; each crossed square's center is then inserted under the
// active tiling. On the square tiling this stores v exactly once per crossed
// cell. Requires a copyable value. Complexity: O(path length).
func (h *SpatialHash[T]) AddLineBresenham(x0, y0, x1, y1 float64, v T) {
	scale := h.kind.Scale()
	a := coord.SquareAt(x0, y0, scale)
	b := coord.SquareAt(x1, y1, scale)

	for c := range lines.Bresenham(a.X, a.Y, b.X, b.Y) {
		center := coord.Square{X: c.X, Y: c.Y}.Center(scale)
		h.Add(center.X, center.Y, v)
	}
}

// AddLineWu stamps v into the cells of Wu's anti-aliased rasterisation of
// the segment from (x0, y0) to (x1, y1): both cells bracketing the ideal
// line at every step. Endpoints are scaled into grid units first, so cell
// size follows the container's scale. Requires a copyable value.
// Complexity: O(path length).
func (h *SpatialHash[T]) AddLineWu(x0, y0, x1, y1 float64, v T) {
	scale := h.kind.Scale()

	for c := range lines.Wu(x0/scale, y0/scale, x1/scale, y1/scale) {
		center := coord.Square{X: c.X, Y: c.Y}.Center(scale)
		h.Add(center.X, center.Y, v)
	}
}
