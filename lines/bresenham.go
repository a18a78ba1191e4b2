package lines

import "iter"

// Cell is one integer grid cell on a rasterised path.
type Cell struct {
	X, Y int
}

// Bresenham returns the lazy sequence of cells the segment from (x0, y0) to
// (x1, y1) passes through, both endpoints included. Consecutive cells differ
// by at most 1 in each axis. The walk is bounded to max(|Δx|, |Δy|)+1 steps
// after the start cell and stops as soon as the end cell is reached, so it
// never overshoots. Complexity: O(max(|Δx|, |Δy|)).
func Bresenham(x0, y0, x1, y1 int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		dx := absInt(x1 - x0)
		sx := -1
		if x0 < x1 {
			sx = 1
		}
		dy := -absInt(y1 - y0)
		sy := -1
		if y0 < y1 {
			sy = 1
		}
		err := dx + dy

		cx, cy := x0, y0
		if !yield(Cell{X: cx, Y: cy}) {
			return
		}

		maxSteps := max(absInt(x1-x0), absInt(y1-y0))
		for i := 0; i <= maxSteps; i++ {
			if cx == x1 && cy == y1 {
				return
			}

			e2 := 2 * err
			if e2 >= dy {
				if cx == x1 {
					return
				}
				err += dy
				cx += sx
			}
			if e2 <= dx {
				if cy == y1 {
					return
				}
				err += dx
				cy += sy
			}

			if !yield(Cell{X: cx, Y: cy}) {
				return
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
