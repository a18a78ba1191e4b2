package coord

import "math"

// Square addresses one axis-aligned square cell. There is no algebraic
// constraint between X and Y.
type Square struct {
	X, Y int
}

// squareRing lists the 8 Moore-neighborhood offsets. Order is fixed so that
// ring enumeration is deterministic.
var squareRing = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// SquareAt maps a continuous point to its square cell by floor division.
// Deterministic and total for sideLen > 0. Complexity: O(1).
func SquareAt(x, y, sideLen float64) Square {
	return Square{
		X: int(math.Floor(x / sideLen)),
		Y: int(math.Floor(y / sideLen)),
	}
}

// OneRing returns the 8 Moore neighbors of this cell.
func (c Square) OneRing() [8]Square {
	var ring [8]Square
	for i, d := range squareRing {
		ring[i] = Square{X: c.X + d[0], Y: c.Y + d[1]}
	}

	return ring
}

// RingClipped returns the subset of the one-ring reachable from the query
// point (x, y) within one side length. Edge-adjacent neighbors always
// qualify; a corner-adjacent neighbor is kept only when the shared corner
// lies strictly closer than sideLen to the query point. The result is always
// a subset of OneRing in the same order.
func (c Square) RingClipped(x, y, sideLen float64) []Square {
	sx := float64(c.X) * sideLen
	sy := float64(c.Y) * sideLen
	s2 := sideLen * sideLen

	ring := make([]Square, 0, 8)
	for _, d := range squareRing {
		if d[0] != 0 && d[1] != 0 {
			// Corner shared with the diagonal neighbor (d[0], d[1]).
			cx, cy := sx, sy
			if d[0] > 0 {
				cx += sideLen
			}
			if d[1] > 0 {
				cy += sideLen
			}
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) >= s2 {
				continue
			}
		}
		ring = append(ring, Square{X: c.X + d[0], Y: c.Y + d[1]})
	}

	return ring
}

// Key returns the canonical key: the cell is already its own minimal form.
func (c Square) Key() Key {
	return Key{A: c.X, B: c.Y}
}

// Center returns the continuous center of the cell.
func (c Square) Center(sideLen float64) Point {
	return Point{
		X: (float64(c.X) + 0.5) * sideLen,
		Y: (float64(c.Y) + 0.5) * sideLen,
	}
}

// SquareFromKey reconstructs the cell addressed by a canonical square key.
func SquareFromKey(k Key) Square {
	return Square{X: k.A, Y: k.B}
}
