package coord

import (
	"fmt"
	"math"
)

// Tri addresses one equilateral triangle cell in a barycentric-like integer
// coordinate system. Invariant: S+T+U ∈ {1, 2}. A sum of 2 means the
// triangle points up, a sum of 1 means it points down; the orientation
// selects which neighbor table applies.
type Tri struct {
	S, T, U int
}

// triNudgeScale is the relative x nudge applied once when a point lands
// exactly on a triangle edge and the three plane equations degenerate to a
// zero sum. The nudge is a tie-break, not an error.
const triNudgeScale = 1e-6

// triRingUp and triRingDown are the orientation-dependent neighbor tables.
// The first three entries are the face-adjacent triangles, the middle six
// share an edge-midpoint vertex, and the last three share only the far
// vertex on each side.
var (
	triRingUp = [12][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{-1, 1, 0}, {0, -1, 1}, {1, 0, -1},
		{1, -1, 0}, {0, 1, -1}, {-1, 0, 1},
		{1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	}
	triRingDown = [12][3]int{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1, 1, 0}, {0, -1, 1}, {1, 0, -1},
		{1, -1, 0}, {0, 1, -1}, {-1, 0, 1},
		{-1, 1, 1}, {1, -1, 1}, {1, 1, -1},
	}
)

// TriAt maps a continuous point to its triangular cell. The cell index along
// each of the three edge directions comes from one ceil/floor plane
// equation; their sum must land in {1, 2}. A sum of exactly 0 occurs when
// the point sits on a triangle edge and floating round-off ties all three
// planes at once; the point is then nudged along x by a tiny epsilon and
// converted again. Deterministic and total for sideLen > 0. Complexity: O(1).
func TriAt(x, y, sideLen float64) Tri {
	if c, ok := triAt(x, y, sideLen); ok {
		return c
	}
	c, ok := triAt(x+sideLen*triNudgeScale, y, sideLen)
	if !ok {
		panic(fmt.Sprintf("coord: degenerate triangular cell persists after nudge at (%v, %v) side %v", x, y, sideLen))
	}

	return c
}

// triAt evaluates the three plane equations once. It reports ok=false only
// for the repairable zero-sum boundary case; any other sum outside {1, 2}
// panics, because it indicates a broken transform rather than bad input.
func triAt(x, y, sideLen float64) (Tri, bool) {
	root3 := math.Sqrt(3)
	yr3d3 := y * root3 / 3

	s := int(math.Ceil((x - yr3d3) / sideLen))
	t := int(math.Floor(y*root3*2/3/sideLen)) + 1
	u := int(math.Ceil((-x - yr3d3) / sideLen))

	switch s + t + u {
	case 1, 2:
		return Tri{S: s, T: t, U: u}, true
	case 0:
		return Tri{}, false
	default:
		panic(fmt.Sprintf("coord: triangular sum %d out of range for (%v, %v) side %v", s+t+u, x, y, sideLen))
	}
}

// PointsUp reports the cell orientation: true when S+T+U == 2.
func (c Tri) PointsUp() bool {
	return c.S+c.T+c.U == 2
}

// OneRing returns the 12 neighbors of this cell: 3 face-adjacent triangles
// plus 9 vertex-adjacent ones, selected by orientation.
func (c Tri) OneRing() [12]Tri {
	table := &triRingDown
	if c.PointsUp() {
		table = &triRingUp
	}

	var ring [12]Tri
	for i, d := range table {
		ring[i] = Tri{S: c.S + d[0], T: c.T + d[1], U: c.U + d[2]}
	}

	return ring
}

// Key returns the canonical key (2S + parity, T), where parity is 1 for
// cells that point up and 0 otherwise. Folding the orientation bit into the
// doubled S component collapses the redundant third coordinate while staying
// injective.
func (c Tri) Key() Key {
	parity := 0
	if c.PointsUp() {
		parity = 1
	}

	return Key{A: 2*c.S + parity, B: c.T}
}

// Center returns an approximate continuous center of the cell: the exact
// centroid in y, and the midpoint of the s/u plane bounds in x. The mapping
// back from triangular cells to the plane is intentionally approximate; it
// is sufficient for TriAt(Center()) to land back in the same cell.
func (c Tri) Center(sideLen float64) Point {
	return Point{
		X: float64(c.S-c.U) * sideLen / 2,
		Y: (float64(c.T) - 0.5) * sideLen * math.Sqrt(3) / 2,
	}
}

// TriFromKey reconstructs the cell addressed by a canonical triangular key.
func TriFromKey(k Key) Tri {
	parity := ((k.A % 2) + 2) % 2
	s := (k.A - parity) / 2
	t := k.B
	sum := 1 + parity

	return Tri{S: s, T: t, U: sum - s - t}
}
