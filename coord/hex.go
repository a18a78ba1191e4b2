package coord

import "math"

// Hex addresses one pointy-top hexagonal cell in axial coordinates.
// The derived third component S() = −Q−R keeps Q+R+S = 0 on the lattice.
type Hex struct {
	Q, R int
}

// hexRing lists the 6 axial neighbor offsets, counter-clockwise from east.
var hexRing = [6][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// HexAt maps a continuous point to its hexagonal cell. The point is first
// converted to fractional axial coordinates, then snapped to the nearest
// lattice cell by minimum-total-error rounding: q, r, and s = −q−r are
// rounded independently and the component with the largest rounding residual
// is recomputed from the other two, which restores q+r+s = 0 and yields the
// nearest cell under the hex metric. Deterministic and total for
// circumradius > 0. Complexity: O(1).
func HexAt(x, y, circumradius float64) Hex {
	root3 := math.Sqrt(3)
	fq := (x*root3/3 - y/3) / circumradius
	fr := (2 * y / 3) / circumradius

	return roundAxial(fq, fr)
}

// roundAxial snaps fractional axial coordinates to the lattice.
func roundAxial(fq, fr float64) Hex {
	fs := -fq - fr
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	qDiff := math.Abs(q - fq)
	rDiff := math.Abs(r - fr)
	sDiff := math.Abs(s - fs)

	switch {
	case qDiff > rDiff && qDiff > sDiff:
		q = -r - s
	case rDiff > sDiff:
		r = -q - s
	}

	return Hex{Q: int(q), R: int(r)}
}

// S returns the derived third axial component, −Q−R.
func (c Hex) S() int { return -c.Q - c.R }

// OneRing returns the 6 axial neighbors of this cell.
func (c Hex) OneRing() [6]Hex {
	var ring [6]Hex
	for i, d := range hexRing {
		ring[i] = Hex{Q: c.Q + d[0], R: c.R + d[1]}
	}

	return ring
}

// Offset returns the cell displaced by (dq, dr).
func (c Hex) Offset(dq, dr int) Hex {
	return Hex{Q: c.Q + dq, R: c.R + dr}
}

// Key returns the canonical key (Q, R); S is redundant and dropped.
func (c Hex) Key() Key {
	return Key{A: c.Q, B: c.R}
}

// Center returns the continuous center of the cell.
func (c Hex) Center(circumradius float64) Point {
	root3 := math.Sqrt(3)

	return Point{
		X: (root3*float64(c.Q) + root3/2*float64(c.R)) * circumradius,
		Y: 1.5 * float64(c.R) * circumradius,
	}
}

// HexFromKey reconstructs the cell addressed by a canonical hex key.
func HexFromKey(k Key) Hex {
	return Hex{Q: k.A, R: k.B}
}
