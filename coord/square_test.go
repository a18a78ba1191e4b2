package coord_test

import (
	"testing"

	"github.com/katalvlaran/spatialhash/coord"
)

//----------------------------------------------------------------------------//
// SquareAt and canonical key
//----------------------------------------------------------------------------//

// TestSquareAt verifies floor-division discretisation, including negative
// coordinates and non-unit side lengths.
func TestSquareAt(t *testing.T) {
	cases := []struct {
		name    string
		x, y    float64
		sideLen float64
		want    coord.Square
	}{
		{"UnitCellOrigin", 0.5, 0.5, 1.0, coord.Square{X: 0, Y: 0}},
		{"UnitCellFar", 2.5, 2.5, 1.0, coord.Square{X: 2, Y: 2}},
		{"NegativeFloors", -0.5, -0.5, 1.0, coord.Square{X: -1, Y: -1}},
		{"ExactBoundary", 1.0, 2.0, 1.0, coord.Square{X: 1, Y: 2}},
		{"WideCells", 7.0, -3.0, 2.5, coord.Square{X: 2, Y: -2}},
		{"TinyCells", 0.05, 0.04, 0.1, coord.Square{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := coord.SquareAt(tc.x, tc.y, tc.sideLen)
			if got != tc.want {
				t.Errorf("SquareAt(%v,%v,%v) = %+v; want %+v", tc.x, tc.y, tc.sideLen, got, tc.want)
			}
			// Referential stability across repeated calls.
			if again := coord.SquareAt(tc.x, tc.y, tc.sideLen); again != got {
				t.Errorf("SquareAt not deterministic: %+v then %+v", got, again)
			}
		})
	}
}

// TestSquareKeyCenter verifies the key is the cell itself and that the cell
// center maps back into the same cell.
func TestSquareKeyCenter(t *testing.T) {
	cells := []coord.Square{{X: 0, Y: 0}, {X: 3, Y: -2}, {X: -7, Y: 11}}
	for _, side := range []float64{0.1, 1.0, 20.1} {
		for _, c := range cells {
			if k := c.Key(); k != (coord.Key{A: c.X, B: c.Y}) {
				t.Errorf("Key(%+v) = %+v; want the cell itself", c, k)
			}
			if got := coord.SquareFromKey(c.Key()); got != c {
				t.Errorf("SquareFromKey(Key(%+v)) = %+v", c, got)
			}
			ctr := c.Center(side)
			if got := coord.SquareAt(ctr.X, ctr.Y, side); got != c {
				t.Errorf("SquareAt(Center(%+v), %v) = %+v", c, side, got)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// One-ring
//----------------------------------------------------------------------------//

// TestSquareOneRing checks the Moore neighborhood: 8 distinct cells, none
// equal to the center, and adjacency symmetry.
func TestSquareOneRing(t *testing.T) {
	c := coord.Square{X: 4, Y: -3}
	ring := c.OneRing()

	seen := make(map[coord.Square]bool, 8)
	for _, n := range ring {
		if n == c {
			t.Errorf("one-ring contains the center cell %+v", c)
		}
		if seen[n] {
			t.Errorf("duplicate neighbor %+v", n)
		}
		seen[n] = true

		back := false
		for _, m := range n.OneRing() {
			if m == c {
				back = true
				break
			}
		}
		if !back {
			t.Errorf("adjacency not symmetric: %+v missing from ring of %+v", c, n)
		}
	}
	if len(seen) != 8 {
		t.Errorf("ring size = %d; want 8", len(seen))
	}
}

// TestSquareRingClipped verifies the clipped ring is an order-preserving
// subset of the full ring and that far corner neighbors are pruned.
func TestSquareRingClipped(t *testing.T) {
	c := coord.Square{X: 0, Y: 0}

	// Query near the (0,0) corner: only the opposite corner neighbor (1,1)
	// has its shared corner a full side length away.
	clipped := c.RingClipped(0.05, 0.05, 1.0)
	if len(clipped) != 7 {
		t.Fatalf("clipped ring size = %d; want 7", len(clipped))
	}
	for _, n := range clipped {
		if n == (coord.Square{X: 1, Y: 1}) {
			t.Errorf("far corner neighbor (1,1) not pruned")
		}
	}

	// Query at the cell center keeps the entire ring.
	full := c.RingClipped(0.5, 0.5, 1.0)
	if len(full) != 8 {
		t.Errorf("center query clipped ring size = %d; want 8", len(full))
	}

	// Subset property: every clipped neighbor appears in the full ring.
	ring := c.OneRing()
	for _, n := range clipped {
		found := false
		for _, m := range ring {
			if m == n {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("clipped neighbor %+v not in the full ring", n)
		}
	}
}
