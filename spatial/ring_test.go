package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialhash/spatial"
)

//----------------------------------------------------------------------------//
// Ring queries
//----------------------------------------------------------------------------//

// TestHexLocality is the dense-fill scenario: 128×128 points over [0,1]²
// into hexagonal cells of circumradius 0.1. The ring union around the middle
// must be non-empty yet strictly smaller than the whole dataset.
func TestHexLocality(t *testing.T) {
	h, err := spatial.Hexagon[struct{}](0.1)
	require.NoError(t, err)

	const freq = 128
	for i := 0; i < freq; i++ {
		for j := 0; j < freq; j++ {
			h.Add(float64(i)/freq, float64(j)/freq, struct{}{})
		}
	}
	require.Equal(t, freq*freq, h.Len())

	total := 0
	for vs := range h.QueryOneRing(0.5, 0.5) {
		require.NotEmpty(t, vs)
		total += len(vs)
	}
	require.Positive(t, total)
	require.Less(t, total, freq*freq)
}

// TestQueryOneRingSkipsEmpty checks that untouched neighbor cells yield
// nothing instead of empty placeholders.
func TestQueryOneRingSkipsEmpty(t *testing.T) {
	h, err := spatial.Cube[string](1.0)
	require.NoError(t, err)

	h.Add(0.5, 0.5, "center")
	h.Add(1.5, 0.5, "east")

	var cells int
	var seen []string
	for vs := range h.QueryOneRing(0.5, 0.5) {
		cells++
		seen = append(seen, vs...)
	}
	require.Equal(t, 2, cells)
	require.ElementsMatch(t, []string{"center", "east"}, seen)
}

// TestQueryOneRingEarlyStop checks lazy consumption: breaking after the
// first cell view is safe.
func TestQueryOneRingEarlyStop(t *testing.T) {
	h, err := spatial.Cube[int](1.0)
	require.NoError(t, err)

	h.Add(0.5, 0.5, 1)
	h.Add(1.5, 0.5, 2)

	var first []int
	for vs := range h.QueryOneRing(0.5, 0.5) {
		first = vs
		break
	}
	require.Equal(t, []int{1}, first)
}

//----------------------------------------------------------------------------//
// Ring replication
//----------------------------------------------------------------------------//

// TestAddOneRing checks replication counts per tiling and that queries from
// an adjacent cell see the replicated value.
func TestAddOneRing(t *testing.T) {
	cases := []struct {
		name    string
		mk      func() (*spatial.SpatialHash[string], error)
		touched int
	}{
		{"Cube", func() (*spatial.SpatialHash[string], error) { return spatial.Cube[string](1.0) }, 9},
		{"Hexagon", func() (*spatial.SpatialHash[string], error) { return spatial.Hexagon[string](1.0) }, 7},
		{"Triangle", func() (*spatial.SpatialHash[string], error) { return spatial.Triangle[string](1.0) }, 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.mk()
			require.NoError(t, err)

			var callbacks int
			h.AddOneRing(0.51, 0.32, "x", func(cell []string) {
				callbacks++
				require.Equal(t, []string{"x"}, cell)
			})
			require.Equal(t, tc.touched, callbacks)
			require.Equal(t, tc.touched, h.Len())

			require.Equal(t, []string{"x"}, h.Query(0.51, 0.32))
		})
	}
}

// TestAddOneRingAdjacentVisibility checks the broad-phase motivation: after
// ring replication, an exact-cell query from the neighboring cell finds the
// value without any ring lookup of its own.
func TestAddOneRingAdjacentVisibility(t *testing.T) {
	h, err := spatial.Cube[string](1.0)
	require.NoError(t, err)

	h.AddOneRing(5.5, 5.5, "peg", nil)
	// All eight neighbors of cell (5,5) hold the value.
	for _, p := range [][2]float64{{6.5, 5.5}, {4.5, 5.5}, {5.5, 6.5}, {5.5, 4.5}, {6.5, 6.5}, {4.5, 4.5}} {
		require.Equal(t, []string{"peg"}, h.Query(p[0], p[1]), "at %v", p)
	}
	// Two cells out is beyond the ring.
	require.Empty(t, h.Query(7.5, 5.5))
}

//----------------------------------------------------------------------------//
// Clipped rings
//----------------------------------------------------------------------------//

// TestQueryRingClippedSubset checks the clipped square ring yields a subset
// of the full ring, and that a query point near one corner prunes the
// opposite diagonal cell.
func TestQueryRingClippedSubset(t *testing.T) {
	h, err := spatial.Cube[string](1.0)
	require.NoError(t, err)

	// Populate the center and all eight neighbors of cell (0,0).
	h.AddOneRing(0.5, 0.5, "v", nil)

	var full, clipped int
	for vs := range h.QueryOneRing(0.05, 0.05) {
		full += len(vs)
	}
	for vs := range h.QueryRingClipped(0.05, 0.05) {
		clipped += len(vs)
	}
	require.Equal(t, 9, full)
	require.Equal(t, 8, clipped, "far corner cell (1,1) should be pruned")
}

// TestQueryRingClippedFallback checks non-square tilings return the full
// ring unchanged.
func TestQueryRingClippedFallback(t *testing.T) {
	h, err := spatial.Hexagon[int](0.5)
	require.NoError(t, err)

	h.AddOneRing(0.3, 0.3, 1, nil)

	var full, clipped int
	for vs := range h.QueryOneRing(0.3, 0.3) {
		full += len(vs)
	}
	for vs := range h.QueryRingClipped(0.3, 0.3) {
		clipped += len(vs)
	}
	require.Equal(t, full, clipped)
}
