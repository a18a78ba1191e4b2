// Package lines enumerates the grid cells a line segment passes through.
//
// What:
//
//   - Bresenham: the classic integer midpoint walk from one cell to another,
//     inclusive of both endpoints. 4- or 8-connected depending on slope.
//   - Wu: the anti-aliased variant over continuous endpoints; every step
//     emits the two cells bracketing the ideal line.
//
// Both return lazy iter.Seq sequences: nothing is computed until ranged
// over, iteration can stop early, and re-ranging restarts from scratch.
//
// Why:
//
//   - Mass-insertion along a segment: a spatial container drives either
//     rasteriser to stamp one value into every crossed cell.
//
// Complexity:
//
//   - Bresenham: at most max(|Δx|, |Δy|)+1 cells; the explicit step bound
//     guarantees termination even under adversarial integer inputs.
//   - Wu: two cells per unit of the major axis.
//
// Degenerate inputs are approximated, not rejected: Wu falls back to a
// gradient of 1 when the major-axis delta is below 1e-4 instead of dividing
// by a near-zero value.
package lines
