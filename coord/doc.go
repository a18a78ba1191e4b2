// Package coord converts continuous 2D positions into discrete cells under
// one of three interchangeable tilings and enumerates each cell's fixed ring
// of geometric neighbors.
//
// What:
//
//   - Square: integer (X,Y) cells of a given side length; 8 Moore neighbors.
//   - Hex: axial (Q,R) cells of a given circumradius with derived S = −Q−R;
//     6 neighbors; fractional coordinates are snapped to the lattice by
//     minimum-total-error rounding.
//   - Tri: (S,T,U) cells of a given side length with invariant S+T+U ∈ {1,2};
//     the sum decides whether the triangle points up (2) or down (1), which
//     selects one of two 12-entry neighbor tables.
//   - Kind bundles a Shape with its scale parameter for runtime dispatch.
//   - Key is the canonical, injective 2D integer form of any cell, suitable
//     for exact-match lookup after coarse hashing.
//
// Why:
//
//   - Proximity queries: "what is stored near this point" reduces to a cell
//     plus its one-ring under any of the tilings.
//   - Broad-phase collision: a cell sized to the query radius bounds the
//     candidate set to NEIGHBORS+1 cells.
//
// Complexity:
//
//   - SquareAt / HexAt / TriAt: O(1).
//   - OneRing: O(NEIGHBORS) — 8, 6, or 12 cells from precomputed offsets.
//
// Errors:
//
//   - ErrNonPositiveScale: side length or circumradius ≤ 0 (Kind.Validate).
//
// Internal invariant violations (a triangular sum outside {1,2} that the
// single epsilon nudge cannot repair) panic with a "coord:" prefixed message;
// they indicate a broken transform, not caller error.
package coord
