// Package spatial implements the container of the module: a fixed-size
// bucket array answering "what is stored near this point" under a square,
// hexagonal, or triangular tiling.
//
// What:
//
//   - SpatialHash[T] owns N hash buckets (default 256), an immutable
//     coord.Kind picked at construction, and an injectable cellhash.Hasher.
//   - Two-level lookup: a cell's canonical key is hashed into one of the N
//     buckets, then matched exactly inside the bucket. Distinct cells
//     routinely share a bucket, so the exact match is mandatory on every
//     read and write path; the bucket index alone is never trusted.
//   - Add / Query / QueryOneRing / AddOneRing for point and ring access,
//     AddResolve for at-most-one-value-per-cell semantics, AddLineBresenham
//     and AddLineWu for stamping a value along a segment, SameBin, Clear,
//     Len, and All for whole-container iteration.
//
// Why:
//
//   - Broad-phase collision: size cells to the query radius, replicate or
//     ring-query, and candidate sets shrink from "everything" to a ring.
//   - Unbounded worlds: the bucket array never grows, yet any cell
//     coordinate remains addressable.
//
// Complexity:
//
//   - Add, Query, SameBin: O(1) expected.
//   - Ring operations: O(NEIGHBORS) — 8, 6, or 12 cells plus the center.
//   - Line operations: O(length of the rasterised path).
//   - Clear: O(N + non-empty cells).
//
// Options:
//
//   - WithBuckets(n): bucket count, default DefaultBuckets (256).
//   - WithHasher(h): hash strategy, default cellhash.NewSeeded();
//     substitute cellhash.Component{} for reproducible layouts.
//
// Errors:
//
//   - coord.ErrNonPositiveScale: construction with scale ≤ 0.
//   - ErrBadBucketCount: WithBuckets(n ≤ 0).
//   - ErrNilHasher: WithHasher(nil).
//   - ErrNilResolve: AddResolve without a resolver.
//   - ErrCellConflict: AddResolve on a cell already holding more than one
//     value, which breaks that API's one-value-per-cell precondition.
//
// Concurrency: none. The container performs no locking; any number of
// concurrent readers are safe, but a mutating call requires exclusive
// access arranged by the caller.
package spatial
