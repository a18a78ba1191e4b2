// Package cellhash maps canonical cell keys to 64-bit hash values, from
// which the container derives fixed-size bucket indices.
//
// What:
//
//   - Hasher: the injectable strategy interface — any type that can hash a
//     coord.Key to a uint64. No global state is involved.
//   - Seeded: the production default, a keyed hash over the two key
//     components built on hash/maphash. Each Seeded instance draws a fresh
//     random seed, so bucket layouts differ between processes but stay
//     deterministic within one.
//   - Component: a reproducible alternative for benchmarking. Each key
//     component, widened to int64, is multiplied by a fixed odd constant for
//     its position and XORed into the state. The function is deliberately
//     not symmetric in (A, B); every tiling canonicalizes its components in
//     a fixed order, so symmetry is never required.
//
// Why:
//
//   - The coordinate space is unbounded while the bucket array is fixed, so
//     distinct cells inevitably share buckets. The hash only has to spread
//     cells coarsely; exact-match checks inside each bucket carry
//     correctness.
//   - Swapping in Component makes bucket distributions reproducible across
//     runs, which keeps benchmark comparisons honest.
//
// Complexity: O(1) per key for both strategies.
package cellhash
