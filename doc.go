// Package spatialhash is an in-memory 2D proximity index: continuous (x,y)
// positions are discretised into cells under one of three interchangeable
// tilings, bucketed into a fixed number of hash slots, and queried by cell
// or by cell-plus-ring.
//
// 🚀 What is spatialhash?
//
//	A small, single-threaded library that brings together:
//		• Coordinate systems: square, hexagonal (axial) and triangular cells,
//		  each with exact neighbor-ring enumeration
//		• Two-level hashing: coarse fixed-size buckets + exact per-cell match,
//		  so an unbounded plane fits a 256-slot array
//		• Ring queries & ring replication for broad-phase proximity checks
//		• Conflict-resolved insertion (at most one value per cell)
//		• Line stamping via Bresenham and Wu rasterisation
//
// ✨ Why choose spatialhash?
//
//   - Predictable cost – every call is a bounded, synchronous computation
//   - No hidden state – the hash strategy is an injectable value, nothing global
//   - Pick your tiling at runtime – one container type, three geometries
//   - Pure Go – stdlib only at runtime, testify only in tests
//
// Everything is organized under four subpackages:
//
//	coord/    — Square, Hex, Tri cells, rings, canonical keys, Kind dispatch
//	cellhash/ — Hasher strategies: Seeded (default) and Component (reproducible)
//	spatial/  — the SpatialHash[T] container: add, query, rings, lines, iterate
//	lines/    — Bresenham and Wu cell rasterisers as lazy sequences
//
// Quick ASCII example:
//
//	    ┌──┬──┬──┐
//	    │  │▒▒│  │   a value added at ▒ is found by Query there
//	    ├──┼──┼──┤   and by QueryOneRing from any of the 8 cells
//	    │  │  │  │   around it.
//	    └──┴──┴──┘
//
// Dive into the per-package doc.go files for options, errors, and
// complexity notes, and examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/spatialhash
package spatialhash
