package spatial

import (
	"github.com/katalvlaran/spatialhash/cellhash"
	"github.com/katalvlaran/spatialhash/coord"
)

// bucket is one hash slot: an exact-match mapping from canonical cell key to
// the ordered list of values stored at that cell. Insertion order inside a
// cell is preserved.
type bucket[T any] map[coord.Key][]T

// SpatialHash is a 2D proximity index. Continuous positions are discretised
// by the tiling in kind, coarsely hashed into one of the fixed buckets, and
// matched exactly by canonical key inside the bucket. Kind, hasher, and
// bucket count are immutable for the container's lifetime.
type SpatialHash[T any] struct {
	buckets []bucket[T]
	kind    coord.Kind
	hasher  cellhash.Hasher
	count   int
}

// New creates an empty SpatialHash for the given tiling.
// Returns coord.ErrNonPositiveScale for a scale ≤ 0, ErrBadBucketCount or
// ErrNilHasher for invalid options.
func New[T any](kind coord.Kind, opts ...Option) (*SpatialHash[T], error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	o := options{buckets: DefaultBuckets, hasher: cellhash.NewSeeded()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.buckets <= 0 {
		return nil, ErrBadBucketCount
	}
	if o.hasher == nil {
		return nil, ErrNilHasher
	}

	buckets := make([]bucket[T], o.buckets)
	for i := range buckets {
		buckets[i] = make(bucket[T])
	}

	return &SpatialHash[T]{buckets: buckets, kind: kind, hasher: o.hasher}, nil
}

// Cube creates a SpatialHash over square cells of the given side length.
func Cube[T any](sideLen float64, opts ...Option) (*SpatialHash[T], error) {
	return New[T](coord.Cube(sideLen), opts...)
}

// Hexagon creates a SpatialHash over hexagonal cells of the given
// circumradius.
func Hexagon[T any](circumradius float64, opts ...Option) (*SpatialHash[T], error) {
	return New[T](coord.Hexagon(circumradius), opts...)
}

// Triangle creates a SpatialHash over triangular cells of the given side
// length.
func Triangle[T any](sideLen float64, opts ...Option) (*SpatialHash[T], error) {
	return New[T](coord.Triangle(sideLen), opts...)
}

// TriangleByHeight creates a triangular SpatialHash sized by cell height,
// the natural way to express the query radius of a triangular grid.
func TriangleByHeight[T any](height float64, opts ...Option) (*SpatialHash[T], error) {
	return New[T](coord.TriangleByHeight(height), opts...)
}

// Kind reports the tiling this container was constructed with.
func (h *SpatialHash[T]) Kind() coord.Kind { return h.kind }

// Buckets reports the fixed bucket count N.
func (h *SpatialHash[T]) Buckets() int { return len(h.buckets) }

// keyAt maps a continuous point to its canonical cell key under the active
// tiling.
func (h *SpatialHash[T]) keyAt(x, y float64) coord.Key {
	scale := h.kind.Scale()
	switch h.kind.Shape() {
	case coord.ShapeCube:
		return coord.SquareAt(x, y, scale).Key()
	case coord.ShapeHexagon:
		return coord.HexAt(x, y, scale).Key()
	default:
		return coord.TriAt(x, y, scale).Key()
	}
}

// ringKeys returns the canonical key of the cell containing (x, y) followed
// by the keys of its one-ring, dispatched on the tiling.
func (h *SpatialHash[T]) ringKeys(x, y float64) []coord.Key {
	scale := h.kind.Scale()
	switch h.kind.Shape() {
	case coord.ShapeCube:
		c := coord.SquareAt(x, y, scale)
		keys := make([]coord.Key, 0, 9)
		keys = append(keys, c.Key())
		for _, n := range c.OneRing() {
			keys = append(keys, n.Key())
		}

		return keys
	case coord.ShapeHexagon:
		c := coord.HexAt(x, y, scale)
		keys := make([]coord.Key, 0, 7)
		keys = append(keys, c.Key())
		for _, n := range c.OneRing() {
			keys = append(keys, n.Key())
		}

		return keys
	default:
		c := coord.TriAt(x, y, scale)
		keys := make([]coord.Key, 0, 13)
		keys = append(keys, c.Key())
		for _, n := range c.OneRing() {
			keys = append(keys, n.Key())
		}

		return keys
	}
}

// bucketIndex derives the bucket slot for a key. Always in [0, N).
func (h *SpatialHash[T]) bucketIndex(k coord.Key) int {
	return int(h.hasher.Hash(k) % uint64(len(h.buckets)))
}

// lookup returns the value list stored at the exact cell, or nil. The map
// access is the mandatory exact-match check behind the coarse bucket index.
func (h *SpatialHash[T]) lookup(k coord.Key) []T {
	return h.buckets[h.bucketIndex(k)][k]
}

// appendAt appends v to the exact cell's list and returns the updated list.
func (h *SpatialHash[T]) appendAt(k coord.Key, v T) []T {
	b := h.buckets[h.bucketIndex(k)]
	b[k] = append(b[k], v)
	h.count++

	return b[k]
}
