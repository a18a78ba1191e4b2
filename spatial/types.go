package spatial

import (
	"errors"

	"github.com/katalvlaran/spatialhash/cellhash"
)

// DefaultBuckets is the bucket count used when WithBuckets is not given.
const DefaultBuckets = 256

// Sentinel errors for container construction and mutation.
var (
	// ErrBadBucketCount indicates WithBuckets was given a count ≤ 0.
	ErrBadBucketCount = errors.New("spatial: bucket count must be positive")

	// ErrNilHasher indicates WithHasher was given a nil strategy.
	ErrNilHasher = errors.New("spatial: hasher must not be nil")

	// ErrNilResolve indicates AddResolve was called without a resolver.
	ErrNilResolve = errors.New("spatial: resolve function must not be nil")

	// ErrCellConflict indicates AddResolve found more than one value already
	// stored at the target cell. AddResolve promises at most one value per
	// cell; a higher count means a different Add path populated the cell and
	// the two usage patterns were mixed.
	ErrCellConflict = errors.New("spatial: cell holds more than one value")
)

// options collects construction-time settings shared by every SpatialHash
// instantiation.
type options struct {
	buckets int
	hasher  cellhash.Hasher
}

// Option configures a SpatialHash before creation.
type Option func(*options)

// WithBuckets sets the fixed bucket count N. The array is sized once at
// construction and never resized.
func WithBuckets(n int) Option {
	return func(o *options) { o.buckets = n }
}

// WithHasher substitutes the hash strategy used to map canonical keys onto
// buckets. Use cellhash.Component{} for reproducible distributions.
func WithHasher(h cellhash.Hasher) Option {
	return func(o *options) { o.hasher = h }
}
