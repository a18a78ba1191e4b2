// Package coord defines the discrete cell coordinate systems used by the
// spatial hash: square, hexagonal (axial), and triangular tilings.
package coord

import (
	"errors"
	"math"
)

// Sentinel errors for coordinate configuration.
var (
	// ErrNonPositiveScale indicates a side length or circumradius ≤ 0.
	ErrNonPositiveScale = errors.New("coord: scale parameter must be positive")
)

// Shape selects one of the three supported tilings.
type Shape int

const (
	// ShapeCube tiles the plane with axis-aligned squares.
	ShapeCube Shape = iota
	// ShapeHexagon tiles the plane with pointy-top hexagons in axial coordinates.
	ShapeHexagon
	// ShapeTriangle tiles the plane with equilateral triangles.
	ShapeTriangle
)

// String returns the tiling name, for error messages and examples.
func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeHexagon:
		return "hexagon"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Kind bundles a tiling shape with its scale parameter. The scale is the
// square side length, the hexagon circumradius, or the triangle side length,
// depending on Shape. A Kind is immutable once constructed.
type Kind struct {
	shape Shape
	scale float64
}

// Cube returns a square-tiling Kind with the given cell side length.
func Cube(sideLen float64) Kind {
	return Kind{shape: ShapeCube, scale: sideLen}
}

// Hexagon returns a hex-tiling Kind with the given circumradius.
func Hexagon(circumradius float64) Kind {
	return Kind{shape: ShapeHexagon, scale: circumradius}
}

// Triangle returns a triangle-tiling Kind with the given side length.
func Triangle(sideLen float64) Kind {
	return Kind{shape: ShapeTriangle, scale: sideLen}
}

// TriangleByHeight returns a triangle-tiling Kind whose cells have the given
// height. The height is the natural query radius for a triangular grid, so it
// is the more intuitive parameter; internally it is converted to the side
// length via sideLen = height·2/√3.
func TriangleByHeight(height float64) Kind {
	return Kind{shape: ShapeTriangle, scale: HeightToSide(height)}
}

// HeightToSide converts a triangle height into its equilateral side length.
func HeightToSide(height float64) float64 {
	return height * 2 / math.Sqrt(3)
}

// Shape reports the tiling variant of this Kind.
func (k Kind) Shape() Shape { return k.shape }

// Scale reports the scale parameter (side length or circumradius).
func (k Kind) Scale() float64 { return k.scale }

// Validate returns ErrNonPositiveScale unless the scale parameter is a
// positive finite number. All coordinate transforms are total for scale > 0.
func (k Kind) Validate() error {
	if !(k.scale > 0) || math.IsInf(k.scale, 1) {
		return ErrNonPositiveScale
	}

	return nil
}

// Point is a continuous position on the plane.
type Point struct {
	X, Y float64
}

// Key is the canonical 2D integer representation of a cell, injective within
// a tiling, used for exact-match lookup inside a hash bucket.
type Key struct {
	A, B int
}
