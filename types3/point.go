// Package types3 holds the data model shared by every stage of the
// boolean pipeline: lattice-exact input points, floating point
// intersection geometry, triangles, barycentric coordinates, and the
// arena id types used by the intersection graph and per-triangle
// topology.
package types3

import "github.com/golang/geo/r3"

// Point is a vertex of an input mesh, stored on a 64-bit integer
// lattice so that two input vertices compare equal iff they represent
// the same location exactly. Input meshes are expected to already be
// welded onto a consistent lattice (meshio's loader reads points as
// stored and does no welding); the core never perturbs a Point.
type Point struct {
	X, Y, Z int64
}

// ToReal converts a lattice Point into a RealPoint for use in the
// floating point portions of the pipeline.
func (p Point) ToReal() RealPoint {
	return RealPoint{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Equal reports whether two lattice points are identical.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// RealPoint is a double-precision point or vector in 3-space. All
// computed geometry (intersections, patch vertices, the final
// assembled mesh) lives in this domain. It is a thin alias
// over r3.Vector so that the wider 3D-vector arithmetic the pipeline
// needs (cross, dot, normalize) comes from a single well-tested
// implementation rather than being hand-rolled per stage.
type RealPoint = r3.Vector

// NewRealPoint constructs a RealPoint from individual coordinates.
func NewRealPoint(x, y, z float64) RealPoint {
	return RealPoint{X: x, Y: y, Z: z}
}
