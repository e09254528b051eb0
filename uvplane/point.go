// Package uvplane is the 2D planar kernel used inside a single
// triangle's barycentric UV chart: orientation predicates,
// point-in-polygon, polygon area and winding, and the
// segment-intersection test the PSLG builder's crossing check
// needs.
package uvplane

// Point is a 2D coordinate in a triangle's barycentric UV chart,
// where corners sit at (1,0), (0,1), (0,0).
type Point struct {
	U, V float64
}
