// Package fixtures builds small closed solids on the integer point
// lattice (types3.Point) for use by tests and the demo CLI,
// constructing explicit point lists inline rather than parsing an
// external asset format.
package fixtures

import "github.com/iceisfun/gomesh3d/types3"

// quad appends the two triangles of a quad face (a,b,c,d in order
// around the face, outward winding) using centroid as each triangle's
// orientation reference point.
func quad(a, b, c, d, centroid types3.Point, tris *[]types3.Triangle) {
	*tris = append(*tris,
		types3.NewTriangle(a, b, c, centroid),
		types3.NewTriangle(a, c, d, centroid),
	)
}
