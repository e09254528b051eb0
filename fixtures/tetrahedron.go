package fixtures

import "github.com/iceisfun/gomesh3d/types3"

// Tetrahedron builds a tetrahedron from four integer-lattice corners,
// outward-wound. Corner order does not matter: each face's winding is
// derived from the centroid, so fixtures never emit an inverted solid.
func Tetrahedron(a, b, c, d types3.Point) types3.Mesh {
	center := types3.Point{
		X: (a.X + b.X + c.X + d.X) / 4,
		Y: (a.Y + b.Y + c.Y + d.Y) / 4,
		Z: (a.Z + b.Z + c.Z + d.Z) / 4,
	}

	faces := [4][3]types3.Point{
		{a, c, b},
		{a, b, d},
		{b, c, d},
		{a, d, c},
	}

	var tris []types3.Triangle
	for _, f := range faces {
		tris = append(tris, orientOutward(f[0], f[1], f[2], center))
	}

	return types3.Mesh{Triangles: tris}
}

// orientOutward returns a Triangle over (a,b,c) wound so that it
// faces away from interior, flipping b and c if the raw winding
// points toward interior instead.
func orientOutward(a, b, c, interior types3.Point) types3.Triangle {
	rt := types3.RealTriangle{A: a.ToReal(), B: b.ToReal(), C: c.ToReal()}
	toInterior := interior.ToReal().Sub(rt.Centroid())
	if rt.Normal().Dot(toInterior) > 0 {
		return types3.NewTriangle(a, c, b, interior)
	}
	return types3.NewTriangle(a, b, c, interior)
}

// UnitTetrahedron builds the simplex tetrahedron <(0,0,0),(s,0,0),(0,s,0),(0,0,s)>.
func UnitTetrahedron(s int64) types3.Mesh {
	return Tetrahedron(
		types3.Point{X: 0, Y: 0, Z: 0},
		types3.Point{X: s, Y: 0, Z: 0},
		types3.Point{X: 0, Y: s, Z: 0},
		types3.Point{X: 0, Y: 0, Z: s},
	)
}
