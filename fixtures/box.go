package fixtures

import "github.com/iceisfun/gomesh3d/types3"

// Box builds an axis-aligned box [lo,hi]^3 as 12 outward-wound
// triangles.
func Box(lo, hi int64) types3.Mesh {
	p := func(x, y, z int64) types3.Point { return types3.Point{X: x, Y: y, Z: z} }

	v := [8]types3.Point{
		p(lo, lo, lo), p(hi, lo, lo), p(hi, hi, lo), p(lo, hi, lo),
		p(lo, lo, hi), p(hi, lo, hi), p(hi, hi, hi), p(lo, hi, hi),
	}
	center := p((lo+hi)/2, (lo+hi)/2, (lo+hi)/2)

	var tris []types3.Triangle
	quad(v[0], v[3], v[2], v[1], center, &tris) // bottom, z=lo, facing -z
	quad(v[4], v[5], v[6], v[7], center, &tris) // top, z=hi, facing +z
	quad(v[0], v[1], v[5], v[4], center, &tris) // front, y=lo
	quad(v[3], v[7], v[6], v[2], center, &tris) // back, y=hi
	quad(v[0], v[4], v[7], v[3], center, &tris) // left, x=lo
	quad(v[1], v[2], v[6], v[5], center, &tris) // right, x=hi

	return types3.Mesh{Triangles: tris}
}

// CenteredBox builds a box of the given side length centered at the origin.
func CenteredBox(side int64) types3.Mesh {
	half := side / 2
	return Box(-half, half)
}

// BoxExtents builds an axis-aligned box spanning [lo.X,hi.X] x
// [lo.Y,hi.Y] x [lo.Z,hi.Z] as 12 outward-wound triangles.
func BoxExtents(lo, hi types3.Point) types3.Mesh {
	p := func(x, y, z int64) types3.Point { return types3.Point{X: x, Y: y, Z: z} }

	v := [8]types3.Point{
		p(lo.X, lo.Y, lo.Z), p(hi.X, lo.Y, lo.Z), p(hi.X, hi.Y, lo.Z), p(lo.X, hi.Y, lo.Z),
		p(lo.X, lo.Y, hi.Z), p(hi.X, lo.Y, hi.Z), p(hi.X, hi.Y, hi.Z), p(lo.X, hi.Y, hi.Z),
	}
	center := p((lo.X+hi.X)/2, (lo.Y+hi.Y)/2, (lo.Z+hi.Z)/2)

	var tris []types3.Triangle
	quad(v[0], v[3], v[2], v[1], center, &tris)
	quad(v[4], v[5], v[6], v[7], center, &tris)
	quad(v[0], v[1], v[5], v[4], center, &tris)
	quad(v[3], v[7], v[6], v[2], center, &tris)
	quad(v[0], v[4], v[7], v[3], center, &tris)
	quad(v[1], v[2], v[6], v[5], center, &tris)

	return types3.Mesh{Triangles: tris}
}
