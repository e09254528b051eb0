package types3

// Triangle is an ordered triple of input-mesh vertices plus a
// reference point that disambiguates the triangle's orientation when
// its own three vertices happen to be (near-)collinear in a
// degenerate intermediate state. For most triangles the reference
// point is simply unused by callers that already trust V0,V1,V2's
// winding; it exists so a triangle can always recover "which way is
// outside" even while being rebuilt mid-pipeline.
//
// Invariant: non-degenerate. The cross product of (V1-V0) and
// (V2-V0) must be non-zero under the configured area epsilon.
type Triangle struct {
	V0, V1, V2 Point
	Missing    Point // a point not on the triangle's plane, used to disambiguate orientation
}

// NewTriangle builds a Triangle from three lattice vertices and an
// orientation reference point.
func NewTriangle(v0, v1, v2, missing Point) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, Missing: missing}
}

// RealTriangle is a triangle expressed entirely in floating point
// world coordinates. Pair intersections, PSLG-mapped patches,
// classified patches, and the triangles handed to mesh assembly are
// all RealTriangle values.
type RealTriangle struct {
	A, B, C RealPoint
}

// Vertices returns the triangle's three corners as an array, in order.
func (t RealTriangle) Vertices() [3]RealPoint {
	return [3]RealPoint{t.A, t.B, t.C}
}

// Normal returns the (unnormalized) cross product of the triangle's
// edges, i.e. twice the triangle's area times its unit normal.
func (t RealTriangle) Normal() RealPoint {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)
	return e1.Cross(e2)
}

// Area2 returns twice the triangle's (unsigned) area: the magnitude
// of its edge cross product. A free-floating 3D triangle has no
// orientation sign of its own (r3.Vector.Norm() is never negative),
// so this is a degeneracy magnitude, not an orientation signal. Use
// robust3.Orient3D against an explicit reference when winding must be
// checked.
func (t RealTriangle) Area2() float64 {
	return t.Normal().Norm()
}

// Centroid returns the triangle's centroid.
func (t RealTriangle) Centroid() RealPoint {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Reversed returns the triangle with its winding flipped (B and C
// swapped), used when a patch must be re-oriented for the opposite
// side of a difference operation.
func (t RealTriangle) Reversed() RealTriangle {
	return RealTriangle{A: t.A, B: t.C, C: t.B}
}

// Barycentric holds (u, v, w) weights on a reference triangle with
// corners (1,0,0), (0,1,0), (0,0,1). Algebraically u+v+w = 1 (W is
// derived, not independently stored, so it can never drift out of
// sync with U and V).
type Barycentric struct {
	U, V float64
}

// W returns the third barycentric coordinate, 1 - U - V.
func (b Barycentric) W() float64 {
	return 1 - b.U - b.V
}

// Evaluate maps a barycentric coordinate on the reference triangle to
// a world point via the corners of tri, using the convention
// corner0 -> (1,0,0), corner1 -> (0,1,0), corner2 -> (0,0,1).
func (b Barycentric) Evaluate(corner0, corner1, corner2 RealPoint) RealPoint {
	w := b.W()
	return corner0.Mul(b.U).Add(corner1.Mul(b.V)).Add(corner2.Mul(w))
}

// FromPoint computes the barycentric coordinates of world point p
// with respect to triangle (corner0, corner1, corner2), clamping
// negative components to zero and renormalizing so the result always
// sums to one.
func FromPoint(p, corner0, corner1, corner2 RealPoint) Barycentric {
	v0 := corner1.Sub(corner0)
	v1 := corner2.Sub(corner0)
	v2 := p.Sub(corner0)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return Barycentric{U: 0, V: 0}
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	return clampBarycentric(u, v)
}

func clampBarycentric(u, v float64) Barycentric {
	w := 1 - u - v
	if u < 0 {
		u = 0
	}
	if v < 0 {
		v = 0
	}
	if w < 0 {
		w = 0
	}
	sum := u + v + w
	if sum == 0 {
		return Barycentric{U: 1, V: 0}
	}
	return Barycentric{U: u / sum, V: v / sum}
}
