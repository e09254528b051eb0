package predicates3

import (
	"github.com/golang/geo/r3"
)

// RayHit describes a single ray-triangle intersection.
type RayHit struct {
	T    float64 // distance along the ray
	U, V float64 // barycentric coordinates on the hit triangle (weights of B and C)
}

// RayTriangleIntersect implements the Möller-Trumbore ray-triangle
// test. tMin/tMax bound the accepted parameter range along the ray;
// eps is the near-parallel / near-edge tolerance.
func RayTriangleIntersect(origin, dir, a, b, c r3.Vector, tMin, tMax, eps float64) (RayHit, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if det > -eps && det < eps {
		return RayHit{}, false
	}

	f := 1 / det
	s := origin.Sub(a)
	u := f * s.Dot(h)
	if u < -eps || u > 1+eps {
		return RayHit{}, false
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < -eps || u+v > 1+eps {
		return RayHit{}, false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return RayHit{}, false
	}

	return RayHit{T: t, U: u, V: v}, true
}

// IsGrazing reports whether a hit is numerically ambiguous: it landed
// on an edge or vertex of the triangle (barycentric parameter exactly
// 0 or 1 within eps), which the caller should treat as retry with a
// different ray.
func (h RayHit) IsGrazing(eps float64) bool {
	w := 1 - h.U - h.V
	near := func(x float64) bool { return x < eps || x > 1-eps }
	return near(h.U) || near(h.V) || near(w)
}
