package uvplane

import "math"

// PointOnSegment reports whether p lies on the closed segment [a,b].
func PointOnSegment(p, a, b Point) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	const tol = 1e-12
	minU := math.Min(a.U, b.U) - tol
	maxU := math.Max(a.U, b.U) + tol
	minV := math.Min(a.V, b.V) - tol
	maxV := math.Max(a.V, b.V) + tol
	return p.U >= minU && p.U <= maxU && p.V >= minV && p.V <= maxV
}

// DistancePointSegment returns the shortest distance from p to the
// closed segment [a,b].
func DistancePointSegment(p, a, b Point) float64 {
	au := b.U - a.U
	av := b.V - a.V
	length2 := au*au + av*av
	if length2 == 0 {
		return math.Hypot(p.U-a.U, p.V-a.V)
	}

	t := ((p.U-a.U)*au + (p.V-a.V)*av) / length2
	switch {
	case t <= 0:
		return math.Hypot(p.U-a.U, p.V-a.V)
	case t >= 1:
		return math.Hypot(p.U-b.U, p.V-b.V)
	default:
		proj := Point{U: a.U + t*au, V: a.V + t*av}
		return math.Hypot(p.U-proj.U, p.V-proj.V)
	}
}

// ProjectParam returns the parameter t such that a + t*(b-a) is the
// closest point on line ab to p, without clamping to [0,1]. Used by
// the PSLG builder to order the vertices that lie on a triangle side.
func ProjectParam(p, a, b Point) float64 {
	au := b.U - a.U
	av := b.V - a.V
	length2 := au*au + av*av
	if length2 == 0 {
		return 0
	}
	return ((p.U-a.U)*au + (p.V-a.V)*av) / length2
}

// Centroid returns the centroid of triangle (a,b,c).
func Centroid(a, b, c Point) Point {
	return Point{U: (a.U + b.U + c.U) / 3, V: (a.V + b.V + c.V) / 3}
}

// PointInTriangle reports whether p lies inside or on triangle (a,b,c).
func PointInTriangle(p, a, b, c Point, eps float64) bool {
	area := SignedArea2(a, b, c)
	if math.Abs(area) <= eps {
		return false
	}
	o1 := orient2DEps(a, b, p, eps)
	o2 := orient2DEps(b, c, p, eps)
	o3 := orient2DEps(c, a, p, eps)
	return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
}

// PointStrictlyInTriangle reports whether p lies strictly inside
// triangle (a,b,c), excluding its boundary.
func PointStrictlyInTriangle(p, a, b, c Point, eps float64) bool {
	area := SignedArea2(a, b, c)
	if math.Abs(area) <= eps {
		return false
	}
	o1 := orient2DEps(a, b, p, eps)
	o2 := orient2DEps(b, c, p, eps)
	o3 := orient2DEps(c, a, p, eps)
	if o1 == 0 || o2 == 0 || o3 == 0 {
		return false
	}
	return (o1 > 0 && o2 > 0 && o3 > 0) || (o1 < 0 && o2 < 0 && o3 < 0)
}

func orient2DEps(a, b, c Point, eps float64) int {
	area := SignedArea2(a, b, c)
	if area > eps {
		return 1
	}
	if area < -eps {
		return -1
	}
	return 0
}
