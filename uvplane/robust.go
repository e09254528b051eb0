package uvplane

import (
	"math"
	"math/big"
)

const orientFilter = 1e-15

// Orient2D returns the orientation of (a, b, c) in the UV plane:
// +1 counter-clockwise, -1 clockwise, 0 (near-)collinear. The fast
// path evaluates the determinant in float64 with an adaptive error
// filter and falls back to arbitrary-precision arithmetic near the
// collinear boundary.
func Orient2D(a, b, c Point) int {
	ax := b.U - a.U
	ay := b.V - a.V
	bx := c.U - a.U
	by := c.V - a.V
	det := ax*by - ay*bx

	maxMag := maxAbs(a.U, a.V, b.U, b.V, c.U, c.V)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c Point) int {
	ax := bigFloat(b.U - a.U)
	ay := bigFloat(b.V - a.V)
	bx := bigFloat(c.U - a.U)
	by := bigFloat(c.V - a.V)

	term1 := bigFloat(0)
	term1.Mul(ax, by)
	term2 := bigFloat(0)
	term2.Mul(ay, bx)

	det := bigFloat(0)
	det.Sub(term1, term2)
	return det.Sign()
}

// SignedArea2 returns twice the signed area of triangle (a,b,c).
func SignedArea2(a, b, c Point) float64 {
	return (b.U-a.U)*(c.V-a.V) - (b.V-a.V)*(c.U-a.U)
}

// SegmentIntersect computes whether two closed segments [p,q] and
// [r,s] intersect. When they cross at a single interior point, t and
// u are the parametric coordinates along pq and rs (both in [0,1]).
// Collinear overlaps report true with both parameters NaN.
func SegmentIntersect(p, q, r, s Point) (bool, float64, float64) {
	o1 := Orient2D(p, q, r)
	o2 := Orient2D(p, q, s)
	o3 := Orient2D(r, s, p)
	o4 := Orient2D(r, s, q)

	if o1*o2 < 0 && o3*o4 < 0 {
		t, u := intersectionParams(p, q, r, s)
		return true, t, u
	}

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		if overlapLength(p, q, r, s) > 1e-12 {
			return true, math.NaN(), math.NaN()
		}
	}

	if o1 == 0 && onSegment(p, q, r) {
		return true, paramOnSegment(p, q, r), 0
	}
	if o2 == 0 && onSegment(p, q, s) {
		return true, paramOnSegment(p, q, s), 1
	}
	if o3 == 0 && onSegment(r, s, p) {
		return true, 0, paramOnSegment(r, s, p)
	}
	if o4 == 0 && onSegment(r, s, q) {
		return true, 1, paramOnSegment(r, s, q)
	}

	return false, math.NaN(), math.NaN()
}

func intersectionParams(p, q, r, s Point) (float64, float64) {
	pq := Point{U: q.U - p.U, V: q.V - p.V}
	rs := Point{U: s.U - r.U, V: s.V - r.V}
	diff := Point{U: r.U - p.U, V: r.V - p.V}

	den := cross(pq, rs)
	t := cross(diff, rs) / den
	u := cross(diff, pq) / den
	return t, u
}

func onSegment(a, b, p Point) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	minU := math.Min(a.U, b.U)
	maxU := math.Max(a.U, b.U)
	minV := math.Min(a.V, b.V)
	maxV := math.Max(a.V, b.V)
	return p.U >= minU-1e-12 && p.U <= maxU+1e-12 &&
		p.V >= minV-1e-12 && p.V <= maxV+1e-12
}

func paramOnSegment(a, b, p Point) float64 {
	length2 := (b.U-a.U)*(b.U-a.U) + (b.V-a.V)*(b.V-a.V)
	if length2 == 0 {
		return 0
	}
	return ((p.U-a.U)*(b.U-a.U) + (p.V-a.V)*(b.V-a.V)) / length2
}

func cross(a, b Point) float64 {
	return a.U*b.V - a.V*b.U
}

func overlapLength(a1, a2, b1, b2 Point) float64 {
	useU := math.Abs(a1.U-a2.U) >= math.Abs(a1.V-a2.V)
	if useU {
		aMin := math.Min(a1.U, a2.U)
		aMax := math.Max(a1.U, a2.U)
		bMin := math.Min(b1.U, b2.U)
		bMax := math.Max(b1.U, b2.U)
		return math.Min(aMax, bMax) - math.Max(aMin, bMin)
	}
	aMin := math.Min(a1.V, a2.V)
	aMax := math.Max(a1.V, a2.V)
	bMin := math.Min(b1.V, b2.V)
	bMax := math.Max(b1.V, b2.V)
	return math.Min(aMax, bMax) - math.Max(aMin, bMin)
}

func maxAbs(values ...float64) float64 {
	max := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}
