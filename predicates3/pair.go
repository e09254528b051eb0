// Package predicates3 implements the triangle-triangle pair
// intersection classifier and the Möller-Trumbore ray-triangle test
// used by patch classification. The non-coplanar case follows the
// classic plane-line-clip construction (Möller 1997): reduce both
// triangles' intersections with the other's supporting plane to an
// interval on the line where the two planes meet, then intersect the
// intervals. The coplanar case is a Sutherland-Hodgman polygon clip,
// lifted into 3D by projecting onto the plane's dominant axis and
// reconstructing the dropped coordinate from the plane equation
// afterward.
package predicates3

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/robust3"
	"github.com/iceisfun/gomesh3d/types3"
)

// ClassifyPair classifies the intersection between triangle a (from
// mesh A) and triangle b (from mesh B), returning the coarse kind and
// the points that define the intersection feature (0 points for None,
// 1 for PointTouch, 2 for Segment, >=3 for Coplanar).
func ClassifyPair(a, b types3.RealTriangle, tol boolcfg.Tolerances) (types3.PairKind, []types3.RealPoint) {
	if a.Area2() < tol.EpsArea || b.Area2() < tol.EpsArea {
		return types3.None, nil
	}

	nA := a.Normal()
	nB := b.Normal()

	planeTol := planeDistanceEpsilon(a, b, tol)

	distB := [3]float64{
		signedDistance(nA, a.A, b.A),
		signedDistance(nA, a.A, b.B),
		signedDistance(nA, a.A, b.C),
	}
	signB := [3]int{
		planeSign(a.A, a.B, a.C, b.A, distB[0], planeTol),
		planeSign(a.A, a.B, a.C, b.B, distB[1], planeTol),
		planeSign(a.A, a.B, a.C, b.C, distB[2], planeTol),
	}
	if sameSideStrict(signB) {
		return types3.None, nil
	}

	distA := [3]float64{
		signedDistance(nB, b.A, a.A),
		signedDistance(nB, b.A, a.B),
		signedDistance(nB, b.A, a.C),
	}
	signA := [3]int{
		planeSign(b.A, b.B, b.C, a.A, distA[0], planeTol),
		planeSign(b.A, b.B, b.C, a.B, distA[1], planeTol),
		planeSign(b.A, b.B, b.C, a.C, distA[2], planeTol),
	}
	if sameSideStrict(signA) {
		return types3.None, nil
	}

	allBOnPlane := signB[0] == 0 && signB[1] == 0 && signB[2] == 0
	allAOnPlane := signA[0] == 0 && signA[1] == 0 && signA[2] == 0
	if allAOnPlane && allBOnPlane {
		poly := coplanarIntersection(a, b, nA, tol)
		if len(poly) < 3 {
			return classifyDegenerateCoplanar(poly)
		}
		return types3.Coplanar, poly
	}

	return classifyNonCoplanar(a, b, distA, distB, tol)
}

func planeDistanceEpsilon(a, b types3.RealTriangle, tol boolcfg.Tolerances) float64 {
	mag := maxCoordMagnitude(a.A, a.B, a.C, b.A, b.B, b.C)
	return tol.TrianglePredicateEpsilon * math.Max(1, mag)
}

func maxCoordMagnitude(pts ...r3.Vector) float64 {
	max := 0.0
	for _, p := range pts {
		if m := math.Abs(p.X); m > max {
			max = m
		}
		if m := math.Abs(p.Y); m > max {
			max = m
		}
		if m := math.Abs(p.Z); m > max {
			max = m
		}
	}
	return max
}

func signedDistance(normal, onPlane, p r3.Vector) float64 {
	return normal.Dot(p.Sub(onPlane))
}

// planeSign classifies point p against the plane through (planeA,
// planeB, planeC). dist is the float64 signedDistance already computed
// for p (reused here so the fast path costs nothing extra). Inside
// the numeric filter band (|dist| <= eps, the grazing and
// near-coplanar ties float64 alone cannot resolve), the sign comes
// from robust3.Orient3D's adaptive-then-exact arithmetic instead.
func planeSign(planeA, planeB, planeC, p r3.Vector, dist, eps float64) int {
	switch {
	case dist > eps:
		return 1
	case dist < -eps:
		return -1
	default:
		return robust3.Orient3D(planeA, planeB, planeC, p)
	}
}

func sameSideStrict(signs [3]int) bool {
	pos, neg := 0, 0
	for _, s := range signs {
		switch {
		case s > 0:
			pos++
		case s < 0:
			neg++
		}
	}
	return (pos == 3) || (neg == 3)
}

func classifyDegenerateCoplanar(poly []types3.RealPoint) (types3.PairKind, []types3.RealPoint) {
	switch len(poly) {
	case 0:
		return types3.None, nil
	case 1:
		return types3.PointTouch, poly
	default:
		// Two points with zero-area collapse: treat as a touching segment.
		if poly[0].Sub(poly[1]).Norm() < 1e-12 {
			return types3.PointTouch, poly[:1]
		}
		return types3.Segment, poly
	}
}

// classifyNonCoplanar implements the Möller plane-clip construction.
func classifyNonCoplanar(a, b types3.RealTriangle, distA, distB [3]float64, tol boolcfg.Tolerances) (types3.PairKind, []types3.RealPoint) {
	nA := a.Normal()
	nB := b.Normal()
	dir := nA.Cross(nB)
	if dir.Norm() < 1e-20 {
		// Parallel, non-coplanar planes: cannot intersect.
		return types3.None, nil
	}

	ptsA, tA, okA := intervalOnLine(a.Vertices(), distA, dir, tol)
	ptsB, tB, okB := intervalOnLine(b.Vertices(), distB, dir, tol)
	if !okA || !okB {
		return types3.None, nil
	}

	lo, loPt := tA[0], ptsA[0]
	if tB[0] > lo {
		lo, loPt = tB[0], ptsB[0]
	}
	hi, hiPt := tA[1], ptsA[1]
	if tB[1] < hi {
		hi, hiPt = tB[1], ptsB[1]
	}

	if lo > hi+1e-9 {
		return types3.None, nil
	}
	if hi-lo < 1e-9 {
		return types3.PointTouch, []types3.RealPoint{loPt}
	}
	return types3.Segment, []types3.RealPoint{loPt, hiPt}
}

// intervalOnLine finds where the triangle's boundary crosses the
// other triangle's plane (whose vertex distances are given in dist),
// and returns the two crossing points sorted by their projection onto
// dir, along with those projections.
func intervalOnLine(verts [3]r3.Vector, dist [3]float64, dir r3.Vector, tol boolcfg.Tolerances) ([2]r3.Vector, [2]float64, bool) {
	type crossing struct {
		p r3.Vector
		t float64
	}
	var crossings []crossing

	eps := tol.TrianglePredicateEpsilon
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		di, dj := dist[i], dist[j]
		vi, vj := verts[i], verts[j]

		if math.Abs(di) <= eps {
			crossings = append(crossings, crossing{p: vi, t: dir.Dot(vi)})
		}
		if di*dj < 0 {
			s := di / (di - dj)
			p := vi.Add(vj.Sub(vi).Mul(s))
			crossings = append(crossings, crossing{p: p, t: dir.Dot(p)})
		}
	}

	if len(crossings) < 2 {
		return [2]r3.Vector{}, [2]float64{}, false
	}

	// Keep the two extreme-t crossings (degenerate double-counts at a
	// shared vertex collapse naturally since they share both p and t).
	lo, hi := crossings[0], crossings[0]
	for _, c := range crossings[1:] {
		if c.t < lo.t {
			lo = c
		}
		if c.t > hi.t {
			hi = c
		}
	}

	return [2]r3.Vector{lo.p, hi.p}, [2]float64{lo.t, hi.t}, true
}
