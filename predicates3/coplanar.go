package predicates3

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
	"github.com/iceisfun/gomesh3d/uvplane"
)

// axis names the coordinate dropped when projecting a coplanar pair
// to 2D: whichever component of the shared normal has the largest
// magnitude contributes least to in-plane area, so it is the one to
// drop.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

func dominantAxis(n r3.Vector) axis {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return axisX
	case ay >= ax && ay >= az:
		return axisY
	default:
		return axisZ
	}
}

func project(p r3.Vector, a axis) uvplane.Point {
	switch a {
	case axisX:
		return uvplane.Point{U: p.Y, V: p.Z}
	case axisY:
		return uvplane.Point{U: p.X, V: p.Z}
	default:
		return uvplane.Point{U: p.X, V: p.Y}
	}
}

// unproject reconstructs the dropped coordinate from the triangle a's
// plane equation n.Dot(p - a.A) == 0.
func unproject(uv uvplane.Point, a axis, n, onPlane r3.Vector) r3.Vector {
	switch a {
	case axisX:
		// n.X*(x-onPlane.X) + n.Y*(uv.U-onPlane.Y) + n.Z*(uv.V-onPlane.Z) = 0
		x := onPlane.X
		if n.X != 0 {
			x = onPlane.X - (n.Y*(uv.U-onPlane.Y)+n.Z*(uv.V-onPlane.Z))/n.X
		}
		return r3.Vector{X: x, Y: uv.U, Z: uv.V}
	case axisY:
		y := onPlane.Y
		if n.Y != 0 {
			y = onPlane.Y - (n.X*(uv.U-onPlane.X)+n.Z*(uv.V-onPlane.Z))/n.Y
		}
		return r3.Vector{X: uv.U, Y: y, Z: uv.V}
	default:
		z := onPlane.Z
		if n.Z != 0 {
			z = onPlane.Z - (n.X*(uv.U-onPlane.X)+n.Y*(uv.V-onPlane.Y))/n.Z
		}
		return r3.Vector{X: uv.U, Y: uv.V, Z: z}
	}
}

// coplanarIntersection computes the intersection polygon of two
// coplanar triangles by projecting both to the dominant-axis plane
// and running Sutherland-Hodgman clipping, then lifting the result
// back into 3D.
func coplanarIntersection(a, b types3.RealTriangle, normal r3.Vector, tol boolcfg.Tolerances) []types3.RealPoint {
	ax := dominantAxis(normal)

	triA := []uvplane.Point{project(a.A, ax), project(a.B, ax), project(a.C, ax)}
	triB := []uvplane.Point{project(b.A, ax), project(b.B, ax), project(b.C, ax)}

	triA = ensureCCW(triA)
	triB = ensureCCW(triB)

	eps := tol.TrianglePredicateEpsilon

	subject := triA
	clipEdges := [][2]uvplane.Point{
		{triB[0], triB[1]},
		{triB[1], triB[2]},
		{triB[2], triB[0]},
	}
	for _, edge := range clipEdges {
		subject = sutherlandHodgmanClip(subject, edge[0], edge[1], eps)
		if len(subject) == 0 {
			return nil
		}
	}

	out := make([]types3.RealPoint, len(subject))
	for i, uv := range subject {
		out[i] = unproject(uv, ax, normal, a.A)
	}
	return out
}

func ensureCCW(poly []uvplane.Point) []uvplane.Point {
	if uvplane.SignedArea(poly) >= 0 {
		cp := make([]uvplane.Point, len(poly))
		copy(cp, poly)
		return cp
	}
	out := make([]uvplane.Point, len(poly))
	for i := range poly {
		out[i] = poly[len(poly)-1-i]
	}
	return out
}

func sutherlandHodgmanClip(poly []uvplane.Point, edgeStart, edgeEnd uvplane.Point, eps float64) []uvplane.Point {
	if len(poly) == 0 {
		return nil
	}

	var output []uvplane.Point
	for i := 0; i < len(poly); i++ {
		current := poly[i]
		previous := poly[(i+len(poly)-1)%len(poly)]

		currentInside := isLeftOfEdge(current, edgeStart, edgeEnd, eps)
		previousInside := isLeftOfEdge(previous, edgeStart, edgeEnd, eps)

		if currentInside {
			if !previousInside {
				output = append(output, lineLineIntersection(previous, current, edgeStart, edgeEnd))
			}
			output = append(output, current)
		} else if previousInside {
			output = append(output, lineLineIntersection(previous, current, edgeStart, edgeEnd))
		}
	}
	return output
}

func isLeftOfEdge(p, edgeStart, edgeEnd uvplane.Point, eps float64) bool {
	cross := (edgeEnd.U-edgeStart.U)*(p.V-edgeStart.V) - (edgeEnd.V-edgeStart.V)*(p.U-edgeStart.U)
	return cross >= -eps
}

func lineLineIntersection(a1, a2, b1, b2 uvplane.Point) uvplane.Point {
	dx1 := a2.U - a1.U
	dy1 := a2.V - a1.V
	dx2 := b2.U - b1.U
	dy2 := b2.V - b1.V

	denominator := dx1*dy2 - dy1*dx2
	if math.Abs(denominator) < 1e-10 {
		return uvplane.Point{U: (a1.U + a2.U) / 2, V: (a1.V + a2.V) / 2}
	}

	t := ((b1.U-a1.U)*dy2 - (b1.V-a1.V)*dx2) / denominator
	return uvplane.Point{U: a1.U + t*dx1, V: a1.V + t*dy1}
}
