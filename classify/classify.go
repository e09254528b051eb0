// Package classify decides whether a patch's interior lies inside or
// outside the opposite input solid via ray casting against that
// solid's triangles, using predicates3's Möller-Trumbore test. Ray
// directions are derived deterministically from the patch id, with a
// bounded retry whenever a cast grazes a vertex or an edge.
package classify

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/predicates3"
	"github.com/iceisfun/gomesh3d/types3"
)

// Label is the inside/outside verdict for a patch.
type Label int

const (
	Outside Label = iota
	Inside
)

func (l Label) String() string {
	if l == Inside {
		return "Inside"
	}
	return "Outside"
}

// Patch is a group of triangles sharing a single classification
// label: every triangle produced by the same intersection-separated
// region of one input triangle.
type Patch struct {
	ID        int
	Triangles []types3.RealTriangle
}

// Classify decides whether patch's interior lies inside or outside
// the opposite mesh, retrying with a freshly (but deterministically)
// derived ray direction whenever a cast grazes a vertex or edge of the
// opposite mesh closely enough to be ambiguous.
func Classify(patch Patch, opposite types3.Mesh, tol boolcfg.Tolerances) (Label, error) {
	if len(patch.Triangles) == 0 {
		return Outside, boolerr.NewArgumentError("classify", "patch.Triangles", "patch has no triangles to classify")
	}

	origin := representativePoint(patch, tol)
	rng := rand.New(rand.NewSource(int64(patch.ID)*2654435761 + 1))

	retries := tol.MaxClassificationRetries
	for attempt := 0; attempt <= retries; attempt++ {
		dir := deterministicDirection(rng)
		count, ambiguous := countCrossings(origin, dir, opposite, tol)
		if ambiguous {
			continue
		}
		if count%2 == 1 {
			return Inside, nil
		}
		return Outside, nil
	}

	return Outside, boolerr.NewAmbiguityError("classify", retries, "ray direction retries exhausted without an unambiguous crossing count")
}

// representativePoint picks the point the ray is cast from: the
// patch's first triangle's centroid, or a barycentric-jittered
// interior point if the centroid falls too near an edge.
func representativePoint(patch Patch, tol boolcfg.Tolerances) r3.Vector {
	tri := patch.Triangles[0]
	centroid := tri.Centroid()
	bary := types3.FromPoint(centroid, tri.A, tri.B, tri.C)
	if nearEdge(bary, tol.BarycentricInsideEpsilon) {
		jittered := types3.Barycentric{U: 0.62, V: 0.23}
		return jittered.Evaluate(tri.A, tri.B, tri.C)
	}
	return centroid
}

func nearEdge(b types3.Barycentric, eps float64) bool {
	return b.U < eps || b.V < eps || b.W() < eps
}

// deterministicDirection draws a uniformly distributed unit vector
// from rng via rejection sampling in the unit cube.
func deterministicDirection(rng *rand.Rand) r3.Vector {
	for {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		z := rng.Float64()*2 - 1
		n2 := x*x + y*y + z*z
		if n2 > 1e-6 && n2 <= 1 {
			n := math.Sqrt(n2)
			return r3.Vector{X: x / n, Y: y / n, Z: z / n}
		}
	}
}

// countCrossings casts one ray and counts transversal intersections
// with opposite's triangles. The second return reports whether the
// cast grazed a vertex or edge closely enough that the whole count is
// unreliable and a fresh direction should be tried.
func countCrossings(origin, dir r3.Vector, opposite types3.Mesh, tol boolcfg.Tolerances) (int, bool) {
	count := 0
	for i := 0; i < opposite.NumTriangles(); i++ {
		tri := opposite.RealTriangleAt(i)
		hit, ok := predicates3.RayTriangleIntersect(origin, dir, tri.A, tri.B, tri.C, tol.TrianglePredicateEpsilon, math.MaxFloat64, tol.TrianglePredicateEpsilon)
		if !ok {
			continue
		}
		if hit.IsGrazing(tol.TrianglePredicateEpsilon) {
			return 0, true
		}
		count++
	}
	return count, false
}
