// Package pairfeatures converts a single triangle pair's raw
// intersection primitives (predicates3.ClassifyPair's output) into
// PairFeatures: pair-local vertices carrying barycentrics on both
// triangles, plus the segments connecting them. Raw points are
// collected, epsilon-merged, and segments are then built from the
// merged index list; each vertex carries a dual (barycentric-on-A,
// barycentric-on-B) payload.
package pairfeatures

import (
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

// PairVertex is one vertex of a PairFeatures value: a world-space
// intersection point together with its barycentric coordinates on
// both triangles of the pair.
type PairVertex struct {
	ID     types3.PairVertexID
	World  types3.RealPoint
	BaryA  types3.Barycentric
	BaryB  types3.Barycentric
}

// PairSegment is an undirected edge between two PairVertex ids,
// scoped to the PairFeatures value that owns it. Segments are never
// self-loops.
type PairSegment struct {
	From, To types3.PairVertexID
}

// PairFeatures is the local structure of one intersecting pair: a
// deduplicated vertex set plus the segments connecting them, tagged
// with which input triangles produced it.
type PairFeatures struct {
	TriangleA int
	TriangleB int
	Vertices  []PairVertex
	Segments  []PairSegment
}

// Build converts the raw intersection points for the pair
// (triA, triB), as produced by predicates3.ClassifyPair, into
// PairFeatures, assigning pair-local vertex ids and deduplicating
// points that fall within FeatureWorldDistanceEpsilon of one another.
func Build(triIdxA, triIdxB int, triA, triB types3.RealTriangle, kind types3.PairKind, points []types3.RealPoint, tol boolcfg.Tolerances) PairFeatures {
	pf := PairFeatures{TriangleA: triIdxA, TriangleB: triIdxB}
	if kind == types3.None || len(points) == 0 {
		return pf
	}

	ids := dedupAndAssign(&pf, triA, triB, points, tol)

	switch kind {
	case types3.PointTouch:
		// A single vertex, no segment.
	case types3.Segment:
		if len(ids) >= 2 && ids[0] != ids[1] {
			pf.Segments = append(pf.Segments, PairSegment{From: ids[0], To: ids[1]})
		}
	case types3.Coplanar:
		n := len(ids)
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if u != v {
				pf.Segments = append(pf.Segments, PairSegment{From: u, To: v})
			}
		}
	}

	return pf
}

// dedupAndAssign merges points that fall within
// FeatureWorldDistanceEpsilon of an already-kept vertex, appends the
// survivors to pf.Vertices, and returns the PairVertexID assigned to
// each input point (in input order, including duplicates).
func dedupAndAssign(pf *PairFeatures, triA, triB types3.RealTriangle, points []types3.RealPoint, tol boolcfg.Tolerances) []types3.PairVertexID {
	ids := make([]types3.PairVertexID, len(points))
	epsSq := tol.FeatureWorldDistanceEpsilonSquared

	for i, p := range points {
		found := types3.PairVertexID(-1)
		for _, existing := range pf.Vertices {
			if p.Sub(existing.World).Norm2() <= epsSq {
				found = existing.ID
				break
			}
		}
		if found >= 0 {
			ids[i] = found
			continue
		}

		id := types3.PairVertexID(len(pf.Vertices))
		baryA := snapSmall(types3.FromPoint(p, triA.A, triA.B, triA.C), tol.BarycentricInsideEpsilon)
		baryB := snapSmall(types3.FromPoint(p, triB.A, triB.B, triB.C), tol.BarycentricInsideEpsilon)
		pf.Vertices = append(pf.Vertices, PairVertex{ID: id, World: p, BaryA: baryA, BaryB: baryB})
		ids[i] = id
	}

	return ids
}

// snapSmall snaps a barycentric component to exactly 0 once it falls
// below BarycentricInsideEpsilon, re-deriving W so the triple still
// sums to one.
func snapSmall(b types3.Barycentric, eps float64) types3.Barycentric {
	u, v, w := b.U, b.V, b.W()
	if u < eps {
		u = 0
	}
	if v < eps {
		v = 0
	}
	if w < eps {
		w = 0
	}
	sum := u + v + w
	if sum == 0 {
		return b
	}
	return types3.Barycentric{U: u / sum, V: v / sum}
}
