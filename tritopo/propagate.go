package tritopo

import (
	"github.com/iceisfun/gomesh3d/types3"
)

// meshEdgeKey canonicalizes a lattice edge by its two endpoint
// Points so that "shares a mesh edge" can be tested by exact point
// equality.
type meshEdgeKey struct {
	a, b types3.Point
}

func canonicalMeshEdge(p, q types3.Point) meshEdgeKey {
	if less(p, q) {
		return meshEdgeKey{a: p, b: q}
	}
	return meshEdgeKey{a: q, b: p}
}

func less(p, q types3.Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// PropagateSharedMeshEdges reconciles neighboring triangles: for
// every pair of triangles on the same mesh that share an edge
// (identified by exact lattice-point equality), any intersection
// vertex lying exactly on that shared edge (a barycentric component
// within BarycentricInsideEpsilon of zero) contributes the same edge
// assignments to both triangles, provided both endpoints are already
// present as vertices on both triangles.
func PropagateSharedMeshEdges(mesh types3.Mesh, side types3.Side, index *Index, topo *Topology, insideEps float64) {
	edgeToTris := make(map[meshEdgeKey][]int)
	for ti, tri := range mesh.Triangles {
		corners := [3]types3.Point{tri.V0, tri.V1, tri.V2}
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			key := canonicalMeshEdge(corners[i], corners[j])
			edgeToTris[key] = append(edgeToTris[key], ti)
		}
	}

	for _, tris := range edgeToTris {
		if len(tris) != 2 {
			continue
		}
		t1, t2 := tris[0], tris[1]
		propagatePair(index, topo, t1, t2, insideEps)
		propagatePair(index, topo, t2, t1, insideEps)
	}
}

// propagatePair copies edges of `src` that lie on its shared edge
// with `dst` into dst's topology, provided both endpoints already
// appear as vertices on dst.
func propagatePair(index *Index, topo *Topology, src, dst int, insideEps float64) {
	dstVerts := make(map[types3.IntersectionVertexID]bool)
	for _, e := range index.VerticesOn(topo.Side, dst) {
		dstVerts[e.Global] = true
	}
	if len(dstVerts) == 0 {
		return
	}

	onSharedEdge := make(map[types3.IntersectionVertexID]bool)
	for _, e := range index.VerticesOn(topo.Side, src) {
		if onBoundary(e.Bary, insideEps) {
			onSharedEdge[e.Global] = true
		}
	}

	for _, e := range topo.EdgesOn(src) {
		if !onSharedEdge[e.A] || !onSharedEdge[e.B] {
			continue
		}
		if !dstVerts[e.A] || !dstVerts[e.B] {
			continue
		}
		topo.attach(dst, e)
	}
}

// onBoundary reports whether a barycentric coordinate lies on any of
// the reference triangle's three sides within insideEps.
func onBoundary(b types3.Barycentric, insideEps float64) bool {
	w := b.W()
	return b.U <= insideEps || b.V <= insideEps || w <= insideEps
}
