package tritopo

import (
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/pairfeatures"
	"github.com/iceisfun/gomesh3d/types3"
	"github.com/iceisfun/gomesh3d/xgraph"
)

// TriangleEdge is one edge attached to a triangle's local topology.
// Global is xgraph.Graph's edge id when the edge is a literal graph
// edge; it is types3.NilEdgeID for an implied sub-edge produced by
// super-edge expansion that has no edge of its own in the global
// table.
type TriangleEdge struct {
	Global types3.IntersectionEdgeID
	A, B   types3.IntersectionVertexID
}

// Topology decorates one side's mesh with its intersection
// structure: per-triangle edge lists, the set of every edge touching
// the mesh, and the closed loops or open chains those edges trace.
type Topology struct {
	Side     types3.Side
	triEdges map[int][]TriangleEdge
	allEdges map[types3.IntersectionEdgeID]struct{}
	adjacent map[types3.IntersectionVertexID][]types3.IntersectionVertexID
	Loops    []Loop
}

// EdgesOn returns the edges attached to triangle triIdx, in the order
// they were assigned.
func (t *Topology) EdgesOn(triIdx int) []TriangleEdge {
	return t.triEdges[triIdx]
}

// TouchesMesh reports whether edge id was attached to any triangle on
// this side.
func (t *Topology) TouchesMesh(id types3.IntersectionEdgeID) bool {
	_, ok := t.allEdges[id]
	return ok
}

func newTopology(side types3.Side) *Topology {
	return &Topology{
		Side:     side,
		triEdges: make(map[int][]TriangleEdge),
		allEdges: make(map[types3.IntersectionEdgeID]struct{}),
		adjacent: make(map[types3.IntersectionVertexID][]types3.IntersectionVertexID),
	}
}

func (t *Topology) attach(triIdx int, e TriangleEdge) {
	for _, existing := range t.triEdges[triIdx] {
		if sameUndirected(existing, e) {
			return
		}
	}
	t.triEdges[triIdx] = append(t.triEdges[triIdx], e)
	if e.Global != types3.NilEdgeID {
		t.allEdges[e.Global] = struct{}{}
	}
	t.addAdjacency(e.A, e.B)
}

func (t *Topology) addAdjacency(a, b types3.IntersectionVertexID) {
	if !containsVertex(t.adjacent[a], b) {
		t.adjacent[a] = append(t.adjacent[a], b)
	}
	if !containsVertex(t.adjacent[b], a) {
		t.adjacent[b] = append(t.adjacent[b], a)
	}
}

func containsVertex(list []types3.IntersectionVertexID, v types3.IntersectionVertexID) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func sameUndirected(a, b TriangleEdge) bool {
	return (a.A == b.A && a.B == b.B) || (a.A == b.B && a.B == b.A)
}

// Build constructs the Index and per-side Topology values for a
// completed intersection graph. Shared-mesh-edge propagation is
// applied afterward by PropagateSharedMeshEdges.
func Build(pairs []pairfeatures.PairFeatures, globalOf [][]types3.IntersectionVertexID, graph *xgraph.Graph, tol boolcfg.Tolerances) (*Index, *Topology, *Topology) {
	index := BuildIndex(pairs, globalOf)
	topoA := newTopology(types3.SideA)
	topoB := newTopology(types3.SideB)

	for pi, pf := range pairs {
		assignSide(topoA, index, graph, pf.TriangleA, pf, globalOf[pi], tol)
		assignSide(topoB, index, graph, pf.TriangleB, pf, globalOf[pi], tol)
	}

	return index, topoA, topoB
}

// assignSide attaches every segment of pf to triIdx on the given
// topology, expanding a segment into the chain implied by any graph
// vertices lying strictly between its endpoints (the super-edge
// case).
func assignSide(topo *Topology, index *Index, graph *xgraph.Graph, triIdx int, pf pairfeatures.PairFeatures, localToGlobal []types3.IntersectionVertexID, tol boolcfg.Tolerances) {
	entries := index.VerticesOn(topo.Side, triIdx)

	for _, seg := range pf.Segments {
		a := localToGlobal[seg.From]
		b := localToGlobal[seg.To]

		chain := expandSuperEdge(graph, entries, a, b, tol)
		if len(chain) <= 2 {
			id, _ := graph.HasEdge(a, b)
			topo.attach(triIdx, TriangleEdge{Global: id, A: a, B: b})
			continue
		}

		for i := 0; i+1 < len(chain); i++ {
			u, v := chain[i], chain[i+1]
			id, ok := graph.HasEdge(u, v)
			if !ok {
				id = types3.NilEdgeID
			}
			topo.attach(triIdx, TriangleEdge{Global: id, A: u, B: v})
		}
	}
}

// expandSuperEdge finds every vertex already known to lie on this
// triangle that falls strictly between a and b along the segment
// a->b, within the perpendicular tolerance
// SuperEdgePerpendicularFactor*MergeEpsilon, and returns the full
// chain (including a and b) sorted by projection parameter t. If no
// interior vertex qualifies, it returns just [a, b].
func expandSuperEdge(graph *xgraph.Graph, entries []VertexEntry, a, b types3.IntersectionVertexID, tol boolcfg.Tolerances) []types3.IntersectionVertexID {
	pa, okA := graph.Position(a)
	pb, okB := graph.Position(b)
	if !okA || !okB {
		return []types3.IntersectionVertexID{a, b}
	}

	dir := pb.Sub(pa)
	length2 := dir.Norm2()
	if length2 == 0 {
		return []types3.IntersectionVertexID{a, b}
	}

	perpTol := tol.SuperEdgePerpendicularFactor * tol.MergeEpsilon
	const paramEps = 1e-7

	type interior struct {
		id types3.IntersectionVertexID
		t  float64
	}
	var mid []interior

	for _, e := range entries {
		if e.Global == a || e.Global == b {
			continue
		}
		p, ok := graph.Position(e.Global)
		if !ok {
			continue
		}
		t := p.Sub(pa).Dot(dir) / length2
		if t <= paramEps || t >= 1-paramEps {
			continue
		}
		proj := pa.Add(dir.Mul(t))
		if proj.Sub(p).Norm() > perpTol {
			continue
		}
		mid = append(mid, interior{id: e.Global, t: t})
	}

	if len(mid) == 0 {
		return []types3.IntersectionVertexID{a, b}
	}

	for i := 1; i < len(mid); i++ {
		for j := i; j > 0 && mid[j-1].t > mid[j].t; j-- {
			mid[j-1], mid[j] = mid[j], mid[j-1]
		}
	}

	chain := make([]types3.IntersectionVertexID, 0, len(mid)+2)
	chain = append(chain, a)
	for _, m := range mid {
		chain = append(chain, m.id)
	}
	chain = append(chain, b)
	return chain
}
