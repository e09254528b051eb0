// Package pslg3 is the algorithmic heart of the system: for a single
// input triangle carrying intersection constraints, it builds a
// planar straight-line graph in the triangle's barycentric UV chart,
// derives a half-edge structure, extracts faces (including nested
// holes), and triangulates each face by ear clipping with hole
// bridging, mapping the result back to world-space RealTriangles.
//
// The PSLG construction runs entirely in the UV chart on the 2D
// kernel (uvplane): vertex collection, corner/epsilon snapping,
// boundary and interior edge construction, then crossing validation.
// Constraint edges are expected to meet only at shared vertices; a
// crossing without one means the caller's subdivision data is
// inconsistent and is rejected outright.
package pslg3

import (
	"math"
	"sort"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/tritopo"
	"github.com/iceisfun/gomesh3d/types3"
	"github.com/iceisfun/gomesh3d/uvplane"
)

// Vertex is one PSLG vertex: its UV position and, for vertices that
// came from the intersection graph (as opposed to the triangle's own
// three corners), the global id they represent.
type Vertex struct {
	UV     uvplane.Point
	Global types3.IntersectionVertexID // NilVertexID for the triangle's own corners
}

// Edge is an undirected PSLG edge between two vertex indices.
type Edge struct {
	A, B     int
	Boundary bool
}

// PSLG is the planar straight-line graph built inside one triangle's
// UV chart.
type PSLG struct {
	Vertices []Vertex
	Edges    []Edge
}

const (
	corner0 = 0
	corner1 = 1
	corner2 = 2
)

// Build constructs the PSLG for a triangle given the global vertices
// lying on it (from tritopo.Index) and the edges attached to it
// (from tritopo.Topology).
func Build(entries []tritopo.VertexEntry, edges []tritopo.TriangleEdge, tol boolcfg.Tolerances) (*PSLG, error) {
	raw := buildRawVertices(entries)
	snapToCorners(raw, tol.EpsCorner)
	snapToVertices(raw, tol.EpsVertex)
	finalVerts := mergeVertices(raw, tol.PslgVertexMergeEpsilonSquared)

	globalToLocal := make(map[types3.IntersectionVertexID]int)
	for i, v := range finalVerts {
		if v.Global != types3.NilVertexID {
			globalToLocal[v.Global] = i
		}
	}

	p := &PSLG{Vertices: finalVerts}
	p.addBoundaryEdges(tol.EpsSide)
	if err := p.addInteriorEdges(edges, globalToLocal); err != nil {
		return nil, err
	}
	if err := p.checkCrossings(tol.PslgVertexMergeEpsilonSquared); err != nil {
		return nil, err
	}

	return p, nil
}

func buildRawVertices(entries []tritopo.VertexEntry) []Vertex {
	raw := make([]Vertex, 0, 3+len(entries))
	raw = append(raw,
		Vertex{UV: uvplane.Point{U: 1, V: 0}, Global: types3.NilVertexID},
		Vertex{UV: uvplane.Point{U: 0, V: 1}, Global: types3.NilVertexID},
		Vertex{UV: uvplane.Point{U: 0, V: 0}, Global: types3.NilVertexID},
	)
	for _, e := range entries {
		raw = append(raw, Vertex{UV: clampToDomain(uvplane.Point{U: e.Bary.U, V: e.Bary.V}), Global: e.Global})
	}
	return raw
}

// clampToDomain clamps a chart point into u>=0, v>=0, u+v<=1,
// rescaling proportionally if the sum overshoots.
func clampToDomain(p uvplane.Point) uvplane.Point {
	if p.U < 0 {
		p.U = 0
	}
	if p.V < 0 {
		p.V = 0
	}
	if sum := p.U + p.V; sum > 1 {
		p.U /= sum
		p.V /= sum
	}
	return p
}

var corners = [3]uvplane.Point{{U: 1, V: 0}, {U: 0, V: 1}, {U: 0, V: 0}}

// snapToCorners implements step 3: any non-corner vertex within
// EpsCorner of a reference corner snaps to it exactly.
func snapToCorners(raw []Vertex, epsCorner float64) {
	for i := 3; i < len(raw); i++ {
		p := raw[i].UV
		for _, c := range corners {
			if dist(p, c) <= epsCorner {
				raw[i].UV = c
				break
			}
		}
	}
}

func dist(a, b uvplane.Point) float64 {
	return math.Hypot(a.U-b.U, a.V-b.V)
}

func dist2(a, b uvplane.Point) float64 {
	du := a.U - b.U
	dv := a.V - b.V
	return du*du + dv*dv
}

// snapToVertices snaps a non-corner vertex within EpsVertex of an
// earlier intersection vertex onto that vertex exactly, so the merge
// step collapses the two onto one representative.
func snapToVertices(raw []Vertex, epsVertex float64) {
	for i := 4; i < len(raw); i++ {
		for j := 3; j < i; j++ {
			if dist(raw[i].UV, raw[j].UV) <= epsVertex {
				raw[i].UV = raw[j].UV
				break
			}
		}
	}
}

// mergeVertices implements step 4: merge vertices within
// PslgVertexMergeEpsilon of each other, keeping the first. Corners
// are processed first so a vertex that snapped onto a corner merges
// into the canonical corner entry.
func mergeVertices(raw []Vertex, eps2 float64) []Vertex {
	var kept []Vertex

	for _, v := range raw {
		found := -1
		for j, k := range kept {
			if dist2(v.UV, k.UV) <= eps2 {
				found = j
				break
			}
		}
		if found >= 0 {
			// Prefer to retain a Global id if the kept representative
			// doesn't have one yet (e.g. a corner that coincides with
			// an intersection vertex).
			if kept[found].Global == types3.NilVertexID && v.Global != types3.NilVertexID {
				kept[found].Global = v.Global
			}
			continue
		}
		kept = append(kept, v)
	}

	return kept
}

func (p *PSLG) addBoundaryEdges(epsSide float64) {
	sides := [3][2]int{{corner0, corner1}, {corner1, corner2}, {corner2, corner0}}
	for _, side := range sides {
		start, end := p.Vertices[side[0]].UV, p.Vertices[side[1]].UV

		type onSide struct {
			idx int
			t   float64
		}
		var members []onSide
		for i, v := range p.Vertices {
			if onBoundarySide(v.UV, side, epsSide) {
				t := uvplane.ProjectParam(v.UV, start, end)
				members = append(members, onSide{idx: i, t: t})
			}
		}
		sort.Slice(members, func(i, j int) bool { return members[i].t < members[j].t })

		for i := 0; i+1 < len(members); i++ {
			a, b := members[i].idx, members[i+1].idx
			if a != b {
				p.addEdge(a, b, true)
			}
		}
	}
}

func onBoundarySide(v uvplane.Point, side [2]int, eps float64) bool {
	switch side[0] {
	case corner0: // V0->V1: w = 1-u-v ~ 0
		return math.Abs(1-v.U-v.V) <= eps
	case corner1: // V1->V2: u ~ 0
		return math.Abs(v.U) <= eps
	default: // corner2->corner0, V2->V0: v ~ 0
		return math.Abs(v.V) <= eps
	}
}

func (p *PSLG) addEdge(a, b int, boundary bool) {
	if a == b {
		return
	}
	for i, e := range p.Edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			if boundary {
				p.Edges[i].Boundary = true
			}
			return
		}
	}
	p.Edges = append(p.Edges, Edge{A: a, B: b, Boundary: boundary})
}

func (p *PSLG) addInteriorEdges(edges []tritopo.TriangleEdge, globalToLocal map[types3.IntersectionVertexID]int) error {
	for _, e := range edges {
		a, okA := globalToLocal[e.A]
		b, okB := globalToLocal[e.B]
		if !okA || !okB {
			return boolerr.NewInvariantError("pslg3", "constraint edge endpoint missing from triangle's PSLG vertex set", nil)
		}
		if a == b {
			continue
		}
		p.addEdge(a, b, false)
	}
	return nil
}

func (p *PSLG) checkCrossings(mergeEps2 float64) error {
	for i := 0; i < len(p.Edges); i++ {
		for j := i + 1; j < len(p.Edges); j++ {
			e1, e2 := p.Edges[i], p.Edges[j]
			if sharesVertex(e1, e2) {
				continue
			}
			a1, a2 := p.Vertices[e1.A].UV, p.Vertices[e1.B].UV
			b1, b2 := p.Vertices[e2.A].UV, p.Vertices[e2.B].UV

			ok, t, u := uvplane.SegmentIntersect(a1, a2, b1, b2)
			if !ok {
				continue
			}
			if math.IsNaN(t) || math.IsNaN(u) {
				return boolerr.NewInvariantError("pslg3", "collinear overlapping PSLG edges", nil)
			}
			pt := uvplane.Point{U: a1.U + t*(a2.U-a1.U), V: a1.V + t*(a2.V-a1.V)}
			if !nearExistingVertex(p.Vertices, pt, mergeEps2) {
				return boolerr.NewInvariantError("pslg3", "PSLG edges cross at a non-vertex point", map[string]any{"u": pt.U, "v": pt.V})
			}
		}
	}
	return nil
}

func sharesVertex(a, b Edge) bool {
	return a.A == b.A || a.A == b.B || a.B == b.A || a.B == b.B
}

func nearExistingVertex(verts []Vertex, p uvplane.Point, eps2 float64) bool {
	for _, v := range verts {
		if dist2(v.UV, p) <= eps2 {
			return true
		}
	}
	return false
}
