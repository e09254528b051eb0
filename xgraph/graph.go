// Package xgraph implements the global intersection graph: every
// PairFeatures vertex across every triangle pair is snapped onto a
// quantization lattice and assigned a canonical
// IntersectionVertexID, and PairSegments become deduplicated,
// undirected graph edges between canonical ids.
//
// The graph is an arena of ids: append-only vertex/edge slices
// addressed by integer id, with auxiliary maps doing the lookup work.
// The quantization is a literal rounding lattice rather than a bucket
// grid; dedup needs exact, not nearest-neighbor, matching.
package xgraph

import (
	"math"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

// Vertex is one entry in the global intersection graph.
type Vertex struct {
	ID    types3.IntersectionVertexID
	World types3.RealPoint
}

// Edge is one undirected entry in the global intersection graph,
// stored with a canonical orientation (min id first).
type Edge struct {
	ID   types3.IntersectionEdgeID
	A, B types3.IntersectionVertexID
}

// latticeKey is the rounded integer triple a world point quantizes to.
type latticeKey [3]int64

// Graph is the globally-deduplicated intersection topology produced
// by merging every triangle pair's PairFeatures.
type Graph struct {
	tol        boolcfg.Tolerances
	vertices   []Vertex
	edges      []Edge
	byLattice  map[latticeKey]types3.IntersectionVertexID
	edgeLookup map[[2]types3.IntersectionVertexID]types3.IntersectionEdgeID
}

// New returns an empty graph that will quantize incoming vertices
// using tol.QuantizeScale().
func New(tol boolcfg.Tolerances) *Graph {
	return &Graph{
		tol:        tol,
		byLattice:  make(map[latticeKey]types3.IntersectionVertexID),
		edgeLookup: make(map[[2]types3.IntersectionVertexID]types3.IntersectionEdgeID),
	}
}

func (g *Graph) quantize(p types3.RealPoint) latticeKey {
	scale := g.tol.QuantizeScale()
	return latticeKey{
		int64(math.Round(p.X * scale)),
		int64(math.Round(p.Y * scale)),
		int64(math.Round(p.Z * scale)),
	}
}

// AddVertex maps a world point onto the quantization lattice and
// returns the canonical vertex id for that lattice cell, creating a
// new vertex the first time a cell is touched.
func (g *Graph) AddVertex(p types3.RealPoint) types3.IntersectionVertexID {
	key := g.quantize(p)
	if id, ok := g.byLattice[key]; ok {
		return id
	}

	id := types3.IntersectionVertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, World: p})
	g.byLattice[key] = id
	return id
}

func canonicalPair(a, b types3.IntersectionVertexID) [2]types3.IntersectionVertexID {
	if a <= b {
		return [2]types3.IntersectionVertexID{a, b}
	}
	return [2]types3.IntersectionVertexID{b, a}
}

// AddEdge records an undirected edge between two canonical vertex
// ids, deduplicating by canonical endpoint pair. Self-loops (a == b,
// which would be a zero-length edge after quantization) are rejected.
func (g *Graph) AddEdge(a, b types3.IntersectionVertexID) (types3.IntersectionEdgeID, bool) {
	if a == b {
		return types3.NilEdgeID, false
	}

	key := canonicalPair(a, b)
	if id, ok := g.edgeLookup[key]; ok {
		return id, false
	}

	id := types3.IntersectionEdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, A: key[0], B: key[1]})
	g.edgeLookup[key] = id
	return id, true
}

// HasEdge reports whether an edge already exists between the two
// (unordered) vertex ids, returning its id if so.
func (g *Graph) HasEdge(a, b types3.IntersectionVertexID) (types3.IntersectionEdgeID, bool) {
	id, ok := g.edgeLookup[canonicalPair(a, b)]
	return id, ok
}

// Vertices returns every vertex in the graph, ordered by id.
func (g *Graph) Vertices() []Vertex {
	return g.vertices
}

// Edges returns every edge in the graph, ordered by id.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Position returns the world point for a vertex id.
func (g *Graph) Position(id types3.IntersectionVertexID) (types3.RealPoint, bool) {
	if int(id) < 0 || int(id) >= len(g.vertices) {
		return types3.RealPoint{}, false
	}
	return g.vertices[id].World, true
}

// NumVertices and NumEdges report the current arena sizes.
func (g *Graph) NumVertices() int { return len(g.vertices) }
func (g *Graph) NumEdges() int    { return len(g.edges) }
