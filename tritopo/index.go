// Package tritopo builds the per-triangle intersection index and
// mesh-local topology: for each input triangle, which global
// intersection-graph vertices lie on it, which global edges are
// attached to it (expanding super-edges into their constituent chain
// when other graph vertices fall strictly between the two endpoints),
// and the closed loops or open chains those edges trace on the mesh.
//
// Topology is parameterized by types3.Side rather than existing as
// two near-identical concrete types; the side never changes anything
// but which pair-index field a segment is matched on.
package tritopo

import (
	"github.com/iceisfun/gomesh3d/pairfeatures"
	"github.com/iceisfun/gomesh3d/types3"
)

// VertexEntry is one entry of the TriangleIntersectionIndex: a global
// graph vertex lying on a particular triangle, together with its
// local barycentric coordinates on that triangle.
type VertexEntry struct {
	Global types3.IntersectionVertexID
	Bary   types3.Barycentric
}

// Index holds both sides' per-triangle vertex lists: for every input
// triangle, the graph vertices lying on it.
type Index struct {
	bySide [2]map[int][]VertexEntry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		bySide: [2]map[int][]VertexEntry{
			make(map[int][]VertexEntry),
			make(map[int][]VertexEntry),
		},
	}
}

func (ix *Index) add(side types3.Side, triIdx int, global types3.IntersectionVertexID, bary types3.Barycentric) {
	for _, e := range ix.bySide[side][triIdx] {
		if e.Global == global {
			return
		}
	}
	ix.bySide[side][triIdx] = append(ix.bySide[side][triIdx], VertexEntry{Global: global, Bary: bary})
}

// VerticesOn returns the vertex entries on triangle triIdx for the
// given side, in first-seen order.
func (ix *Index) VerticesOn(side types3.Side, triIdx int) []VertexEntry {
	return ix.bySide[side][triIdx]
}

// BuildIndex constructs the TriangleIntersectionIndex from every
// pair's PairFeatures: each PairVertex lies, by construction, on both
// the originating pair's triangle A and triangle B.
func BuildIndex(pairs []pairfeatures.PairFeatures, globalOf [][]types3.IntersectionVertexID) *Index {
	ix := NewIndex()
	for pi, pf := range pairs {
		for _, v := range pf.Vertices {
			g := globalOf[pi][v.ID]
			ix.add(types3.SideA, pf.TriangleA, g, v.BaryA)
			ix.add(types3.SideB, pf.TriangleB, g, v.BaryB)
		}
	}
	return ix
}
