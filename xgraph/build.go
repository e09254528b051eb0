package xgraph

import (
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/pairfeatures"
	"github.com/iceisfun/gomesh3d/types3"
)

// Build merges every pair's PairFeatures into a single Graph,
// quantizing each PairVertex's world position onto the lattice and
// turning every PairSegment into a deduplicated global edge. It
// returns the graph along with, for each input pair, the canonical
// global vertex id each of that pair's local PairVertex ids resolved
// to. Later stages (tritopo) need that mapping to recover which graph
// vertices/edges came from which triangle pair.
func Build(pairs []pairfeatures.PairFeatures, tol boolcfg.Tolerances) (*Graph, [][]types3.IntersectionVertexID) {
	g := New(tol)
	globalOf := make([][]types3.IntersectionVertexID, len(pairs))

	for pi, pf := range pairs {
		localToGlobal := make([]types3.IntersectionVertexID, len(pf.Vertices))
		for _, v := range pf.Vertices {
			localToGlobal[v.ID] = g.AddVertex(v.World)
		}
		globalOf[pi] = localToGlobal

		for _, seg := range pf.Segments {
			a := localToGlobal[seg.From]
			b := localToGlobal[seg.To]
			g.AddEdge(a, b)
		}
	}

	return g, globalOf
}
