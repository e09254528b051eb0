package xgraph

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/pairfeatures"
	"github.com/iceisfun/gomesh3d/types3"
)

func TestBuildMergesSharedEndpointAcrossPairs(t *testing.T) {
	triA := types3.RealTriangle{
		A: types3.NewRealPoint(0, 0, 0),
		B: types3.NewRealPoint(1, 0, 0),
		C: types3.NewRealPoint(0, 1, 0),
	}
	triB := types3.RealTriangle{
		A: types3.NewRealPoint(0.2, 0.2, -1),
		B: types3.NewRealPoint(0.2, 0.2, 1),
		C: types3.NewRealPoint(0.8, 0.2, 1),
	}

	shared := types3.NewRealPoint(0.2, 0.2, 0)
	other1 := types3.NewRealPoint(0.3, 0.2, 0)
	other2 := types3.NewRealPoint(0.2, 0.3, 0)

	pairA := pairfeatures.Build(0, 1, triA, triB, types3.Segment, []types3.RealPoint{shared, other1}, boolcfg.Default)
	pairB := pairfeatures.Build(0, 2, triA, triB, types3.Segment, []types3.RealPoint{shared, other2}, boolcfg.Default)

	graph, globalOf := xgraphBuild(t, []pairfeatures.PairFeatures{pairA, pairB})

	if graph.NumVertices() != 3 {
		t.Fatalf("expected 3 distinct global vertices (shared + 2 unique), got %d", graph.NumVertices())
	}
	if graph.NumEdges() != 2 {
		t.Fatalf("expected 2 edges, got %d", graph.NumEdges())
	}

	sharedGlobalA := globalOf[0][pairA.Vertices[0].ID]
	sharedGlobalB := globalOf[1][pairB.Vertices[0].ID]
	if sharedGlobalA != sharedGlobalB {
		t.Fatalf("expected the shared world point to resolve to the same global id across pairs")
	}
}

func xgraphBuild(t *testing.T, pairs []pairfeatures.PairFeatures) (*Graph, [][]types3.IntersectionVertexID) {
	t.Helper()
	return Build(pairs, boolcfg.Default)
}
