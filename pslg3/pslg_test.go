package pslg3

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/tritopo"
	"github.com/iceisfun/gomesh3d/types3"
)

func TestBuildWithNoConstraintsHasOnlyTheThreeCornersAndBoundaryEdges(t *testing.T) {
	p, err := Build(nil, nil, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(p.Vertices))
	}
	if len(p.Edges) != 3 {
		t.Fatalf("expected 3 boundary edges, got %d", len(p.Edges))
	}
	for _, e := range p.Edges {
		if !e.Boundary {
			t.Fatalf("expected all edges of an unconstrained triangle to be boundary edges")
		}
	}
}

func TestBuildSnapsNearCornerVertexOntoTheExistingCorner(t *testing.T) {
	entries := []tritopo.VertexEntry{
		{Global: 7, Bary: types3.Barycentric{U: 1 - 1e-6, V: 1e-7}},
	}
	p, err := Build(entries, nil, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Vertices) != 3 {
		t.Fatalf("expected the near-corner vertex to merge into the existing corner, got %d vertices", len(p.Vertices))
	}
	if p.Vertices[corner0].Global != 7 {
		t.Fatalf("expected the corner to inherit the snapped vertex's global id, got %v", p.Vertices[corner0].Global)
	}
}

func TestBuildSnapsNearbyIntersectionVerticesOntoOneRepresentative(t *testing.T) {
	// Two interior vertices closer than EpsVertex but farther apart
	// than PslgVertexMergeEpsilon: the vertex snap collapses them.
	entries := []tritopo.VertexEntry{
		{Global: 1, Bary: types3.Barycentric{U: 0.3, V: 0.3}},
		{Global: 2, Bary: types3.Barycentric{U: 0.3 + 5e-7, V: 0.3}},
	}
	p, err := Build(entries, nil, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Vertices) != 4 {
		t.Fatalf("expected the near-duplicate pair to collapse to 1 vertex (4 total), got %d", len(p.Vertices))
	}
	if p.Vertices[3].Global != 1 {
		t.Fatalf("expected the first-seen vertex to stay the representative, got %v", p.Vertices[3].Global)
	}
}

func TestBuildAddsAnInteriorEdgeBetweenTwoAssignedVertices(t *testing.T) {
	entries := []tritopo.VertexEntry{
		{Global: 1, Bary: types3.Barycentric{U: 0.5, V: 0.5}}, // midpoint of side V0-V1
		{Global: 2, Bary: types3.Barycentric{U: 0, V: 0.5}},   // midpoint of side V1-V2
	}
	edges := []tritopo.TriangleEdge{{A: 1, B: 2}}

	p, err := Build(entries, edges, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, e := range p.Edges {
		a, b := p.Vertices[e.A].Global, p.Vertices[e.B].Global
		if (a == 1 && b == 2) || (a == 2 && b == 1) {
			found = true
			if e.Boundary {
				t.Fatalf("expected the interior constraint edge to not be marked as a boundary edge")
			}
		}
	}
	if !found {
		t.Fatalf("expected to find the interior edge between global vertices 1 and 2")
	}
}

func TestBuildRejectsCrossingInteriorEdges(t *testing.T) {
	entries := []tritopo.VertexEntry{
		{Global: 1, Bary: types3.Barycentric{U: 0.6, V: 0.1}},
		{Global: 2, Bary: types3.Barycentric{U: 0.1, V: 0.6}},
		{Global: 3, Bary: types3.Barycentric{U: 0.6, V: 0.3}},
		{Global: 4, Bary: types3.Barycentric{U: 0.3, V: 0.1}},
	}
	edges := []tritopo.TriangleEdge{
		{A: 1, B: 2},
		{A: 3, B: 4},
	}

	_, err := Build(entries, edges, boolcfg.Default)
	if err == nil {
		t.Fatalf("expected an error for PSLG edges crossing at a non-vertex point")
	}
}

func TestBuildReturnsErrorWhenConstraintEdgeEndpointIsMissing(t *testing.T) {
	edges := []tritopo.TriangleEdge{{A: 99, B: 100}}
	_, err := Build(nil, edges, boolcfg.Default)
	if err == nil {
		t.Fatalf("expected an error when a constraint edge references a vertex not assigned to this triangle")
	}
}
