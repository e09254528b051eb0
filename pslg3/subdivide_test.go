package pslg3

import (
	"math"
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/tritopo"
	"github.com/iceisfun/gomesh3d/types3"
)

func refTriangle() types3.RealTriangle {
	return types3.RealTriangle{
		A: types3.NewRealPoint(1, 0, 0),
		B: types3.NewRealPoint(0, 1, 0),
		C: types3.NewRealPoint(0, 0, 0),
	}
}

func TestSubdivideTriangleNoConstraintsIsUnchanged(t *testing.T) {
	tri := refTriangle()
	out, err := SubdivideTriangle(tri, nil, nil, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(out))
	}
	if out[0] != tri {
		t.Fatalf("expected the triangle to be returned unchanged")
	}
}

func TestSubdivideTriangleWithIsolatedInteriorVertexKeepsArea(t *testing.T) {
	tri := refTriangle()
	// A lone interior vertex with no constraint edges must not disturb
	// the subdivision: the face walk ignores it and the patch areas
	// still sum to the whole triangle.
	entries := []tritopo.VertexEntry{
		{Global: 100, Bary: types3.Barycentric{U: 1.0 / 3, V: 1.0 / 3}},
	}

	out, err := SubdivideTriangle(tri, entries, nil, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var total float64
	for _, r := range out {
		total += r.Area2()
	}
	expected := tri.Area2()
	if math.Abs(total-expected) > 1e-6 {
		t.Fatalf("expected subdivided area to sum to the original triangle's area, got %v want %v", total, expected)
	}
}

func TestSubdivideTriangleWithConstraintSegmentSplitsIntoTwo(t *testing.T) {
	tri := refTriangle()

	// Two boundary-touching points connected by a single interior
	// constraint edge, splitting the triangle into two patches.
	entries := []tritopo.VertexEntry{
		{Global: 1, Bary: types3.Barycentric{U: 0.5, V: 0.5}},  // midpoint of side V0-V1 (w=0)
		{Global: 2, Bary: types3.Barycentric{U: 0, V: 0.5}},    // midpoint of side V1-V2 (u=0)
	}
	edges := []tritopo.TriangleEdge{
		{A: 1, B: 2},
	}

	out, err := SubdivideTriangle(tri, entries, edges, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) < 2 {
		t.Fatalf("expected the constraint segment to split the triangle into at least 2 patches, got %d", len(out))
	}

	var total float64
	for _, r := range out {
		total += r.Area2()
	}
	expected := tri.Area2()
	if math.Abs(total-expected) > 1e-6 {
		t.Fatalf("expected patch areas to sum to the original triangle's area, got %v want %v", total, expected)
	}
}

func TestSubdivideTriangleByRegionGroupsDistinctRegionsSeparately(t *testing.T) {
	tri := refTriangle()

	entries := []tritopo.VertexEntry{
		{Global: 1, Bary: types3.Barycentric{U: 0.5, V: 0.5}},
		{Global: 2, Bary: types3.Barycentric{U: 0, V: 0.5}},
	}
	edges := []tritopo.TriangleEdge{
		{A: 1, B: 2},
	}

	groups, err := SubdivideTriangleByRegion(tri, entries, edges, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected the constraint segment to produce 2 regions, got %d", len(groups))
	}

	var total float64
	for _, g := range groups {
		if len(g) == 0 {
			t.Fatalf("expected every region to contain at least one triangle")
		}
		for _, r := range g {
			total += r.Area2()
		}
	}
	expected := tri.Area2()
	if math.Abs(total-expected) > 1e-6 {
		t.Fatalf("expected region areas to sum to the original triangle's area, got %v want %v", total, expected)
	}
}

func TestSubdivideTriangleByRegionNoConstraintsIsOneGroup(t *testing.T) {
	tri := refTriangle()
	groups, err := SubdivideTriangleByRegion(tri, nil, nil, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("expected a single one-triangle group, got %v", groups)
	}
}
