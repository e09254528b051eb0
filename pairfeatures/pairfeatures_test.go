package pairfeatures

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

func triA() types3.RealTriangle {
	return types3.RealTriangle{
		A: types3.NewRealPoint(0, 0, 0),
		B: types3.NewRealPoint(1, 0, 0),
		C: types3.NewRealPoint(0, 1, 0),
	}
}

func triB() types3.RealTriangle {
	return types3.RealTriangle{
		A: types3.NewRealPoint(0.2, 0.2, -1),
		B: types3.NewRealPoint(0.2, 0.2, 1),
		C: types3.NewRealPoint(0.8, 0.2, 1),
	}
}

func TestBuildPointTouch(t *testing.T) {
	pts := []types3.RealPoint{types3.NewRealPoint(0.2, 0.2, 0)}
	pf := Build(0, 1, triA(), triB(), types3.PointTouch, pts, boolcfg.Default)

	if len(pf.Vertices) != 1 {
		t.Fatalf("expected 1 vertex, got %d", len(pf.Vertices))
	}
	if len(pf.Segments) != 0 {
		t.Fatalf("expected no segments for a point touch, got %d", len(pf.Segments))
	}
}

func TestBuildSegment(t *testing.T) {
	pts := []types3.RealPoint{
		types3.NewRealPoint(0.2, 0.2, 0),
		types3.NewRealPoint(0.3, 0.2, 0),
	}
	pf := Build(0, 1, triA(), triB(), types3.Segment, pts, boolcfg.Default)

	if len(pf.Vertices) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(pf.Vertices))
	}
	if len(pf.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(pf.Segments))
	}
	if pf.Segments[0].From == pf.Segments[0].To {
		t.Fatalf("segment must not be a self-loop")
	}
}

func TestBuildSegmentDedupsNearDuplicatePoints(t *testing.T) {
	pts := []types3.RealPoint{
		types3.NewRealPoint(0.2, 0.2, 0),
		types3.NewRealPoint(0.2, 0.2, 0),
	}
	pf := Build(0, 1, triA(), triB(), types3.Segment, pts, boolcfg.Default)

	if len(pf.Vertices) != 1 {
		t.Fatalf("expected duplicate points to merge into 1 vertex, got %d", len(pf.Vertices))
	}
	if len(pf.Segments) != 0 {
		t.Fatalf("expected no segment once both endpoints collapse to one vertex, got %d", len(pf.Segments))
	}
}

func TestBuildCoplanarPolygonSegmentsFormAClosedLoop(t *testing.T) {
	pts := []types3.RealPoint{
		types3.NewRealPoint(0.1, 0.1, 0),
		types3.NewRealPoint(0.4, 0.1, 0),
		types3.NewRealPoint(0.1, 0.4, 0),
	}
	pf := Build(0, 1, triA(), triA(), types3.Coplanar, pts, boolcfg.Default)

	if len(pf.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(pf.Vertices))
	}
	if len(pf.Segments) != 3 {
		t.Fatalf("expected a closed 3-edge loop, got %d segments", len(pf.Segments))
	}
}

func TestBuildComputesBarycentricsOnBothTriangles(t *testing.T) {
	pts := []types3.RealPoint{types3.NewRealPoint(0, 0, 0)}
	pf := Build(0, 1, triA(), triA(), types3.PointTouch, pts, boolcfg.Default)

	v := pf.Vertices[0]
	if v.BaryA.U != 1 || v.BaryA.V != 0 {
		t.Fatalf("expected corner-A barycentric (1,0), got (%v,%v)", v.BaryA.U, v.BaryA.V)
	}
}
