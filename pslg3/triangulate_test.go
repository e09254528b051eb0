package pslg3

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/uvplane"
)

func areaOfTriangles(p *PSLG, tris []Triangle3) float64 {
	var total float64
	for _, t3 := range tris {
		a, b, c := p.Vertices[t3[0]].UV, p.Vertices[t3[1]].UV, p.Vertices[t3[2]].UV
		area := uvplane.SignedArea2(a, b, c)
		if area < 0 {
			area = -area
		}
		total += area / 2
	}
	return total
}

func TestTriangulateRegionFanTriangulatesAConvexSquare(t *testing.T) {
	p := &PSLG{Vertices: []Vertex{
		{UV: uvplane.Point{U: 0, V: 0}},
		{UV: uvplane.Point{U: 1, V: 0}},
		{UV: uvplane.Point{U: 1, V: 1}},
		{UV: uvplane.Point{U: 0, V: 1}},
	}}
	region := Region{Outer: Face{Vertices: []int{0, 1, 2, 3}}}

	tris, err := TriangulateRegion(p, region, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles for a quad fan, got %d", len(tris))
	}
	if got, want := areaOfTriangles(p, tris), 1.0; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("expected triangulated area %v, got %v", want, got)
	}
}

func TestTriangulateRegionEarClipsAConcavePolygon(t *testing.T) {
	// An L-shaped hexagon (concave), CCW wound.
	p := &PSLG{Vertices: []Vertex{
		{UV: uvplane.Point{U: 0, V: 0}},
		{UV: uvplane.Point{U: 1, V: 0}},
		{UV: uvplane.Point{U: 1, V: 0.5}},
		{UV: uvplane.Point{U: 0.5, V: 0.5}},
		{UV: uvplane.Point{U: 0.5, V: 1}},
		{UV: uvplane.Point{U: 0, V: 1}},
	}}
	region := Region{Outer: Face{Vertices: []int{0, 1, 2, 3, 4, 5}}}

	tris, err := TriangulateRegion(p, region, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 4 {
		t.Fatalf("expected 4 triangles for a 6-gon ear clip, got %d", len(tris))
	}

	expectedArea := 1.0 - 0.25 // unit square minus the missing quarter
	if got := areaOfTriangles(p, tris); got < expectedArea-1e-9 || got > expectedArea+1e-9 {
		t.Fatalf("expected triangulated area %v, got %v", expectedArea, got)
	}
}

func TestTriangulateRegionBridgesASingleHole(t *testing.T) {
	outer := Face{Vertices: []int{0, 1, 2, 3}}
	// A small CCW hole square inside the outer square.
	hole := Face{Vertices: []int{4, 5, 6, 7}}

	p := &PSLG{Vertices: []Vertex{
		{UV: uvplane.Point{U: 0, V: 0}},
		{UV: uvplane.Point{U: 1, V: 0}},
		{UV: uvplane.Point{U: 1, V: 1}},
		{UV: uvplane.Point{U: 0, V: 1}},
		{UV: uvplane.Point{U: 0.4, V: 0.4}},
		{UV: uvplane.Point{U: 0.6, V: 0.4}},
		{UV: uvplane.Point{U: 0.6, V: 0.6}},
		{UV: uvplane.Point{U: 0.4, V: 0.6}},
	}}

	region := Region{Outer: outer, Holes: []Face{hole}}

	tris, err := TriangulateRegion(p, region, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedArea := 1.0 - 0.2*0.2
	if got := areaOfTriangles(p, tris); got < expectedArea-1e-9 || got > expectedArea+1e-9 {
		t.Fatalf("expected the bridged+clipped area to equal outer-minus-hole (%v), got %v", expectedArea, got)
	}
}
