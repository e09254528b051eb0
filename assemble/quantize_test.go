package assemble

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

func TestQuantizeDedupCollapsesIdenticalLatticePositions(t *testing.T) {
	a := types3.NewRealPoint(0, 0, 0)
	b := types3.NewRealPoint(1, 0, 0)
	c := types3.NewRealPoint(0, 1, 0)

	patches := []types3.RealTriangle{
		{A: a, B: b, C: c},
		{A: b, B: types3.NewRealPoint(1, 1, 0), C: c},
	}

	verts, tris := quantizeDedup(patches, boolcfg.Default)
	if len(verts) != 4 {
		t.Fatalf("expected 4 distinct lattice vertices, got %d", len(verts))
	}
	if len(tris) != 2 {
		t.Fatalf("expected both triangles to survive, got %d", len(tris))
	}
}

func TestQuantizeDedupSkipsZeroAreaPatches(t *testing.T) {
	a := types3.NewRealPoint(0, 0, 0)
	patches := []types3.RealTriangle{{A: a, B: a, C: a}}

	_, tris := quantizeDedup(patches, boolcfg.Default)
	if len(tris) != 0 {
		t.Fatalf("expected the zero-area patch to be skipped, got %d triangles", len(tris))
	}
}
