package assemble

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

func TestWeldVoxelsMergesVerticesWithinMergeEpsilon(t *testing.T) {
	eps := boolcfg.Default.MergeEpsilon
	verts := []types3.RealPoint{
		types3.NewRealPoint(0, 0, 0),
		types3.NewRealPoint(eps*0.1, 0, 0),
		types3.NewRealPoint(5, 5, 5),
	}
	tris := [][3]int{{0, 1, 2}}

	outVerts, outTris := weldVoxels(verts, tris, boolcfg.Default)
	if len(outVerts) != 2 {
		t.Fatalf("expected the near-duplicate pair to weld to 1, got %d vertices", len(outVerts))
	}
	if len(outTris) != 0 {
		t.Fatalf("expected the triangle to be dropped once two of its corners weld together, got %d", len(outTris))
	}
}

func TestWeldVoxelsDropsTrianglesThatBecomeDegenerateAfterWelding(t *testing.T) {
	eps := boolcfg.Default.MergeEpsilon
	verts := []types3.RealPoint{
		types3.NewRealPoint(0, 0, 0),
		types3.NewRealPoint(eps*0.1, 0, 0),
		types3.NewRealPoint(5, 5, 5),
	}
	tris := [][3]int{{0, 1, 0}, {0, 1, 2}}

	_, outTris := weldVoxels(verts, tris, boolcfg.Default)
	if len(outTris) != 0 {
		t.Fatalf("expected both {0,1,0} (welding to {w,w,w}) and {0,1,2} (welding to {w,w,x}) to be dropped, got %d", len(outTris))
	}
}
