package assemble

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

func tetrahedronPatches() []types3.RealTriangle {
	a := types3.NewRealPoint(0, 0, 0)
	b := types3.NewRealPoint(1, 0, 0)
	c := types3.NewRealPoint(0, 1, 0)
	d := types3.NewRealPoint(0, 0, 1)

	// Outward-wound faces of a tetrahedron.
	return []types3.RealTriangle{
		{A: a, B: c, C: b},
		{A: a, B: b, C: d},
		{A: b, B: c, C: d},
		{A: a, B: d, C: c},
	}
}

func TestAssembleWeldsACleanTetrahedronIntoAManifoldMesh(t *testing.T) {
	out, err := Assemble(tetrahedronPatches(), boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NumVertices() != 4 {
		t.Fatalf("expected 4 welded vertices, got %d", out.NumVertices())
	}
	if out.NumTriangles() != 4 {
		t.Fatalf("expected 4 triangles, got %d", out.NumTriangles())
	}
}

func TestAssembleWeldsNearDuplicateVerticesWithinMergeEpsilon(t *testing.T) {
	patches := tetrahedronPatches()
	jitter := boolcfg.Default.MergeEpsilon * 0.1
	patches[1].A = patches[1].A.Add(types3.NewRealPoint(jitter, 0, 0))

	out, err := Assemble(patches, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NumVertices() != 4 {
		t.Fatalf("expected the jittered vertex to weld back to the original 4, got %d", out.NumVertices())
	}
}

func TestAssembleDropsZeroAreaPatchesBeforeIndexing(t *testing.T) {
	patches := tetrahedronPatches()
	degenerate := types3.RealTriangle{A: patches[0].A, B: patches[0].A, C: patches[0].B}
	patches = append(patches, degenerate)

	out, err := Assemble(patches, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NumTriangles() != 4 {
		t.Fatalf("expected the degenerate patch to be dropped, got %d triangles", out.NumTriangles())
	}
}

func TestAssembleFailsOnANonManifoldEdge(t *testing.T) {
	patches := tetrahedronPatches()[:3] // drop one face, leaving a boundary edge used by only 1 triangle
	_, err := Assemble(patches, boolcfg.Default)
	if err == nil {
		t.Fatalf("expected a manifold violation error for an open surface")
	}
}
