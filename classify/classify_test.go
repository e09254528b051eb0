package classify

import (
	"testing"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/fixtures"
	"github.com/iceisfun/gomesh3d/types3"
)

func boxMesh(lo, hi int64) types3.Mesh {
	return fixtures.Box(lo, hi)
}

func patchAt(x, y, z float64) Patch {
	p := types3.NewRealPoint(x, y, z)
	eps := 1e-4
	tri := types3.RealTriangle{
		A: p,
		B: types3.NewRealPoint(x+eps, y, z),
		C: types3.NewRealPoint(x, y+eps, z),
	}
	return Patch{ID: 1, Triangles: []types3.RealTriangle{tri}}
}

func TestClassifyPointWellInsideTheBox(t *testing.T) {
	box := boxMesh(-10, 10)
	patch := patchAt(0, 0, 0)

	label, err := Classify(patch, box, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != Inside {
		t.Fatalf("expected Inside, got %v", label)
	}
}

func TestClassifyPointWellOutsideTheBox(t *testing.T) {
	box := boxMesh(-10, 10)
	patch := patchAt(100, 100, 100)

	label, err := Classify(patch, box, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != Outside {
		t.Fatalf("expected Outside, got %v", label)
	}
}

func TestClassifyIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	box := boxMesh(-10, 10)
	patch := patchAt(3, -2, 4)

	first, err := Classify(patch, box, boolcfg.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := Classify(patch, box, boolcfg.Default)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("expected classification to be deterministic across repeated calls, got %v then %v", first, got)
		}
	}
}

func TestClassifyReturnsArgumentErrorForEmptyPatch(t *testing.T) {
	box := boxMesh(-10, 10)
	_, err := Classify(Patch{ID: 1}, box, boolcfg.Default)
	if err == nil {
		t.Fatalf("expected an error for a patch with no triangles")
	}
}
