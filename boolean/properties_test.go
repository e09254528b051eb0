package boolean

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/gomesh3d/fixtures"
	"github.com/iceisfun/gomesh3d/types3"
)

// surfaceArea sums the world-space area of every triangle. Area is
// the equivalence the algebraic identities below are checked against:
// it survives welding and retriangulation even when vertex indices
// and triangle counts don't match exactly between two results.
func surfaceArea(m *types3.RealMesh) float64 {
	var total float64
	for i := 0; i < m.NumTriangles(); i++ {
		total += m.TriangleAt(i).Area2() / 2
	}
	return total
}

func inputSurfaceArea(m types3.Mesh) float64 {
	var total float64
	for i := 0; i < m.NumTriangles(); i++ {
		total += m.RealTriangleAt(i).Area2() / 2
	}
	return total
}

// overlappingTetrahedra returns two tetrahedra whose interiors
// overlap (neither disjoint nor nested), so union, intersection and
// difference are all non-trivial.
func overlappingTetrahedra() (types3.Mesh, types3.Mesh) {
	a := fixtures.Tetrahedron(
		types3.Point{X: 0, Y: 0, Z: 0},
		types3.Point{X: 4, Y: 0, Z: 0},
		types3.Point{X: 0, Y: 4, Z: 0},
		types3.Point{X: 0, Y: 0, Z: 4},
	)
	b := fixtures.Tetrahedron(
		types3.Point{X: 1, Y: 1, Z: 1},
		types3.Point{X: 5, Y: 1, Z: 1},
		types3.Point{X: 1, Y: 5, Z: 1},
		types3.Point{X: 1, Y: 1, Z: 5},
	)
	return a, b
}

// TestBooleanDeMorganConsistency checks that SymmetricDifference(A,B)
// keeps the same surface area as Union(A,B) (both keep each mesh's
// outside patches), and that this area plus Intersection(A,B)'s
// accounts for all of A's and B's surface area.
func TestBooleanDeMorganConsistency(t *testing.T) {
	a, b := overlappingTetrahedra()

	union, err := Boolean(types3.Union, a, b)
	require.NoError(t, err)
	symdiff, err := Boolean(types3.SymmetricDifference, a, b)
	require.NoError(t, err)
	inter, err := Boolean(types3.Intersection, a, b)
	require.NoError(t, err)

	require.InDelta(t, surfaceArea(union), surfaceArea(symdiff), 1e-6)
	require.InDelta(t, inputSurfaceArea(a)+inputSurfaceArea(b), surfaceArea(symdiff)+surfaceArea(inter), 1e-6)
}

// TestBooleanInvolution checks that Difference(A,B)'s surface area
// plus Intersection(A,B)'s accounts for all of A's own surface area.
func TestBooleanInvolution(t *testing.T) {
	a, b := overlappingTetrahedra()

	diff, err := Boolean(types3.DifferenceAB, a, b)
	require.NoError(t, err)
	inter, err := Boolean(types3.Intersection, a, b)
	require.NoError(t, err)

	require.InDelta(t, inputSurfaceArea(a), surfaceArea(diff)+surfaceArea(inter), 1e-6)
}

// TestBooleanIdempotence checks that Union(A,A) and
// Intersection(A,A) both reproduce A's own surface area.
func TestBooleanIdempotence(t *testing.T) {
	a, _ := disjointTetrahedra()
	aArea := inputSurfaceArea(a)

	union, err := Boolean(types3.Union, a, a)
	require.NoError(t, err)
	require.InDelta(t, aArea, surfaceArea(union), 1e-6)

	inter, err := Boolean(types3.Intersection, a, a)
	require.NoError(t, err)
	require.InDelta(t, aArea, surfaceArea(inter), 1e-6)
}
