package fixtures

import (
	"math"

	"github.com/iceisfun/gomesh3d/types3"
)

// Icosphere builds a unit-radius icosahedron subdivided `subdivisions`
// times and projected back onto the sphere of the given radius,
// quantized onto the integer lattice at the given scale. Midpoints are
// cached by canonical edge key so a shared edge between two faces
// subdivides to the same vertex on both sides, keeping the result
// watertight.
func Icosphere(radius float64, subdivisions int, scale int64) types3.Mesh {
	verts, faces := icosahedron()
	for i := 0; i < subdivisions; i++ {
		verts, faces = subdivide(verts, faces)
	}

	f := float64(scale)
	lat := make([]types3.Point, len(verts))
	for i, v := range verts {
		n := normalize(v)
		lat[i] = types3.Point{
			X: int64(math.Round(n[0] * radius * f)),
			Y: int64(math.Round(n[1] * radius * f)),
			Z: int64(math.Round(n[2] * radius * f)),
		}
	}

	center := types3.Point{X: 0, Y: 0, Z: 0}

	var tris []types3.Triangle
	for _, face := range faces {
		a, b, c := lat[face[0]], lat[face[1]], lat[face[2]]
		if a == b || b == c || a == c {
			continue // degenerate after lattice quantization; skip
		}
		tris = append(tris, orientOutward(a, b, c, center))
	}

	return types3.Mesh{Triangles: tris}
}

type vec3 [3]float64

func normalize(v vec3) vec3 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return vec3{v[0] / n, v[1] / n, v[2] / n}
}

func icosahedron() ([]vec3, [][3]int) {
	t := (1 + math.Sqrt(5)) / 2

	verts := []vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = normalize(verts[i])
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	return verts, faces
}

type edgeKey [2]int

func canonical(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

func subdivide(verts []vec3, faces [][3]int) ([]vec3, [][3]int) {
	midCache := make(map[edgeKey]int)

	midpoint := func(a, b int) int {
		key := canonical(a, b)
		if idx, ok := midCache[key]; ok {
			return idx
		}
		va, vb := verts[a], verts[b]
		m := normalize(vec3{(va[0] + vb[0]) / 2, (va[1] + vb[1]) / 2, (va[2] + vb[2]) / 2})
		idx := len(verts)
		verts = append(verts, m)
		midCache[key] = idx
		return idx
	}

	var out [][3]int
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		ab := midpoint(a, b)
		bc := midpoint(b, c)
		ca := midpoint(c, a)
		out = append(out,
			[3]int{a, ab, ca},
			[3]int{b, bc, ab},
			[3]int{c, ca, bc},
			[3]int{ab, bc, ca},
		)
	}

	return verts, out
}
