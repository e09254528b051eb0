package assemble

import (
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

// unionFind is a plain disjoint-set structure used to merge vertices
// that land within MergeEpsilon of one another in pass 2.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// weldVoxels is assembly's second pass: a secondary canonical-id
// assignment over vertex positions using MergeEpsilon
// floor-voxel buckets, unifying any pair within MergeEpsilon found in
// the 3x3x3 neighboring voxels. Triangles whose three welded ids are
// not all distinct are dropped.
func weldVoxels(verts []types3.RealPoint, tris [][3]int, tol boolcfg.Tolerances) ([]types3.RealPoint, [][3]int) {
	grid := newVoxelGrid(tol.MergeEpsilon)
	for i, v := range verts {
		grid.add(i, v)
	}

	uf := newUnionFind(len(verts))
	for i, v := range verts {
		for _, j := range grid.neighbors(v) {
			if j <= i {
				continue
			}
			if distSquared(v, verts[j]) <= tol.MergeEpsilonSquared {
				uf.union(i, j)
			}
		}
	}

	canonical := make(map[int]int)
	var outVerts []types3.RealPoint
	remap := make([]int, len(verts))
	for i := range verts {
		root := uf.find(i)
		idx, ok := canonical[root]
		if !ok {
			idx = len(outVerts)
			outVerts = append(outVerts, verts[i])
			canonical[root] = idx
		}
		remap[i] = idx
	}

	var outTris [][3]int
	for _, t := range tris {
		a, b, c := remap[t[0]], remap[t[1]], remap[t[2]]
		if a == b || b == c || a == c {
			continue
		}
		outTris = append(outTris, [3]int{a, b, c})
	}

	return outVerts, outTris
}

func distSquared(a, b types3.RealPoint) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
