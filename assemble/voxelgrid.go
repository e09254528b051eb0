package assemble

import (
	"math"

	"github.com/iceisfun/gomesh3d/types3"
)

// voxelKey identifies a cell of a uniform 3D hash grid, used to find
// weld candidates within MergeEpsilon during assembly's second
// pass.
type voxelKey [3]int64

type voxelGrid struct {
	cellSize float64
	cells    map[voxelKey][]int
}

func newVoxelGrid(cellSize float64) *voxelGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &voxelGrid{cellSize: cellSize, cells: make(map[voxelKey][]int)}
}

func (g *voxelGrid) cellOf(p types3.RealPoint) voxelKey {
	return voxelKey{
		int64(math.Floor(p.X / g.cellSize)),
		int64(math.Floor(p.Y / g.cellSize)),
		int64(math.Floor(p.Z / g.cellSize)),
	}
}

func (g *voxelGrid) add(id int, p types3.RealPoint) {
	g.cells[g.cellOf(p)] = append(g.cells[g.cellOf(p)], id)
}

// neighbors returns every id stored in p's cell and its 26 neighbors.
func (g *voxelGrid) neighbors(p types3.RealPoint) []int {
	c := g.cellOf(p)
	var out []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := voxelKey{c[0] + dx, c[1] + dy, c[2] + dz}
				out = append(out, g.cells[key]...)
			}
		}
	}
	return out
}
