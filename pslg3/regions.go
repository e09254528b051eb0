package pslg3

import "github.com/iceisfun/gomesh3d/uvplane"

// Region groups one even-nesting-depth outer face with the
// odd-nesting-depth faces immediately nested inside it, i.e. its
// holes.
type Region struct {
	Outer Face
	Holes []Face
}

// BuildRegions computes containment nesting among the retained faces
// and groups them into (outer, holes) regions. A face's parent is the
// smallest-area other face that strictly contains its centroid.
// Even-depth faces are outer boundaries; odd-depth faces are holes of
// their immediate (even-depth) parent. A hole's own nested contents
// (an even-depth grandchild) becomes a region of its own.
func BuildRegions(faces []Face) []Region {
	parent := make([]int, len(faces))
	depth := make([]int, len(faces))
	for i := range faces {
		parent[i] = -1
	}

	for i, f := range faces {
		bestArea := -1.0
		bestIdx := -1
		for j, g := range faces {
			if i == j {
				continue
			}
			if strictlyContains(g, f.Centroid) {
				if bestIdx == -1 || g.Area < bestArea {
					bestArea = g.Area
					bestIdx = j
				}
			}
		}
		parent[i] = bestIdx
	}

	for i := range faces {
		d := 0
		p := parent[i]
		for p != -1 {
			d++
			p = parent[p]
		}
		depth[i] = d
	}

	var regions []Region
	for i, f := range faces {
		if depth[i]%2 != 0 {
			continue
		}
		region := Region{Outer: f}
		for j, g := range faces {
			if parent[j] == i && depth[j]%2 != 0 {
				region.Holes = append(region.Holes, g)
			}
		}
		regions = append(regions, region)
	}

	return regions
}

func strictlyContains(f Face, p uvplane.Point) bool {
	return uvplane.PointInPolygon(p, f.UV) == uvplane.Inside
}
