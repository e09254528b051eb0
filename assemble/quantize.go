package assemble

import (
	"math"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

type latticeKey [3]int64

// quantizeDedup is assembly's first pass: each patch vertex is
// snapped onto the quantization lattice at 1/TrianglePredicateEpsilon
// resolution and identical lattice triples collapse onto one vertex.
// Patches that are zero-area, or that degenerate to fewer than three
// distinct lattice vertices, are skipped.
func quantizeDedup(patches []types3.RealTriangle, tol boolcfg.Tolerances) ([]types3.RealPoint, [][3]int) {
	scale := tol.QuantizeScale()
	index := make(map[latticeKey]int)
	var verts []types3.RealPoint
	var tris [][3]int

	quantize := func(p types3.RealPoint) int {
		key := latticeKey{
			int64(math.Round(p.X * scale)),
			int64(math.Round(p.Y * scale)),
			int64(math.Round(p.Z * scale)),
		}
		if idx, ok := index[key]; ok {
			return idx
		}
		idx := len(verts)
		verts = append(verts, p)
		index[key] = idx
		return idx
	}

	for _, t := range patches {
		if t.Area2() <= tol.EpsArea {
			continue
		}
		a, b, c := quantize(t.A), quantize(t.B), quantize(t.C)
		if a == b || b == c || a == c {
			continue
		}
		tris = append(tris, [3]int{a, b, c})
	}

	return verts, tris
}
