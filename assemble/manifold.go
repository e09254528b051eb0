package assemble

import (
	"sort"

	"github.com/iceisfun/gomesh3d/boolerr"
)

type edgeKey [2]int

func canonicalEdge(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// NonManifoldEdge names one offending edge from a failed manifold
// check by its vertex indices into the assembled RealMesh and how
// many triangles it was incident to (anything but 2 is a violation).
type NonManifoldEdge struct {
	A, B  int
	Count int
}

// checkManifold is assembly's final gate: every undirected edge of
// every surviving triangle must be incident to
// exactly 2 triangles. On failure the returned *boolerr.InvariantError
// carries the offending edges under the "edges" context key as
// []NonManifoldEdge, for a caller's diagnostic dump sink to report.
func checkManifold(tris [][3]int) error {
	counts := make(map[edgeKey]int)
	for _, t := range tris {
		counts[canonicalEdge(t[0], t[1])]++
		counts[canonicalEdge(t[1], t[2])]++
		counts[canonicalEdge(t[2], t[0])]++
	}

	var bad []NonManifoldEdge
	for e, n := range counts {
		if n != 2 {
			bad = append(bad, NonManifoldEdge{A: e[0], B: e[1], Count: n})
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Slice(bad, func(i, j int) bool {
		if bad[i].A != bad[j].A {
			return bad[i].A < bad[j].A
		}
		return bad[i].B < bad[j].B
	})

	return boolerr.NewInvariantError("assemble", "assembled mesh has non-manifold edges", map[string]any{"edges": bad})
}
