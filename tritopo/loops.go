package tritopo

import "github.com/iceisfun/gomesh3d/types3"

// Loop is a maximal walk through the mesh-wide vertex-edge adjacency:
// Closed is true when the walk returns to its starting vertex (a
// genuine closed intersection curve), false for an open chain (a
// local degeneracy that downstream stages must still triangulate, but
// which is surfaced here only for diagnostics).
type Loop struct {
	Vertices []types3.IntersectionVertexID
	Closed   bool
}

// TraceLoops walks every edge exactly once across the topology's
// mesh-wide adjacency, grouping them into closed cycles or open
// chains, and stores the result on t.Loops. Traversal order at a
// branching vertex is the adjacency list's insertion order
// (first-seen), keeping the trace deterministic.
func (t *Topology) TraceLoops() {
	visited := make(map[[2]types3.IntersectionVertexID]bool)
	markVisited := func(a, b types3.IntersectionVertexID) {
		visited[[2]types3.IntersectionVertexID{a, b}] = true
		visited[[2]types3.IntersectionVertexID{b, a}] = true
	}
	isVisited := func(a, b types3.IntersectionVertexID) bool {
		return visited[[2]types3.IntersectionVertexID{a, b}]
	}

	var ordered []types3.IntersectionVertexID
	for v := range t.adjacent {
		ordered = append(ordered, v)
	}
	sortVertexIDs(ordered)

	var loops []Loop
	for _, start := range ordered {
		for _, next := range t.adjacent[start] {
			if isVisited(start, next) {
				continue
			}
			loop := walk(t, start, next, markVisited, isVisited)
			loops = append(loops, loop)
		}
	}

	t.Loops = loops
}

func walk(t *Topology, start, first types3.IntersectionVertexID, markVisited func(a, b types3.IntersectionVertexID), isVisited func(a, b types3.IntersectionVertexID) bool) Loop {
	path := []types3.IntersectionVertexID{start}
	cur := first
	markVisited(start, first)

	for {
		path = append(path, cur)
		if cur == start {
			return Loop{Vertices: path, Closed: true}
		}

		nextFound := false
		for _, candidate := range t.adjacent[cur] {
			if isVisited(cur, candidate) {
				continue
			}
			markVisited(cur, candidate)
			cur = candidate
			nextFound = true
			break
		}
		if !nextFound {
			return Loop{Vertices: path, Closed: false}
		}
	}
}

func sortVertexIDs(ids []types3.IntersectionVertexID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
