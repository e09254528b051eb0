package pslg3

import (
	"sort"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/uvplane"
)

// Triangle3 is an ear-clipping result: three PSLG vertex indices.
type Triangle3 [3]int

// TriangulateRegion triangulates one region: bridge any holes into
// the outer ring (if present) and ear-clip the resulting simple
// polygon.
func TriangulateRegion(p *PSLG, region Region, tol boolcfg.Tolerances) ([]Triangle3, error) {
	ring := append([]int(nil), region.Outer.Vertices...)

	if len(region.Holes) > 0 {
		var err error
		ring, err = bridgeHoles(p, ring, region.Holes, tol)
		if err != nil {
			return nil, err
		}
	}

	return earClip(p, ring, tol)
}

func bridgeHoles(p *PSLG, outer []int, holes []Face, tol boolcfg.Tolerances) ([]int, error) {
	ring := outer
	for _, hole := range holes {
		holeRing := append([]int(nil), hole.Vertices...)
		reverseInts(holeRing) // splice holes in CW order

		minIdx := smallestUVIndex(p, holeRing)
		holeStart := append(holeRing[minIdx:], holeRing[:minIdx]...)

		bridgeAt, err := nearestVisibleOuterVertex(p, ring, p.Vertices[holeStart[0]].UV, tol)
		if err != nil {
			return nil, err
		}

		next := make([]int, 0, len(ring)+len(holeStart)+2)
		next = append(next, ring[:bridgeAt+1]...)
		next = append(next, holeStart...)
		next = append(next, holeStart[0], ring[bridgeAt])
		next = append(next, ring[bridgeAt+1:]...)

		ring = compressRuns(next)
	}
	return ring, nil
}

func smallestUVIndex(p *PSLG, ring []int) int {
	best := 0
	for i, idx := range ring {
		a, b := p.Vertices[ring[best]].UV, p.Vertices[idx].UV
		if b.U < a.U || (b.U == a.U && b.V < a.V) {
			best = i
		}
	}
	return best
}

func nearestVisibleOuterVertex(p *PSLG, ring []int, from uvplane.Point, tol boolcfg.Tolerances) (int, error) {
	type candidate struct {
		pos  int
		dist float64
	}
	var candidates []candidate
	for i, idx := range ring {
		to := p.Vertices[idx].UV
		d := (to.U-from.U)*(to.U-from.U) + (to.V-from.V)*(to.V-from.V)
		candidates = append(candidates, candidate{pos: i, dist: d})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	ringUV := make([]uvplane.Point, len(ring))
	for i, idx := range ring {
		ringUV[i] = p.Vertices[idx].UV
	}

	for _, c := range candidates {
		to := ringUV[c.pos]
		if uvplane.SegmentVisible(from, to, ringUV) {
			return c.pos, nil
		}
	}
	return 0, boolerr.NewInvariantError("pslg3", "no visible outer vertex found to bridge a hole", nil)
}

// compressRuns collapses runs of 3 or more identical consecutive
// vertex indices down to 2, preserving the intentional doubled
// bridge vertex while cleaning up degenerate repeats from successive
// bridges landing on the same vertex.
func compressRuns(ring []int) []int {
	if len(ring) == 0 {
		return ring
	}
	out := make([]int, 0, len(ring))
	for _, v := range ring {
		n := len(out)
		if n >= 2 && out[n-1] == v && out[n-2] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

// earClip triangulates a simple polygon given as PSLG vertex indices.
// Convex polygons are fan-triangulated from vertex 0; otherwise
// standard ear clipping is used.
func earClip(p *PSLG, ring []int, tol boolcfg.Tolerances) ([]Triangle3, error) {
	if len(ring) < 3 {
		return nil, boolerr.NewInvariantError("pslg3", "polygon has fewer than 3 vertices", nil)
	}

	if isConvex(p, ring, tol.EpsArea) {
		tris := make([]Triangle3, 0, len(ring)-2)
		for i := 1; i+1 < len(ring); i++ {
			tris = append(tris, Triangle3{ring[0], ring[i], ring[i+1]})
		}
		return tris, nil
	}

	work := append([]int(nil), ring...)
	var tris []Triangle3

	guard := len(work) * len(work)
	for len(work) > 3 && guard > 0 {
		guard--
		found := false
		for i := 0; i < len(work); i++ {
			prev := work[(i+len(work)-1)%len(work)]
			curr := work[i]
			next := work[(i+1)%len(work)]

			if !isEar(p, work, prev, curr, next, tol.EpsArea) {
				continue
			}

			tris = append(tris, Triangle3{prev, curr, next})
			work = append(work[:i], work[i+1:]...)
			found = true
			break
		}
		if !found {
			return nil, boolerr.NewInvariantError("pslg3", "ear clipping could not find a valid ear", map[string]any{"remaining": len(work)})
		}
	}
	if len(work) == 3 {
		tris = append(tris, Triangle3{work[0], work[1], work[2]})
	}

	return tris, nil
}

func isConvex(p *PSLG, ring []int, epsArea float64) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		a := p.Vertices[ring[(i+n-1)%n]].UV
		b := p.Vertices[ring[i]].UV
		c := p.Vertices[ring[(i+1)%n]].UV
		if uvplane.SignedArea2(a, b, c) < -epsArea {
			return false
		}
	}
	return true
}

func isEar(p *PSLG, ring []int, prev, curr, next int, epsArea float64) bool {
	a, b, c := p.Vertices[prev].UV, p.Vertices[curr].UV, p.Vertices[next].UV
	if uvplane.SignedArea2(a, b, c) < epsArea {
		return false
	}
	for _, idx := range ring {
		if idx == prev || idx == curr || idx == next {
			continue
		}
		if uvplane.PointStrictlyInTriangle(p.Vertices[idx].UV, a, b, c, epsArea) {
			return false
		}
		// A vertex on the diagonal prev->next would be pinched by this cut.
		if uvplane.PointOnSegment(p.Vertices[idx].UV, a, c) {
			return false
		}
	}
	return true
}
