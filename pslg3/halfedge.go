package pslg3

import (
	"math"
	"sort"

	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/uvplane"
)

type halfEdge struct {
	From, To int
	Twin     int
	Next     int
}

// Face is one cycle extracted from the half-edge structure: the
// ordered vertex indices of its boundary, its UV centroid (average of
// its vertices, robust for non-triangular cycles), and its signed UV
// area after normalizing to CCW.
type Face struct {
	Vertices []int
	UV       []uvplane.Point
	Centroid uvplane.Point
	Area     float64 // always >= 0 after normalization
}

// BuildFaces constructs the half-edge structure for the PSLG and
// extracts every face cycle.
func (p *PSLG) BuildFaces() []Face {
	halfEdges := make([]halfEdge, 0, 2*len(p.Edges))
	for _, e := range p.Edges {
		i := len(halfEdges)
		halfEdges = append(halfEdges, halfEdge{From: e.A, To: e.B, Twin: i + 1}, halfEdge{From: e.B, To: e.A, Twin: i})
	}

	outgoing := make(map[int][]int)
	for i, he := range halfEdges {
		outgoing[he.From] = append(outgoing[he.From], i)
	}
	for v, list := range outgoing {
		sort.Slice(list, func(i, j int) bool {
			return polarAngle(p.Vertices[v].UV, p.Vertices[halfEdges[list[i]].To].UV) <
				polarAngle(p.Vertices[v].UV, p.Vertices[halfEdges[list[j]].To].UV)
		})
		outgoing[v] = list
	}

	for i, he := range halfEdges {
		v := he.To
		twin := he.Twin
		list := outgoing[v]
		pos := indexOf(list, twin)
		next := list[(pos+1)%len(list)]
		halfEdges[i].Next = next
	}

	visited := make([]bool, len(halfEdges))
	var faces []Face
	for start := range halfEdges {
		if visited[start] {
			continue
		}
		var verts []int
		cur := start
		for {
			visited[cur] = true
			verts = append(verts, halfEdges[cur].From)
			cur = halfEdges[cur].Next
			if cur == start {
				break
			}
		}
		faces = append(faces, normalizeFace(p, verts))
	}

	return faces
}

func polarAngle(origin, p uvplane.Point) float64 {
	return math.Atan2(p.V-origin.V, p.U-origin.U)
}

func indexOf(list []int, v int) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

func normalizeFace(p *PSLG, verts []int) Face {
	uv := make([]uvplane.Point, len(verts))
	for i, idx := range verts {
		uv[i] = p.Vertices[idx].UV
	}
	area := uvplane.SignedArea(uv)
	if area < 0 {
		reverseInts(verts)
		reverseUV(uv)
		area = -area
	}
	return Face{Vertices: verts, UV: uv, Centroid: averageUV(uv), Area: area}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseUV(s []uvplane.Point) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func averageUV(pts []uvplane.Point) uvplane.Point {
	var su, sv float64
	for _, p := range pts {
		su += p.U
		sv += p.V
	}
	n := float64(len(pts))
	return uvplane.Point{U: su / n, V: sv / n}
}

// SelectInteriorFaces drops zero-area faces, drops the single
// spurious outer-shell face whose area matches the reference
// triangle's area (1/2), and verifies the retained faces' total area
// equals 1/2.
func SelectInteriorFaces(faces []Face, tol boolcfg.Tolerances) ([]Face, error) {
	var kept []Face
	for _, f := range faces {
		if f.Area > tol.EpsArea {
			kept = append(kept, f)
		}
	}

	if len(kept) > 1 {
		shellTol := tol.EpsArea
		if bt := tol.BarycentricInsideEpsilon * 0.5; bt > shellTol {
			shellTol = bt
		}
		for i, f := range kept {
			if math.Abs(f.Area-0.5) <= shellTol {
				kept = append(kept[:i], kept[i+1:]...)
				break
			}
		}
	}

	var total float64
	for _, f := range kept {
		total += f.Area
	}
	areaTol := tol.EpsArea
	if bt := tol.BarycentricInsideEpsilon * 0.5; bt > areaTol {
		areaTol = bt
	}
	if math.Abs(total-0.5) > areaTol {
		return nil, boolerr.NewInvariantError("pslg3", "retained face area does not sum to the reference triangle's area", map[string]any{"total": total})
	}

	return kept, nil
}
