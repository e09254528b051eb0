package uvplane

// InResult categorizes the result of a point-in-polygon query.
type InResult int

const (
	Outside InResult = iota
	OnEdge
	Inside
)

// SignedArea computes the signed area of a simple polygon given as an
// ordered ring of UV points (no repeated closing vertex).
func SignedArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].U*poly[j].V - poly[j].U*poly[i].V
	}
	return area / 2
}

// IsCCW reports whether the polygon winds counter-clockwise.
func IsCCW(poly []Point) bool {
	return SignedArea(poly) > 0
}

// PointInPolygon evaluates p's position relative to a simple polygon.
func PointInPolygon(p Point, poly []Point) InResult {
	n := len(poly)
	if n < 3 {
		return Outside
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointOnSegment(p, poly[i], poly[j]) {
			return OnEdge
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := poly[i]
		pj := poly[j]
		if ((pi.V > p.V) != (pj.V > p.V)) &&
			(p.U < (pj.U-pi.U)*(p.V-pi.V)/(pj.V-pi.V)+pi.U) {
			inside = !inside
		}
	}

	if inside {
		return Inside
	}
	return Outside
}

// SegmentVisible reports whether the open segment (a,b) is
// unobstructed by any of the supplied polygon edges, i.e. it does
// not properly cross any of them. Endpoints touching a or b are
// ignored (shared vertices are expected at bridge points). Used by
// the hole-bridging step of triangulation.
func SegmentVisible(a, b Point, obstacles []Point) bool {
	n := len(obstacles)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		e0, e1 := obstacles[i], obstacles[j]
		if e0 == a || e0 == b || e1 == a || e1 == b {
			continue
		}
		ok, t, u := SegmentIntersect(a, b, e0, e1)
		if !ok {
			continue
		}
		if isNaNParam(t) || isNaNParam(u) {
			return false
		}
		if t > 1e-9 && t < 1-1e-9 && u > -1e-9 && u < 1+1e-9 {
			return false
		}
	}
	return true
}

func isNaNParam(v float64) bool {
	return v != v
}
