package pslg3

import (
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/robust3"
	"github.com/iceisfun/gomesh3d/tritopo"
	"github.com/iceisfun/gomesh3d/types3"
)

// SubdivideTriangle builds the PSLG for one input triangle from the
// intersection vertices/edges assigned to it, extracts and triangulates its
// interior faces, and maps the resulting 2D triangles back into
// world-space RealTriangles via the input triangle's barycentric
// evaluation.
//
// A triangle with no attached constraints is returned unsubdivided.
func SubdivideTriangle(tri types3.RealTriangle, entries []tritopo.VertexEntry, edges []tritopo.TriangleEdge, tol boolcfg.Tolerances) ([]types3.RealTriangle, error) {
	grouped, err := SubdivideTriangleByRegion(tri, entries, edges, tol)
	if err != nil {
		return nil, err
	}
	var out []types3.RealTriangle
	for _, g := range grouped {
		out = append(out, g...)
	}
	return out, nil
}

// SubdivideTriangleByRegion is SubdivideTriangle's region-preserving
// form: it returns one triangle slice per PSLG region. Every triangle
// from the same intersection-separated region of the input triangle
// must receive the same inside/outside label, so classification needs
// the grouping the triangulation already knows and
// SubdivideTriangle's flat result throws away.
//
// A triangle with no attached constraints is returned as a single
// one-element group.
func SubdivideTriangleByRegion(tri types3.RealTriangle, entries []tritopo.VertexEntry, edges []tritopo.TriangleEdge, tol boolcfg.Tolerances) ([][]types3.RealTriangle, error) {
	if len(entries) == 0 && len(edges) == 0 {
		return [][]types3.RealTriangle{{tri}}, nil
	}

	p, err := Build(entries, edges, tol)
	if err != nil {
		return nil, err
	}

	faces := p.BuildFaces()
	kept, err := SelectInteriorFaces(faces, tol)
	if err != nil {
		return nil, err
	}

	regions := BuildRegions(kept)

	var groups [][]types3.RealTriangle
	for _, region := range regions {
		tris, err := TriangulateRegion(p, region, tol)
		if err != nil {
			return nil, err
		}
		group := make([]types3.RealTriangle, 0, len(tris))
		for _, t3 := range tris {
			real := mapToWorld(p, t3, tri)
			if real.Area2() <= tol.EpsArea {
				return nil, boolerr.NewInvariantError("pslg3", "mapped triangle has non-positive 3D area", nil)
			}
			// The barycentric map is affine, so a CCW UV triangle should
			// land with the same winding as tri itself; confirm with an
			// exact-tiebreak plane test (point above tri's own plane,
			// along its normal, must stay on the outward side of the
			// mapped triangle) rather than trusting magnitude alone,
			// which cannot distinguish a flipped winding from area loss.
			above := tri.A.Add(tri.Normal())
			if robust3.Orient3D(real.A, real.B, real.C, above) <= 0 {
				return nil, boolerr.NewInvariantError("pslg3", "mapped triangle has non-positive 3D area", nil)
			}
			group = append(group, real)
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}

func mapToWorld(p *PSLG, t3 Triangle3, tri types3.RealTriangle) types3.RealTriangle {
	toWorld := func(idx int) types3.RealPoint {
		uv := p.Vertices[idx].UV
		bary := types3.Barycentric{U: uv.U, V: uv.V}
		return bary.Evaluate(tri.A, tri.B, tri.C)
	}
	return types3.RealTriangle{A: toWorld(t3[0]), B: toWorld(t3[1]), C: toWorld(t3[2])}
}
