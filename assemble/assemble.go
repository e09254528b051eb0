// Package assemble implements mesh assembly: quantization dedup,
// voxel-neighborhood welding, and a manifold check, turning the set
// of selected, oriented patches into a single RealMesh.
package assemble

import (
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/types3"
)

// Assemble runs the three passes over the selected patch triangles
// (already oriented by patchselect) in input patch order, so vertex
// indices are stable for a given patch list.
func Assemble(patches []types3.RealTriangle, tol boolcfg.Tolerances) (*types3.RealMesh, error) {
	verts, tris := quantizeDedup(patches, tol)
	verts, tris = weldVoxels(verts, tris, tol)

	if err := checkManifold(tris); err != nil {
		return nil, err
	}

	return &types3.RealMesh{Vertices: verts, Triangles: tris}, nil
}
