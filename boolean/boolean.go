// Package boolean is the entry point: it wires the stages (pair
// intersection, graph merge, per-triangle topology, planar
// subdivision, classification, selection, assembly) into one
// pipeline, wrapping every stage's error with the stage name.
package boolean

import (
	"fmt"

	"github.com/iceisfun/gomesh3d/assemble"
	"github.com/iceisfun/gomesh3d/boolcfg"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/classify"
	"github.com/iceisfun/gomesh3d/pairfeatures"
	"github.com/iceisfun/gomesh3d/patchselect"
	"github.com/iceisfun/gomesh3d/predicates3"
	"github.com/iceisfun/gomesh3d/pslg3"
	"github.com/iceisfun/gomesh3d/tritopo"
	"github.com/iceisfun/gomesh3d/types3"
	"github.com/iceisfun/gomesh3d/xgraph"
)

// Boolean computes op(meshA, meshB):
//
//  1. Classify every candidate triangle pair's intersection.
//  2. Merge every pair's local features into the global intersection
//     graph.
//  3. Derive each side's per-triangle topology and loop structure.
//  4. Subdivide every triangle along its attached constraints into
//     classification-stable regions.
//  5. Classify each region against the opposite mesh.
//  6. Select and orient the regions that survive op.
//  7. Assemble the survivors into a single welded, manifold mesh.
func Boolean(op types3.Operation, meshA, meshB types3.Mesh, opts ...Option) (*types3.RealMesh, error) {
	cfg := newOptions(opts)
	tol := cfg.tol

	pairs := classifyPairs(meshA, meshB, tol)

	graph, globalOf := xgraph.Build(pairs, tol)

	index, topoA, topoB := tritopo.Build(pairs, globalOf, graph, tol)
	tritopo.PropagateSharedMeshEdges(meshA, types3.SideA, index, topoA, tol.BarycentricInsideEpsilon)
	tritopo.PropagateSharedMeshEdges(meshB, types3.SideB, index, topoB, tol.BarycentricInsideEpsilon)
	topoA.TraceLoops()
	topoB.TraceLoops()

	selected, err := subdivideClassifyAndSelect(op, types3.SideA, meshA, meshB, index, topoA, tol)
	if err != nil {
		return nil, fmt.Errorf("side A subdivide/classify/select: %w", err)
	}
	selectedB, err := subdivideClassifyAndSelect(op, types3.SideB, meshB, meshA, index, topoB, tol)
	if err != nil {
		return nil, fmt.Errorf("side B subdivide/classify/select: %w", err)
	}
	selected = append(selected, selectedB...)

	result, err := assemble.Assemble(selected, tol)
	if err != nil {
		cfg.reportAssemblyFailure(err)
		return nil, fmt.Errorf("assembly: %w", err)
	}

	return result, nil
}

// classifyPairs runs the pair intersection over every (triA, triB)
// candidate. A plain all-pairs sweep; a broad-phase structure would
// only change constants, and any pair predicates3.ClassifyPair finds
// disjoint is discarded before it ever reaches the graph.
func classifyPairs(meshA, meshB types3.Mesh, tol boolcfg.Tolerances) []pairfeatures.PairFeatures {
	var pairs []pairfeatures.PairFeatures
	for ai := 0; ai < meshA.NumTriangles(); ai++ {
		triA := meshA.RealTriangleAt(ai)
		for bi := 0; bi < meshB.NumTriangles(); bi++ {
			triB := meshB.RealTriangleAt(bi)
			kind, pts := predicates3.ClassifyPair(triA, triB, tol)
			if kind == types3.None {
				continue
			}
			pf := pairfeatures.Build(ai, bi, triA, triB, kind, pts, tol)
			if len(pf.Vertices) == 0 {
				continue
			}
			pairs = append(pairs, pf)
		}
	}
	return pairs
}

// subdivideClassifyAndSelect walks every triangle of one input mesh:
// subdivide it into classification-stable regions, classify each
// region against the opposite mesh, then keep and orient the regions
// op's selection table says survive. Patch
// ids are assigned per side, offset so the two sides never collide:
// classify.Classify's ray direction is seeded from the id, and a
// collision would make two unrelated patches cast identical rays.
func subdivideClassifyAndSelect(op types3.Operation, side types3.Side, mesh, opposite types3.Mesh, index *tritopo.Index, topo *tritopo.Topology, tol boolcfg.Tolerances) ([]types3.RealTriangle, error) {
	idBase := 0
	if side == types3.SideB {
		idBase = 1 << 30
	}

	var out []types3.RealTriangle
	patchID := idBase
	for triIdx := 0; triIdx < mesh.NumTriangles(); triIdx++ {
		tri := mesh.RealTriangleAt(triIdx)
		entries := index.VerticesOn(side, triIdx)
		edges := topo.EdgesOn(triIdx)

		groups, err := pslg3.SubdivideTriangleByRegion(tri, entries, edges, tol)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", triIdx, err)
		}

		for _, group := range groups {
			patchID++
			patch := classify.Patch{ID: patchID, Triangles: group}
			label, err := classify.Classify(patch, opposite, tol)
			if err != nil {
				return nil, fmt.Errorf("triangle %d patch %d: %w", triIdx, patchID, err)
			}
			decision := patchselect.Select(op, side, label)
			out = append(out, patchselect.Apply(decision, group)...)
		}
	}
	return out, nil
}

// nonManifoldEdges extracts the structured edge list an
// *boolerr.InvariantError from assemble.Assemble carries, for a
// DumpSink to report. Returns nil if err isn't that kind of failure.
func nonManifoldEdges(err error) []assemble.NonManifoldEdge {
	inv, ok := err.(*boolerr.InvariantError)
	if !ok {
		return nil
	}
	edges, ok := inv.Context["edges"].([]assemble.NonManifoldEdge)
	if !ok {
		return nil
	}
	return edges
}
