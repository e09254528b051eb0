package meshio

import (
	"fmt"
	"io"
	"os"

	"github.com/iceisfun/gomesh3d/assemble"
	"github.com/iceisfun/gomesh3d/boolerr"
	"github.com/iceisfun/gomesh3d/types3"
)

// DumpMesh writes a human-readable summary of an assembled mesh: a
// counts header followed by every vertex and triangle.
func DumpMesh(w io.Writer, m types3.RealMesh) error {
	fmt.Fprintf(w, "RealMesh Summary:\n")
	fmt.Fprintf(w, "  Vertices:  %d\n", m.NumVertices())
	fmt.Fprintf(w, "  Triangles: %d\n\n", m.NumTriangles())

	if m.NumVertices() > 0 {
		fmt.Fprintf(w, "Vertices:\n")
		for i, v := range m.Vertices {
			fmt.Fprintf(w, "  [%d] (%.6g, %.6g, %.6g)\n", i, v.X, v.Y, v.Z)
		}
		fmt.Fprintf(w, "\n")
	}

	if m.NumTriangles() > 0 {
		fmt.Fprintf(w, "Triangles:\n")
		for i, t := range m.Triangles {
			fmt.Fprintf(w, "  [%d] Triangle{%d, %d, %d}\n", i, t[0], t[1], t[2])
		}
	}

	return nil
}

// DumpManifoldViolation writes a diagnostic report for an
// *boolerr.InvariantError raised by assemble's manifold check: the
// mesh summary followed by every offending edge and its
// incidence count. Returns the original error unwrapped if it is not
// such an error, so callers can chain this into error handling
// unconditionally.
func DumpManifoldViolation(w io.Writer, m types3.RealMesh, cause error) error {
	if err := DumpMesh(w, m); err != nil {
		return err
	}

	inv, ok := cause.(*boolerr.InvariantError)
	if !ok {
		return cause
	}

	edges, _ := inv.Context["edges"].([]assemble.NonManifoldEdge)
	if err := WriteNonManifoldEdges(w, edges); err != nil {
		return err
	}

	return cause
}

// WriteNonManifoldEdges writes the offending-edge section of a
// manifold-violation report: one line per edge naming its vertex
// indices and incidence count.
func WriteNonManifoldEdges(w io.Writer, edges []assemble.NonManifoldEdge) error {
	fmt.Fprintf(w, "\nNon-manifold edges:\n")
	for _, e := range edges {
		fmt.Fprintf(w, "  (%d,%d): %d\n", e.A, e.B, e.Count)
	}
	return nil
}

// FileDumpSink is the default boolean.DumpSink implementation: it
// writes the non-manifold report to a fixed path, in the
// same plain-text style as DumpMesh, and is never a package-level
// global: callers construct one and pass it to boolean.WithDumpSink
// explicitly.
type FileDumpSink struct {
	Path string
}

// WriteNonManifoldReport implements boolean.DumpSink by writing the
// offending edges to the sink's configured path.
func (s FileDumpSink) WriteNonManifoldReport(edges []assemble.NonManifoldEdge) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "gomesh3d: assembly failed, mesh is not manifold\n")
	return WriteNonManifoldEdges(f, edges)
}
