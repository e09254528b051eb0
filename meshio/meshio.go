// Package meshio implements plain JSON load/save for the pipeline's
// input and output meshes, plus a human-readable diagnostic dump used
// when assembly reports a non-manifold result.
package meshio

import (
	"encoding/json"
	"os"

	"github.com/iceisfun/gomesh3d/types3"
)

// meshDocument is the on-disk JSON shape for an input types3.Mesh.
type meshDocument struct {
	Triangles []types3.Triangle `json:"triangles"`
}

// SaveMesh writes an input mesh to filename as JSON.
func SaveMesh(filename string, m types3.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meshDocument{Triangles: m.Triangles})
}

// LoadMesh reads an input mesh previously written by SaveMesh.
func LoadMesh(filename string) (types3.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return types3.Mesh{}, err
	}
	defer file.Close()

	var doc meshDocument
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return types3.Mesh{}, err
	}
	return types3.Mesh{Triangles: doc.Triangles}, nil
}

// realMeshDocument is the on-disk JSON shape for an assembled
// types3.RealMesh.
type realMeshDocument struct {
	Vertices  []types3.RealPoint `json:"vertices"`
	Triangles [][3]int           `json:"triangles"`
}

// SaveRealMesh writes an assembled mesh to filename as JSON.
func SaveRealMesh(filename string, m types3.RealMesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(realMeshDocument{Vertices: m.Vertices, Triangles: m.Triangles})
}

// LoadRealMesh reads an assembled mesh previously written by SaveRealMesh.
func LoadRealMesh(filename string) (types3.RealMesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return types3.RealMesh{}, err
	}
	defer file.Close()

	var doc realMeshDocument
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return types3.RealMesh{}, err
	}
	return types3.RealMesh{Vertices: doc.Vertices, Triangles: doc.Triangles}, nil
}
