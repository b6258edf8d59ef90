package draft

import (
	"errors"
	"fmt"
)

// CreaseAlways marks a mesh edge that keeps its sharpness through every
// subdivision level.
const CreaseAlways = -1.0

// MeshEdge joins two mesh vertices by index, optionally creased.
type MeshEdge struct {
	Start int
	End   int
	// Crease is the number of subdivision levels the edge stays sharp for:
	// zero or positive, or [CreaseAlways].
	Crease float64
}

// Mesh is a subdivision surface: vertices, faces as vertex index loops, and
// optionally creased edges.
type Mesh struct {
	entity
	Vertexes         []Vector3
	Faces            [][]int
	edges            []MeshEdge
	SubdivisionLevel int
}

// NewMesh returns a mesh over the given WCS vertices and faces. Every face
// must reference at least three existing vertices.
func NewMesh(vertexes []Vector3, faces [][]int) (*Mesh, error) {
	if len(vertexes) < 3 {
		return nil, errors.New("a mesh requires at least three vertexes")
	}
	for i, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("mesh face %d has fewer than three vertexes", i)
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(vertexes) {
				return nil, fmt.Errorf("mesh face %d references vertex %d out of range", i, idx)
			}
		}
	}
	return &Mesh{entity: newEntity(), Vertexes: vertexes, Faces: faces}, nil
}

// Edges returns the mesh's creased edges.
func (ms *Mesh) Edges() []MeshEdge { return ms.edges }

// AddEdge registers a creased edge between two vertex indices. The crease
// must be zero or positive, or [CreaseAlways].
func (ms *Mesh) AddEdge(e MeshEdge) error {
	if e.Start < 0 || e.Start >= len(ms.Vertexes) || e.End < 0 || e.End >= len(ms.Vertexes) {
		return errors.New("mesh edge references a vertex out of range")
	}
	if e.Crease < 0 && e.Crease != CreaseAlways {
		return errors.New("mesh edge crease must be non-negative or CreaseAlways")
	}
	ms.edges = append(ms.edges, e)
	return nil
}

// TransformBy applies an affine map to every vertex. Edges, faces and crease
// values are topological and unaffected.
func (ms *Mesh) TransformBy(m Matrix3, translation Vector3) error {
	for i := range ms.Vertexes {
		ms.Vertexes[i] = m.MulVec(ms.Vertexes[i]).Add(translation)
	}
	ms.normal = transformedNormal(m, ms.normal)
	return nil
}
