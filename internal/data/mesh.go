package data

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangulated terrain surface ready for the renderer. Positions and UVs are aligned 1:1,
// Indices holds triples of vertex indices with the same winding for every triangle.
type TerrainMesh struct {
	Positions      []r3.Vec
	Indices        []uint32
	UVs            [][2]float32
	BoundingCenter r3.Vec
	BoundingRadius float64
}

func (m *TerrainMesh) VertexCount() int {
	return len(m.Positions)
}

func (m *TerrainMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Identity of a mesh displayed by a renderer. Handles are issued when a mesh is added
// and are the only way to remove it again.
type MeshHandle struct {
	id uuid.UUID
}

func NewMeshHandle() MeshHandle {
	return MeshHandle{id: uuid.New()}
}

func (h MeshHandle) IsZero() bool {
	return h.id == uuid.Nil
}

func (h MeshHandle) String() string {
	return h.id.String()
}
