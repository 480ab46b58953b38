package scene

import "github.com/Faultbox/gridlight/internal/engine/mesh"

// Geometry is the vertex data a draw call reads for a model.
// A *mesh.Mesh satisfies it directly; the renderer replaces it with GPU-resident
// buffers uploaded once at setup.
type Geometry interface {
	VertexCount() int
}

// Model pairs a shared mesh with a transform it owns exclusively.
type Model struct {
	Mesh      *mesh.Mesh
	Geometry  Geometry
	Transform *Transform

	// GridIndex is the model's cell in row-major grid order, or -1 when the
	// model is not part of the grid.
	GridIndex int
}

// NewModel creates a model for m with a fresh transform.
func NewModel(m *mesh.Mesh, gridIndex int) *Model {
	return &Model{
		Mesh:      m,
		Geometry:  m,
		Transform: NewTransform(),
		GridIndex: gridIndex,
	}
}
