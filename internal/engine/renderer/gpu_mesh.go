package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gridlight/internal/engine/mesh"
	"github.com/Faultbox/gridlight/internal/logger"
)

// Attribute locations shared with scene.vert.
const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2

	floatSize    = 4
	vertexFloats = 10 // position(3) + normal(3) + color(4)
)

// GPUMesh is a mesh uploaded into an immutable vertex buffer.
// It satisfies scene.Geometry.
type GPUMesh struct {
	Name  string
	vao   uint32
	vbo   uint32
	count int
}

// VertexCount returns the number of vertices in the buffer.
func (g *GPUMesh) VertexCount() int {
	return g.count
}

// Upload validates m and copies it into GPU memory. Upload is done once at
// setup; the buffer is never written again.
func (r *Renderer) Upload(m *mesh.Mesh) (*GPUMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("upload %s: %w", m.Name, err)
	}
	if m.VertexCount() == 0 {
		return nil, fmt.Errorf("upload %s: %w: no vertices", m.Name, mesh.ErrMalformed)
	}

	vertices := m.Interleave()
	g := &GPUMesh{Name: m.Name, count: m.VertexCount()}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(vertexFloats * floatSize)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribColor, 4, gl.FLOAT, false, stride, 6*floatSize)
	gl.EnableVertexAttribArray(attribColor)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.meshes = append(r.meshes, g)
	logger.Debug("mesh uploaded",
		zap.String("name", g.Name),
		zap.Int("vertices", g.count),
		zap.Uint32("vao", g.vao),
		zap.Uint32("vbo", g.vbo),
	)
	return g, nil
}

func (g *GPUMesh) release() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
