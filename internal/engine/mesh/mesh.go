// Package mesh generates flat-shaded, non-indexed triangle meshes for primitive shapes.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/gridlight/pkg/math"
)

// ErrMalformed is returned by Validate when vertex attribute streams disagree.
var ErrMalformed = errors.New("malformed mesh")

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Vertex is one element of a mesh's attribute streams.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    Color
}

// Mesh holds static geometry as parallel attribute streams.
// Every 3 consecutive vertices form one triangle. A Mesh is never mutated after
// construction and may be shared by any number of models.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	Colors    []Color
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Vertex returns the i-th vertex.
func (m *Mesh) Vertex(i int) Vertex {
	return Vertex{Position: m.Positions[i], Normal: m.Normals[i], Color: m.Colors[i]}
}

// Validate checks that all streams have the same length and describe whole triangles.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.Colors) != n {
		return fmt.Errorf("%w: %s has %d positions, %d normals, %d colors",
			ErrMalformed, m.Name, n, len(m.Normals), len(m.Colors))
	}
	if n%3 != 0 {
		return fmt.Errorf("%w: %s vertex count %d is not a multiple of 3", ErrMalformed, m.Name, n)
	}
	return nil
}

// Bounds returns the bounding box of all positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}

// Interleave packs the streams as [px py pz nx ny nz r g b a] per vertex.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*10)
	for i := range m.Positions {
		v := m.Vertex(i)
		p, n, c := v.Position, v.Normal, v.Color
		out = append(out, p.X, p.Y, p.Z, n.X, n.Y, n.Z, c[0], c[1], c[2], c[3])
	}
	return out
}

func uniformColors(n int, c Color) []Color {
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = c
	}
	return colors
}
