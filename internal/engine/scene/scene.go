// Package scene holds the models, ambient term and light that make up one frame's world.
package scene

import (
	"fmt"

	"github.com/Faultbox/gridlight/internal/engine/lighting"
	"github.com/Faultbox/gridlight/internal/engine/mesh"
	"github.com/Faultbox/gridlight/pkg/math"
)

// Config contains scene construction options.
type Config struct {
	GridWidth     int
	GridHeight    int
	Ambient       math.Vec3
	LightPosition math.Vec3
	LightRadius   float32
}

// DefaultConfig returns a 16x16 grid lit by a light of radius 4.
func DefaultConfig() Config {
	return Config{
		GridWidth:     16,
		GridHeight:    16,
		Ambient:       math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		LightPosition: math.Vec3{X: 0, Y: 1, Z: 2},
		LightRadius:   lighting.DefaultRadius,
	}
}

// Scene is an ordered collection of models plus ambient color and one light.
// Model order only affects draw order.
type Scene struct {
	Models  []*Model
	Ambient math.Vec3
	Light   *lighting.Light

	GridWidth  int
	GridHeight int
}

// New creates an empty scene.
func New(cfg Config) *Scene {
	return &Scene{
		Ambient:    cfg.Ambient,
		Light:      lighting.NewLight(cfg.LightPosition, cfg.LightRadius),
		GridWidth:  cfg.GridWidth,
		GridHeight: cfg.GridHeight,
	}
}

// NewGrid creates a scene with GridWidth*GridHeight instances of m in row-major order.
// Every instance shares m.
func NewGrid(cfg Config, m *mesh.Mesh) (*Scene, error) {
	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", cfg.GridWidth, cfg.GridHeight)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s := New(cfg)
	s.Models = make([]*Model, 0, cfg.GridWidth*cfg.GridHeight)
	for i := 0; i < cfg.GridWidth*cfg.GridHeight; i++ {
		s.Models = append(s.Models, NewModel(m, i))
	}
	return s, nil
}

// Add appends a non-grid model at a fixed position.
func (s *Scene) Add(m *mesh.Mesh, pos math.Vec3) (*Model, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	model := NewModel(m, -1)
	model.Transform.Position = pos
	model.Transform.UpdateMatrix()
	s.Models = append(s.Models, model)
	return model, nil
}

// Meshes returns the distinct meshes referenced by the scene, in first-use order.
func (s *Scene) Meshes() []*mesh.Mesh {
	var out []*mesh.Mesh
	seen := make(map[*mesh.Mesh]bool)
	for _, m := range s.Models {
		if !seen[m.Mesh] {
			seen[m.Mesh] = true
			out = append(out, m.Mesh)
		}
	}
	return out
}

// BindGeometry replaces the geometry of every model that uses m.
func (s *Scene) BindGeometry(m *mesh.Mesh, g Geometry) {
	for _, model := range s.Models {
		if model.Mesh == m {
			model.Geometry = g
		}
	}
}
