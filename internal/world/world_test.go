package world

import (
	"testing"

	"github.com/Faultbox/gridlight/internal/config"
	"github.com/Faultbox/gridlight/internal/engine/mesh"
)

func TestBuildDefault(t *testing.T) {
	cfg := config.Default()

	sc, err := Build(cfg.Scene)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got, want := len(sc.Models), 16*16; got != want {
		t.Fatalf("expected %d models, got %d", want, len(sc.Models))
	}
	meshes := sc.Meshes()
	if len(meshes) != 1 {
		t.Fatalf("expected one shared mesh, got %d", len(meshes))
	}
	if meshes[0].VertexCount() != 36 {
		t.Errorf("expected cuboid with 36 vertices, got %d", meshes[0].VertexCount())
	}
	if meshes[0].Colors[0] != mesh.Color(cfg.Scene.CuboidColor) {
		t.Errorf("expected configured color %v, got %v", cfg.Scene.CuboidColor, meshes[0].Colors[0])
	}

	b := meshes[0].Bounds()
	if b.Max.X != 0.25 || b.Max.Y != 1 || b.Max.Z != 0.25 {
		t.Errorf("unexpected cuboid bounds %+v", b)
	}
	if sc.Light.Radius != cfg.Scene.LightRadius {
		t.Errorf("expected light radius %v, got %v", cfg.Scene.LightRadius, sc.Light.Radius)
	}
	if sc.Ambient.X != 0.3 {
		t.Errorf("unexpected ambient %+v", sc.Ambient)
	}
}

func TestBuildDebugTriangle(t *testing.T) {
	cfg := config.Default().Scene
	cfg.GridWidth, cfg.GridHeight = 2, 2
	cfg.DebugTriangle = true

	sc, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sc.Models) != 5 {
		t.Fatalf("expected 4 cuboids and a triangle, got %d models", len(sc.Models))
	}
	last := sc.Models[4]
	if last.GridIndex != -1 {
		t.Errorf("debug triangle should not be a grid cell, got index %d", last.GridIndex)
	}
	if last.Mesh.VertexCount() != 3 {
		t.Errorf("expected triangle mesh, got %d vertices", last.Mesh.VertexCount())
	}
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SceneConfig)
	}{
		{"empty grid", func(c *config.SceneConfig) { c.GridWidth = 0 }},
		{"flat cuboid", func(c *config.SceneConfig) { c.CuboidSize[1] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default().Scene
			tt.mutate(&cfg)
			if _, err := Build(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRandomColor(t *testing.T) {
	a := RandomColor(42)
	b := RandomColor(42)
	if a != b {
		t.Errorf("same seed gave different colors: %v vs %v", a, b)
	}
	if a[3] != 1 {
		t.Errorf("expected opaque color, got alpha %v", a[3])
	}
	for i, c := range a[:3] {
		if c < 0 || c >= 1 {
			t.Errorf("component %d out of range: %v", i, c)
		}
	}

	cfg := config.Default().Scene
	cfg.RandomColor = true
	cfg.Seed = 42
	sc, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sc.Models[0].Mesh.Colors[0] != a {
		t.Errorf("expected seeded color %v, got %v", a, sc.Models[0].Mesh.Colors[0])
	}
}

func TestSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Perspective = true
	cfg.Camera.OrbitSpeed = 0.02

	s := Settings(cfg)
	if !s.Perspective || s.OrbitSpeed != 0.02 {
		t.Errorf("camera settings not carried: %+v", s)
	}
	if s.CameraDistance != cfg.Camera.Distance || s.FixedWidth != cfg.Camera.FixedWidth {
		t.Errorf("unexpected distance/width: %+v", s)
	}
	if s.LightOrbit != cfg.Scene.LightOrbit {
		t.Errorf("expected light orbit %v, got %v", cfg.Scene.LightOrbit, s.LightOrbit)
	}
}
