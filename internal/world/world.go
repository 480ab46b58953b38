// Package world builds the scene and per-frame settings from configuration.
package world

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Faultbox/gridlight/internal/config"
	"github.com/Faultbox/gridlight/internal/engine/frame"
	"github.com/Faultbox/gridlight/internal/engine/mesh"
	"github.com/Faultbox/gridlight/internal/engine/scene"
	"github.com/Faultbox/gridlight/pkg/math"
)

// DebugTriangleSize is the half-extent of the optional debug triangle.
const DebugTriangleSize = 1

// Build creates the cuboid grid described by cfg. The light starts on its
// orbit at tick 0.
func Build(cfg config.SceneConfig) (*scene.Scene, error) {
	color := mesh.Color(cfg.CuboidColor)
	if cfg.RandomColor {
		color = RandomColor(cfg.Seed)
	}

	size := cfg.CuboidSize
	if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return nil, fmt.Errorf("invalid cuboid size %v", size)
	}
	cuboid := mesh.Cuboid(size[0], size[1], size[2], color)

	sc, err := scene.NewGrid(scene.Config{
		GridWidth:     cfg.GridWidth,
		GridHeight:    cfg.GridHeight,
		Ambient:       math.Vec3{X: cfg.Ambient[0], Y: cfg.Ambient[1], Z: cfg.Ambient[2]},
		LightPosition: math.Vec3{X: cfg.LightOrbit, Y: 1, Z: 0},
		LightRadius:   cfg.LightRadius,
	}, cuboid)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	if cfg.DebugTriangle {
		if _, err := sc.Add(mesh.Triangle(DebugTriangleSize), math.Vec3{}); err != nil {
			return nil, fmt.Errorf("adding debug triangle: %w", err)
		}
	}
	return sc, nil
}

// RandomColor returns an opaque color drawn from seed. A zero seed uses the
// current time.
func RandomColor(seed int64) mesh.Color {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	return mesh.Color{rng.Float32(), rng.Float32(), rng.Float32(), 1}
}

// Settings extracts the runtime-tunable part of cfg.
func Settings(cfg *config.Config) frame.Settings {
	return frame.Settings{
		Perspective:    cfg.Camera.Perspective,
		CameraDistance: cfg.Camera.Distance,
		FixedWidth:     cfg.Camera.FixedWidth,
		OrbitSpeed:     cfg.Camera.OrbitSpeed,
		LightOrbit:     cfg.Scene.LightOrbit,
	}
}
