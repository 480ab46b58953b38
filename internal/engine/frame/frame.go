// Package frame advances the scene once per display refresh and issues one draw
// call per model.
package frame

import (
	gomath "math"

	"github.com/Faultbox/gridlight/internal/engine/camera"
	"github.com/Faultbox/gridlight/internal/engine/scene"
	"github.com/Faultbox/gridlight/pkg/math"
)

// Animation constants for the grid wave.
const (
	WavePeriodTicks = 8   // ticks per radian of the bobbing wave
	WaveAmplitude   = 0.2 // world units
)

// Context is the per-tick input from the host loop.
type Context struct {
	Tick           uint64
	ViewportWidth  int
	ViewportHeight int
}

// Aspect returns width/height, or 0 when the viewport is degenerate.
func (c Context) Aspect() float32 {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return 0
	}
	return float32(c.ViewportWidth) / float32(c.ViewportHeight)
}

// Settings are the runtime-tunable parameters read during a tick.
// A Settings value is treated as immutable for the duration of one Update.
type Settings struct {
	Perspective    bool
	CameraDistance float32
	FixedWidth     float32
	OrbitSpeed     float32 // radians per tick; 0 keeps the camera still
	LightOrbit     float32 // radius of the light's circle
}

// State is everything Update reads and writes across ticks.
type State struct {
	Scene  *scene.Scene
	Camera *camera.Camera

	call DrawCall
}

// NewState bundles a scene and a camera.
func NewState(s *scene.Scene, c *camera.Camera) *State {
	return &State{Scene: s, Camera: c}
}

// Stats summarizes one Update.
type Stats struct {
	DrawCalls int
	Vertices  int
}

// GridPosition returns the animated position of grid cell index in a
// gridW x gridH grid at tick. The result depends only on its arguments.
// The phase is computed in float64 so consecutive ticks stay distinct.
func GridPosition(index, gridW, gridH int, tick uint64) math.Vec3 {
	x := index%gridW - gridW/2
	z := index/gridW - gridH/2
	offset := float64(x*x + z*z)
	return math.Vec3{
		X: float32(x),
		Y: float32(gomath.Sin((float64(tick)+offset)/WavePeriodTicks) * WaveAmplitude),
		Z: float32(z),
	}
}

// Update advances the scene to ctx.Tick and submits one draw call per model.
//
// Order matters: model positions, then model matrices, then the light, then
// the camera, and only then the per-model MVP products and submissions.
func Update(ctx Context, settings Settings, st *State, sub Submitter) Stats {
	sc := st.Scene
	tick := ctx.Tick

	for _, m := range sc.Models {
		if m.GridIndex < 0 {
			continue
		}
		m.Transform.Position = GridPosition(m.GridIndex, sc.GridWidth, sc.GridHeight, tick)
	}

	for _, m := range sc.Models {
		m.Transform.UpdateMatrix()
	}

	sc.Light.Orbit(tick, settings.LightOrbit)

	cam := st.Camera
	cam.Perspective = settings.Perspective
	cam.FixedWidth = settings.FixedWidth
	if settings.OrbitSpeed != 0 {
		cam.PlaceOrbit(tick, settings.CameraDistance, settings.OrbitSpeed)
	} else {
		cam.PlaceDiagonal(settings.CameraDistance)
	}
	cam.Update(ctx.Aspect())

	call := &st.call
	call.Topology = Triangles
	call.Ambient = sc.Ambient
	call.LightPosition = sc.Light.Position
	call.LightRadius = sc.Light.Radius

	var stats Stats
	for _, m := range sc.Models {
		call.Model = m.Transform.Matrix()
		call.MVP = cam.ViewProjection.Mul(call.Model)
		call.Geometry = m.Geometry
		call.VertexCount = m.Geometry.VertexCount()
		sub.Submit(call)

		stats.DrawCalls++
		stats.Vertices += call.VertexCount
	}
	return stats
}
