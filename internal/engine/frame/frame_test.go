package frame

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/gridlight/internal/engine/camera"
	"github.com/Faultbox/gridlight/internal/engine/mesh"
	"github.com/Faultbox/gridlight/internal/engine/scene"
	"github.com/Faultbox/gridlight/pkg/math"
)

func defaultSettings() Settings {
	return Settings{
		CameraDistance: 16,
		FixedWidth:     16 * gomath.Sqrt2,
		LightOrbit:     4,
	}
}

func newState(t *testing.T, w, h int) *State {
	t.Helper()
	cfg := scene.DefaultConfig()
	cfg.GridWidth, cfg.GridHeight = w, h
	sc, err := scene.NewGrid(cfg, mesh.Cuboid(0.5, 2, 0.5, mesh.Color{0.1, 0.24, 0.76, 1}))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return NewState(sc, camera.New(16))
}

type recorder struct {
	calls []DrawCall
}

func (r *recorder) Submit(call *DrawCall) {
	r.calls = append(r.calls, *call)
}

func TestGridPositionTickZero(t *testing.T) {
	tests := []struct {
		index int
		wantX float32
		wantZ float32
	}{
		{0, -8, -8},
		{1, -7, -8},
		{15, 7, -8},
		{16, -8, -7},
		{8*16 + 8, 0, 0},
		{255, 7, 7},
	}

	for _, tt := range tests {
		p := GridPosition(tt.index, 16, 16, 0)
		if p.X != tt.wantX || p.Z != tt.wantZ {
			t.Errorf("index %d: got (%v, %v), want (%v, %v)", tt.index, p.X, p.Z, tt.wantX, tt.wantZ)
		}
		offset := tt.wantX*tt.wantX + tt.wantZ*tt.wantZ
		wantY := float32(gomath.Sin(float64(offset)/8) * 0.2)
		if gomath.Abs(float64(p.Y-wantY)) > 1e-6 {
			t.Errorf("index %d: y = %v, want %v", tt.index, p.Y, wantY)
		}
	}
}

func TestGridPositionReproducible(t *testing.T) {
	for _, tick := range []uint64{0, 1, 37, 1000, 1 << 24, 1 << 40} {
		a := GridPosition(42, 16, 16, tick)
		b := GridPosition(42, 16, 16, tick)
		if a != b {
			t.Errorf("tick %v: %v != %v", tick, a, b)
		}
		if gomath.Abs(float64(a.Y)) > WaveAmplitude+1e-6 {
			t.Errorf("tick %v: y %v exceeds amplitude", tick, a.Y)
		}
	}
}

func TestGridPositionAdvancesAtLargeTicks(t *testing.T) {
	for _, tick := range []uint64{1 << 24, 1 << 32, 1 << 40} {
		a := GridPosition(42, 16, 16, tick)
		b := GridPosition(42, 16, 16, tick+1)
		if a.Y == b.Y {
			t.Errorf("tick %d: wave froze at y=%v", tick, a.Y)
		}
	}
}

func TestUpdateReproducibleAcrossHistory(t *testing.T) {
	ctx := Context{Tick: 120, ViewportWidth: 1280, ViewportHeight: 720}

	// Fresh state jumping straight to tick 120.
	fresh := newState(t, 16, 16)
	var a recorder
	Update(ctx, defaultSettings(), fresh, &a)

	// State that ran ticks 0..119 first.
	warm := newState(t, 16, 16)
	for tick := uint64(0); tick < 120; tick++ {
		Update(Context{Tick: tick, ViewportWidth: 640, ViewportHeight: 640}, defaultSettings(), warm, SubmitFunc(func(*DrawCall) {}))
	}
	var b recorder
	Update(ctx, defaultSettings(), warm, &b)

	if len(a.calls) != len(b.calls) {
		t.Fatalf("draw call counts differ: %d vs %d", len(a.calls), len(b.calls))
	}
	for i := range a.calls {
		if a.calls[i].Model != b.calls[i].Model || a.calls[i].MVP != b.calls[i].MVP {
			t.Fatalf("draw %d differs after history", i)
		}
	}
}

func TestUpdateSubmitsOnePerModel(t *testing.T) {
	st := newState(t, 4, 3)
	var rec recorder
	stats := Update(Context{Tick: 5, ViewportWidth: 800, ViewportHeight: 600}, defaultSettings(), st, &rec)

	if len(rec.calls) != 12 || stats.DrawCalls != 12 {
		t.Fatalf("expected 12 draw calls, got %d (stats %d)", len(rec.calls), stats.DrawCalls)
	}
	if stats.Vertices != 12*36 {
		t.Errorf("expected %d vertices, got %d", 12*36, stats.Vertices)
	}

	cam := st.Camera
	for i, call := range rec.calls {
		m := st.Scene.Models[i]
		if call.Topology != Triangles {
			t.Errorf("draw %d: topology %v", i, call.Topology)
		}
		if call.Model != m.Transform.Matrix() {
			t.Errorf("draw %d: model matrix is not the transform's", i)
		}
		if call.MVP != cam.ViewProjection.Mul(call.Model) {
			t.Errorf("draw %d: MVP != ViewProjection * Model", i)
		}
		if call.VertexCount != 36 || call.Geometry != m.Geometry {
			t.Errorf("draw %d: geometry %v count %d", i, call.Geometry, call.VertexCount)
		}
		if call.Ambient != st.Scene.Ambient {
			t.Errorf("draw %d: ambient %v", i, call.Ambient)
		}
		if call.LightPosition != st.Scene.Light.Position || call.LightRadius != st.Scene.Light.Radius {
			t.Errorf("draw %d: light %v r=%v", i, call.LightPosition, call.LightRadius)
		}
	}
}

func TestUpdateMatricesNotStale(t *testing.T) {
	st := newState(t, 2, 2)
	var rec recorder
	Update(Context{Tick: 3, ViewportWidth: 100, ViewportHeight: 100}, defaultSettings(), st, &rec)

	for i, m := range st.Scene.Models {
		want := math.FromRotationTranslation(m.Transform.Rotation, GridPosition(i, 2, 2, 3))
		if m.Transform.Matrix() != want {
			t.Errorf("model %d matrix is stale", i)
		}
		if rec.calls[i].Model != want {
			t.Errorf("draw %d used a stale matrix", i)
		}
	}
}

func TestUpdateLightAndCamera(t *testing.T) {
	st := newState(t, 2, 2)
	settings := defaultSettings()
	Update(Context{Tick: 0, ViewportWidth: 1600, ViewportHeight: 900}, settings, st, SubmitFunc(func(*DrawCall) {}))

	l := st.Scene.Light.Position
	if l.X != 4 || l.Z != 0 || l.Y != 1 {
		t.Errorf("light at tick 0: got %v, want (4, 1, 0)", l)
	}

	cam := st.Camera
	if cam.Position != (math.Vec3{X: 16, Y: 16, Z: 16}) {
		t.Errorf("camera position %v, want (16, 16, 16)", cam.Position)
	}
	if cam.Perspective {
		t.Error("camera should be orthographic")
	}
	if gomath.Abs(float64(cam.AspectRatio-16.0/9.0)) > 1e-6 {
		t.Errorf("aspect ratio %v", cam.AspectRatio)
	}
	if gomath.Abs(float64(cam.Right-cam.Left-settings.FixedWidth)) > 1e-4 {
		t.Errorf("ortho width %v, want %v", cam.Right-cam.Left, settings.FixedWidth)
	}

	settings.Perspective = true
	Update(Context{Tick: 1, ViewportWidth: 1600, ViewportHeight: 900}, settings, st, SubmitFunc(func(*DrawCall) {}))
	if !cam.Perspective || cam.Projection[11] != -1 {
		t.Error("perspective toggle was not applied")
	}
}

func TestUpdateZeroViewport(t *testing.T) {
	st := newState(t, 1, 1)
	var rec recorder
	Update(Context{Tick: 0, ViewportWidth: 0, ViewportHeight: 0}, defaultSettings(), st, &rec)

	for i, v := range rec.calls[0].MVP {
		if gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0) {
			t.Fatalf("MVP element %d is not finite: %v", i, v)
		}
	}
}

func TestUpdateKeepsFixedModels(t *testing.T) {
	st := newState(t, 1, 1)
	tri, err := st.Scene.Add(mesh.Triangle(1), math.Vec3{Y: 5})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	var rec recorder
	Update(Context{Tick: 9, ViewportWidth: 10, ViewportHeight: 10}, defaultSettings(), st, &rec)

	if tri.Transform.Position != (math.Vec3{Y: 5}) {
		t.Errorf("fixed model moved to %v", tri.Transform.Position)
	}
	if len(rec.calls) != 2 || rec.calls[1].VertexCount != 3 {
		t.Errorf("expected triangle to be drawn last with 3 vertices, got %+v", rec.calls)
	}
}
