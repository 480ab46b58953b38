package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/gridlight/pkg/math"
)

func TestFalloff(t *testing.T) {
	light := math.Vec3{}
	radius := float32(4)

	tests := []struct {
		name    string
		surface math.Vec3
		want    float32
	}{
		{"at light", math.Vec3{}, 1},
		{"inside radius", math.Vec3{X: 2}, 1},
		{"on radius", math.Vec3{Y: 4}, 1},
		{"twice radius", math.Vec3{Z: 8}, 0.25},
		{"four times radius", math.Vec3{X: 16}, 0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Falloff(light, radius, tt.surface)
			if gomath.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Falloff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFalloffMonotonic(t *testing.T) {
	prev := float32(1)
	for d := float32(4); d < 100; d += 0.5 {
		f := Falloff(math.Vec3{}, 4, math.Vec3{X: d})
		if f > prev {
			t.Fatalf("falloff increased from %v to %v at distance %v", prev, f, d)
		}
		if f < 0 || f > 1 {
			t.Fatalf("falloff %v out of range at distance %v", f, d)
		}
		prev = f
	}
}

func TestShade(t *testing.T) {
	light := NewLight(math.Vec3{Y: 1}, 4)
	ambient := math.Vec3{X: 0.3, Y: 0.3, Z: 0.3}
	albedo := [4]float32{0.5, 0.5, 0.5, 0.7}

	// Facing the light directly inside its radius: full diffuse.
	got := Shade(albedo, math.Vec3{Y: 1}, math.Vec3{}, light, ambient)
	want := [4]float32{0.8, 0.8, 0.8, 0.7}
	for i := range want {
		if gomath.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("lit component %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Facing away: ambient only.
	got = Shade(albedo, math.Vec3{Y: -1}, math.Vec3{}, light, ambient)
	if got != [4]float32{0.3, 0.3, 0.3, 0.7} {
		t.Errorf("unlit color = %v, want ambient with alpha", got)
	}

	// Saturation clamps to 1.
	got = Shade([4]float32{1, 1, 1, 1}, math.Vec3{Y: 1}, math.Vec3{}, light, ambient)
	if got != [4]float32{1, 1, 1, 1} {
		t.Errorf("saturated color = %v, want all ones", got)
	}
}

func TestShadeAtLightPosition(t *testing.T) {
	light := NewLight(math.Vec3{}, 4)
	got := Shade([4]float32{1, 1, 1, 1}, math.Vec3{Y: 1}, math.Vec3{}, light, math.Vec3{})
	for i, c := range got {
		if gomath.IsNaN(float64(c)) || gomath.IsInf(float64(c), 0) {
			t.Errorf("component %d is not finite: %v", i, c)
		}
	}
}

func TestOrbit(t *testing.T) {
	l := NewLight(math.Vec3{X: 0, Y: 1, Z: 2}, 4)

	l.Orbit(0, 4)
	if l.Position != (math.Vec3{X: 4, Y: 1, Z: 0}) {
		t.Errorf("orbit at tick 0: got %v, want (4, 1, 0)", l.Position)
	}

	for _, tick := range []uint64{1, 31, 400, 1 << 24, 1<<24 + 1, 1 << 40} {
		l.Orbit(tick, 4)
		angle := float64(tick) / OrbitPeriodTicks
		if gomath.Abs(float64(l.Position.X)-gomath.Cos(angle)*4) > 1e-5 ||
			gomath.Abs(float64(l.Position.Z)-gomath.Sin(angle)*4) > 1e-5 {
			t.Errorf("orbit at tick %d: got %v", tick, l.Position)
		}
		if l.Position.Y != 1 {
			t.Errorf("orbit changed height to %v", l.Position.Y)
		}
	}
}

func TestOrbitAdvancesAtLargeTicks(t *testing.T) {
	l := NewLight(math.Vec3{Y: 1}, 4)

	l.Orbit(1<<24, 4)
	a := l.Position
	l.Orbit(1<<24+1, 4)
	if l.Position == a {
		t.Errorf("light did not move between ticks 2^24 and 2^24+1: %v", a)
	}
}

func TestNewLightDefaultRadius(t *testing.T) {
	if l := NewLight(math.Vec3{}, 0); l.Radius != DefaultRadius {
		t.Errorf("expected default radius %d, got %v", DefaultRadius, l.Radius)
	}
}
