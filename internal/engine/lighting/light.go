// Package lighting provides the scene's single point light and a CPU reference of its shading.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/gridlight/pkg/math"
)

// Orbit parameters of the animated light.
const (
	OrbitPeriodTicks = 20 // ticks per radian
	DefaultRadius    = 4
)

// Light is a point light with a falloff radius.
// Exactly one exists per scene.
type Light struct {
	Position math.Vec3 // World position
	Radius   float32   // Distance at which falloff starts
}

// NewLight creates a light at pos with the given radius.
// A non-positive radius falls back to DefaultRadius.
func NewLight(pos math.Vec3, radius float32) *Light {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Light{Position: pos, Radius: radius}
}

// Orbit moves the light on a horizontal circle of the given radius around the
// Y axis as a function of tick. The height (Y) is left unchanged.
func (l *Light) Orbit(tick uint64, radius float32) {
	s, c := gomath.Sincos(float64(tick) / OrbitPeriodTicks)
	l.Position.X = float32(c) * radius
	l.Position.Z = float32(s) * radius
}
