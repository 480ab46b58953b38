package lighting

import "github.com/Faultbox/gridlight/pkg/math"

// Falloff returns the attenuation of a light of the given radius at surface:
// clamp(radius² / |light - surface|², 0, 1). A surface at the light position gets 1.
func Falloff(lightPos math.Vec3, radius float32, surface math.Vec3) float32 {
	sqrDist := lightPos.SquareDistance(surface)
	if sqrDist == 0 {
		return 1
	}
	return math.Clamp(radius*radius/sqrDist, 0, 1)
}

// Diffuse returns the Lambert term max(0, N·L) for a surface facing normal.
func Diffuse(normal, lightPos, surface math.Vec3) float32 {
	l := lightPos.Sub(surface).Normalize()
	return max(0, normal.Dot(l))
}

// Shade computes the lit color of one surface point the same way the scene's
// fragment stage does: diffuse * falloff * albedo + ambient, clamped to [0, 1].
// Alpha is passed through unmodified.
func Shade(albedo [4]float32, normal, surface math.Vec3, light *Light, ambient math.Vec3) [4]float32 {
	k := Diffuse(normal, light.Position, surface) * Falloff(light.Position, light.Radius, surface)
	rgb := math.Vec3{X: albedo[0], Y: albedo[1], Z: albedo[2]}.Scale(k).Add(ambient).Clamp(0, 1)
	return [4]float32{rgb.X, rgb.Y, rgb.Z, albedo[3]}
}
