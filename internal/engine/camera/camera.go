// Package camera provides the scene camera and its view/projection matrices.
package camera

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/gridlight/pkg/math"
)

// degenerateEpsilon is the squared length below which a look-at vector is unusable.
const degenerateEpsilon = 1e-12

// Camera holds the mutable camera state and the matrices derived from it.
// Call Update after changing any field and at least once per frame.
type Camera struct {
	Position math.Vec3
	Focus    math.Vec3
	Up       math.Vec3

	// Rotation orients the camera when UseRotation is set; otherwise the camera
	// looks from Position at Focus.
	Rotation    math.Quat
	UseRotation bool

	// Perspective selects a perspective projection; otherwise orthographic.
	Perspective bool
	Fovy        float32 // radians
	AspectRatio float32
	Near        float32
	Far         float32

	// Orthographic bounds, recomputed from FixedWidth on every Update.
	Left, Right, Bottom, Top float32
	FixedWidth               float32

	View           math.Mat4
	Projection     math.Mat4
	ViewProjection math.Mat4
}

// New creates an orthographic camera looking at the origin that keeps
// fixedWidth world units visible horizontally.
func New(fixedWidth float32) *Camera {
	c := &Camera{
		Up:          math.Vec3{Y: 1},
		Rotation:    math.QuatIdentity(),
		Fovy:        math32.Pi / 2,
		AspectRatio: 16.0 / 9.0,
		Near:        0.001,
		Far:         10000,
		FixedWidth:  fixedWidth,
		View:        math.Identity(),
	}
	c.Update(c.AspectRatio)
	return c
}

// Update recomputes View, Projection and ViewProjection for the given aspect ratio.
// A non-positive aspect keeps the previous AspectRatio.
func (c *Camera) Update(aspect float32) {
	if aspect > 0 {
		c.AspectRatio = aspect
	}

	if c.UseRotation {
		c.View = c.viewFromRotation()
	} else if c.canLookAt() {
		c.View = math.LookAt(c.Position, c.Focus, c.Up)
	}

	if c.Perspective {
		c.Projection = math.Perspective(c.Fovy, c.AspectRatio, c.Near, c.Far)
	} else {
		c.updateOrthoBounds()
		c.Projection = math.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	}

	c.ViewProjection = c.Projection.Mul(c.View)
}

// updateOrthoBounds keeps FixedWidth world units across the viewport and
// derives the height from the aspect ratio.
func (c *Camera) updateOrthoBounds() {
	halfW := c.FixedWidth / 2
	halfH := c.FixedWidth / c.AspectRatio / 2
	c.Left, c.Right = -halfW, halfW
	c.Bottom, c.Top = -halfH, halfH
}

// canLookAt reports whether Position, Focus and Up define a view basis.
// When they do not, Update keeps the previous View.
func (c *Camera) canLookAt() bool {
	forward := c.Focus.Sub(c.Position)
	if forward.LengthSq() < degenerateEpsilon {
		return false
	}
	return forward.Normalize().Cross(c.Up.Normalize()).LengthSq() >= degenerateEpsilon
}

// viewFromRotation inverts the camera's world transform.
func (c *Camera) viewFromRotation() math.Mat4 {
	return math.FromRotationTranslation(c.Rotation, c.Position).Inverse()
}

// PlaceDiagonal puts the camera at (d, d, d).
func (c *Camera) PlaceDiagonal(distance float32) {
	c.Position = math.Vec3{X: distance, Y: distance, Z: distance}
}

// PlaceOrbit puts the camera on a circle around Focus at the same elevation as
// PlaceDiagonal, rotated by tick*speed radians about the Y axis.
func (c *Camera) PlaceOrbit(tick uint64, distance, speed float32) {
	// (d, d, d) has horizontal radius d*sqrt(2) at yaw pi/4.
	// The angle is taken in float64 so ticks past 2^24 still advance.
	yaw := gomath.Pi/4 + float64(tick)*float64(speed)
	horiz := distance * math32.Sqrt(2)
	s, co := gomath.Sincos(yaw)
	c.Position = math.Vec3{
		X: c.Focus.X + horiz*float32(s),
		Y: c.Focus.Y + distance,
		Z: c.Focus.Z + horiz*float32(co),
	}
}
