package scene

import "github.com/Faultbox/gridlight/pkg/math"

// Transform is the per-instance placement of a model.
// The world matrix is derived from Position and Rotation by UpdateMatrix and is
// never set directly; callers must call UpdateMatrix after changing either field
// and before the matrix is read in the same frame.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat // unit quaternion

	matrix math.Mat4
}

// NewTransform returns a transform at the origin with no rotation.
func NewTransform() *Transform {
	return &Transform{
		Rotation: math.QuatIdentity(),
		matrix:   math.Identity(),
	}
}

// UpdateMatrix recomputes the world matrix as translate(Position) * rotate(Rotation).
func (t *Transform) UpdateMatrix() {
	t.matrix = math.FromRotationTranslation(t.Rotation, t.Position)
}

// Matrix returns the world matrix computed by the last UpdateMatrix call.
func (t *Transform) Matrix() math.Mat4 {
	return t.matrix
}
