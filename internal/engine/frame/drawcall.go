package frame

import (
	"github.com/Faultbox/gridlight/internal/engine/scene"
	"github.com/Faultbox/gridlight/pkg/math"
)

// Topology is the primitive assembly mode of a draw call.
type Topology int

const (
	Triangles Topology = iota
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// DrawCall is the payload of one draw. Update reuses a single DrawCall for all
// models of a frame, so a Submitter must not retain the pointer.
type DrawCall struct {
	Topology      Topology
	Model         math.Mat4
	MVP           math.Mat4
	Ambient       math.Vec3
	LightPosition math.Vec3
	LightRadius   float32
	Geometry      scene.Geometry
	VertexCount   int
}

// Submitter issues draw calls. Submission is fire-and-forget.
type Submitter interface {
	Submit(call *DrawCall)
}

// SubmitFunc adapts a function to the Submitter interface.
type SubmitFunc func(call *DrawCall)

// Submit calls f(call).
func (f SubmitFunc) Submit(call *DrawCall) {
	f(call)
}
