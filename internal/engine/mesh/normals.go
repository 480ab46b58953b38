package mesh

import "github.com/Faultbox/gridlight/pkg/math"

// degenerateEpsilon is the cross-product length below which a triangle has no usable normal.
const degenerateEpsilon = 1e-6

// ComputeNormals returns one flat normal per vertex of a non-indexed triangle stream.
//
// For each triangle (v0, v1, v2) the edges are e1 = v0-v1 and e2 = v0-v2 and the
// normal is e1 x e2, which points out of the face when the triangle is wound
// counter-clockwise as seen from the front. A degenerate triangle reuses the last
// valid normal of the stream, or the zero vector if there is none yet.
// Trailing vertices that do not complete a triangle get the zero vector.
func ComputeNormals(positions []math.Vec3) []math.Vec3 {
	normals := make([]math.Vec3, len(positions))
	var last math.Vec3

	for i := 0; i+2 < len(positions); i += 3 {
		n := FaceNormal(positions[i], positions[i+1], positions[i+2])
		if n == (math.Vec3{}) {
			n = last
		} else {
			last = n
		}
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

// FaceNormal returns the unit normal of one triangle, or the zero vector when the
// triangle is degenerate.
func FaceNormal(v0, v1, v2 math.Vec3) math.Vec3 {
	e1 := v0.Sub(v1)
	e2 := v0.Sub(v2)
	c := e1.Cross(e2)
	if c.Length() < degenerateEpsilon {
		return math.Vec3{}
	}
	return c.Normalize()
}
