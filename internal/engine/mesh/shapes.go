package mesh

import "github.com/Faultbox/gridlight/pkg/math"

// Colors of the debug triangle, one per corner.
var (
	Magenta = Color{1, 0, 1, 1}
	Cyan    = Color{0, 1, 1, 1}
	Red     = Color{1, 0, 0, 1}
)

// Triangle returns a single reference triangle in the XY plane facing +Z.
// Its normals are authored, not computed, and each corner has its own color.
func Triangle(size float32) *Mesh {
	s := size
	forward := math.Vec3{Z: 1}
	return &Mesh{
		Name: "triangle",
		Positions: []math.Vec3{
			{X: -s, Y: -s},
			{X: s, Y: -s},
			{X: 0, Y: s},
		},
		Normals: []math.Vec3{forward, forward, forward},
		Colors:  []Color{Magenta, Cyan, Red},
	}
}

// Plane returns a size x size square in the XY plane (z = 0) centered on the origin,
// built from two triangles facing +Z.
func Plane(size float32, color Color) *Mesh {
	h := size / 2
	bl := math.Vec3{X: -h, Y: -h}
	br := math.Vec3{X: h, Y: -h}
	tr := math.Vec3{X: h, Y: h}
	tl := math.Vec3{X: -h, Y: h}

	positions := []math.Vec3{
		bl, br, tr,
		tr, tl, bl,
	}
	return &Mesh{
		Name:      "plane",
		Positions: positions,
		Normals:   ComputeNormals(positions),
		Colors:    uniformColors(len(positions), color),
	}
}

// Cuboid returns a box of the given extents centered on the origin, with a single
// color on every vertex. Faces are wound counter-clockwise seen from outside.
func Cuboid(width, height, depth float32, color Color) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2

	b0 := math.Vec3{X: hw, Y: -hh, Z: hd}
	b1 := math.Vec3{X: hw, Y: -hh, Z: -hd}
	b2 := math.Vec3{X: -hw, Y: -hh, Z: -hd}
	b3 := math.Vec3{X: -hw, Y: -hh, Z: hd}
	t0 := math.Vec3{X: hw, Y: hh, Z: hd}
	t1 := math.Vec3{X: hw, Y: hh, Z: -hd}
	t2 := math.Vec3{X: -hw, Y: hh, Z: -hd}
	t3 := math.Vec3{X: -hw, Y: hh, Z: hd}

	positions := []math.Vec3{
		// +Y
		t0, t1, t2,
		t2, t3, t0,
		// -Y
		b0, b3, b2,
		b2, b1, b0,
		// +X
		b0, b1, t1,
		t1, t0, b0,
		// -X
		b2, b3, t3,
		t3, t2, b2,
		// +Z
		b3, b0, t0,
		t0, t3, b3,
		// -Z
		b1, b2, t2,
		t2, t1, b1,
	}
	return &Mesh{
		Name:      "cuboid",
		Positions: positions,
		Normals:   ComputeNormals(positions),
		Colors:    uniformColors(len(positions), color),
	}
}
