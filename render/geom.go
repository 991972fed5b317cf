// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// Vec3 is a 3D point or direction used by the perspective pipelines.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous coordinate produced by the vertex transform.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a column-major 4x4 matrix, matching the WGSL mat4x4f layout
// so the same values can feed the uniform buffer of the GPU path.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a matrix scaling each axis independently. The 2D
// drawspace scale becomes a scaling matrix over X and Y with Z left
// alone.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * n (apply n first).
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Transform applies the matrix to a point, returning homogeneous clip
// coordinates.
func (m Mat4) Transform(p Vec3) Vec4 {
	return Vec4{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
		W: m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15],
	}
}

// Perspective returns a right-handed perspective projection with the
// given vertical field of view in radians, mapping depth to [0, 1].
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, far * near / (near - far), 0,
	}
}

// LookAt returns a right-handed view matrix for a camera at eye
// looking toward center with the given up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := normalize(sub(center, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-dot(s, eye), -dot(u, eye), dot(f, eye), 1,
	}
}

// WheelCamera is the canonical camera of the counter-wheel face: a
// perspective whose frustum half-height equals 0.5 at unit distance
// (fov = 2*atan(0.5)), looking down -Z from z=8, composed with the 2D
// drawspace scale on X and Y.
func WheelCamera(scales clockface.DrawspaceScales) Mat4 {
	scale := Scale(scales.Scale.X, scales.Scale.Y, 1)
	proj := Perspective(math32.Atan(0.5)*2, 1, 1, 100)
	view := LookAt(Vec3{0, 0, 8}, Vec3{}, Vec3{0, 1, 0})
	return scale.Mul(proj.Mul(view))
}

func sub(a, b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v Vec3) Vec3 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
