// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/gogpu/clockface"
)

func TestMat4Identity(t *testing.T) {
	p := Vec3{1.5, -2, 3}
	got := Identity().Transform(p)
	if got.X != p.X || got.Y != p.Y || got.Z != p.Z || got.W != 1 {
		t.Errorf("identity transform = %+v", got)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// Scale-then-translate differs from translate-then-scale; Mul(n)
	// applies n first.
	translate := Identity()
	translate[12] = 10 // x += 10
	scale := Scale(2, 2, 2)

	st := translate.Mul(scale) // scale first
	got := st.Transform(Vec3{1, 0, 0})
	if got.X != 12 {
		t.Errorf("scale-then-translate x = %f, want 12", got.X)
	}

	ts := scale.Mul(translate) // translate first
	got = ts.Transform(Vec3{1, 0, 0})
	if got.X != 22 {
		t.Errorf("translate-then-scale x = %f, want 22", got.X)
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at +Z looking at the origin: a point at the origin lands
	// on the view axis at distance 8.
	view := LookAt(Vec3{0, 0, 8}, Vec3{}, Vec3{0, 1, 0})
	got := view.Transform(Vec3{})
	if math.Abs(float64(got.X)) > 1e-5 || math.Abs(float64(got.Y)) > 1e-5 {
		t.Errorf("origin off axis: %+v", got)
	}
	if math.Abs(float64(got.Z)+8) > 1e-5 {
		t.Errorf("origin depth = %f, want -8", got.Z)
	}
}

func TestPerspectiveMapsFrustum(t *testing.T) {
	proj := Perspective(math.Pi/2, 1, 1, 100)

	// fov 90: at distance d the frustum half-height is d. A point at
	// the top edge projects to NDC y = 1.
	clip := proj.Transform(Vec3{0, 10, -10})
	y := clip.Y / clip.W
	if math.Abs(float64(y)-1) > 1e-4 {
		t.Errorf("frustum edge NDC y = %f, want 1", y)
	}

	// Near plane maps to depth 0, far plane to 1.
	near := proj.Transform(Vec3{0, 0, -1})
	far := proj.Transform(Vec3{0, 0, -100})
	if math.Abs(float64(near.Z/near.W)) > 1e-4 {
		t.Errorf("near depth = %f, want 0", near.Z/near.W)
	}
	if math.Abs(float64(far.Z/far.W)-1) > 1e-4 {
		t.Errorf("far depth = %f, want 1", far.Z/far.W)
	}
}

func TestWheelCameraCentersOrigin(t *testing.T) {
	scales := clockface.NewDrawspaceScales(clockface.V2(1024, 512), clockface.V2(2, 1))
	cam := WheelCamera(scales)

	// The origin projects to the screen center with positive depth.
	clip := cam.Transform(Vec3{})
	if clip.W <= 0 {
		t.Fatalf("origin behind camera: w = %f", clip.W)
	}
	x := clip.X / clip.W
	y := clip.Y / clip.W
	if math.Abs(float64(x)) > 1e-5 || math.Abs(float64(y)) > 1e-5 {
		t.Errorf("origin NDC = (%f, %f), want (0, 0)", x, y)
	}

	// A point above the origin lands above the center.
	up := cam.Transform(Vec3{0, 0.5, 0})
	if up.Y/up.W <= 0 {
		t.Errorf("up point NDC y = %f, want > 0", up.Y/up.W)
	}
}
