package shape

import (
	"math"
	"testing"

	"github.com/gogpu/clockface"
)

func TestDiskStripContainsCircle(t *testing.T) {
	d := DiskInfo{
		Center:    clockface.V2(3, -2),
		Radius:    5,
		Divisions: DefaultDivisions,
		Color:     clockface.Pack(255, 0, 0, 255),
	}
	const density = 32.0

	verts := d.Strip(density)
	if len(verts) != int(d.Divisions) {
		t.Fatalf("strip has %d vertices, want %d", len(verts), d.Divisions)
	}

	// Every vertex sits at the circumscribed distance, so the polygon's
	// inscribed circle (apothem) is radius+guard, strictly outside the
	// true radius: no edge can cut into the shaded curve.
	wantDist := circumscribe(d.Radius+Guarding(density), d.Divisions)
	apothem := wantDist * float32(math.Cos(math.Pi/float64(d.Divisions)))
	if apothem <= d.Radius {
		t.Errorf("apothem %f must exceed radius %f", apothem, d.Radius)
	}
	for i, v := range verts {
		got := v.Distance(d.Center)
		if math.Abs(float64(got-wantDist)) > 1e-4 {
			t.Errorf("vertex %d at distance %f, want %f", i, got, wantDist)
		}
	}
}

func TestDiskStripFanOrder(t *testing.T) {
	d := DiskInfo{Radius: 1, Divisions: 6}
	verts := d.Strip(64)

	// Fan steps 0, 1, -1, 2, -2, 3 around the clock.
	step := 2 * math.Pi / 6
	for i, want := range []float64{0, 1, -1, 2, -2, 3} {
		p := clockface.ClockPoint(float32(want*step), verts[i].Length())
		if math.Abs(float64(verts[i].X-p.X)) > 1e-4 || math.Abs(float64(verts[i].Y-p.Y)) > 1e-4 {
			t.Errorf("vertex %d = %+v, want fan step %g at %+v", i, verts[i], want, p)
		}
	}
}

func TestDiskCoverageInsideOutside(t *testing.T) {
	d := DiskInfo{Center: clockface.V2(0, 0), Radius: 2, Divisions: 12}
	const density = 100.0

	if got := d.Coverage(clockface.V2(0, 0), density); got != 1 {
		t.Errorf("coverage at center = %f, want 1", got)
	}
	if got := d.Coverage(clockface.V2(0, 1.9), density); got != 1 {
		t.Errorf("coverage just inside = %f, want 1", got)
	}
	outside := d.Radius + Feather(density) + 0.01
	if got := d.Coverage(clockface.V2(outside, 0), density); got != 0 {
		t.Errorf("coverage past feather = %f, want 0", got)
	}
}

func TestDiskCoverageMonotonic(t *testing.T) {
	d := DiskInfo{Radius: 1, Divisions: 12}
	const density = 50.0

	prev := float32(2)
	for dist := float32(0); dist < 1.2; dist += 0.001 {
		c := d.Coverage(clockface.V2(dist, 0), density)
		if c > prev {
			t.Fatalf("coverage increased past radius: %f -> %f at distance %f", prev, c, dist)
		}
		prev = c
	}
}

func TestDiskFeatherPixelWidthInvariant(t *testing.T) {
	// Coverage sampled at a fixed pixel offset past the radius must not
	// depend on density: the feather band is defined in pixels.
	d := DiskInfo{Radius: 1, Divisions: 12}
	const pixels = 0.75 // offset past the radius, in pixels

	var ref float32
	for i, density := range []float32{20, 100, 400} {
		p := clockface.V2(d.Radius+pixels/density, 0)
		c := d.Coverage(p, density)
		if i == 0 {
			ref = c
			continue
		}
		if math.Abs(float64(c-ref)) > 1e-4 {
			t.Errorf("density %f: coverage %f, want %f", density, c, ref)
		}
	}
}

func TestDiskShadeScalesAllChannels(t *testing.T) {
	d := DiskInfo{Radius: 1, Divisions: 12, Color: clockface.Pack(255, 128, 0, 255)}

	in := d.Shade(clockface.V2(0, 0), 100)
	if in.R != 1 || in.A != 1 {
		t.Errorf("inside shade = %+v, want full color", in)
	}
	out := d.Shade(clockface.V2(5, 0), 100)
	if out.R != 0 || out.A != 0 {
		t.Errorf("outside shade = %+v, want zero", out)
	}
}
