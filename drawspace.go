package clockface

// DrawspaceScales describes how model-space coordinates map to
// normalized device coordinates for the current frame, and how screen
// density affects anti-aliasing width.
//
// Model space is a rectangle centered on the origin whose half-size is
// Extent: any point within [-Extent.X, Extent.X] x [-Extent.Y, Extent.Y]
// is guaranteed to be on screen. NDC stretches with the window, so the
// extent rectangle is aspect-fitted: whichever pair of window edges the
// extent touches first pins the uniform scale, and the other axis gains
// slack.
//
// Density is the number of physical pixels per model-space unit. Every
// anti-aliasing feather width in the pipelines is a constant divided by
// Density, which keeps stroke edges a constant number of physical
// pixels wide regardless of logical scale.
//
// The host recomputes DrawspaceScales once per frame (or on resize) and
// supplies it before any draw pass; all passes treat it as read-only
// for the rest of the frame.
type DrawspaceScales struct {
	// Scale is the model-to-NDC multiplier per axis.
	Scale Vec2
	// Extent is the model-space half-extent supplied by the host.
	Extent Vec2
	// Resolution is the surface size in pixels.
	Resolution Vec2
	// Density is the number of pixels per model-space unit.
	// Must be > 0; feather computations divide by it.
	Density float32
}

// NewDrawspaceScales aspect-fits the extent rectangle into the given
// pixel resolution and returns the resulting scales.
func NewDrawspaceScales(resolution, extent Vec2) DrawspaceScales {
	aspectWindow := resolution.X / resolution.Y
	aspectExtent := extent.X / extent.Y

	if aspectWindow > aspectExtent {
		// The window is wider than the extent: ceiling and floor touch.
		return DrawspaceScales{
			Scale:      Vec2{X: 1 / (aspectWindow * extent.Y), Y: 1 / extent.Y},
			Extent:     extent,
			Resolution: resolution,
			Density:    resolution.Y * 0.5 / extent.Y,
		}
	}

	// The window is taller than the extent: the side walls touch.
	return DrawspaceScales{
		Scale:      Vec2{X: 1 / extent.X, Y: aspectWindow / extent.X},
		Extent:     extent,
		Resolution: resolution,
		Density:    resolution.X * 0.5 / extent.X,
	}
}

// ToNDC maps a model-space point to normalized device coordinates.
func (d DrawspaceScales) ToNDC(p Vec2) Vec2 {
	return Vec2{X: p.X * d.Scale.X, Y: p.Y * d.Scale.Y}
}

// ToPixel maps a model-space point to pixel coordinates, with the
// pixel origin at the top-left and y growing downward.
func (d DrawspaceScales) ToPixel(p Vec2) Vec2 {
	ndc := d.ToNDC(p)
	return Vec2{
		X: (ndc.X*0.5 + 0.5) * d.Resolution.X,
		Y: (0.5 - ndc.Y*0.5) * d.Resolution.Y,
	}
}

// FromPixel maps a pixel coordinate back to model space. Passing pixel
// centers (x+0.5, y+0.5) yields the model position the fragment stage
// should be evaluated at.
func (d DrawspaceScales) FromPixel(p Vec2) Vec2 {
	ndcX := p.X/d.Resolution.X*2 - 1
	ndcY := 1 - p.Y/d.Resolution.Y*2
	return Vec2{X: ndcX / d.Scale.X, Y: ndcY / d.Scale.Y}
}
