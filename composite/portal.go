package composite

import (
	"github.com/gogpu/clockface"
	"github.com/gogpu/clockface/sprite"
)

// ScreenUV maps a clip-space position (NDC, y up) to the normalized
// texture coordinate of the same pixel in a previously rendered scene
// target. This is how the portal surface samples "the other world":
// its fragments read the earlier pass's output at their own screen
// location, so the view through the portal lines up exactly.
func ScreenUV(ndc clockface.Vec2) clockface.Vec2 {
	return clockface.Vec2{
		X: ndc.X*0.5 + 0.5,
		Y: 0.5 - ndc.Y*0.5,
	}
}

// PortalSample reads the scene target at the portal fragment's screen
// position.
func PortalSample(scene *clockface.Pixmap, ndc clockface.Vec2) clockface.RGBA {
	uv := ScreenUV(ndc)
	return scene.Sample(uv.X, uv.Y)
}

// MirrorBlit copies src into dst flipped per the mirror mode. dst and
// src must be distinct buffers of equal size. Rotate180 is how the
// night side of the face reuses the day geometry without a second
// camera.
func MirrorBlit(dst, src *clockface.Pixmap, m sprite.Mirror) {
	w := float32(src.Width())
	h := float32(src.Height())

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			uv := m.UV(clockface.Vec2{
				X: (float32(x) + 0.5) / w,
				Y: (float32(y) + 0.5) / h,
			})
			dst.SetPixel(x, y, src.Sample(uv.X, uv.Y))
		}
	}
}
