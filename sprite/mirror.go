package sprite

import "github.com/gogpu/clockface"

// Mirror selects how a blit flips its source. Flipping both axes is a
// 180-degree rotation, which is how the night scene reuses the day
// geometry without a second camera.
type Mirror uint32

const (
	MirrorNone Mirror = 0
	MirrorX    Mirror = 1
	MirrorY    Mirror = 2
	Rotate180  Mirror = MirrorX | MirrorY
)

// UV flips a normalized texture coordinate in [0,1]^2 about the
// selected axes.
func (m Mirror) UV(uv clockface.Vec2) clockface.Vec2 {
	if m&MirrorX != 0 {
		uv.X = 1 - uv.X
	}
	if m&MirrorY != 0 {
		uv.Y = 1 - uv.Y
	}
	return uv
}

// Pos flips a model-space position about the selected axes through the
// origin.
func (m Mirror) Pos(p clockface.Vec2) clockface.Vec2 {
	if m&MirrorX != 0 {
		p.X = -p.X
	}
	if m&MirrorY != 0 {
		p.Y = -p.Y
	}
	return p
}
