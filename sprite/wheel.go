// Package sprite provides the instanced sprite generators: mechanical
// counter digit wheels, 7-segment island flagsets, blit mirroring, and
// the digit sprite sheet they sample from.
package sprite

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// Wheel layout constants. Six wheels show HH MM SS as three pairs; each
// wheel carries ten digit cards around its rim like a mechanical
// counter drum.
const (
	WheelCount    = 6
	CardsPerWheel = 10
	// CardInstances is the instance count of the single draw call that
	// renders every card of every wheel.
	CardInstances = WheelCount * CardsPerWheel
)

// Wheel geometry in model units. The card pitches keep the three pairs
// visually grouped: wheels within a pair sit closer than the pairs
// themselves.
const (
	WheelRadius    = 1.0
	CardHalfWidth  = 0.28
	CardHalfHeight = float32(math32.Pi * WheelRadius / CardsPerWheel * 0.92)
	wheelPitch     = 0.62
	pairPitch      = 1.45
)

// equatorDarken is the strength of the cubic shading that fakes cards
// curving away from the camera. Tuned against reference captures.
const equatorDarken = 0.65

// CardInstance identifies one digit card within the single instanced
// draw: which pair of wheels, which wheel of the pair, and which digit
// the card shows.
type CardInstance struct {
	Pair  uint32 // 0 = hours, 1 = minutes, 2 = seconds
	Wheel uint32 // 0 = tens, 1 = ones
	Digit uint32 // 0..9
}

// Decompose splits an instance index in [0, CardInstances) into its
// card identity. Cards are laid out digit-major within a wheel, wheels
// within a pair, pairs last.
func Decompose(instance uint32) CardInstance {
	return CardInstance{
		Pair:  instance / 20,
		Wheel: (instance / 10) % 2,
		Digit: instance % 10,
	}
}

// WheelIndex returns the card's wheel in the flat [WheelCount]
// rotation-angle table: hour tens, hour ones, minute tens, and so on.
func (c CardInstance) WheelIndex() int {
	return int(c.Pair*2 + c.Wheel)
}

// RestingAngle returns the wheel rotation at which the given digit
// faces the camera. Digits are spread evenly around the drum, so digit
// 5 rests at exactly π.
func RestingAngle(digit uint32) float32 {
	return float32(digit) / CardsPerWheel * 2 * math32.Pi
}

// CardAngle returns the card's current rotation about the wheel axle:
// its resting angle minus the wheel's live rotation, so a wheel
// rotated to a digit's resting angle brings that card to the front.
func (c CardInstance) CardAngle(live *[WheelCount]float32) float32 {
	return RestingAngle(c.Digit) - live[c.WheelIndex()]
}

// AxleOffset returns the model-space X position of the card's wheel:
// pairs centered about the origin, the tens wheel left of the ones.
func (c CardInstance) AxleOffset() float32 {
	pair := (float32(c.Pair) - 1) * pairPitch
	wheel := (float32(c.Wheel) - 0.5) * wheelPitch
	return pair + wheel
}

// CardVertex is one corner of a digit card after wheel placement but
// before the camera transform: a 3D position plus the sprite-sheet UV.
type CardVertex struct {
	Pos [3]float32
	UV  clockface.Vec2
}

// CardQuad synthesizes the card's four-vertex triangle strip. The quad
// starts flat at the drum surface (translated -Z by the wheel radius),
// is rotated about the X axle by the card's current angle, then pushed
// sideways to its wheel position. UVs address the card's digit cell of
// the 10-cell horizontal sprite sheet.
func (c CardInstance) CardQuad(live *[WheelCount]float32) [4]CardVertex {
	angle := c.CardAngle(live)
	sin, cos := math32.Sincos(angle)
	axle := c.AxleOffset()

	u0 := float32(c.Digit) / CardsPerWheel
	u1 := float32(c.Digit+1) / CardsPerWheel

	corner := func(dx, dy, u, v float32) CardVertex {
		// Rotate (y, -WheelRadius) about the X axis.
		y := dy*cos + WheelRadius*sin
		z := dy*sin - WheelRadius*cos
		return CardVertex{
			Pos: [3]float32{axle + dx, y, z},
			UV:  clockface.V2(u, v),
		}
	}

	return [4]CardVertex{
		corner(-CardHalfWidth, +CardHalfHeight, u0, 0),
		corner(-CardHalfWidth, -CardHalfHeight, u0, 1),
		corner(+CardHalfWidth, +CardHalfHeight, u1, 0),
		corner(+CardHalfWidth, -CardHalfHeight, u1, 1),
	}
}

// EquatorShade returns the cosmetic brightness factor for a fragment
// at normalized vertical offset t in [-1, 1] from the wheel's equator.
// The cubic falloff darkens card edges as if they curved away from the
// camera; it carries no correctness constraint.
func EquatorShade(t float32) float32 {
	d := math32.Abs(t)
	s := 1 - equatorDarken*d*d*d
	if s < 0 {
		return 0
	}
	return s
}
