package clock

import (
	"time"

	"github.com/gogpu/clockface"
)

// RingPalette is one color scheme of the polar face.
type RingPalette struct {
	Hour       clockface.PackedRGBA
	Minute     clockface.PackedRGBA
	Second     clockface.PackedRGBA
	Marker     clockface.PackedRGBA
	Background clockface.PackedRGBA
}

// Palettes are the cycling polar color schemes.
var Palettes = []RingPalette{
	{Hour: 0x171738FF, Minute: 0x2E1760FF, Second: 0x3423A6FF, Marker: 0xFFFFFFFF, Background: 0x000000FF},
	{Hour: 0x1B1B3AFF, Minute: 0x693668FF, Second: 0xA74482FF, Marker: 0xFFFFFFFF, Background: 0x000000FF},
	{Hour: 0x576232FF, Minute: 0xB06F25FF, Second: 0x92531DFF, Marker: 0xFFFFFFFF, Background: 0xFFFFFFFF},
	{Hour: 0x152614FF, Minute: 0x1E441EFF, Second: 0x2A7221FF, Marker: 0xFFFFFFFF, Background: 0xFFFFFFFF},
	{Hour: 0x000706FF, Minute: 0x5F6083FF, Second: 0x4347A5FF, Marker: 0xFFFFFFFF, Background: 0xFFFFFFFF},
	{Hour: 0xCFFCFFFF, Minute: 0xAAEFDFFF, Second: 0x9EE37DFF, Marker: 0x000000FF, Background: 0x000000FF},
}

// transitionDuration is how long a palette change eases from the old
// scheme to the next.
const transitionDuration = 500 * time.Millisecond

// PaletteCycler eases between adjacent palettes on demand. Advancing
// starts a timed transition from the current scheme to the next; Colors
// returns the eased blend for the given instant.
type PaletteCycler struct {
	index     int
	changedAt time.Time
}

// NewPaletteCycler starts at the last palette so the first Advance
// lands on the first.
func NewPaletteCycler() *PaletteCycler {
	return &PaletteCycler{index: len(Palettes) - 1}
}

// Advance begins the transition to the next palette.
func (c *PaletteCycler) Advance(now time.Time) {
	c.index = (c.index + 1) % len(Palettes)
	c.changedAt = now
}

// Colors returns the current eased palette blend. Outside a
// transition it is simply the palette after the active index.
func (c *PaletteCycler) Colors(now time.Time) RingPalette {
	elapsed := now.Sub(c.changedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > transitionDuration {
		elapsed = transitionDuration
	}
	t := easeOutQuint(float64(elapsed) / float64(transitionDuration))

	from := Palettes[c.index]
	to := Palettes[(c.index+1)%len(Palettes)]

	return RingPalette{
		Hour:       clockface.LerpPacked(from.Hour, to.Hour, t),
		Minute:     clockface.LerpPacked(from.Minute, to.Minute, t),
		Second:     clockface.LerpPacked(from.Second, to.Second, t),
		Marker:     clockface.LerpPacked(from.Marker, to.Marker, t),
		Background: clockface.LerpPacked(from.Background, to.Background, t),
	}
}
