// Package clock derives per-frame draw state from wall-clock time:
// polar arc angles and marker positions, counter-wheel rotations with
// the forward-only digit transition, and the 7-segment display state.
package clock

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// Polar face layout in model units, sized for a half-extent of 16.
const (
	PolarExtent   = 16.0
	RingThickness = 2.4

	SecondsRadius = 13.0
	MinutesRadius = 9.0
	HoursRadius   = 5.0
	MarkerRadius  = 0.8
)

// PolarState is one frame of the polar clock: the clockwise sweep of
// each ring arc and the position of each marker disk at the arc's
// leading end.
type PolarState struct {
	HoursAngle   float32
	MinutesAngle float32
	SecondsAngle float32

	HoursPos   clockface.Vec2
	MinutesPos clockface.Vec2
	SecondsPos clockface.Vec2
}

// PolarAt computes the frame state for the given instant. Each hand
// flows continuously: seconds carry the sub-second fraction, minutes
// the second fraction, hours the minute fraction.
func PolarAt(now time.Time) PolarState {
	seconds := float32(now.Second()) + float32(now.Nanosecond())/1e9
	minutes := float32(now.Minute()) + seconds/60
	hours := float32(now.Hour()%12) + minutes/60

	const tau = 2 * math32.Pi
	sa := seconds / 60 * tau
	ma := minutes / 60 * tau
	ha := hours / 12 * tau

	return PolarState{
		HoursAngle:   ha,
		MinutesAngle: ma,
		SecondsAngle: sa,
		HoursPos:     clockface.ClockPoint(ha, HoursRadius),
		MinutesPos:   clockface.ClockPoint(ma, MinutesRadius),
		SecondsPos:   clockface.ClockPoint(sa, SecondsRadius),
	}
}

// easeOutQuint is the easing applied to palette transitions.
func easeOutQuint(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u*u
}
