package clock

import (
	"time"

	"github.com/gogpu/clockface/sprite"
)

// Digital face drawspace half-extent, matching the aspect the segment
// layout was modeled at.
var DigitalExtent = [2]float32{2.5, 1.40625}

// DigitalState is one frame of the 7-segment face: the island flagset
// and the animation timestamp the procedural palettes consume.
type DigitalState struct {
	Flags sprite.Flagset
	// Timestamp is the current second with its sub-second fraction.
	Timestamp float32
}

// DigitalAt derives the display state for the given instant.
//
// In 12-hour mode the hour wraps to 1..12 and lights the matching
// AM/PM island; in 24-hour mode both indicators stay dark. The colon
// blinks at one hertz, lit during the upper half of each second.
func DigitalAt(now time.Time, hr12 bool) DigitalState {
	hours := uint32(now.Hour())

	var am, pm bool
	if hr12 {
		pm = hours >= 12
		am = !pm
		hours %= 12
		if hours == 0 {
			hours = 12
		}
	}

	// time.Weekday counts from Sunday; the segment layout counts from
	// Monday.
	weekday := (uint32(now.Weekday()) + 6) % 7

	state := sprite.ClockState{
		Hours:   hours,
		Minutes: uint32(now.Minute()),
		Weekday: weekday,
		AM:      am,
		PM:      pm,
		Colon:   now.Nanosecond() > 500_000_000,
	}

	return DigitalState{
		Flags:     state.Encode(),
		Timestamp: float32(now.Second()) + float32(now.Nanosecond())/1e9,
	}
}
