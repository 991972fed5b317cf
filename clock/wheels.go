package clock

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/clockface/sprite"
)

// wheelAnimDuration is the window at the start of each second during
// which changed wheels roll to their new digit. Must not exceed one
// second.
const wheelAnimDuration = 500 * time.Millisecond

// timeDigits splits HH MM SS into the six wheel digits.
func timeDigits(t time.Time) [sprite.WheelCount]uint32 {
	h := uint32(t.Hour())
	m := uint32(t.Minute())
	s := uint32(t.Second())
	return [sprite.WheelCount]uint32{
		h / 10, h % 10,
		m / 10, m % 10,
		s / 10, s % 10,
	}
}

// WheelAnglesAt returns the live rotation of each counter wheel at the
// given instant.
//
// During the first wheelAnimDuration of each second, wheels whose
// digit changed roll from the previous digit's resting angle to the
// new one; the rest of the time every wheel rests at its digit's
// angle. All wheels rotate in one direction only: a high-to-low
// transition like 9 -> 0 is animated as 9 -> 10, so the drum never
// appears to spin backward.
func WheelAnglesAt(now time.Time) [sprite.WheelCount]float32 {
	digits := timeDigits(now)

	var angles [sprite.WheelCount]float32
	nanos := time.Duration(now.Nanosecond())
	if nanos > wheelAnimDuration {
		for i, d := range digits {
			angles[i] = sprite.RestingAngle(d)
		}
		return angles
	}

	ago := timeDigits(now.Add(-wheelAnimDuration))
	t := float32(nanos) / float32(wheelAnimDuration)

	for i := range digits {
		from := ago[i]
		to := digits[i]
		if to < from {
			to += 10
		}
		a0 := sprite.RestingAngle(from)
		a1 := float32(to) / sprite.CardsPerWheel * 2 * math32.Pi
		angles[i] = (1-t)*a0 + t*a1
	}
	return angles
}
