package clock

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/clockface/sprite"
)

func at(h, m, s, ns int) time.Time {
	return time.Date(2026, 8, 25, h, m, s, ns, time.UTC) // a Tuesday
}

func TestPolarAtQuarterPast(t *testing.T) {
	st := PolarAt(at(3, 15, 0, 0))

	if math.Abs(float64(st.SecondsAngle)) > 1e-6 {
		t.Errorf("seconds angle = %f, want 0", st.SecondsAngle)
	}
	// 15 minutes: a quarter sweep.
	if math.Abs(float64(st.MinutesAngle)-math.Pi/2) > 1e-5 {
		t.Errorf("minutes angle = %f, want π/2", st.MinutesAngle)
	}
	// 3:15 ≈ a quarter of the hour dial plus the minute fraction.
	wantHours := (3.0 + 15.0/60.0) / 12.0 * 2 * math.Pi
	if math.Abs(float64(st.HoursAngle)-wantHours) > 1e-5 {
		t.Errorf("hours angle = %f, want %f", st.HoursAngle, wantHours)
	}

	// The minute marker rides the arc's leading end at 3 o'clock.
	if math.Abs(float64(st.MinutesPos.X)-MinutesRadius) > 1e-3 ||
		math.Abs(float64(st.MinutesPos.Y)) > 1e-3 {
		t.Errorf("minutes marker at %+v, want (%f, 0)", st.MinutesPos, MinutesRadius)
	}
}

func TestPolarAnglesMonotonicWithinMinute(t *testing.T) {
	var prev float32 = -1
	for s := 0; s < 60; s += 7 {
		st := PolarAt(at(10, 30, s, 250_000_000))
		if st.SecondsAngle <= prev {
			t.Fatalf("seconds angle regressed at s=%d: %f <= %f", s, st.SecondsAngle, prev)
		}
		prev = st.SecondsAngle
	}
}

func TestWheelAnglesAtRest(t *testing.T) {
	// Past the animation window every wheel rests at its digit.
	angles := WheelAnglesAt(at(12, 34, 56, 800_000_000))

	want := [6]uint32{1, 2, 3, 4, 5, 6}
	for i, d := range want {
		if math.Abs(float64(angles[i]-sprite.RestingAngle(d))) > 1e-6 {
			t.Errorf("wheel %d = %f, want resting angle of %d", i, angles[i], d)
		}
	}
}

func TestWheelAnglesForwardOnlyRollover(t *testing.T) {
	// 09 -> 10 seconds: the ones wheel rolls 9 -> 10 (full turn
	// forward), never 9 -> 0 backward.
	mid := WheelAnglesAt(at(12, 34, 10, 250_000_000))

	from := sprite.RestingAngle(9)
	to := float32(2 * math.Pi) // digit 10 ≡ full revolution
	ones := mid[5]
	if ones <= from || ones >= to {
		t.Errorf("ones wheel mid-transition = %f, want within (%f, %f)", ones, from, to)
	}

	// The tens wheel rolls 0 -> 1 at the same time.
	tens := mid[4]
	if tens <= 0 || tens >= sprite.RestingAngle(1) {
		t.Errorf("tens wheel mid-transition = %f, want within (0, %f)", tens, sprite.RestingAngle(1))
	}
}

func TestWheelAnglesTransitionCompletes(t *testing.T) {
	// At the end of the window the wheel has reached the new digit.
	end := WheelAnglesAt(at(12, 34, 10, 600_000_000))
	if math.Abs(float64(end[5])-float64(sprite.RestingAngle(0))) > 1e-6 {
		t.Errorf("ones wheel after transition = %f, want resting 0", end[5])
	}
}

func TestDigitalAt24Hour(t *testing.T) {
	st := DigitalAt(at(16, 20, 0, 0), false)

	if st.Flags.Test(32+sprite.BitAM) || st.Flags.Test(32+sprite.BitPM) {
		t.Error("24-hour mode must not light AM/PM")
	}
	if (st.Flags[0]>>sprite.ShiftHourTens)&0x7F != sprite.DigitSegments[1] {
		t.Error("hour tens should show 1")
	}
	if (st.Flags[0]>>sprite.ShiftHourOnes)&0x7F != sprite.DigitSegments[6] {
		t.Error("hour ones should show 6")
	}
}

func TestDigitalAt12Hour(t *testing.T) {
	st := DigitalAt(at(16, 20, 0, 0), true)
	if !st.Flags.Test(32 + sprite.BitPM) {
		t.Error("afternoon must light PM")
	}
	if (st.Flags[0]>>sprite.ShiftHourOnes)&0x7F != sprite.DigitSegments[4] {
		t.Error("hour ones should show 4 (16 -> 4 PM)")
	}

	// Midnight shows 12 AM.
	mid := DigitalAt(at(0, 0, 0, 0), true)
	if !mid.Flags.Test(32 + sprite.BitAM) {
		t.Error("midnight must light AM")
	}
	if (mid.Flags[0]>>sprite.ShiftHourTens)&0x7F != sprite.DigitSegments[1] {
		t.Error("midnight hour tens should show 1")
	}
	if (mid.Flags[0]>>sprite.ShiftHourOnes)&0x7F != sprite.DigitSegments[2] {
		t.Error("midnight hour ones should show 2")
	}
}

func TestDigitalColonBlink(t *testing.T) {
	lower := DigitalAt(at(1, 2, 3, 100_000_000), false)
	upper := DigitalAt(at(1, 2, 3, 900_000_000), false)
	if lower.Flags.Test(32 + sprite.BitColon) {
		t.Error("colon should be dark in the lower half second")
	}
	if !upper.Flags.Test(32 + sprite.BitColon) {
		t.Error("colon should be lit in the upper half second")
	}
}

func TestDigitalWeekday(t *testing.T) {
	// 2026-08-25 is a Tuesday: layout weekday 1, island (1+1)%7 = 2.
	st := DigitalAt(at(9, 0, 0, 0), false)
	if st.Flags[1]&0x7F != 1<<2 {
		t.Errorf("weekday islands = %#b, want island 2", st.Flags[1]&0x7F)
	}
}

func TestPaletteCyclerEases(t *testing.T) {
	c := NewPaletteCycler()
	base := at(12, 0, 0, 0)
	c.Advance(base)

	// At t=0 the blend still shows the scheme that was on screen
	// before Advance, so the handover is seamless.
	if start := c.Colors(base); start != Palettes[0] {
		t.Errorf("transition start = %+v, want %+v", start, Palettes[0])
	}

	settled := c.Colors(base.Add(time.Second))
	next := Palettes[1]
	if settled != next {
		t.Errorf("settled palette = %+v, want %+v", settled, next)
	}

	// Mid transition lies strictly between endpoints on the hour ring.
	mid := c.Colors(base.Add(100 * time.Millisecond))
	r0, _, _, _ := Palettes[0].Hour.Channels()
	r1, _, _, _ := next.Hour.Channels()
	rm, _, _, _ := mid.Hour.Channels()
	lo, hi := r0, r1
	if lo > hi {
		lo, hi = hi, lo
	}
	if rm < lo || rm > hi {
		t.Errorf("mid hour red %d outside [%d, %d]", rm, lo, hi)
	}
}
