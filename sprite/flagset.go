package sprite

// Flagset encodes the on/off state of up to 64 segment islands as two
// 32-bit words, the way a real 7-segment clock powers individual LED
// pins. The vertex stage tests each vertex's island ID against the set
// and the fragment stage shades lit and unlit islands differently.
type Flagset [2]uint32

// Set marks the island with the given ID as lit.
func (f *Flagset) Set(id uint32) {
	f[id/32] |= 1 << (id % 32)
}

// Test reports whether the island with the given ID is lit.
func (f Flagset) Test(id uint32) bool {
	return f[id/32]&(1<<(id%32)) != 0
}

// DigitSegments maps a decimal digit to its 7-segment island bits.
// The bit positions follow the clock layout's island numbering, not
// the conventional a-g order.
var DigitSegments = [10]uint32{
	0b1110111,
	0b1000100,
	0b1011011,
	0b1011101,
	0b1101100,
	0b0111101,
	0b0111111,
	0b1010100,
	0b1111111,
	0b1111101,
}

// Island bit layout within the flagset words.
//
// Word 0 packs the four time digits, seven segment islands each:
// hour tens at bit 0, hour ones at 7, minute tens at 14, minute ones
// at 21. Word 1 packs one island per weekday in bits 0..6, the AM and
// PM indicators at 7 and 8, and the colon at 9.
const (
	ShiftHourTens   = 0
	ShiftHourOnes   = 7
	ShiftMinuteTens = 14
	ShiftMinuteOnes = 21

	BitAM    = 7
	BitPM    = 8
	BitColon = 9
)

// ClockState is the displayable clock reading the host derives from
// wall time. Hours carries the value to show, already converted for
// 12-hour mode when AM or PM is set.
type ClockState struct {
	Hours   uint32
	Minutes uint32
	// Weekday is 0 for Monday through 6 for Sunday.
	Weekday uint32
	AM, PM  bool
	// Colon is the blink state, lit during the upper half of each second.
	Colon bool
}

// Encode packs the clock state into the island flagset.
//
// The hour tens digit is blanked entirely when zero rather than
// showing a leading 0. The weekday island index is shifted by one with
// wraparound; the clock layout was drawn with a different first day
// than the weekday numbering used here.
func (s ClockState) Encode() Flagset {
	var f Flagset

	if s.Hours/10 != 0 {
		f[0] |= DigitSegments[s.Hours/10] << ShiftHourTens
	}
	f[0] |= DigitSegments[s.Hours%10] << ShiftHourOnes
	f[0] |= DigitSegments[s.Minutes/10] << ShiftMinuteTens
	f[0] |= DigitSegments[s.Minutes%10] << ShiftMinuteOnes

	f[1] |= 1 << ((s.Weekday + 1) % 7)
	if s.AM {
		f[1] |= 1 << BitAM
	}
	if s.PM {
		f[1] |= 1 << BitPM
	}
	if s.Colon {
		f[1] |= 1 << BitColon
	}
	return f
}
