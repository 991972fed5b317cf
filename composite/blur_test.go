package composite

import (
	"errors"
	"math"
	"testing"
)

func TestNewBlurTableValidation(t *testing.T) {
	if _, err := NewBlurTable(0, 1, false, false); !errors.Is(err, ErrBlurRadius) {
		t.Errorf("radius 0: err = %v, want ErrBlurRadius", err)
	}
	if _, err := NewBlurTable(3, 0, false, false); !errors.Is(err, ErrBlurSigma) {
		t.Errorf("sigma 0: err = %v, want ErrBlurSigma", err)
	}
}

func TestBlurTableWeightsNormalized(t *testing.T) {
	tests := []struct {
		name               string
		radius             int
		linear, correction bool
	}{
		{"discrete", 5, false, false},
		{"corrected", 5, false, true},
		{"linear", 5, true, true},
		{"large", 40, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps, err := NewBlurTable(tt.radius, SigmaForRadius(tt.radius), tt.linear, tt.correction)
			if err != nil {
				t.Fatal(err)
			}
			var sum float64
			for _, tap := range taps {
				sum += float64(tap.Weight)
			}
			if math.Abs(sum-1) > 1e-4 {
				t.Errorf("weights sum to %f, want 1", sum)
			}
		})
	}
}

func TestBlurTableTapCounts(t *testing.T) {
	const radius = 6
	discrete, err := NewBlurTable(radius, 2, false, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(discrete) != 2*radius+1 {
		t.Errorf("discrete taps = %d, want %d", len(discrete), 2*radius+1)
	}

	linear, err := NewBlurTable(radius, 2, true, true)
	if err != nil {
		t.Fatal(err)
	}
	// Pairs collapse: one tap per two texels plus the lone last one.
	if len(linear) != radius+1 {
		t.Errorf("linear taps = %d, want %d", len(linear), radius+1)
	}
}

func TestBlurTableSymmetricCenterHeavy(t *testing.T) {
	taps, err := NewBlurTable(4, 1, false, true)
	if err != nil {
		t.Fatal(err)
	}
	center := taps[4]
	if center.Offset != 0 {
		t.Fatalf("middle tap offset = %f, want 0", center.Offset)
	}
	for _, tap := range taps {
		if tap.Offset != 0 && tap.Weight >= center.Weight {
			t.Errorf("tap at %f outweighs center: %f >= %f", tap.Offset, tap.Weight, center.Weight)
		}
	}
	// Mirror weights match.
	for i := 0; i < 4; i++ {
		if math.Abs(float64(taps[i].Weight-taps[8-i].Weight)) > 1e-6 {
			t.Errorf("asymmetric weights at +-%d", 4-i)
		}
	}
}

func TestLinearTapOffsetsInterpolate(t *testing.T) {
	// Collapsed taps land between their source texel pair, biased
	// toward the heavier one.
	taps, err := NewBlurTable(4, 1.5, true, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, tap := range taps[:len(taps)-1] {
		lo := float32(-4 + 2*i)
		if tap.Offset < lo || tap.Offset > lo+1 {
			t.Errorf("tap %d offset %f outside [%f, %f]", i, tap.Offset, lo, lo+1)
		}
	}
}

func TestRadiusForDensity(t *testing.T) {
	// At the tuning reference density the radius is the reference 40.
	if got := RadiusForDensity(204, 1); got != 40 {
		t.Errorf("radius at reference density = %d, want 40", got)
	}
	if got := RadiusForDensity(102, 1); got != 20 {
		t.Errorf("radius at half density = %d, want 20", got)
	}
	if got := RadiusForDensity(204, 0.5); got != 20 {
		t.Errorf("radius with scale 0.5 = %d, want 20", got)
	}
}
