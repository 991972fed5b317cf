// Package composite provides the screen-space compositor passes:
// separable Gaussian blur with a precomputed tap table, the alpha
// masked glow recombination, portal screen-UV sampling, and fullscreen
// mirror blits.
package composite

import (
	"errors"

	"github.com/chewxy/math32"
)

// BlurTap is one entry of the blur look-up table: a sample offset in
// pixels along the blur axis and its kernel weight. The same weights
// apply to every pixel, so the table is built once on the CPU instead
// of being recomputed per fragment.
type BlurTap struct {
	Weight float32
	Offset float32
}

var (
	ErrBlurRadius = errors.New("composite: blur radius must be 1 or up")
	ErrBlurSigma  = errors.New("composite: blur sigma cannot be 0")
)

// Blur radius scaling. The radius follows pixel density so the glow
// spreads the same physical distance on any display; the factors were
// tuned by eye at a 204 dpi reference.
const (
	blurReferenceDensity = 204.0
	blurReferenceRadius  = 40.0
)

// RadiusForDensity returns the blur radius in pixels for the given
// pixel density, scaled from the tuned reference.
func RadiusForDensity(density, radiusScale float32) int {
	return int(density / blurReferenceDensity * blurReferenceRadius * radiusScale)
}

// SigmaForRadius returns the Gaussian sigma paired with a radius.
func SigmaForRadius(radius int) float32 {
	return float32(radius) * 0.25
}

// erf is the Abramowitz & Stegun 7.1.26 rational approximation,
// reproduced exactly for table parity with the reference kernel
// generator.
func erf(x float32) float32 {
	const (
		a1 float32 = 0.254829592
		a2 float32 = -0.284496736
		a3 float32 = 1.421413741
		a4 float32 = -1.453152027
		a5 float32 = 1.061405429
		p  float32 = 0.3275911
	)

	sign := float32(1)
	if x < 0 {
		sign = -1
	}
	x = math32.Abs(x)

	t := 1 / (1 + p*x)
	y := 1 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math32.Exp(-x*x)
	return sign * y
}

// NewBlurTable builds the weight/offset look-up table for a 1D
// Gaussian kernel of the given radius and sigma.
//
// With correction, each weight is the integral of the Gaussian over
// its pixel's footprint (difference of erfs) rather than a point
// sample, which keeps narrow kernels from under-weighting their tails.
// With linear, adjacent tap pairs are collapsed into single taps at
// the weighted midpoint so a linearly filtering sampler fetches two
// texels per tap, halving the sample count.
//
// Ported from the generator at
// https://lisyarus.github.io/blog/graphics/2023/02/24/blur-coefficients-generator.html
func NewBlurTable(radius int, sigma float32, linear, correction bool) ([]BlurTap, error) {
	if radius < 1 {
		return nil, ErrBlurRadius
	}
	if sigma == 0 {
		return nil, ErrBlurSigma
	}

	weights := make([]float32, 0, 2*radius+1)
	var sum float32
	for i := -radius; i <= radius; i++ {
		fi := float32(i)
		var w float32
		if correction {
			w = (erf((fi+0.5)/sigma/math32.Sqrt2) - erf((fi-0.5)/sigma/math32.Sqrt2)) / 2
		} else {
			w = math32.Exp(-fi * fi / sigma / sigma)
		}
		sum += w
		weights = append(weights, w)
	}
	inv := 1 / sum
	for i := range weights {
		weights[i] *= inv
	}

	if !linear {
		taps := make([]BlurTap, 0, len(weights))
		for i := -radius; i <= radius; i++ {
			taps = append(taps, BlurTap{
				Weight: weights[i+radius],
				Offset: float32(i),
			})
		}
		return taps, nil
	}

	taps := make([]BlurTap, 0, radius+1)
	for i := -radius; i <= radius; i += 2 {
		if i == radius {
			taps = append(taps, BlurTap{
				Weight: weights[i+radius],
				Offset: float32(i),
			})
			continue
		}
		w0 := weights[i+radius]
		w1 := weights[i+radius+1]
		w := w0 + w1
		o := float32(i)
		if w > 0 {
			o += w1 / w
		}
		taps = append(taps, BlurTap{Weight: w, Offset: o})
	}
	return taps, nil
}
