package abunmatch

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"
)

// Forward-convolution errors.
var (
	ErrInvalidScatter  = errors.New("abunmatch: scatter must be non-negative")
	ErrInvalidBinWidth = errors.New("abunmatch: bin width must be positive")
)

// ConvolveScatter smears the binned mass function phi with a Gaussian scatter
// kernel. The bins are assumed uniform with width binWidth in the same units
// as scatter (typically dex). The kernel extends to +/- 4 sigma and is
// normalized to unit sum, so the total abundance is preserved up to edge
// truncation. The result has the same length as phi.
//
// This is the forward problem corresponding to Deconvolve: convolving a
// deconvolved mass function with the same scatter should approximately
// recover the original.
func ConvolveScatter(phi []float64, scatter, binWidth float64) ([]float64, error) {
	if len(phi) == 0 {
		return nil, ErrEmptyInput
	}
	if scatter < 0 {
		return nil, ErrInvalidScatter
	}
	if binWidth <= 0 {
		return nil, ErrInvalidBinWidth
	}

	out := make([]float64, len(phi))
	if scatter == 0 {
		copy(out, phi)
		return out, nil
	}

	kernel := scatterKernel(scatter, binWidth)

	// Direct convolution for short kernels, FFT for long ones. The crossover
	// follows the usual order of magnitude for direct vs. FFT convolution.
	const directThreshold = 64

	var full []float64
	var err error
	if len(kernel) <= directThreshold {
		full = convolveDirect(phi, kernel)
	} else {
		full, err = convolveFFT(phi, kernel)
		if err != nil {
			return nil, err
		}
	}

	// Trim the full convolution to the centered "same" window.
	start := (len(kernel) - 1) / 2
	copy(out, full[start:start+len(phi)])
	return out, nil
}

// scatterKernel builds a unit-sum Gaussian kernel of width scatter sampled on
// the bin grid, truncated at +/- 4 sigma. The kernel length is always odd.
func scatterKernel(scatter, binWidth float64) []float64 {
	half := int(math.Ceil(4 * scatter / binWidth))
	if half < 1 {
		half = 1
	}
	kernel := make([]float64, 2*half+1)
	for i := range kernel {
		d := float64(i-half) * binWidth / scatter
		kernel[i] = math.Exp(-0.5 * d * d)
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// convolveDirect computes the full linear convolution in the time domain.
func convolveDirect(a, kernel []float64) []float64 {
	full := make([]float64, len(a)+len(kernel)-1)
	for i, v := range a {
		floats.AddScaled(full[i:i+len(kernel)], v, kernel)
	}
	return full
}

// convolveFFT computes the full linear convolution via zero-padded FFTs.
func convolveFFT(a, kernel []float64) ([]float64, error) {
	fullLen := len(a) + len(kernel) - 1
	fftSize := nextPowerOf2(fullLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("abunmatch: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	kPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range kernel {
		kPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	kFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, err
	}
	if err := plan.Forward(kFreq, kPadded); err != nil {
		return nil, err
	}

	for i := range aFreq {
		aFreq[i] *= kFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, aFreq); err != nil {
		return nil, err
	}

	full := make([]float64, fullLen)
	for i := range full {
		full[i] = real(resultTime[i])
	}
	return full, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
