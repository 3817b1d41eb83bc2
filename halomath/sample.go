package halomath

import (
	"fmt"
	"math/rand/v2"
)

// Downsample returns a random size-n subsample of a, drawn without
// replacement. Fails when n exceeds len(a). A nil src falls back to a
// fixed-seed source.
func Downsample(a []float64, n int, src rand.Source) ([]float64, error) {
	if n > len(a) {
		return nil, fmt.Errorf("halomath: requested downsampling size %d exceeds input length %d", n, len(a))
	}
	rng := newRand(src)

	out := make([]float64, n)
	for i, j := range rng.Perm(len(a))[:n] {
		out[i] = a[j]
	}
	return out, nil
}

// Resample returns a size-n bootstrap resampling of a, drawn with
// replacement. Fails for empty input. A nil src falls back to a fixed-seed
// source.
func Resample(a []float64, n int, src rand.Source) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	rng := newRand(src)

	out := make([]float64, n)
	for i := range out {
		out[i] = a[rng.IntN(len(a))]
	}
	return out, nil
}

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		src = rand.NewPCG(1, 1)
	}
	return rand.New(src)
}
