package halomath

import (
	"errors"
	"math"
)

// ErrInvalidBox is returned for non-positive box lengths.
var ErrInvalidBox = errors.New("halomath: box length must be positive")

// WrapBox applies periodic boundary conditions, mapping each coordinate into
// the range [0, boxLength). Coordinates may lie anywhere; the wrap is exact
// for the common case of points within one box length of the boundary.
// The input slice is not modified.
func WrapBox(coords []float64, boxLength float64) ([]float64, error) {
	if boxLength <= 0 {
		return nil, ErrInvalidBox
	}

	out := make([]float64, len(coords))
	for i, v := range coords {
		w := math.Mod(v, boxLength)
		if w < 0 {
			w += boxLength
		}
		out[i] = w
	}
	return out, nil
}
