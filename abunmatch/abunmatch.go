package abunmatch

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by abundance-matching functions.
var (
	ErrLengthMismatch = errors.New("abunmatch: smm and mf must have the same length")
	ErrRelationShape  = errors.New("abunmatch: relation keys and values must have the same length")
	ErrShortRelation  = errors.New("abunmatch: relation must contain at least two points")
	ErrEmptyInput     = errors.New("abunmatch: empty input")
)

// Relation samples an abundance-matching relation at discrete points.
// Key[i] holds the galaxy-property proxy (typically log10 stellar mass) and
// Value[i] the log10 comoving number density tabulated at Key[i]. Keys must be
// monotonically increasing.
type Relation struct {
	Key   []float64
	Value []float64
}

// FitFunc is the signature of an iterative deconvolution fit.
//
// All slices are contiguous float64 sequences: key and value describe the
// abundance-matching relation, smm and mf the co-indexed stellar-mass and
// subhalo mass functions. The fit communicates its result purely by mutating
// smm in place; key, value, and mf are read-only. Implementations may assume
// all key and smm entries are strictly positive.
type FitFunc func(key, value, smm, mf []float64, scatter float64, repeat int, step float64)

// DeconvOptions configures Deconvolve.
type DeconvOptions struct {
	// Repeat is the number of refinement iterations performed by the fit.
	Repeat int

	// Step is the stellar-mass integration step in dex. Its absolute value
	// is used: a negative step is treated as if positive.
	Step float64

	// Fit is the deconvolution fit to delegate to. If nil, ConvolvedFit
	// is used.
	Fit FitFunc
}

// DefaultDeconvOptions returns the default deconvolution options.
func DefaultDeconvOptions() DeconvOptions {
	return DeconvOptions{
		Repeat: 40,
		Step:   0.01,
	}
}

// Deconvolve removes the effect of log-normal scatter from the stellar-mass
// assignment smm by delegating to an iterative convolution fit.
//
// smm and mf must have equal length. The fit routine requires strictly
// positive inputs, so when the minimum of rel.Key and smm is non-positive, a
// uniform offset of step-min is added to every element of rel.Key and smm
// before the fit and subtracted again afterward. The returned slice is smm
// itself, holding the deconvolved values co-indexed with mf.
//
// Deconvolve mutates rel.Key and smm in place for the offset step. At return
// both carry their original scale: rel.Key is logically unchanged and smm
// holds the fit result. Callers must not share these slices across concurrent
// calls. Scatter is the log-normal scatter level in dex.
func Deconvolve(rel Relation, smm, mf []float64, scatter float64, opts DeconvOptions) ([]float64, error) {
	if len(smm) != len(mf) {
		return nil, ErrLengthMismatch
	}
	if len(rel.Key) != len(rel.Value) {
		return nil, ErrRelationShape
	}
	if len(rel.Key) < 2 {
		return nil, ErrShortRelation
	}
	if len(smm) == 0 {
		return nil, ErrEmptyInput
	}

	if opts.Repeat <= 0 {
		opts.Repeat = 40
	}
	if opts.Step == 0 {
		opts.Step = 0.01
	}
	step := math.Abs(opts.Step)

	fit := opts.Fit
	if fit == nil {
		fit = ConvolvedFit
	}

	minVal := math.Min(floats.Min(rel.Key), floats.Min(smm))

	var offset float64
	if minVal <= 0 {
		offset = step - minVal
		floats.AddConst(offset, rel.Key)
		floats.AddConst(offset, smm)
	}

	fit(rel.Key, rel.Value, smm, mf, scatter, opts.Repeat, step)

	if minVal <= 0 {
		floats.AddConst(-offset, smm)
		floats.AddConst(-offset, rel.Key)
	}

	return smm, nil
}
