package abunmatch

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"

	"github.com/cosmostat/halokit/halomath"
)

// Conditional-abundance-matching errors.
var (
	ErrNoBins       = errors.New("abunmatch: at least one bin boundary is required")
	ErrUndersampled = errors.New("abunmatch: no bin meets the minimum sampling requirement")
)

// CAMOptions configures NewCAM.
type CAMOptions struct {
	// MinimumSampling is the minimum number of galaxies a primary-property
	// bin must contain to adequately sample the secondary-property
	// distribution. Bins below the threshold borrow the lookup table of the
	// nearest sufficiently populated bin.
	MinimumSampling int
}

// DefaultCAMOptions returns the default CAM options.
func DefaultCAMOptions() CAMOptions {
	return CAMOptions{MinimumSampling: 100}
}

// CAM assigns a secondary galaxy property (such as color or age) to mock
// galaxies by conditional abundance matching: within each bin of the primary
// property, assigned values follow the one-point distribution of an input
// galaxy sample and are rank-ordered by a secondary halo property.
type CAM struct {
	bins    []float64
	lookup  []interp.PiecewiseLinear
	minimum int
}

// NewCAM builds the per-bin one-point lookup tables from an input galaxy
// sample. galprop holds the property being modeled and primGalprop the
// primary property (typically stellar mass) used for binning; both must have
// equal length. bins are the monotonically increasing primary-property bin
// boundaries, defining len(bins)+1 bins including the underflow and overflow
// bins.
//
// Bins with fewer than the minimum sampling count of galaxies fall back to
// the lookup table of the nearest populated bin. If no bin is sufficiently
// populated, NewCAM fails with ErrUndersampled.
func NewCAM(galprop, primGalprop, bins []float64, opts CAMOptions) (*CAM, error) {
	if len(galprop) != len(primGalprop) {
		return nil, ErrLengthMismatch
	}
	if len(bins) == 0 {
		return nil, ErrNoBins
	}
	if opts.MinimumSampling <= 0 {
		opts.MinimumSampling = 100
	}

	c := &CAM{
		bins:    append([]float64(nil), bins...),
		lookup:  make([]interp.PiecewiseLinear, len(bins)+1),
		minimum: opts.MinimumSampling,
	}

	binned := digitize(primGalprop, c.bins)

	filled := make([]bool, len(c.lookup))
	var filledIdx []float64
	for i := range c.lookup {
		var vals []float64
		for j, b := range binned {
			if b == i {
				vals = append(vals, galprop[j])
			}
		}
		if len(vals) <= opts.MinimumSampling {
			continue
		}

		// Tabulate the empirical quantile function of the bin: rank
		// fraction on [0, 1] against the sorted property values.
		sort.Float64s(vals)
		xs := make([]float64, len(vals))
		for j := range xs {
			xs[j] = float64(j) / float64(len(vals)-1)
		}
		if err := c.lookup[i].Fit(xs, vals); err != nil {
			return nil, err
		}
		filled[i] = true
		filledIdx = append(filledIdx, float64(i))
	}

	if len(filledIdx) == 0 {
		return nil, ErrUndersampled
	}

	for i := range c.lookup {
		if filled[i] {
			continue
		}
		nearest := halomath.NearestIndex(filledIdx, float64(i))
		c.lookup[i] = c.lookup[int(filledIdx[nearest])]
	}

	return c, nil
}

// Assign draws a Monte Carlo realization of the modeled property for a mock
// galaxy population. Within each primary-property bin, drawn values follow
// the bin's one-point distribution and are assigned in rank order of
// secHaloprop, so the assignment carries zero scatter between the secondary
// halo property and the modeled property. primGalprop and secHaloprop must
// have equal length. A nil src falls back to a fixed-seed source.
func (c *CAM) Assign(primGalprop, secHaloprop []float64, src rand.Source) ([]float64, error) {
	if len(primGalprop) != len(secHaloprop) {
		return nil, ErrLengthMismatch
	}
	if src == nil {
		src = rand.NewPCG(1, 1)
	}
	rng := rand.New(src)

	binned := digitize(primGalprop, c.bins)
	out := make([]float64, len(primGalprop))

	for i := range c.lookup {
		var idx []int
		for j, b := range binned {
			if b == i {
				idx = append(idx, j)
			}
		}
		if len(idx) == 0 {
			continue
		}

		// Draw monotonically increasing property values for the bin.
		randoms := make([]float64, len(idx))
		for j := range randoms {
			randoms[j] = rng.Float64()
		}
		sort.Float64s(randoms)

		vals := make([]float64, len(idx))
		for j, r := range randoms {
			vals[j] = c.lookup[i].Predict(r)
		}

		// Rank the bin's galaxies by the secondary halo property and hand
		// out the drawn values in that order.
		sec := make([]float64, len(idx))
		for j, k := range idx {
			sec[j] = secHaloprop[k]
		}
		ranks := make([]int, len(idx))
		floats.Argsort(sec, ranks)

		for j, r := range ranks {
			out[idx[r]] = vals[j]
		}
	}

	return out, nil
}

// Correlation reports the per-bin Pearson correlation between an assigned
// property and the secondary halo property, binned by the primary property the
// way Assign bins it. Since Assign hands out values in rank order of the
// secondary property, its output correlates maximally; the diagnostic is
// mainly useful after post-processing that dilutes the assignment. Bins with
// fewer than two galaxies report NaN. All three slices must have equal length.
func (c *CAM) Correlation(assigned, primGalprop, secHaloprop []float64) ([]float64, error) {
	if len(assigned) != len(primGalprop) || len(assigned) != len(secHaloprop) {
		return nil, ErrLengthMismatch
	}

	binned := digitize(primGalprop, c.bins)
	out := make([]float64, len(c.lookup))
	for i := range out {
		var x, y []float64
		for j, b := range binned {
			if b == i {
				x = append(x, assigned[j])
				y = append(y, secHaloprop[j])
			}
		}
		if len(x) < 2 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Correlation(x, y, nil)
	}
	return out, nil
}

// digitize returns, for each value, the index of the bin it falls into, with
// bin i covering [bins[i-1], bins[i]). Index 0 is the underflow bin and
// len(bins) the overflow bin.
func digitize(values, bins []float64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = sort.Search(len(bins), func(j int) bool { return bins[j] > v })
	}
	return out
}
