package catalog

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Selection errors.
var (
	ErrConflictingCuts   = errors.New("catalog: cannot select only host halos and only subhalos")
	ErrBadPercentiles    = errors.New("catalog: percentiles must be increasing and inside (0, 1)")
	ErrPercentileSpacing = errors.New("catalog: percentile spacing is too fine for the sample")
)

// upidColumn is the column distinguishing host halos (-1) from subhalos.
const upidColumn = "halo_upid"

// SelectHosts returns the host halos of the catalog, identified by
// halo_upid == -1.
func SelectHosts(c *Catalog) (*Catalog, error) {
	hosts, _, err := SplitHostsSubs(c)
	return hosts, err
}

// SplitHostsSubs divides the catalog into host halos and subhalos.
func SplitHostsSubs(c *Catalog) (hosts, subs *Catalog, err error) {
	upid, err := c.Int(upidColumn)
	if err != nil {
		return nil, nil, err
	}

	mask := make([]bool, len(upid))
	inverse := make([]bool, len(upid))
	for i, v := range upid {
		mask[i] = v == -1
		inverse[i] = v != -1
	}

	hosts, err = c.Select(mask)
	if err != nil {
		return nil, nil, err
	}
	subs, err = c.Select(inverse)
	if err != nil {
		return nil, nil, err
	}
	return hosts, subs, nil
}

// RangeOptions restricts a property cut to host halos or subhalos.
type RangeOptions struct {
	HostsOnly bool
	SubsOnly  bool
}

// PropertyRange cuts the catalog on the named float column, keeping rows
// with lower <= value <= upper. Use math.Inf bounds for one-sided cuts.
func PropertyRange(c *Catalog, key string, lower, upper float64, opts RangeOptions) (*Catalog, error) {
	kept, _, err := propertyRange(c, key, lower, upper, opts, false)
	return kept, err
}

// PropertyRangeComplement behaves like PropertyRange but additionally returns
// the rows failing the cut.
func PropertyRangeComplement(c *Catalog, key string, lower, upper float64, opts RangeOptions) (kept, rest *Catalog, err error) {
	return propertyRange(c, key, lower, upper, opts, true)
}

func propertyRange(c *Catalog, key string, lower, upper float64, opts RangeOptions, complement bool) (*Catalog, *Catalog, error) {
	if opts.HostsOnly && opts.SubsOnly {
		return nil, nil, ErrConflictingCuts
	}
	var err error
	switch {
	case opts.HostsOnly:
		c, _, err = SplitHostsSubs(c)
	case opts.SubsOnly:
		_, c, err = SplitHostsSubs(c)
	}
	if err != nil {
		return nil, nil, err
	}

	col, err := c.Float(key)
	if err != nil {
		return nil, nil, err
	}

	mask := make([]bool, len(col))
	for i, v := range col {
		mask[i] = v >= lower && v <= upper
	}

	kept, err := c.Select(mask)
	if err != nil {
		return nil, nil, err
	}
	if !complement {
		return kept, nil, nil
	}

	for i := range mask {
		mask[i] = !mask[i]
	}
	rest, err := c.Select(mask)
	if err != nil {
		return nil, nil, err
	}
	return kept, rest, nil
}

// SplitByPercentiles divides the catalog into contiguous subsamples by the
// percentile ranking of the named float column. A length-N percentiles slice
// yields N+1 catalogs ordered from lowest to highest ranking. Fails with
// ErrPercentileSpacing when the requested spacing leaves a subsample empty.
func SplitByPercentiles(c *Catalog, key string, percentiles []float64) ([]*Catalog, error) {
	col, err := c.Float(key)
	if err != nil {
		return nil, err
	}

	prev := 0.0
	for _, p := range percentiles {
		if p <= prev || p >= 1 {
			return nil, ErrBadPercentiles
		}
		prev = p
	}
	if len(percentiles) >= c.Len() {
		return nil, fmt.Errorf("%w: %d percentiles for %d rows", ErrPercentileSpacing, len(percentiles), c.Len())
	}

	idx := make([]int, c.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return col[idx[i]] < col[idx[j]] })

	bounds := make([]int, 0, len(percentiles)+2)
	bounds = append(bounds, 0)
	for _, p := range percentiles {
		bounds = append(bounds, int(p*float64(c.Len())))
	}
	bounds = append(bounds, c.Len())

	out := make([]*Catalog, len(bounds)-1)
	for i := range out {
		if bounds[i] >= bounds[i+1] {
			return nil, fmt.Errorf("%w: no rows between percentile boundaries %d and %d",
				ErrPercentileSpacing, i, i+1)
		}
		out[i] = c.takeRows(idx[bounds[i]:bounds[i+1]])
	}
	return out, nil
}

// Quantile returns the empirical p-quantile of the named float column.
func Quantile(c *Catalog, key string, p float64) (float64, error) {
	col, err := c.Float(key)
	if err != nil {
		return 0, err
	}
	sorted := append([]float64(nil), col...)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}
