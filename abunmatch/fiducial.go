package abunmatch

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Gaussian lookup cache covering +/- 8 sigma at 256 samples per sigma.
const (
	gaussCacheSize    = 4097
	gaussCacheCenter  = 2048 // (4097-1)/2
	gaussCacheMax     = 8
	gaussCacheInvStep = 256 // 2048/8
)

// gaussCache evaluates the Gaussian density at offset dm for the given
// scatter by linear interpolation into the precomputed table g.
// Returns 0 outside the tabulated +/- 8 sigma range.
func gaussCache(dm, scatter float64, g []float64) float64 {
	dm = dm/scatter*gaussCacheInvStep + gaussCacheCenter
	b := int(dm)
	if b < 0 || b >= gaussCacheSize-1 {
		return 0
	}
	dm -= float64(b)
	return (g[b] + dm*(g[b+1]-g[b])) / scatter
}

// newGaussCache tabulates the unit Gaussian density on the cache grid.
func newGaussCache() []float64 {
	g := make([]float64, gaussCacheSize)
	norm := 1 / math.Sqrt(2*math.Pi)
	for i := range g {
		sm := float64(i)/gaussCacheInvStep - gaussCacheMax
		g[i] = math.Exp(-0.5*sm*sm) * norm
	}
	return g
}

// ConvolvedFit is the fiducial deconvolution fit and the default FitFunc used
// by Deconvolve.
//
// Starting from the trial stellar-mass assignment smm, each of the repeat
// iterations sweeps downward through fiducial stellar mass in increments of
// step, convolving the current assignment with a Gaussian kernel of width
// scatter (in dex) and accumulating number density until the cumulative
// abundances tabulated in (key, value) are matched. The refined assignment
// replaces smm in place, co-indexed with mf.
//
// All key and smm entries must be strictly positive; Deconvolve guarantees
// this via its offset step. A zero repeat or zero scatter leaves smm
// untouched.
func ConvolvedFit(key, value, smm, mf []float64, scatter float64, repeat int, step float64) {
	if repeat == 0 || scatter == 0 {
		return
	}

	n := len(smm)
	nAF := len(key)

	newSmm := make([]float64, n)
	smmConv := make([]float64, n)
	prod := make([]float64, n)
	g := newGaussCache()

	for k := 0; k < repeat; k++ {
		// Restrict the sweep to the contiguous run of populated bins.
		jstart, jend := 0, n
		for i := 1; i < n; i++ {
			if smm[i] != 0 && smm[i-1] == 0 {
				jstart = i
			}
			if smm[i] == 0 && smm[i-1] != 0 {
				jend = i
			}
		}
		for i := range newSmm {
			newSmm[i] = 0
		}

		fidSM := key[nAF-1] + 1
		nh := math.Pow(10, value[nAF-1]) * (key[nAF-1] - key[nAF-2])

		// Sweep down from above the brightest tabulated point until the
		// cumulative density of the last relation segment is reached.
		mnh := 0.0
		for mnh < nh {
			for j := jstart; j < jend; j++ {
				smmConv[j] = gaussCache(fidSM-smm[j], scatter, g)
			}
			vecmath.MulBlock(prod[jstart:jend], smmConv[jstart:jend], mf[jstart:jend])
			mnh += floats.Sum(prod[jstart:jend]) * step
			if math.IsNaN(mnh) || math.IsInf(mnh, 0) {
				mnh = 0
			}
			floats.AddScaled(newSmm[jstart:jend], step*key[nAF-1], smmConv[jstart:jend])
			fidSM -= step
		}

		// Walk the relation segments from bright to faint, interpolating
		// the assigned mass in log cumulative density within each segment.
		lnh := math.Log10(nh)
		for i := nAF - 1; i > 0; i-- {
			newNh := nh + (math.Pow(10, value[i-1])-math.Pow(10, value[i]))*
				(key[i]-key[i-1])/(math.Ln10*(value[i-1]-value[i]))
			lnnh := math.Log10(newNh)
			for mnh < newNh && fidSM >= 0 {
				for j := jstart; j < jend; j++ {
					smmConv[j] = gaussCache(fidSM-smm[j], scatter, g)
				}
				vecmath.MulBlock(prod[jstart:jend], smmConv[jstart:jend], mf[jstart:jend])
				mnh += floats.Sum(prod[jstart:jend]) * step
				sm := key[i-1] + (math.Log10(mnh)-lnnh)/(lnh-lnnh)*(key[i]-key[i-1])
				floats.AddScaled(newSmm[jstart:jend], sm*step, smmConv[jstart:jend])
				fidSM -= step
			}
			nh = newNh
			lnh = lnnh
		}

		copy(smm[jstart:jend], newSmm[jstart:jend])
	}
}
