// Package abunmatch provides abundance matching (SHAM) and conditional
// abundance matching (CAM) routines for connecting galaxy properties to
// dark-matter subhalo catalogs.
//
// # Deconvolution
//
// The central operation is [Deconvolve], which removes the effect of
// log-normal scatter from a tabulated abundance-matching relation by
// delegating to an iterative convolution fit:
//
//	rel := abunmatch.Relation{Key: logMstar, Value: logPhi}
//	result, err := abunmatch.Deconvolve(rel, smm, mf, 0.2, abunmatch.DefaultDeconvOptions())
//
// The fit routine requires strictly positive keys and masses. Deconvolve
// shields callers from that domain restriction by shifting all values by a
// uniform offset before the fit and undoing the shift afterward.
//
// The fit itself is pluggable through the [FitFunc] signature. The default,
// [ConvolvedFit], iteratively re-convolves a trial stellar-mass assignment
// with a Gaussian kernel until the cumulative abundances of the relation are
// reproduced.
//
// # Forward convolution
//
// [ConvolveScatter] solves the forward problem: smearing a binned mass
// function with a Gaussian scatter kernel. Short kernels use direct
// convolution; long kernels use an FFT. This mirrors the deconvolution and is
// useful for round-trip checks.
//
// # Conditional abundance matching
//
// [CAM] models a secondary galaxy property (such as color or age) at fixed
// primary property by rank-matching against a secondary halo property within
// bins of the primary property. Lookup tables are built from an input galaxy
// sample, with undersampled bins falling back to the nearest populated bin.
//
// # Concurrency
//
// Deconvolve mutates the caller-supplied key and smm slices in place while it
// runs (the net effect on key is a no-op). Concurrent calls are safe only when
// each call operates on disjoint slices.
package abunmatch
