package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.0000001}, 1e-6)
}

func TestRequireSliceEqual(t *testing.T) {
	RequireSliceEqual(t, []float64{1, -2, 0}, []float64{1, -2, 0})
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, 1e300, -1e-300})
}

func TestRequireNonDecreasing(t *testing.T) {
	RequireNonDecreasing(t, []float64{-1, -1, 0, 2})
}
