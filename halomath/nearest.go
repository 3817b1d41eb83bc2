package halomath

import (
	"math"
	"sort"
)

// NearestIndex returns the index of the element of a closest to value.
// Ties are broken toward the larger element. Returns -1 for an empty slice.
// The slice does not need to be sorted.
func NearestIndex(a []float64, value float64) int {
	if len(a) == 0 {
		return -1
	}

	idxSorted := make([]int, len(a))
	for i := range idxSorted {
		idxSorted[i] = i
	}
	sort.Slice(idxSorted, func(i, j int) bool { return a[idxSorted[i]] < a[idxSorted[j]] })

	idx := sort.Search(len(a), func(i int) bool { return a[idxSorted[i]] >= value })
	switch {
	case idx >= len(a):
		return idxSorted[len(a)-1]
	case idx == 0:
		return idxSorted[0]
	case math.Abs(value-a[idxSorted[idx-1]]) < math.Abs(value-a[idxSorted[idx]]):
		return idxSorted[idx-1]
	default:
		return idxSorted[idx]
	}
}
