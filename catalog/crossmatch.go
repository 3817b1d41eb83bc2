package catalog

import "errors"

// ErrNotUnique is returned when the match target contains duplicate IDs.
var ErrNotUnique = errors.New("catalog: match target array is not unique")

// Crossmatch determines the indices of matches of x into the unique array y.
// The returned slices are co-indexed: x[matches[i]] == y[matched[i]] for all
// i, with matched in increasing order. Entries of y absent from x are
// skipped. When x contains duplicates of a matched value, one occurrence is
// reported. Fails with ErrNotUnique when y contains duplicates.
func Crossmatch(x, y []int64) (matches, matched []int, err error) {
	seen := make(map[int64]struct{}, len(y))
	for _, v := range y {
		if _, dup := seen[v]; dup {
			return nil, nil, ErrNotUnique
		}
		seen[v] = struct{}{}
	}

	where := make(map[int64]int, len(x))
	for i, v := range x {
		if _, ok := where[v]; !ok {
			where[v] = i
		}
	}

	for j, v := range y {
		if i, ok := where[v]; ok {
			matches = append(matches, i)
			matched = append(matched, j)
		}
	}
	return matches, matched, nil
}
