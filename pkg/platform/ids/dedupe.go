// Package ids provides helpers for working with lists of numeric entity ids.
package ids

// Dedupe removes duplicates and non-positive values from a slice.
// Order of first occurrence is preserved.
//
// Example:
//
//	Dedupe([]int64{3, 1, 3, 0, 2})
//	// Returns: []int64{3, 1, 2}
func Dedupe(values []int64) []int64 {
	if len(values) == 0 {
		return values
	}

	seen := make(map[int64]struct{}, len(values))
	result := make([]int64, 0, len(values))

	for _, v := range values {
		if v <= 0 {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}
