package analytics

// TopN returns the first n elements of an already sorted slice. It does not
// sort; the caller's order is the ranking.
func TopN[T any](sorted []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n:n]
}
