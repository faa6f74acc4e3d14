package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Count returns the number of elements for which keep returns true.
func Count[S ~[]E, E any](s S, keep func(E) bool) int {
	n := 0
	for _, e := range s {
		if keep(e) {
			n++
		}
	}

	return n
}
