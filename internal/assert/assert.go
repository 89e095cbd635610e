package assert

import "fmt"

// DistinctIndices panics if both indices refer to the same slot. Contact
// processing must never alias one body through two handles.
func DistinctIndices(a, b int) {
	if a == b {
		panic(fmt.Sprintf("expected distinct indices, got %d twice", a))
	}
}

// IndexInRange panics if idx is not a valid index into a collection of
// length n.
func IndexInRange(idx, n int) {
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("index %d out of range [0, %d)", idx, n))
	}
}
