package partition

// Rotate rotates s in place: the suffix s[mid:] moves to the front, the
// prefix s[:mid] behind it. It returns the position at which the prefix
// landed, len(s)-mid; for mid == 0 the rotation is the identity and the
// result is len(s).
//
// Rotate runs O(len(s)) element swaps and no comparisons or allocations.
func Rotate[T any](s []T, mid int) int {
	assert(0 <= mid && mid <= len(s), "partition: rotation point out of range")
	if mid == 0 || mid == len(s) {
		return len(s) - mid
	}
	// Block-swap the shorter of prefix and suffix into place and repeat on
	// what is left of the longer one (the Gries-Mills scheme).
	i, j := mid, len(s)-mid
	for i != j {
		if i > j {
			swapRange(s, mid-i, mid, j)
			i -= j
		} else {
			swapRange(s, mid-i, mid+j-i, i)
			j -= i
		}
	}
	swapRange(s, mid-i, mid, i)
	return len(s) - mid
}

func swapRange[T any](s []T, a, b, n int) {
	for k := 0; k < n; k++ {
		s[a+k], s[b+k] = s[b+k], s[a+k]
	}
}
