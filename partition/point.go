package partition

// Point returns the index of the first element of s that belongs to the
// second partition: the smallest i with pred(s[i]) true, or len(s) when no
// element satisfies pred. s has to be partitioned, with every element
// satisfying pred following every element that does not.
//
// Point runs O(log len(s)) predicate calls.
func Point[T any](s []T, pred func(T) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // cannot overflow
		if pred(s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// PointE is Point for predicates that can fail. The search stops at the
// first predicate failure and returns that error with an index of no
// meaning.
func PointE[T any](s []T, pred func(T) (bool, error)) (int, error) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		in2nd, err := pred(s[mid])
		if err != nil {
			return 0, err
		}
		if in2nd {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}
