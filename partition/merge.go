package partition

import "cmp"

// Merge merges the two adjacent sorted runs s[:pivot] and s[pivot:] of an
// ordered element type into one ascending run, in place.
func Merge[T cmp.Ordered](s []T, pivot int) {
	MergeFunc(s, pivot, cmp.Compare[T])
}

// MergeFunc merges the two adjacent sorted runs s[:pivot] and s[pivot:]
// into one sorted run, in place and stable: equivalent elements keep their
// order, with the prefix run's copies before the suffix run's. compare has
// to be the strict weak ordering both runs are sorted by (negative, zero or
// positive sign, zero meaning equivalent); runs not sorted by it are a
// precondition violation.
//
// MergeFunc allocates nothing. Every round rotates one exchange of blocks
// into place, after which a prefix of the slice is in final order and the
// rest is again two adjacent sorted runs. See the package comment for the
// cost of that scheme.
//
// MergeFunc panics if compare is nil or pivot is out of range.
func MergeFunc[T any](s []T, pivot int, compare func(x, y T) int) {
	assert(compare != nil, "partition: merge with nil comparator")
	assert(0 <= pivot && pivot <= len(s), "partition: merge pivot out of range")
	lo, mid, hi := 0, pivot, len(s)
	for lo < mid && mid < hi {
		// The prefix tail beyond low has to move behind the suffix head.
		suffixHead := s[mid]
		low := lo + Point(s[lo:mid], func(e T) bool { return compare(suffixHead, e) < 0 })
		if low == mid {
			return // runs already in order
		}
		// The suffix head before high has to move before s[low]. Elements
		// equivalent to s[low] stay behind it, which keeps the merge stable.
		lowHead := s[low]
		high := mid + Point(s[mid:hi], func(e T) bool { return compare(e, lowHead) >= 0 })
		lo = low + Rotate(s[low:high], mid-low)
		mid = high
	}
}

// MergeFuncE is MergeFunc for comparators that can fail.
//
// When the comparator fails, MergeFuncE undoes the rotations applied so
// far, innermost frame first, and returns the comparator's error unwrapped;
// the slice is handed back arranged exactly as it was. The undo chain lives
// on the call stack, so this variant recurses once per rotation round where
// MergeFunc loops.
func MergeFuncE[T any](s []T, pivot int, compare func(x, y T) (int, error)) error {
	assert(compare != nil, "partition: merge with nil comparator")
	assert(0 <= pivot && pivot <= len(s), "partition: merge pivot out of range")
	return mergeAcrossE(s, 0, pivot, len(s), compare)
}

func mergeAcrossE[T any](s []T, lo, mid, hi int, compare func(x, y T) (int, error)) error {
	if lo >= mid || mid >= hi {
		return nil
	}
	suffixHead := s[mid]
	low, err := PointE(s[lo:mid], func(e T) (bool, error) {
		c, err := compare(suffixHead, e)
		return c < 0, err
	})
	if err != nil {
		return err // nothing moved yet in this frame
	}
	low += lo
	if low == mid {
		return nil
	}
	lowHead := s[low]
	high, err := PointE(s[mid:hi], func(e T) (bool, error) {
		c, err := compare(e, lowHead)
		return c >= 0, err
	})
	if err != nil {
		return err
	}
	high += mid
	newMid := low + Rotate(s[low:high], mid-low)
	if err := mergeAcrossE(s, newMid, high, hi, compare); err != nil {
		// Deeper frames have undone their rotations already, so the window
		// is exactly as this frame left it. Rotating by the complement
		// restores it.
		Rotate(s[low:high], high-mid)
		return err
	}
	return nil
}
