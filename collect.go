package sorted

import (
	"iter"
	"slices"
)

// Collect materializes the merge into a fresh slice.
//
// The slice is allocated with capacity SizeHint up front, so Sum and Union
// merges of slice operands run without re-allocation. The result is nil when
// nothing is emitted and SizeHint is zero.
func (m Merged[T]) Collect() []T {
	if hint := m.SizeHint(); hint > 0 {
		return m.AppendTo(make([]T, 0, hint))
	}
	return m.AppendTo(nil)
}

// AppendTo appends all merged elements to dst and returns the extended slice,
// growing dst by SizeHint before the merge runs.
func (m Merged[T]) AppendTo(dst []T) []T {
	dst = slices.Grow(dst, m.SizeHint())
	for v := range m.Values() {
		dst = append(dst, v)
	}
	return dst
}

// CollectE drains an error-capable sequence, as returned by MergeFuncE, into
// a fresh slice.
//
// On failure the partially built result is discarded: callers get either the
// complete merge, or nothing and the error.
func CollectE[E any](seq iter.Seq2[E, error]) ([]E, error) {
	var out []E
	for v, err := range seq {
		if err != nil {
			T().Debugf("sorted: collect aborted after %d elements: %v", len(out), err)
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
