package sorted

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/npillmayer/sorted/multiset"
)

// Merged is a lazy view of merging two pre-sorted operands under a multiset
// operation. Constructing one is O(1) and consumes nothing; the merge runs
// whenever Values is iterated, and may be run any number of times as long as
// the operands themselves are restartable.
//
// Merged is a value type. Copies share the operands but no iteration state.
type Merged[T any] struct {
	a, b  iter.Seq[T]
	cmp   func(a, b T) int
	op    multiset.Op
	sizeA int
	sizeB int
}

// Merge creates a lazy merge of two sequences ordered by cmp.Compare.
//
// Both operands must already be sorted in that order; this is a precondition
// and is not verified. Merge panics if op is not a defined operation.
// A nil sequence counts as empty.
func Merge[T cmp.Ordered](a, b iter.Seq[T], op multiset.Op) Merged[T] {
	return MergeFunc(a, b, op, cmp.Compare[T])
}

// MergeFunc creates a lazy merge of two sequences sorted under comparator
// compare, which must describe a strict weak ordering (negative, zero or
// positive sign, zero meaning equivalent).
//
// MergeFunc panics if op is not a defined operation or compare is nil.
// A nil sequence counts as empty.
func MergeFunc[T any](a, b iter.Seq[T], op multiset.Op, compare func(x, y T) int) Merged[T] {
	checkMergeArgs(op, compare == nil)
	return Merged[T]{
		a:   orEmpty(a),
		b:   orEmpty(b),
		cmp: compare,
		op:  op,
	}
}

// MergeSlices creates a lazy merge over two sorted slices ordered by
// cmp.Compare. Unlike sequence operands, slices have a known length, so the
// resulting view carries a useful SizeHint.
func MergeSlices[T cmp.Ordered](a, b []T, op multiset.Op) Merged[T] {
	return MergeSlicesFunc(a, b, op, cmp.Compare[T])
}

// MergeSlicesFunc creates a lazy merge over two slices sorted under
// comparator compare. See MergeFunc for the comparator contract.
func MergeSlicesFunc[T any](a, b []T, op multiset.Op, compare func(x, y T) int) Merged[T] {
	checkMergeArgs(op, compare == nil)
	return Merged[T]{
		a:     slices.Values(a),
		b:     slices.Values(b),
		cmp:   compare,
		op:    op,
		sizeA: len(a),
		sizeB: len(b),
	}
}

func checkMergeArgs(op multiset.Op, nilCmp bool) {
	if !op.Valid() {
		panic("sorted: merge with undefined multiset operation")
	}
	if nilCmp {
		panic("sorted: merge with nil comparator")
	}
}

func orEmpty[T any](seq iter.Seq[T]) iter.Seq[T] {
	if seq == nil {
		return func(yield func(T) bool) {}
	}
	return seq
}

// Op returns the multiset operation this view applies.
func (m Merged[T]) Op() multiset.Op {
	return m.op
}

// Values returns the merged sequence. Every call starts a fresh merge over
// fresh operand iterators.
//
// Operands the operation never observes are never iterated: a First merge
// leaves b completely untouched, Second leaves a untouched, and None touches
// neither. The other operations stop consuming as soon as no further element
// can be emitted.
func (m Merged[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		// An infallible comparator cannot abort the run.
		_ = runMerge(m.a, m.b, m.op, liftCmp(m.cmp), func(v T, _ origin) bool {
			return yield(v)
		})
	}
}

// lanes is Values with origin tags attached; Merge2Console renders it.
func (m Merged[T]) lanes() iter.Seq2[T, origin] {
	return func(yield func(T, origin) bool) {
		_ = runMerge(m.a, m.b, m.op, liftCmp(m.cmp), yield)
	}
}

// SizeHint returns a lower bound on the number of elements Values will emit.
// It is computed from the operand sizes alone and consumes nothing.
//
// Merges built from slices know both operand lengths; merges built from bare
// sequences assume zero. Operations whose output size cannot be bounded from
// below by the operand sizes (differences, intersection and friends) report
// zero even for slice operands.
func (m Merged[T]) SizeHint() int {
	switch m.op {
	case multiset.Sum:
		return satAdd(m.sizeA, m.sizeB)
	case multiset.Union:
		return max(m.sizeA, m.sizeB)
	case multiset.First:
		return m.sizeA
	case multiset.Second:
		return m.sizeB
	default:
		return 0
	}
}

// satAdd adds two non-negative ints, saturating instead of overflowing.
func satAdd(a, b int) int {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxInt
}

// MergeFuncE is MergeFunc for comparators that can fail.
//
// The returned sequence yields merged elements paired with a nil error. If
// the comparator fails, the sequence yields exactly one final pair holding
// the zero value and that error, and stops; no operand element is consumed
// beyond the two that were being compared. A failed merge cannot be resumed,
// only restarted.
func MergeFuncE[T any](a, b iter.Seq[T], op multiset.Op, compare func(x, y T) (int, error)) iter.Seq2[T, error] {
	checkMergeArgs(op, compare == nil)
	a, b = orEmpty(a), orEmpty(b)
	return func(yield func(T, error) bool) {
		err := runMerge(a, b, op, compare, func(v T, _ origin) bool {
			return yield(v, nil)
		})
		if err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
