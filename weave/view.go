package weave

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/sorted/multiset"
)

// View is a merged arrangement of two sorted operand slices under a multiset
// operation. It does not copy or move elements; every element stays in its
// operand, and the view addresses it through compound Index values.
//
// Both operands have to be sorted by the view's comparator, with operand A
// owning the lower positions of every shared run. Clients create views with
// New or Of.
type View[T any] struct {
	a, b []T
	cmp  func(x, y T) int
	op   multiset.Op
}

// New creates a view of the merged arrangement of a and b under op.
// compare has to be a strict weak ordering by which both operands are
// sorted; New does not verify sortedness (see Check), but rejects a nil
// comparator and an undefined operation with ErrInvalidConfig.
//
// The view aliases the operand slices. Mutating them afterwards invalidates
// every index served by the view.
func New[T any](a, b []T, op multiset.Op, compare func(x, y T) int) (View[T], error) {
	if compare == nil {
		return View[T]{}, fmt.Errorf("%w: comparator is nil", ErrInvalidConfig)
	}
	if !op.Valid() {
		return View[T]{}, fmt.Errorf("%w: undefined multiset operation", ErrInvalidConfig)
	}
	return View[T]{a: a, b: b, cmp: compare, op: op}, nil
}

// Of creates a view over operands of an ordered element type, merged in
// ascending order. It panics if op is undefined.
func Of[T cmp.Ordered](a, b []T, op multiset.Op) View[T] {
	v, err := New(a, b, op, cmp.Compare[T])
	if err != nil {
		panic("weave: view with undefined multiset operation")
	}
	return v
}

// Op returns the multiset operation of the view.
func (v View[T]) Op() multiset.Op { return v.op }

// Len returns the number of elements in the merged arrangement. It walks
// both operands and therefore costs O(n+m) comparisons.
func (v View[T]) Len() int {
	n := 0
	for i := v.Start(); !i.IsEnd(); i = v.Next(i) {
		n++
	}
	return n
}

// IsEmpty tells if the merged arrangement holds no elements.
func (v View[T]) IsEmpty() bool {
	return v.Start().IsEnd()
}

// SizeHint returns a lower bound for Len, computed without comparisons.
// The bound is exact for First, Second and Sum.
func (v View[T]) SizeHint() int {
	switch v.op {
	case multiset.Sum:
		return len(v.a) + len(v.b)
	case multiset.Union:
		return max(len(v.a), len(v.b))
	case multiset.First:
		return len(v.a)
	case multiset.Second:
		return len(v.b)
	}
	return 0
}

// Values returns an iterator over the elements of the merged arrangement,
// front to back. The iterator is restartable.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.Start(); !i.IsEnd(); i = v.Next(i) {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// Collect materializes the merged arrangement as a fresh slice.
func (v View[T]) Collect() []T {
	out := make([]T, 0, v.SizeHint())
	for e := range v.Values() {
		out = append(out, e)
	}
	return out
}

// Check verifies that both operands are sorted by the view's comparator and
// returns ErrUnsortedOperand if one is not. Views over unsorted operands
// produce garbage arrangements, not errors, so callers holding slices of
// doubtful provenance should check once before navigating.
func (v View[T]) Check() error {
	assert(v.cmp != nil, "weave: view not initialized")
	if !slices.IsSortedFunc(v.a, v.cmp) {
		return fmt.Errorf("%w: operand a", ErrUnsortedOperand)
	}
	if !slices.IsSortedFunc(v.b, v.cmp) {
		return fmt.Errorf("%w: operand b", ErrUnsortedOperand)
	}
	return nil
}
