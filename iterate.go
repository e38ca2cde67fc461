package sorted

import (
	"iter"

	"github.com/npillmayer/sorted/multiset"
)

// origin tags an emitted element with the operand it came from. Shared pairs
// are tagged fromBoth, except for Sum merges, where the retained second copy
// later surfaces as fromB.
type origin uint8

const (
	fromA origin = iota
	fromB
	fromBoth
)

// cmpE is the comparator signature the engine runs on. Infallible comparators
// are lifted into it.
type cmpE[T any] func(a, b T) (int, error)

func liftCmp[T any](cmp func(a, b T) int) cmpE[T] {
	return func(a, b T) (int, error) { return cmp(a, b), nil }
}

// runMerge drives one complete merge of a and b under op, handing every
// emitted element together with its origin to yield. It returns the first
// comparator error, or nil when the merge ends or yield stops it.
//
// The engine keeps one pending slot per operand and classifies the pair of
// slot values on every turn. Operands are consulted strictly according to
// op's read policy: a source the operation cannot observe is never iterated,
// not even once, so an infinite unused source is harmless.
func runMerge[T any](a, b iter.Seq[T], op multiset.Op, cmp cmpE[T], yield func(T, origin) bool) error {
	// Fast paths for the degenerate read policies.
	switch {
	case !op.ReadsA() && !op.ReadsB():
		return nil
	case !op.ReadsB():
		for v := range a {
			if !yield(v, fromA) {
				return nil
			}
		}
		return nil
	case !op.ReadsA():
		for v := range b {
			if !yield(v, fromB) {
				return nil
			}
		}
		return nil
	}

	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	// A slot empties when classification consumes its value; done latches
	// once the operand is drained.
	var pendA, pendB T
	var hasA, hasB, doneA, doneB bool

	for {
		if !hasA && !doneA {
			pendA, hasA = nextA()
			doneA = !hasA
		}
		if !hasB && !doneB {
			pendB, hasB = nextB()
			doneB = !hasB
		}
		switch {
		case hasA && hasB:
			c, err := cmp(pendA, pendB)
			if err != nil {
				return err
			}
			switch {
			case c < 0: // exclusive to A
				v := pendA
				hasA = false
				if op.EmitsAOnly() && !yield(v, fromA) {
					return nil
				}
			case c > 0: // exclusive to B
				v := pendB
				hasB = false
				if op.EmitsBOnly() && !yield(v, fromB) {
					return nil
				}
			default:
				// Shared pair. A's copy is the one emitted, which makes the
				// merge stable: equivalent elements from A precede those
				// from B. Sum keeps B's copy pending for a later turn, so a
				// Sum merge emits all of A's run before any of B's.
				v := pendA
				hasA = false
				if !op.DuplicatesShared() {
					hasB = false
				}
				if op.EmitsShared() && !yield(v, fromBoth) {
					return nil
				}
			}
		case hasA:
			// B is exhausted, so everything left in A is exclusive to A.
			// If the operation drops A-exclusives there is nothing more to
			// produce and the remaining source is not drained.
			if !op.EmitsAOnly() {
				return nil
			}
			v := pendA
			hasA = false
			if !yield(v, fromA) {
				return nil
			}
		case hasB:
			if !op.EmitsBOnly() {
				return nil
			}
			v := pendB
			hasB = false
			if !yield(v, fromB) {
				return nil
			}
		default:
			return nil
		}
	}
}
