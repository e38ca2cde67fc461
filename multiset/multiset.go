/*
Package multiset describes the operations a sorted-merge can perform on two
operands, viewed as multisets.

Merging two pre-sorted sequences classifies every element as exclusive to the
first operand (A), exclusive to the second operand (B), or shared. An Op
selects which of these classes appear in the merged output. The classic
mergesort merge is Sum; set-algebra operations such as Union, Intersection and
difference (AOnly, BOnly) fall out of the same classification.

Op values carry no state. All properties derive from the tag through total
functions, so there is exactly one way to ask "does this operation emit shared
elements?" and no redundant encoding to keep in sync.
*/
package multiset

// Op selects which element classes a merge emits.
//
// The zero value is None, which emits nothing.
type Op uint8

const (
	// None emits no elements at all.
	None Op = iota
	// AOnly emits the elements exclusive to A: the multiset difference A − B.
	AOnly
	// BOnly emits the elements exclusive to B: the multiset difference B − A.
	BOnly
	// SymmetricDifference emits elements exclusive to either operand.
	SymmetricDifference
	// Intersection emits one copy per shared pair.
	Intersection
	// First emits exactly the elements of A.
	First
	// Second emits exactly the elements of B.
	Second
	// Union emits exclusives from both sides plus one copy per shared pair.
	Union
	// Sum emits every element of both operands. This is the mergesort merge:
	// it is the only operation that keeps both copies of a shared pair.
	Sum
)

const opCount = Sum + 1

// Of maps a class selection onto the matching operation.
//
// The mapping is total and injective over the eight non-Sum operations.
// Sum is not reachable this way; it differs from Union only in keeping
// duplicate copies of shared elements and must be named explicitly.
func Of(keepAOnly, keepBOnly, keepShared bool) Op {
	switch {
	case !keepAOnly && !keepBOnly && !keepShared:
		return None
	case keepAOnly && !keepBOnly && !keepShared:
		return AOnly
	case !keepAOnly && keepBOnly && !keepShared:
		return BOnly
	case keepAOnly && keepBOnly && !keepShared:
		return SymmetricDifference
	case !keepAOnly && !keepBOnly && keepShared:
		return Intersection
	case keepAOnly && !keepBOnly && keepShared:
		return First
	case !keepAOnly && keepBOnly && keepShared:
		return Second
	default:
		return Union
	}
}

// Valid reports whether op is one of the nine defined operations.
func (op Op) Valid() bool {
	return op < opCount
}

// EmitsAOnly reports whether elements exclusive to A appear in the output.
func (op Op) EmitsAOnly() bool {
	switch op {
	case AOnly, SymmetricDifference, First, Union, Sum:
		return true
	}
	return false
}

// EmitsBOnly reports whether elements exclusive to B appear in the output.
func (op Op) EmitsBOnly() bool {
	switch op {
	case BOnly, SymmetricDifference, Second, Union, Sum:
		return true
	}
	return false
}

// EmitsShared reports whether shared pairs contribute to the output.
func (op Op) EmitsShared() bool {
	switch op {
	case Intersection, First, Second, Union, Sum:
		return true
	}
	return false
}

// DuplicatesShared reports whether both copies of a shared pair are kept.
// True only for Sum; every other shared-emitting operation keeps A's copy.
func (op Op) DuplicatesShared() bool {
	return op == Sum
}

// ReadsA reports whether the merge has to consume operand A at all.
// False exactly for Second and None, whose output cannot depend on A.
func (op Op) ReadsA() bool {
	return op != Second && op != None
}

// ReadsB reports whether the merge has to consume operand B at all.
// False exactly for First and None, whose output cannot depend on B.
func (op Op) ReadsB() bool {
	return op != First && op != None
}

var opNames = [opCount]string{
	None:                "none",
	AOnly:               "a-only",
	BOnly:               "b-only",
	SymmetricDifference: "symmetric-difference",
	Intersection:        "intersection",
	First:               "first",
	Second:              "second",
	Union:               "union",
	Sum:                 "sum",
}

// String returns a stable lower-case name for the operation.
func (op Op) String() string {
	if !op.Valid() {
		return "invalid"
	}
	return opNames[op]
}
