package weave

import (
	"cmp"
	"fmt"
)

// Index is a position in the merged arrangement of a view. It is compound:
// it carries one position into each operand together with liveness flags
// telling which component(s) denote the element at this position. A shared
// pair of a non-Sum merge has both components live; the end position has
// neither. Dead components still matter, as they record how far the merge
// has progressed into the corresponding operand.
//
// Indexes are only meaningful for the view that served them. The zero Index
// is the start of every view that emits its first element from operand A at
// position 0, and nothing else.
type Index struct {
	ai, bi int
	aLive  bool
	bLive  bool
}

// PosA returns the position of the index within operand A.
func (i Index) PosA() int { return i.ai }

// PosB returns the position of the index within operand B.
func (i Index) PosB() int { return i.bi }

// LiveA tells if the index denotes the element a[PosA()].
func (i Index) LiveA() bool { return i.aLive }

// LiveB tells if the index denotes the element b[PosB()].
func (i Index) LiveB() bool { return i.bLive }

// IsEnd tells if the index is the position one past the last element of the
// merged arrangement. The end index denotes no element.
func (i Index) IsEnd() bool { return !i.aLive && !i.bLive }

// Compare orders two indexes of the same view by their position in the
// merged arrangement. The A-component is the primary key, the B-component
// the secondary one. The result is the usual -1/0/+1 of cmp.Compare.
func (i Index) Compare(j Index) int {
	if c := cmp.Compare(i.ai, j.ai); c != 0 {
		return c
	}
	return cmp.Compare(i.bi, j.bi)
}

func (i Index) String() string {
	mark := func(live bool) string {
		if live {
			return "*"
		}
		return ""
	}
	return fmt.Sprintf("[a:%d%s b:%d%s]", i.ai, mark(i.aLive), i.bi, mark(i.bLive))
}
