package weave

// Navigation over the merged arrangement. A View hands out compound Index
// values and steps them forward and backward by re-running the merge
// classification at the index's operand frontiers. No element is ever moved
// and no state is kept between calls.

// Start returns the index of the first element of the merged arrangement,
// or the end index for an empty arrangement. Reaching the first element may
// require skipping discarded elements, so Start costs up to O(n+m).
func (v View[T]) Start() Index {
	assert(v.cmp != nil, "weave: view not initialized")
	ai, bi := 0, 0
	if !v.op.ReadsA() {
		ai = len(v.a)
	}
	if !v.op.ReadsB() {
		bi = len(v.b)
	}
	return v.classify(ai, bi)
}

// End returns the index one past the last element. It is the same for every
// walk over the view and denotes no element.
func (v View[T]) End() Index {
	return Index{ai: len(v.a), bi: len(v.b)}
}

// At returns the element denoted by index i. For a shared pair, where both
// components are live, the element is operand A's copy. At panics when i is
// the end index or lies outside the view.
func (v View[T]) At(i Index) T {
	switch {
	case i.aLive:
		assert(i.ai < len(v.a), "weave: index A-component out of range")
		return v.a[i.ai]
	case i.bLive:
		assert(i.bi < len(v.b), "weave: index B-component out of range")
		return v.b[i.bi]
	}
	panic("weave: dereference of end index")
}

// Next returns the index following i in the merged arrangement. Stepping
// past the last element yields the end index; stepping the end index panics.
func (v View[T]) Next(i Index) Index {
	assert(v.cmp != nil, "weave: view not initialized")
	assert(!i.IsEnd(), "weave: step past end of arrangement")
	assert(i.ai <= len(v.a) && i.bi <= len(v.b), "weave: index out of range")
	ai, bi := i.ai, i.bi
	if i.aLive {
		ai++
	}
	if i.bLive {
		bi++
	}
	return v.classify(ai, bi)
}

// classify scans forward from the operand frontiers (ai, bi) to the first
// position the operation emits and returns its index, or the end index when
// no emitted position remains. Elements the operation discards are consumed
// along the way.
func (v View[T]) classify(ai, bi int) Index {
	op := v.op
	for {
		aIn, bIn := ai < len(v.a), bi < len(v.b)
		switch {
		case aIn && bIn:
			switch c := v.cmp(v.a[ai], v.b[bi]); {
			case c < 0: // a[ai] is A-exclusive
				if op.EmitsAOnly() {
					return Index{ai: ai, bi: bi, aLive: true}
				}
				ai++
			case c > 0: // b[bi] is B-exclusive
				if op.EmitsBOnly() {
					return Index{ai: ai, bi: bi, bLive: true}
				}
				bi++
			default: // a shared pair
				if !op.EmitsShared() {
					ai++
					bi++
					continue
				}
				if op.DuplicatesShared() {
					// Sum emits both copies, A's first. B's copy stays
					// pending and classifies as B-exclusive once the
					// A-run is past.
					return Index{ai: ai, bi: bi, aLive: true}
				}
				return Index{ai: ai, bi: bi, aLive: true, bLive: true}
			}
		case aIn:
			if !op.EmitsAOnly() {
				return v.End()
			}
			return Index{ai: ai, bi: bi, aLive: true}
		case bIn:
			if !op.EmitsBOnly() {
				return v.End()
			}
			return Index{ai: ai, bi: bi, bLive: true}
		default:
			return v.End()
		}
	}
}

// Prev returns the index preceding i in the merged arrangement. Stepping
// before the first element panics. Prev accepts the end index.
//
// Prev re-derives which settled element was emitted last. Equal runs are the
// delicate part: pairs of a shared run match up position-aligned from the
// run starts, so Prev scans back to the starts when both rear elements
// compare equal. A single step therefore costs O(run) in the worst case,
// amortized O(1) over a whole backward walk.
func (v View[T]) Prev(i Index) Index {
	assert(v.cmp != nil, "weave: view not initialized")
	assert(i.ai <= len(v.a) && i.bi <= len(v.b), "weave: index out of range")
	op := v.op
	pa, pb := i.ai, i.bi
	for {
		aOK := op.ReadsA() && pa > 0
		bOK := op.ReadsB() && pb > 0
		switch {
		case aOK && bOK:
			switch c := v.cmp(v.a[pa-1], v.b[pb-1]); {
			case c > 0:
				// a[pa-1] settled last. Either an A-exclusive, or Sum's
				// copy of a shared element whose partner b[pb] has not
				// settled yet.
				if op.DuplicatesShared() && pb < len(v.b) && v.cmp(v.a[pa-1], v.b[pb]) == 0 {
					return Index{ai: pa - 1, bi: pb, aLive: true}
				}
				if op.EmitsAOnly() {
					return Index{ai: pa - 1, bi: pb, aLive: true}
				}
				pa--
			case c < 0:
				// b[pb-1] settled last, a B-exclusive.
				if op.EmitsBOnly() {
					return Index{ai: pa, bi: pb - 1, bLive: true}
				}
				pb--
			default:
				// Both rear elements belong to one shared run.
				if op.DuplicatesShared() {
					// Sum settles all of A's copies before B's, so the
					// rear B copy is the later one.
					return Index{ai: pa, bi: pb - 1, bLive: true}
				}
				sa, sb := v.runStartA(pa), v.runStartB(pb)
				ka, kb := pa-sa, pb-sb
				switch {
				case ka > kb: // trailing A-exclusives settled after the pairs
					if op.EmitsAOnly() {
						return Index{ai: pa - 1, bi: pb, aLive: true}
					}
					pa = sa + kb
				case kb > ka: // trailing B-exclusives settled after the pairs
					if op.EmitsBOnly() {
						return Index{ai: pa, bi: pb - 1, bLive: true}
					}
					pb = sb + ka
				default: // the run's rear pair settled last
					if op.EmitsShared() {
						return Index{ai: pa - 1, bi: pb - 1, aLive: true, bLive: true}
					}
					pa--
					pb--
				}
			}
		case aOK:
			if op.DuplicatesShared() && pb < len(v.b) && v.cmp(v.a[pa-1], v.b[pb]) == 0 {
				return Index{ai: pa - 1, bi: pb, aLive: true}
			}
			if op.EmitsAOnly() {
				return Index{ai: pa - 1, bi: pb, aLive: true}
			}
			pa--
		case bOK:
			if op.EmitsBOnly() {
				return Index{ai: pa, bi: pb - 1, bLive: true}
			}
			pb--
		default:
			panic("weave: step before start of arrangement")
		}
	}
}

// runStartA returns the start of the maximal run of elements equal to
// a[end-1] that ends at position end of operand A.
func (v View[T]) runStartA(end int) int {
	s := end - 1
	for s > 0 && v.cmp(v.a[s-1], v.a[end-1]) == 0 {
		s--
	}
	return s
}

// runStartB returns the start of the maximal run of elements equal to
// b[end-1] that ends at position end of operand B.
func (v View[T]) runStartB(end int) int {
	s := end - 1
	for s > 0 && v.cmp(v.b[s-1], v.b[end-1]) == 0 {
		s--
	}
	return s
}

// Distance returns the number of forward steps from one index to another.
// The result is negative when to precedes from. Both indexes have to belong
// to the view.
func (v View[T]) Distance(from, to Index) int {
	if from.Compare(to) > 0 {
		return -v.Distance(to, from)
	}
	n := 0
	for i := from; i != to; i = v.Next(i) {
		n++
	}
	return n
}

// Offset returns the index n forward steps after i, or -n backward steps
// before it for negative n. Offsetting past the end or before the start
// panics.
func (v View[T]) Offset(i Index, n int) Index {
	for ; n > 0; n-- {
		i = v.Next(i)
	}
	for ; n < 0; n++ {
		i = v.Prev(i)
	}
	return i
}
