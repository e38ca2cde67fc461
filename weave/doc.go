/*
Package weave turns two pre-sorted slices into one indexable, merged
collection without materializing it.

A View pairs the operands with a multiset operation (package multiset) and a
comparator. Positions in the merged arrangement are compound Index values:
one position into each operand plus liveness flags marking which component(s)
the position dereferences. Shared pairs of a non-Sum merge bind both
components at once; the end position binds neither.

Navigation runs the merge classification incrementally. Costs, with n and m
the operand lengths:

  - Start, Len, IsEmpty: O(n+m) worst case; Start has to skip every element
    the operation discards before the first emitted one.
  - Next, Prev: amortized O(1) comparisons over a full walk; a single step can
    cost O(run), with run the length of a same-value run in an operand.
  - At, End, Compare: O(1).
  - Distance, Offset: O(steps walked).

Views are values; copying one is cheap, and iteration state lives entirely in
the Index values handed out.

Misusing an index (dereferencing the end, stepping before the start, mixing
indexes across views) is a programmer error: the package panics rather than
returning an error. Construction-time validation, in contrast, reports
ErrInvalidConfig.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package weave

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
