/*
Package partition merges two adjacent sorted runs of a slice in place, and
exposes the two primitives the algorithm rests on: binary partition-point
search and slice rotation.

A slice s whose prefix s[:pivot] and suffix s[pivot:] are each sorted is
turned into one sorted run by Merge without extra space. Every round finds
the part of the prefix that has to move behind the head of the suffix and
the part of the suffix that has to move before it, exchanges the two blocks
with one rotation, and reduces to the same problem on a shorter remainder.
Equivalent elements keep their order, with the prefix run's copies first.

The cost of the in-place merge depends on how finely the two runs
interleave. With n the slice length and r the number of rotation rounds,
Merge runs O(r·log n) comparisons and O(r·n) element moves; r is 1 for two
non-overlapping runs and grows to O(n) for perfectly alternating ones, so
the worst case is O(n·log n) comparisons and O(n²) moves. Benchmarks in
this package chart the field between the two extremes. When the runs are
known to interleave heavily and scratch memory is cheap, merging through a
buffer is the faster choice.

Preconditions (sorted runs, pivot in range) are not verified; violating
them produces garbage arrangements, not errors. The only error any of these
functions can surface is the failure of a caller-supplied comparator or
predicate, through the E-suffixed variants.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package partition

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
