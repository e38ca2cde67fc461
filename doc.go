/*
Package sorted merges sequences and collections which are already sorted.

Merging

Combining two ordered inputs into one ordered output is one of the oldest
operations in computing, predating even the stored-program computer. It is
the workhorse behind merge sort, behind log-structured storage compaction,
and behind set algebra on ordered data.

From Donald E. Knuth, The Art of Computer Programming, Volume 3, §5.2.4:

Merging (or collating) means the combination of two or more ordered files
into one ordered file.

_________________________________________________________________________

This package generalizes the two-way merge: both operands are walked in
lock-step and every element is classified as exclusive to the first operand,
exclusive to the second, or shared between both. A multiset operation
(package sorted/multiset) then selects which of these classes reach the
output. The classic mergesort merge keeps everything and is called Sum;
Union, Intersection, differences and symmetric difference fall out of the
same engine by keeping other subsets of classes.

The engine exists in three renditions, one per capability tier of the
operands:

1. Lazy sequences (this package): operands are iter.Seq values, merged on
demand in constant space. Merged is a cheap restartable view; Collect and
AppendTo materialize it.

2. Indexable views (package sorted/weave): operands are slices, and the merge
is a random-access collection of its own, navigable forward and backward by
compound indexes, without materializing anything.

3. In-place (package sorted/partition): a slice whose two halves are each
sorted is rearranged into one sorted run using constant extra space.

Operands must be sorted under the same ordering that the merge uses. This is
a precondition and is never verified; merging mis-sorted input produces
garbage output, not an error.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sorted

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
