package weave

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/npillmayer/sorted"
	"github.com/npillmayer/sorted/multiset"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestViewNavigationRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzViewNavigation -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test . -run 'FuzzViewNavigation/<id>'

const keySpace = 10

// randomSortedMultiset draws a multiset over keys 0..keySpace-1 and lays it
// out sorted.
func randomSortedMultiset(r *rand.Rand) []int {
	var out []int
	for k := 0; k < keySpace; k++ {
		n := r.Intn(4)
		for i := 0; i < n; i++ {
			out = append(out, k)
		}
	}
	return out
}

// runRandomNavigationCheck cross-checks view navigation against the lazy
// merge of the root package: a forward walk has to reproduce the merged
// sequence, a backward walk has to visit the same indexes in reverse, and
// Distance and Offset have to agree with plain step counting.
func runRandomNavigationCheck(t *testing.T, seed uint64, rounds int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))

	for round := 0; round < rounds; round++ {
		a := randomSortedMultiset(r)
		b := randomSortedMultiset(r)

		for op := multiset.None; op.Valid(); op++ {
			want := sorted.MergeSlices(a, b, op).Collect()
			v := Of(a, b, op)

			idx := forwardIndexes(v)
			if len(idx) != len(want) {
				t.Fatalf("seed %d round %d op %s: walked %d indexes, want %d (a=%v b=%v)",
					seed, round, op, len(idx), len(want), a, b)
			}
			for n, i := range idx {
				if got := v.At(i); got != want[n] {
					t.Fatalf("seed %d round %d op %s step %d: element %d, want %d (a=%v b=%v)",
						seed, round, op, n, got, want[n], a, b)
				}
			}

			i := v.End()
			for n := len(idx) - 1; n >= 0; n-- {
				i = v.Prev(i)
				if i != idx[n] {
					t.Fatalf("seed %d round %d op %s: backward step to %v, want %v (a=%v b=%v)",
						seed, round, op, i, idx[n], a, b)
				}
			}

			if d := v.Distance(v.Start(), v.End()); d != len(want) {
				t.Fatalf("seed %d round %d op %s: distance %d, want %d",
					seed, round, op, d, len(want))
			}
			if len(idx) > 0 {
				k := r.Intn(len(idx))
				if got := v.Offset(v.Start(), k); got != idx[k] {
					t.Fatalf("seed %d round %d op %s: offset %d is %v, want %v",
						seed, round, op, k, got, idx[k])
				}
				if got := v.Offset(v.End(), k-len(idx)); got != idx[k] {
					t.Fatalf("seed %d round %d op %s: offset %d from end is %v, want %v",
						seed, round, op, k-len(idx), got, idx[k])
				}
			}
		}
	}
}

func TestViewNavigationRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomNavigationCheck(t, seed, 25)
		})
	}
}

func FuzzViewNavigation(f *testing.F) {
	f.Add(uint64(1), uint8(5))
	f.Add(uint64(7), uint8(10))
	f.Add(uint64(42), uint8(15))
	f.Fuzz(func(t *testing.T, seed uint64, rounds uint8) {
		runRandomNavigationCheck(t, seed, int(rounds%25)+1)
	})
}
