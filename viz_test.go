package sorted

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sorted/multiset"
)

func TestMerge2ConsoleLanes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sorted")
	defer teardown()

	m := MergeSlices([]int{2, 4, 6, 8}, []int{3, 5, 7}, multiset.Sum)
	var buf bytes.Buffer
	if err := Merge2Console(m, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "A | 2   4   6   8\n" +
		"B |   3   5   7\n" +
		"M | 2 3 4 5 6 7 8\n"
	if buf.String() != want {
		t.Errorf("got:\n%swant:\n%s", buf.String(), want)
	}
}

func TestMerge2ConsoleMarksSharedPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sorted")
	defer teardown()

	m := MergeSlices([]int{1, 2}, []int{2, 3}, multiset.Union)
	var buf bytes.Buffer
	if err := Merge2Console(m, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "A | 1 2\n" +
		"B |   2 3\n" +
		"M | 1 2 3\n"
	if buf.String() != want {
		t.Errorf("got:\n%swant:\n%s", buf.String(), want)
	}
}

func TestMerge2ConsoleTruncatesLongMerges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sorted")
	defer teardown()

	var a, b []int
	for i := 10; i < 90; i += 2 {
		a = append(a, i)
		b = append(b, i+1)
	}
	m := MergeSlices(a, b, multiset.Sum)
	var buf bytes.Buffer
	if err := Merge2Console(m, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lanes, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "…") {
			t.Errorf("lane not truncated: %q", line)
		}
		if len([]rune(line)) > 70 {
			t.Errorf("lane exceeds width limit: %d runes", len([]rune(line)))
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestMerge2ConsoleReportsWriteFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sorted")
	defer teardown()

	m := MergeSlices([]int{1}, []int{2}, multiset.Sum)
	if err := Merge2Console(m, failingWriter{}); err == nil {
		t.Fatalf("expected write error, got nil")
	}
}
