package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-indexed-collections/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── ClampStart / ClampRange ──────────────────────────────────────────────────

func TestClampStart(t *testing.T) {
	cases := []struct {
		length, start, want int
	}{
		{5, 0, 0},
		{5, 3, 3},
		{5, 5, 5},
		{5, 99, 5},
		{5, -1, 4},
		{5, -5, 0},
		{5, -99, 0},
		{0, -1, 0},
	}
	for _, c := range cases {
		if got := arr.ClampStart(c.length, c.start); got != c.want {
			t.Fatalf("ClampStart(%d, %d) = %d; want %d", c.length, c.start, got, c.want)
		}
	}
}

func TestClampRange(t *testing.T) {
	cases := []struct {
		length, start, count int
		wantStart, wantCount int
	}{
		{3, 1, 1, 1, 1},
		{3, 1, 99, 1, 2},
		{3, 1, -4, 1, 0},
		{3, -1, 5, 2, 1},
		{3, 10, 1, 3, 0},
	}
	for _, c := range cases {
		s, n := arr.ClampRange(c.length, c.start, c.count)
		if s != c.wantStart || n != c.wantCount {
			t.Fatalf("ClampRange(%d, %d, %d) = %d, %d; want %d, %d",
				c.length, c.start, c.count, s, n, c.wantStart, c.wantCount)
		}
	}
}

// ─── Splice ───────────────────────────────────────────────────────────────────

func TestSpliceRemoveMiddle(t *testing.T) {
	out, removed := arr.Splice([]int{1, 2, 6}, 1, 1)
	assertSlice(t, out, []int{1, 6})
	assertSlice(t, removed, []int{2})
}

func TestSpliceInsertOnly(t *testing.T) {
	out, removed := arr.Splice([]int{1, 6}, 1, 0, 2, 3)
	assertSlice(t, out, []int{1, 2, 3, 6})
	if len(removed) != 0 {
		t.Fatalf("removed = %v; want empty", removed)
	}
}

func TestSpliceReplace(t *testing.T) {
	out, removed := arr.Splice([]string{"a", "b", "c", "d"}, -3, 2, "x")
	assertSlice(t, out, []string{"a", "x", "d"})
	assertSlice(t, removed, []string{"b", "c"})
}

func TestSpliceRemovedIsCopy(t *testing.T) {
	items := []int{1, 2, 3, 4}
	out, removed := arr.Splice(items, 0, 2, 9, 9)
	assertSlice(t, removed, []int{1, 2})
	assertSlice(t, out, []int{9, 9, 3, 4})
}

func TestSpliceClampsPastEnd(t *testing.T) {
	out, removed := arr.Splice([]int{1, 2}, 10, 3, 7)
	assertSlice(t, out, []int{1, 2, 7})
	if len(removed) != 0 {
		t.Fatalf("removed = %v; want empty", removed)
	}
}

// ─── Insert / RemoveAt / RemoveFirstFunc ──────────────────────────────────────

func TestInsert(t *testing.T) {
	assertSlice(t, arr.Insert([]int{1, 2}, 0, 8, 9), []int{8, 9, 1, 2})
	assertSlice(t, arr.Insert([]int{1, 2}, 2, 3), []int{1, 2, 3})
	assertSlice(t, arr.Insert([]int{1, 2}, -1, 5), []int{1, 5, 2})
	assertSlice(t, arr.Insert([]int{1, 2}, 1), []int{1, 2})
}

func TestRemoveAt(t *testing.T) {
	out, v, ok := arr.RemoveAt([]int{1, 2, 3}, 0)
	if !ok || v != 1 {
		t.Fatalf("RemoveAt(0) = %v, %v; want 1, true", v, ok)
	}
	assertSlice(t, out, []int{2, 3})

	out, _, ok = arr.RemoveAt(out, 5)
	if ok {
		t.Fatal("RemoveAt out of range should return false")
	}
	assertSlice(t, out, []int{2, 3})
}

func TestRemoveFirstFunc(t *testing.T) {
	out, ok := arr.RemoveFirstFunc([]int{1, 2, 1, 3}, func(n int) bool { return n == 1 })
	if !ok {
		t.Fatal("RemoveFirstFunc should report a removal")
	}
	assertSlice(t, out, []int{2, 1, 3})

	out, ok = arr.RemoveFirstFunc(out, func(n int) bool { return n == 7 })
	if ok {
		t.Fatal("RemoveFirstFunc on missing value should return false")
	}
	assertSlice(t, out, []int{2, 1, 3})
}

// ─── IndexFrom / Filter / Map / Chunk ─────────────────────────────────────────

func TestIndexFrom(t *testing.T) {
	items := []int{1, 5, 1, 6}
	isOne := func(n int) bool { return n == 1 }
	if got := arr.IndexFrom(items, 0, isOne); got != 0 {
		t.Fatalf("IndexFrom(0) = %d; want 0", got)
	}
	if got := arr.IndexFrom(items, 1, isOne); got != 2 {
		t.Fatalf("IndexFrom(1) = %d; want 2", got)
	}
	if got := arr.IndexFrom(items, 3, isOne); got != -1 {
		t.Fatalf("IndexFrom(3) = %d; want -1", got)
	}
}

func TestFilter(t *testing.T) {
	got := arr.Filter([]int{1, 2, 3, 4}, func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, got, []int{2, 4})
}

func TestMap(t *testing.T) {
	got := arr.Map([]int{1, 2, 3}, func(n, i int) int { return n * i })
	assertSlice(t, got, []int{0, 2, 6})
}

func TestChunk(t *testing.T) {
	full, rest := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(full) != 2 {
		t.Fatalf("Chunk full groups = %d; want 2", len(full))
	}
	assertSlice(t, full[0], []int{1, 2})
	assertSlice(t, full[1], []int{3, 4})
	assertSlice(t, rest, []int{5})

	full, rest = arr.Chunk([]int{1, 2}, 2)
	if len(full) != 1 || len(rest) != 0 {
		t.Fatalf("Chunk exact = %v, %v", full, rest)
	}
}
