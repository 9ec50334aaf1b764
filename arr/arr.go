package arr

import "slices"

// ─────────────────────────────────────────────────────────────────────────────
// Range normalisation
// ─────────────────────────────────────────────────────────────────────────────

// ClampStart normalises a splice start position against a sequence of the
// given length. Negative values count back from the end; the result is
// always within [0, length].
//
//	ClampStart(5, -2)  // → 3
//	ClampStart(5, 99)  // → 5
func ClampStart(length, start int) int {
	if start < 0 {
		start += length
		if start < 0 {
			return 0
		}
		return start
	}
	if start > length {
		return length
	}
	return start
}

// ClampRange normalises a (start, deleteCount) pair the way
// Array.prototype.splice does: start via [ClampStart], deleteCount clamped
// to [0, length-start].
func ClampRange(length, start, deleteCount int) (int, int) {
	start = ClampStart(length, start)
	if deleteCount < 0 {
		deleteCount = 0
	}
	if rest := length - start; deleteCount > rest {
		deleteCount = rest
	}
	return start, deleteCount
}

// ─────────────────────────────────────────────────────────────────────────────
// Splicing
// ─────────────────────────────────────────────────────────────────────────────

// Splice removes deleteCount elements beginning at start and inserts values
// in their place. It returns the resulting slice and a freshly allocated
// slice holding the removed elements in order.
//
// items may be modified in place; always use the returned slice.
//
//	out, removed := Splice([]int{1, 2, 6}, 1, 1)       // out=[1 6] removed=[2]
//	out, _ = Splice([]int{1, 6}, 1, 0, 2, 3)           // out=[1 2 3 6]
func Splice[T any](items []T, start, deleteCount int, values ...T) ([]T, []T) {
	start, deleteCount = ClampRange(len(items), start, deleteCount)
	removed := make([]T, deleteCount)
	copy(removed, items[start:start+deleteCount])
	return slices.Replace(items, start, start+deleteCount, values...), removed
}

// Insert inserts values at position at (clamped like [ClampStart]).
func Insert[T any](items []T, at int, values ...T) []T {
	if len(values) == 0 {
		return items
	}
	return slices.Insert(items, ClampStart(len(items), at), values...)
}

// RemoveAt removes the element at index i and returns the shortened slice
// together with the removed element. It returns (items, zero, false) when i
// is out of range.
func RemoveAt[T any](items []T, i int) ([]T, T, bool) {
	var zero T
	if i < 0 || i >= len(items) {
		return items, zero, false
	}
	item := items[i]
	items = slices.Delete(items, i, i+1)
	return items, item, true
}

// RemoveFirstFunc removes the first element satisfying fn, preserving the
// order of the remaining elements.
func RemoveFirstFunc[T any](items []T, fn func(T) bool) ([]T, bool) {
	i := slices.IndexFunc(items, fn)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & filtering
// ─────────────────────────────────────────────────────────────────────────────

// IndexFrom returns the index of the first element at or after from that
// satisfies fn, or -1.
func IndexFrom[T any](items []T, from int, fn func(T) bool) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(items); i++ {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Chunk splits items into consecutive groups of exactly size elements.
// The trailing partial group, if any, is returned separately.
//
//	full, rest := Chunk([]int{1, 2, 3, 4, 5}, 2) // full=[[1 2] [3 4]] rest=[5]
func Chunk[T any](items []T, size int) ([][]T, []T) {
	if size <= 0 {
		return nil, items
	}
	n := len(items) / size
	full := make([][]T, 0, n)
	for i := 0; i < n; i++ {
		full = append(full, items[i*size:(i+1)*size:(i+1)*size])
	}
	return full, items[n*size:]
}
