package collections

import (
	"time"

	"github.com/hasbyte1/go-indexed-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Insertion
// ─────────────────────────────────────────────────────────────────────────────

// Push materializes raw and appends the elements in argument order.
// It returns the new length.
func (l *List[In, T]) Push(raw ...In) (int, error) {
	_, err := l.insert(OpPush, len(l.entries), raw)
	return len(l.entries), err
}

// Add is like [List.Push] but returns the materialized elements.
func (l *List[In, T]) Add(raw ...In) ([]T, error) {
	entries, err := l.insert(OpPush, len(l.entries), raw)
	if err != nil {
		return nil, err
	}
	return valuesOf(entries), nil
}

// Unshift materializes raw and inserts the elements at the front, keeping
// argument order. It returns the new length.
func (l *List[In, T]) Unshift(raw ...In) (int, error) {
	_, err := l.insert(OpUnshift, 0, raw)
	return len(l.entries), err
}

func (l *List[In, T]) insert(op Op, at int, raw []In) ([]*entry[T], error) {
	if len(raw) == 0 {
		return nil, nil
	}
	start := time.Now()
	staged, err := l.stage(raw)
	if err != nil {
		l.cfg.log.LogMaterialize(op, len(raw), len(l.entries), err)
		l.cfg.metrics.RecordInsert(op, 0, time.Since(start), err)
		return nil, err
	}
	entries := l.commit(staged)
	l.entries = arr.Insert(l.entries, at, entries...)

	l.cfg.log.LogMaterialize(op, len(raw), len(l.entries), nil)
	l.cfg.metrics.RecordInsert(op, len(entries), time.Since(start), nil)
	return entries, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal
// ─────────────────────────────────────────────────────────────────────────────

// Pop removes and returns the last element. It returns (zero, false) when
// the list is empty.
func (l *List[In, T]) Pop() (T, bool) {
	return l.removeAt(OpPop, len(l.entries)-1)
}

// Shift removes and returns the first element. It returns (zero, false)
// when the list is empty.
func (l *List[In, T]) Shift() (T, bool) {
	return l.removeAt(OpShift, 0)
}

func (l *List[In, T]) removeAt(op Op, i int) (T, bool) {
	start := time.Now()
	var (
		e  *entry[T]
		ok bool
	)
	l.entries, e, ok = arr.RemoveAt(l.entries, i)
	if !ok {
		var zero T
		return zero, false
	}
	l.retract(e)

	l.cfg.log.LogRetract(op, 1, len(l.entries))
	l.cfg.metrics.RecordRemove(op, 1, time.Since(start))
	return e.value, true
}

// Splice removes deleteCount elements starting at start and inserts the
// materialized raw inputs in their place, following Array.prototype.splice:
// a negative start counts back from the end, and both arguments are clamped
// to the list bounds. It returns the removed elements in order.
//
// The inserted inputs are staged before anything is removed, so a failing
// transform or extractor leaves the list untouched.
func (l *List[In, T]) Splice(start, deleteCount int, raw ...In) ([]T, error) {
	t0 := time.Now()
	var staged []stagedItem[T]
	if len(raw) > 0 {
		var err error
		if staged, err = l.stage(raw); err != nil {
			l.cfg.log.LogMaterialize(OpSplice, len(raw), len(l.entries), err)
			l.cfg.metrics.RecordInsert(OpSplice, 0, time.Since(t0), err)
			return nil, err
		}
	}

	start, deleteCount = arr.ClampRange(len(l.entries), start, deleteCount)
	for _, e := range l.entries[start : start+deleteCount] {
		l.retract(e)
	}
	inserted := l.commit(staged)

	var removed []*entry[T]
	l.entries, removed = arr.Splice(l.entries, start, deleteCount, inserted...)

	if len(removed) > 0 {
		l.cfg.log.LogRetract(OpSplice, len(removed), len(l.entries))
		l.cfg.metrics.RecordRemove(OpSplice, len(removed), time.Since(t0))
	}
	if len(raw) > 0 {
		l.cfg.log.LogMaterialize(OpSplice, len(raw), len(l.entries), nil)
		l.cfg.metrics.RecordInsert(OpSplice, len(inserted), time.Since(t0), nil)
	}
	return valuesOf(removed), nil
}

// Remove deletes every element equal to each of values and returns the
// removed elements in removal order. Values that are not present are
// ignored.
//
// All comparisons run before the list is touched, so a panicking Equal
// leaves it unchanged.
func (l *List[In, T]) Remove(values ...T) []T {
	start := time.Now()
	drop := make([]bool, len(l.entries))
	var order []int
	for _, v := range values {
		for i, e := range l.entries {
			if !drop[i] && l.cfg.equal(e.value, v) {
				drop[i] = true
				order = append(order, i)
			}
		}
	}
	if len(order) == 0 {
		return nil
	}

	removed := make([]T, len(order))
	for k, i := range order {
		removed[k] = l.entries[i].value
		l.retract(l.entries[i])
	}
	kept := l.entries[:0]
	for i, e := range l.entries {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	clear(l.entries[len(kept):])
	l.entries = kept

	l.cfg.log.LogRetract(OpRemove, len(removed), len(l.entries))
	l.cfg.metrics.RecordRemove(OpRemove, len(removed), time.Since(start))
	return removed
}

// Clear removes every element and empties all indices and groups. It
// returns the number of elements removed.
func (l *List[In, T]) Clear() int {
	n := len(l.entries)
	if n == 0 {
		return 0
	}
	start := time.Now()
	for _, x := range l.indexes {
		x.reset()
	}
	for _, g := range l.groups {
		g.reset()
	}
	clear(l.entries)
	l.entries = l.entries[:0]
	l.free, l.next = nil, 0

	l.cfg.log.LogRetract(OpClear, n, 0)
	l.cfg.metrics.RecordRemove(OpClear, n, time.Since(start))
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Aliases
// ─────────────────────────────────────────────────────────────────────────────

// Append is an alias for [List.Push].
func (l *List[In, T]) Append(raw ...In) (int, error) { return l.Push(raw...) }

// Prepend is an alias for [List.Unshift].
func (l *List[In, T]) Prepend(raw ...In) (int, error) { return l.Unshift(raw...) }

// RemoveLast is an alias for [List.Pop].
func (l *List[In, T]) RemoveLast() (T, bool) { return l.Pop() }

// RemoveFirst is an alias for [List.Shift].
func (l *List[In, T]) RemoveFirst() (T, bool) { return l.Shift() }

// RemoveRange is an alias for [List.Splice].
func (l *List[In, T]) RemoveRange(start, deleteCount int, raw ...In) ([]T, error) {
	return l.Splice(start, deleteCount, raw...)
}

// RemoveValue is an alias for [List.Remove].
func (l *List[In, T]) RemoveValue(values ...T) []T { return l.Remove(values...) }

func valuesOf[T any](entries []*entry[T]) []T {
	return arr.Map(entries, func(e *entry[T], _ int) T { return e.value })
}
