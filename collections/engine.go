package collections

import "math"

// entry owns one stored element. Indices and groups point at entries, never
// at copies of the element, and every write made on an entry's behalf is
// recorded on it so that retract can undo exactly those writes.
type entry[T any] struct {
	handle  uint32
	value   T
	slots   []*keySlot[T]
	buckets []*bucket[T]
}

type stagedKey struct {
	index int
	key   any
}

type stagedClass struct {
	group int
	flat  bool
	key   any
}

type stagedItem[T any] struct {
	value   T
	keys    []stagedKey
	classes []stagedClass
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialize
// ─────────────────────────────────────────────────────────────────────────────

// stage runs the transform, every key extractor and every classifier over
// one call's raw inputs without touching the list. Any failure rejects the
// whole batch.
func (l *List[In, T]) stage(raw []In) ([]stagedItem[T], error) {
	values, err := l.cfg.transform.apply(raw)
	if err != nil {
		return nil, err
	}

	staged := make([]stagedItem[T], len(values))
	for pos, v := range values {
		item := stagedItem[T]{value: v}

		for i, ex := range l.cfg.extractors {
			var key any
			err := guard(StageIndex, ex.name, pos, func() error {
				key = ex.fn(v)
				if isNaN(key) {
					key = nil
				}
				if key != nil {
					_ = l.indexes[i].slots[key] // panics on unhashable keys
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			if key != nil {
				item.keys = append(item.keys, stagedKey{index: i, key: key})
			}
		}

		for i, cl := range l.cfg.classifiers {
			var (
				c  stagedClass
				ok bool
			)
			err := guard(StageGroup, cl.name, pos, func() error {
				c, ok = classify(cl.fn(v))
				if ok && !c.flat {
					_ = l.groups[i].keyed[c.key]
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			if ok {
				c.group = i
				item.classes = append(item.classes, c)
			}
		}

		staged[pos] = item
	}
	return staged, nil
}

// commit turns staged items into entries and writes their index and group
// memberships in argument order. It cannot fail.
func (l *List[In, T]) commit(staged []stagedItem[T]) []*entry[T] {
	entries := make([]*entry[T], len(staged))
	for i, s := range staged {
		e := &entry[T]{handle: l.acquire(), value: s.value}
		for _, k := range s.keys {
			l.indexes[k.index].put(k.key, e)
		}
		for _, c := range s.classes {
			l.groups[c.group].add(c, e)
		}
		entries[i] = e
	}
	return entries
}

// ─────────────────────────────────────────────────────────────────────────────
// Retract
// ─────────────────────────────────────────────────────────────────────────────

// retract undoes every index and group write made for e.
func (l *List[In, T]) retract(e *entry[T]) {
	for _, s := range e.slots {
		s.remove(e)
	}
	for _, b := range e.buckets {
		b.remove(e)
	}
	e.slots, e.buckets = nil, nil
	l.release(e.handle)
}

// ─────────────────────────────────────────────────────────────────────────────
// Handles
// ─────────────────────────────────────────────────────────────────────────────

// acquire hands out a handle no live entry holds. Released handles are
// reused first, which keeps bucket bitmaps dense.
func (l *List[In, T]) acquire() uint32 {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		return h
	}
	if l.next == math.MaxUint32 {
		panic("collections: handle space exhausted")
	}
	h := l.next
	l.next++
	return h
}

func (l *List[In, T]) release(h uint32) {
	l.free = append(l.free, h)
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// classify maps a classifier result onto a bucket. ok is false for nil,
// false, "" and numeric zero.
func classify(v any) (c stagedClass, ok bool) {
	switch x := v.(type) {
	case nil:
		return c, false
	case bool:
		return stagedClass{flat: true}, x
	case string:
		return stagedClass{key: x}, x != ""
	}
	if isZeroNumber(v) {
		return c, false
	}
	return stagedClass{key: v}, true
}

func isZeroNumber(v any) bool {
	switch x := v.(type) {
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case uintptr:
		return x == 0
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	}
	return false
}

// isNaN reports NaN keys, which a map can store but never find again.
func isNaN(v any) bool {
	switch x := v.(type) {
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	}
	return false
}
