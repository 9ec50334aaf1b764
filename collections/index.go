package collections

// Index is a read view of one secondary index: key → element, last write
// wins. It stays valid, and current, for the lifetime of its List.
// Removing the element that holds a key hands the key back to the most
// recent surviving element with the same key, if any.
type Index[T any] struct {
	name  string
	slots map[any]*keySlot[T]
}

// keySlot holds every live entry that produced key, oldest first. The top of
// the stack is the indexed element; retracting it exposes the next one.
type keySlot[T any] struct {
	index *Index[T]
	key   any
	stack []*entry[T]
}

func newIndex[T any](name string) *Index[T] {
	return &Index[T]{name: name, slots: make(map[any]*keySlot[T])}
}

// Name returns the index name.
func (x *Index[T]) Name() string { return x.name }

// Len returns the number of distinct keys.
func (x *Index[T]) Len() int { return len(x.slots) }

// Get returns the element stored under key. Unhashable keys are reported as
// absent.
func (x *Index[T]) Get(key any) (T, bool) {
	var zero T
	slot := x.slot(key)
	if slot == nil {
		return zero, false
	}
	return slot.top().value, true
}

// Has reports whether key is present.
func (x *Index[T]) Has(key any) bool { return x.slot(key) != nil }

// Keys returns the indexed keys in no particular order.
func (x *Index[T]) Keys() []any {
	keys := make([]any, 0, len(x.slots))
	for k := range x.slots {
		keys = append(keys, k)
	}
	return keys
}

// Entries returns (key, element) pairs in no particular order.
func (x *Index[T]) Entries() []Pair[any, T] {
	out := make([]Pair[any, T], 0, len(x.slots))
	for k, slot := range x.slots {
		out = append(out, Pair[any, T]{First: k, Second: slot.top().value})
	}
	return out
}

func (x *Index[T]) slot(key any) (s *keySlot[T]) {
	defer func() {
		if recover() != nil {
			s = nil
		}
	}()
	return x.slots[key]
}

// put records e under key. The key has already been probed for
// hashability while staging.
func (x *Index[T]) put(key any, e *entry[T]) {
	slot := x.slots[key]
	if slot == nil {
		slot = &keySlot[T]{index: x, key: key}
		x.slots[key] = slot
	}
	slot.stack = append(slot.stack, e)
	e.slots = append(e.slots, slot)
}

func (x *Index[T]) reset() { clear(x.slots) }

func (s *keySlot[T]) top() *entry[T] { return s.stack[len(s.stack)-1] }

func (s *keySlot[T]) remove(e *entry[T]) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i] == e {
			copy(s.stack[i:], s.stack[i+1:])
			s.stack[len(s.stack)-1] = nil
			s.stack = s.stack[:len(s.stack)-1]
			break
		}
	}
	if len(s.stack) == 0 {
		delete(s.index.slots, s.key)
	}
}
