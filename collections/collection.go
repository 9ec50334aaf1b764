package collections

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/hasbyte1/go-indexed-collections/arr"
)

// List is an ordered collection of T that keeps its secondary indices and
// group partitions in sync with its contents on every mutation.
//
// Raw inputs of type In are converted to stored elements by the configured
// [Transform]; without one, In and T are the same type:
//
//	cats, err := collections.New(collections.Config[Cat, Cat]{
//	    By:     collections.ByFuncs(map[string]collections.KeyFunc[Cat]{"id": catID}),
//	    Groups: map[string]collections.Classifier[Cat]{"startsWithF": startsWithF},
//	})
//	cats.Push(Cat{ID: 2, Name: "Mittens"}, Cat{ID: 4, Name: "Fluffy"})
//	fluffy, _ := cats.Lookup("id", 4)
//
// # Positional semantics
//
// Push, Unshift, Pop, Shift and Splice behave like their JavaScript Array
// counterparts, including negative and out-of-range splice positions.
//
// # Failure semantics
//
// An insertion is staged in full before anything is written. If the
// transform, a key extractor or a classifier fails for any input, the call
// returns an [*ExtractionError] and the List, its indices and its groups are
// exactly as they were. Absent values are never errors: Pop on an empty list
// returns (zero, false) and Remove of a missing value returns nothing.
//
// # Concurrency
//
// A List is not safe for concurrent use. Guard it with a single mutex or
// confine it to one goroutine.
type List[In, T any] struct {
	cfg     *resolved[In, T]
	entries []*entry[T]

	indexes []*Index[T]
	byIndex map[string]*Index[T]
	groups  []*Group[T]
	byGroup map[string]*Group[T]

	free []uint32
	next uint32
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New resolves cfg and returns a List holding items followed by cfg.Items.
//
// Configuration problems are reported as [*ConfigError]; a failure while
// inserting the initial items as [*ExtractionError].
func New[In, T any](cfg Config[In, T], items ...In) (*List[In, T], error) {
	r, err := resolve(cfg)
	if err != nil {
		return nil, err
	}
	l := newList(r)

	initial := make([]In, 0, len(items)+len(cfg.Items))
	initial = append(initial, items...)
	initial = append(initial, cfg.Items...)
	if len(initial) > 0 {
		if _, err := l.Push(initial...); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// MustNew is like [New] but panics on error.
func MustNew[In, T any](cfg Config[In, T], items ...In) *List[In, T] {
	l, err := New(cfg, items...)
	if err != nil {
		panic(err)
	}
	return l
}

// Of returns an unindexed List holding items. It panics if T is not
// comparable; use [New] with an Equal func for such types.
func Of[T any](items ...T) *List[T, T] {
	return MustNew(Config[T, T]{}, items...)
}

func newList[In, T any](r *resolved[In, T]) *List[In, T] {
	l := &List[In, T]{
		cfg:     r,
		indexes: make([]*Index[T], len(r.extractors)),
		byIndex: make(map[string]*Index[T], len(r.extractors)),
		groups:  make([]*Group[T], len(r.classifiers)),
		byGroup: make(map[string]*Group[T], len(r.classifiers)),
	}
	for i, ex := range r.extractors {
		l.indexes[i] = newIndex[T](ex.name)
		l.byIndex[ex.name] = l.indexes[i]
	}
	for i, cl := range r.classifiers {
		l.groups[i] = newGroup(cl.name, r.equal)
		l.byGroup[cl.name] = l.groups[i]
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (l *List[In, T]) Len() int { return len(l.entries) }

// Count is an alias for [List.Len].
func (l *List[In, T]) Count() int { return len(l.entries) }

// IsEmpty reports whether the list holds no elements.
func (l *List[In, T]) IsEmpty() bool { return len(l.entries) == 0 }

// IsNotEmpty reports whether the list holds at least one element.
func (l *List[In, T]) IsNotEmpty() bool { return len(l.entries) > 0 }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[In, T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.entries) {
		return zero, false
	}
	return l.entries[index].value, true
}

// At is like [List.Get] but negative positions count back from the end.
func (l *List[In, T]) At(index int) (T, bool) {
	if index < 0 {
		index += len(l.entries)
	}
	return l.Get(index)
}

// All returns a copy of the elements in order.
func (l *List[In, T]) All() []T { return valuesOf(l.entries) }

// ToSlice is an alias for [List.All].
func (l *List[In, T]) ToSlice() []T { return l.All() }

// Values iterates over (position, element) pairs. The list must not be
// mutated during iteration.
func (l *List[In, T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range l.entries {
			if !yield(i, e.value) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every element.
func (l *List[In, T]) Each(fn func(T, int)) {
	for i, e := range l.entries {
		fn(e.value, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
func (l *List[In, T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	for _, e := range l.entries {
		if len(fns) == 0 || fns[0](e.value) {
			return e.value, true
		}
	}
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
func (l *List[In, T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(l.entries) - 1; i >= 0; i-- {
		if v := l.entries[i].value; len(fns) == 0 || fns[0](v) {
			return v, true
		}
	}
	return zero, false
}

// Find is [List.First] with a required predicate.
func (l *List[In, T]) Find(fn func(T) bool) (T, bool) { return l.First(fn) }

// IndexOf returns the position of the first element equal to value, or -1.
func (l *List[In, T]) IndexOf(value T) int {
	return arr.IndexFrom(l.entries, 0, func(e *entry[T]) bool { return l.cfg.equal(e.value, value) })
}

// Contains reports whether an element equal to value is present.
func (l *List[In, T]) Contains(value T) bool { return l.IndexOf(value) >= 0 }

// Filter returns, in order, the elements for which fn(item, index) is true.
func (l *List[In, T]) Filter(fn func(T, int) bool) []T {
	return arr.Filter(l.All(), fn)
}

// Index returns the named secondary index.
func (l *List[In, T]) Index(name string) (*Index[T], bool) {
	x, ok := l.byIndex[name]
	return x, ok
}

// Lookup returns the element stored under key in the named index.
func (l *List[In, T]) Lookup(name string, key any) (T, bool) {
	x, ok := l.byIndex[name]
	if !ok {
		var zero T
		return zero, false
	}
	return x.Get(key)
}

// IndexNames returns the index names in resolution order.
func (l *List[In, T]) IndexNames() []string {
	names := make([]string, len(l.indexes))
	for i, x := range l.indexes {
		names[i] = x.name
	}
	return names
}

// Group returns the named group partition.
func (l *List[In, T]) Group(name string) (*Group[T], bool) {
	g, ok := l.byGroup[name]
	return g, ok
}

// GroupNames returns the group names in sorted order.
func (l *List[In, T]) GroupNames() []string {
	names := make([]string, len(l.groups))
	for i, g := range l.groups {
		names[i] = g.name
	}
	return names
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the elements as a JSON array.
func (l *List[In, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.All())
}

// ToJSON serialises the elements to a JSON array.
func (l *List[In, T]) ToJSON() ([]byte, error) { return l.MarshalJSON() }

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[In, T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.All())
	}
	return string(b)
}
