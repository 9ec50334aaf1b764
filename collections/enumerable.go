package collections

// Enumerable is the read-only surface of [List].
//
// Accept Enumerable in your own functions when they only need to read the
// elements, so that callers cannot mutate the list behind its indices'
// back and tests can substitute a plain implementation.
type Enumerable[T any] interface {
	// All returns a copy of every element in order.
	All() []T

	// Count returns the number of elements.
	Count() int

	// Each calls fn(item, index) for every element.
	Each(fn func(T, int))

	// Filter returns the elements for which fn returns true.
	Filter(fn func(T, int) bool) []T

	// First returns the first element, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last element, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// Lookup returns the element stored under key in the named index.
	Lookup(name string, key any) (T, bool)
}

var _ Enumerable[int] = (*List[int, int])(nil)
