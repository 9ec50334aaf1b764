// Package arr provides the low-level slice and map helpers the collections
// package is built on, in the spirit of Laravel's Arr facade.
//
// # Splicing
//
// [Splice], [Insert] and [RemoveAt] implement ordered-sequence edits with
// the same clamping rules as JavaScript's Array.prototype.splice: a negative
// start counts back from the end and out-of-range positions are clamped
// rather than rejected.
//
//	out, removed := arr.Splice([]int{1, 2, 6}, 1, 1) // out=[1 6] removed=[2]
//	out = arr.Insert(out, 0, 9)                      // [9 1 6]
//
// # Dot-notation map access
//
// [ParsePath] compiles a dot-separated key once so it can be evaluated
// repeatedly against nested map[string]any values:
//
//	p := arr.MustParsePath("owner.address.city")
//	city, ok := p.Lookup(record)
//
// [Get], [Has] and [Set] are one-shot conveniences over the same paths.
package arr
