package collections

// This file contains package-level generic helpers. Go methods cannot
// introduce their own type parameters, so anything that needs a key type K
// beyond the List's In and T is a stand-alone function:
//
//	byID := collections.ByFuncs(map[string]collections.KeyFunc[Cat]{
//	    "id": collections.Key(func(c Cat) int { return c.ID }),
//	})
//	cat, ok := collections.LookupAs(cats, "id", 4)

// Key adapts a typed key function to a [KeyFunc].
func Key[T any, K comparable](fn func(T) K) KeyFunc[T] {
	return func(item T) any { return fn(item) }
}

// Flat adapts a predicate to a [Classifier] that fills the group's flat
// bucket.
func Flat[T any](fn func(T) bool) Classifier[T] {
	return func(item T) any { return fn(item) }
}

// Keyed adapts a typed bucket function to a [Classifier]. The zero value of
// K leaves the element out of the group.
//
//	collections.Keyed(func(c Cat) string { return c.Name[:1] })
func Keyed[T any, K comparable](fn func(T) K) Classifier[T] {
	return func(item T) any {
		var zero K
		k := fn(item)
		if k == zero {
			return nil
		}
		return k
	}
}

// LookupAs is [List.Lookup] with a typed key.
func LookupAs[K comparable, In, T any](l *List[In, T], name string, key K) (T, bool) {
	return l.Lookup(name, key)
}

// BucketOf is [Group.Bucket] on the named group of l with a typed key. It
// returns nil when the group does not exist.
func BucketOf[K comparable, In, T any](l *List[In, T], group string, key K) []T {
	g, ok := l.Group(group)
	if !ok {
		return nil
	}
	return g.Bucket(key)
}

// GroupBy returns the elements of l bucketed by fn, in list order. Unlike a
// configured group it is computed on demand and not maintained.
func GroupBy[K comparable, In, T any](l *List[In, T], fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, e := range l.entries {
		k := fn(e.value)
		groups[k] = append(groups[k], e.value)
	}
	return groups
}

// KeyBy returns the elements of l keyed by fn, last one winning, computed on
// demand.
func KeyBy[K comparable, In, T any](l *List[In, T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(l.entries))
	for _, e := range l.entries {
		out[fn(e.value)] = e.value
	}
	return out
}
