package collections

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hasbyte1/go-indexed-collections/arr"
)

// Group is a read view of one group partition. Elements classified true live
// in the flat bucket ([Group.Items]); elements classified with a value live
// in the keyed bucket for that value ([Group.Bucket]). Order within a bucket
// is insertion order.
type Group[T any] struct {
	name  string
	equal func(a, b T) bool
	flat  *bucket[T]
	keyed map[any]*bucket[T]
	order []any
}

// bucket keeps its members in insertion order plus a bitmap of their
// handles for membership tests and intersections.
type bucket[T any] struct {
	group   *Group[T]
	key     any
	isFlat  bool
	members []*entry[T]
	set     *roaring.Bitmap
}

func newGroup[T any](name string, equal func(a, b T) bool) *Group[T] {
	g := &Group[T]{name: name, equal: equal, keyed: make(map[any]*bucket[T])}
	g.flat = &bucket[T]{group: g, isFlat: true, set: roaring.New()}
	return g
}

// Name returns the group name.
func (g *Group[T]) Name() string { return g.name }

// Items returns a copy of the flat bucket.
func (g *Group[T]) Items() []T { return g.flat.values() }

// Len returns the size of the flat bucket.
func (g *Group[T]) Len() int { return len(g.flat.members) }

// Bucket returns a copy of the keyed bucket for key, or nil when no live
// element is classified under key.
func (g *Group[T]) Bucket(key any) []T {
	b := g.bucket(key)
	if b == nil {
		return nil
	}
	return b.values()
}

// BucketLen returns the size of the keyed bucket for key.
func (g *Group[T]) BucketLen(key any) int {
	b := g.bucket(key)
	if b == nil {
		return 0
	}
	return len(b.members)
}

// Keys returns the keys of the live keyed buckets in first-use order.
func (g *Group[T]) Keys() []any {
	out := make([]any, len(g.order))
	copy(out, g.order)
	return out
}

// Total returns the number of elements in the group across all buckets.
func (g *Group[T]) Total() int {
	n := len(g.flat.members)
	for _, b := range g.keyed {
		n += len(b.members)
	}
	return n
}

// Contains reports whether an element equal to v is in any of the group's
// buckets.
func (g *Group[T]) Contains(v T) bool {
	match := func(e *entry[T]) bool { return g.equal(e.value, v) }
	if arr.IndexFrom(g.flat.members, 0, match) >= 0 {
		return true
	}
	for _, b := range g.keyed {
		if arr.IndexFrom(b.members, 0, match) >= 0 {
			return true
		}
	}
	return false
}

func (g *Group[T]) bucket(key any) (b *bucket[T]) {
	defer func() {
		if recover() != nil {
			b = nil
		}
	}()
	return g.keyed[key]
}

func (g *Group[T]) add(c stagedClass, e *entry[T]) {
	b := g.flat
	if !c.flat {
		b = g.keyed[c.key]
		if b == nil {
			b = &bucket[T]{group: g, key: c.key, set: roaring.New()}
			g.keyed[c.key] = b
			g.order = append(g.order, c.key)
		}
	}
	b.members = append(b.members, e)
	b.set.Add(e.handle)
	e.buckets = append(e.buckets, b)
}

func (b *bucket[T]) remove(e *entry[T]) {
	b.members, _ = arr.RemoveFirstFunc(b.members, func(m *entry[T]) bool { return m == e })
	b.set.Remove(e.handle)
	if b.isFlat || len(b.members) > 0 {
		return
	}
	g := b.group
	delete(g.keyed, b.key)
	g.order, _ = arr.RemoveFirstFunc(g.order, func(k any) bool { return k == b.key })
}

func (g *Group[T]) reset() {
	g.flat.members = nil
	g.flat.set.Clear()
	clear(g.keyed)
	g.order = nil
}

func (b *bucket[T]) values() []T { return valuesOf(b.members) }

// ─────────────────────────────────────────────────────────────────────────────
// Cross-group selection
// ─────────────────────────────────────────────────────────────────────────────

// Selector names one bucket for [List.Members].
type Selector struct {
	group string
	key   any
	flat  bool
}

// InGroup selects the flat bucket of the named group.
func InGroup(name string) Selector { return Selector{group: name, flat: true} }

// InBucket selects the keyed bucket key of the named group.
func InBucket(name string, key any) Selector { return Selector{group: name, key: key} }

// Members returns, in list order, the elements present in every selected
// bucket. Unknown groups or keys select nothing.
func (l *List[In, T]) Members(selectors ...Selector) []T {
	if len(selectors) == 0 {
		return nil
	}
	sets := make([]*roaring.Bitmap, 0, len(selectors))
	for _, s := range selectors {
		g, ok := l.byGroup[s.group]
		if !ok {
			return nil
		}
		b := g.flat
		if !s.flat {
			b = g.bucket(s.key)
		}
		if b == nil || b.set.IsEmpty() {
			return nil
		}
		sets = append(sets, b.set)
	}

	hit := sets[0]
	if len(sets) > 1 {
		hit = roaring.FastAnd(sets...)
	}
	out := make([]T, 0, int(hit.GetCardinality()))
	for _, e := range l.entries {
		if hit.Contains(e.handle) {
			out = append(out, e.value)
		}
	}
	return out
}
