package sequence

import "github.com/emirpasic/gods/maps/linkedhashmap"

// Group is a key paired with the values of a grouped sequence that share it.
// The embedded Sequence yields those values in their original order.
type Group[K comparable, T any] struct {
	*Sequence[T]
	key K
	len int
}

// Key returns the key shared by every value of the group.
func (g *Group[K, T]) Key() K { return g.key }

// Len returns the number of values in the group, independent of how many
// have been pulled.
func (g *Group[K, T]) Len() int { return g.len }

// GroupBy returns a sequence of groups of the values of s, keyed by key.
//
// Unlike the other operators GroupBy is eager: its first Pull drains s
// completely, since a group is only complete once every value has been seen.
// This costs one full traversal up front and O(n) extra space. Construction
// itself pulls nothing.
//
// Groups are yielded in order of the first occurrence of their key; values
// within a group keep their original relative order.
func GroupBy[T any, K comparable](s *Sequence[T], key func(T) K) *Sequence[*Group[K, T]] {
	return derive(s, &groupCursor[T, K]{source: s, keyFn: key})
}

// bucket holds the values for one key while the source is drained.
type bucket[T any] struct {
	items []T
}

type groupCursor[T any, K comparable] struct {
	source Cursor[T]
	keyFn  func(T) K
	index  *linkedhashmap.Map
	iter   linkedhashmap.Iterator
}

func (c *groupCursor[T, K]) Pull() (*Group[K, T], bool) {
	if c.index == nil {
		c.drain()
	}
	if !c.iter.Next() {
		return nil, false
	}
	b := c.iter.Value().(*bucket[T])
	return &Group[K, T]{
		Sequence: FromSlice(b.items),
		key:      c.iter.Key().(K),
		len:      len(b.items),
	}, true
}

// drain builds the key index from the whole source. Keys keep insertion
// order, so iteration follows first occurrence.
func (c *groupCursor[T, K]) drain() {
	index := linkedhashmap.New()
	for {
		val, ok := c.source.Pull()
		if !ok {
			break
		}
		k := c.keyFn(val)
		if found, ok := index.Get(k); ok {
			b := found.(*bucket[T])
			b.items = append(b.items, val)
			continue
		}
		index.Put(k, &bucket[T]{items: []T{val}})
	}
	c.index = index
	c.iter = index.Iterator()
}
