package seq

import "slices"

// Groups is the materialized result of GroupBy: a key-to-elements mapping
// that remembers the order keys were first seen in.
type Groups[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// Keys returns the group keys in first-seen order. The returned slice is a
// copy.
func (g *Groups[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns the elements grouped under k and whether the key exists.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	items, ok := g.groups[k]
	return items, ok
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// Total returns the number of grouped elements across all keys.
func (g *Groups[K, T]) Total() int {
	n := 0
	for _, items := range g.groups {
		n += len(items)
	}
	return n
}
