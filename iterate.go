package trie

import (
	"iter"
	"slices"
)

// All returns an iterator over all stored key/value pairs in ascending
// lexicographic key order.
func (t *Trie[K, V]) All() iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		t.ensureInit()
		t.walkSubtree(t.root, nil, yield)
	}
}

// Keys returns an iterator over all stored keys in ascending lexicographic
// order.
func (t *Trie[K, V]) Keys() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		for key := range t.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// WithPrefix returns an iterator over the stored key/value pairs whose keys
// start with prefix, in ascending lexicographic key order. An empty prefix
// yields every stored pair.
func (t *Trie[K, V]) WithPrefix(prefix []K) iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		t.ensureInit()
		cur := t.root
		for _, unit := range prefix {
			child, ok := t.findChild(cur, unit)
			if !ok {
				return
			}
			cur = child
		}
		t.walkSubtree(cur, slices.Clone(prefix), yield)
	}
}

// Each visits all stored key/value pairs in ascending lexicographic key
// order. Iteration stops at the first callback error and returns that error
// to the caller.
func (t *Trie[K, V]) Each(f func(key []K, value V) error) error {
	var err error
	for key, value := range t.All() {
		if err = f(key, value); err != nil {
			break
		}
	}
	return err
}

// walkSubtree yields the stored pairs below r in order. key holds the
// key-units accumulated on the path from the root to r; yielded keys are
// cloned so callers may retain them.
func (t *Trie[K, V]) walkSubtree(r ref, key []K, yield func([]K, V) bool) bool {
	nd := t.at(r)
	if nd.sentinel {
		return true
	}
	if nd.leaf {
		if !yield(slices.Clone(key), nd.value) {
			return false
		}
	}
	for _, ch := range nd.children {
		cn := t.at(ch)
		if cn.sentinel {
			continue
		}
		if !t.walkSubtree(ch, append(key, cn.key), yield) {
			return false
		}
	}
	return true
}
