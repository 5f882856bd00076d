package trie

/*
BSD 3-Clause License

Copyright (c) 2019–21, Semen Andreev

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"slices"
)

// Trie is an ordered associative container mapping key sequences to values.
//
// A trie created by
//
//	&Trie[byte, int]{}
//
// is a valid object and behaves like an empty container. Keys are sequences
// of a totally ordered key-unit type K; the total order of K is the only
// capability the container requires from outside code.
//
// The root node never carries a key-unit or value. Its last child is a
// reserved sentinel node which represents the past-the-end cursor position
// and survives Erase and Clear.
type Trie[K cmp.Ordered, V any] struct {
	nodes    []node[K, V]
	freelist []ref
	root     ref
	sentinel ref
	size     int
}

// New creates an empty trie.
func New[K cmp.Ordered, V any]() *Trie[K, V] {
	t := &Trie[K, V]{}
	t.ensureInit()
	return t
}

// ensureInit sets up the root and sentinel slots on first use, so that the
// zero value of Trie is usable.
func (t *Trie[K, V]) ensureInit() {
	if len(t.nodes) > 0 {
		return
	}
	t.nodes = append(t.nodes, node[K, V]{live: true, parent: nilRef})
	t.root = 0
	t.nodes = append(t.nodes, node[K, V]{live: true, leaf: true, sentinel: true, parent: t.root})
	t.sentinel = 1
	t.at(t.root).children = []ref{t.sentinel}
}

// Len returns the number of stored keys.
func (t *Trie[K, V]) Len() int {
	return t.size
}

// IsEmpty reports whether the trie has no stored keys.
func (t *Trie[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Insert stores value under key and returns a cursor to the new entry.
//
// Inserting an empty key fails with ErrEmptyKey, inserting a key that is
// already stored fails with ErrDuplicateKey. A failed insert leaves the trie
// unchanged. Cost is O(k · log c) for key length k and fan-out c.
func (t *Trie[K, V]) Insert(key []K, value V) (Cursor[K, V], error) {
	t.ensureInit()
	if len(key) == 0 {
		return t.End(), fmt.Errorf("%w: insert requires at least one key-unit", ErrEmptyKey)
	}
	cur := t.root
	i := 0
	for i < len(key) {
		child, ok := t.findChild(cur, key[i])
		if !ok {
			break
		}
		cur = child
		i++
	}
	if i == len(key) {
		// full key matched an existing node
		nd := t.at(cur)
		if nd.leaf {
			return t.End(), fmt.Errorf("%w: key of length %d", ErrDuplicateKey, len(key))
		}
		nd.leaf = true
		nd.value = value
		t.size++
		tracer().Debugf("trie insert: promoted shared-prefix node, size=%d", t.size)
		return t.cursorAt(cur), nil
	}
	// grow a fresh chain for the unmatched suffix
	for ; i < len(key); i++ {
		child := t.alloc(cur, key[i])
		t.insertChild(cur, child)
		cur = child
	}
	nd := t.at(cur)
	nd.leaf = true
	nd.value = value
	t.size++
	tracer().Debugf("trie insert: new chain of depth %d, size=%d", t.depth(cur), t.size)
	return t.cursorAt(cur), nil
}

// Erase removes the stored key referenced by c.
//
// If the node still has children it stays in the tree as a shared-prefix
// ancestor and only loses its leaf mark. Otherwise the node is destroyed
// together with every ancestor that is left without children and is not
// itself a stored key. Erasing the end cursor fails with ErrOutOfRange,
// erasing through a stale cursor fails with ErrStaleCursor.
func (t *Trie[K, V]) Erase(c Cursor[K, V]) error {
	t.ensureInit()
	if c.trie != t {
		return fmt.Errorf("%w: cursor belongs to a different trie", ErrStaleCursor)
	}
	nd, err := c.node()
	if err != nil {
		return err
	}
	if nd.sentinel {
		return fmt.Errorf("%w: cannot erase the end cursor", ErrOutOfRange)
	}
	if !nd.leaf {
		return fmt.Errorf("%w: key was already erased", ErrStaleCursor)
	}
	if len(nd.children) > 0 {
		nd.leaf = false
		t.size--
		tracer().Debugf("trie erase: demoted to shared-prefix node, size=%d", t.size)
		return nil
	}
	p := nd.parent
	t.removeChild(p, c.ref)
	for p != t.root {
		pn := t.at(p)
		if pn.leaf || len(pn.children) > 0 {
			break
		}
		up := pn.parent
		t.removeChild(up, p)
		p = up
	}
	t.size--
	tracer().Debugf("trie erase: pruned dead suffix chain, size=%d", t.size)
	return nil
}

// Find walks key from the root and returns a cursor to the stored entry, or
// the end cursor if key is not stored. Find never creates nodes.
func (t *Trie[K, V]) Find(key []K) Cursor[K, V] {
	t.ensureInit()
	cur := t.root
	for _, unit := range key {
		child, ok := t.findChild(cur, unit)
		if !ok {
			return t.End()
		}
		cur = child
	}
	if cur == t.root || !t.at(cur).leaf {
		return t.End()
	}
	return t.cursorAt(cur)
}

// Value looks up key and returns its stored value.
//
// The second return value reports whether key is stored; on a miss the first
// return value is the zero value of V.
func (t *Trie[K, V]) Value(key []K) (V, bool) {
	c := t.Find(key)
	if c == t.End() {
		var zero V
		return zero, false
	}
	v, err := c.Value()
	assert(err == nil, "trie.Value: cursor returned by Find must be readable")
	return v, true
}

// FindLongestPrefix returns a cursor to the longest stored key.
//
// Note that this is the longest key currently stored in the container, not a
// longest-prefix match against a caller-supplied query. Ties are resolved in
// traversal order: the first key of maximal length wins. Returns the end
// cursor for an empty trie. Cost is O(n · depth) since every key's length is
// reconstructed during the scan.
func (t *Trie[K, V]) FindLongestPrefix() Cursor[K, V] {
	t.ensureInit()
	longest := t.End()
	maxDepth := 0
	for c := t.Begin(); c != t.End(); {
		if d := t.depth(c.ref); d > maxDepth {
			maxDepth = d
			longest = c
		}
		err := c.Next()
		assert(err == nil, "trie.FindLongestPrefix: traversal must not run past the end")
	}
	return longest
}

// Clear destroys every stored key. The sentinel survives, so end cursors
// taken before Clear remain valid; all other cursors become stale.
func (t *Trie[K, V]) Clear() {
	t.ensureInit()
	children := t.at(t.root).children
	for _, c := range children {
		if c != t.sentinel {
			t.releaseSubtree(c)
		}
	}
	rn := t.at(t.root)
	rn.children = rn.children[:0]
	rn.children = append(rn.children, t.sentinel)
	t.size = 0
	tracer().Debugf("trie clear")
}

// Clone returns a deep copy of the trie.
//
// The copy is fully independent: mutating one container never changes the
// other. Values are copied by assignment. Cursors are bound to the container
// they were taken from and do not carry over to the clone.
func (t *Trie[K, V]) Clone() *Trie[K, V] {
	t.ensureInit()
	clone := &Trie[K, V]{
		nodes:    slices.Clone(t.nodes),
		freelist: slices.Clone(t.freelist),
		root:     t.root,
		sentinel: t.sentinel,
		size:     t.size,
	}
	for i := range clone.nodes {
		clone.nodes[i].children = slices.Clone(clone.nodes[i].children)
	}
	return clone
}

// Swap exchanges the contents of two tries in O(1).
//
// Cursor behavior across Swap is unspecified; take fresh cursors afterwards.
func (t *Trie[K, V]) Swap(other *Trie[K, V]) {
	*t, *other = *other, *t
}

// Begin returns a cursor to the smallest stored key, or End for an empty
// trie. The smallest key terminates at the first leaf on the leftmost
// child-path.
func (t *Trie[K, V]) Begin() Cursor[K, V] {
	t.ensureInit()
	if t.size == 0 {
		return t.End()
	}
	r := t.at(t.root).children[0]
	for !t.at(r).leaf {
		r = t.at(r).children[0]
	}
	return t.cursorAt(r)
}

// End returns the past-the-end cursor. It stays valid across Erase and
// Clear.
func (t *Trie[K, V]) End() Cursor[K, V] {
	t.ensureInit()
	return t.cursorAt(t.sentinel)
}

func (t *Trie[K, V]) cursorAt(r ref) Cursor[K, V] {
	return Cursor[K, V]{trie: t, ref: r, gen: t.at(r).gen}
}
