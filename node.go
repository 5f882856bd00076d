package trie

import (
	"cmp"
	"slices"
)

// ref addresses a node slot inside a trie's arena.
type ref = int32

// nilRef marks a missing node reference.
const nilRef ref = -1

// node is one vertex of the prefix tree.
//
// A node carries the key-unit of the edge leading to it, an optional value
// (meaningful only while leaf is set), a back-reference to its parent and a
// child list sorted ascending by key-unit. The sentinel node is the reserved
// last child of the root; it compares greater than every real key-unit and
// represents the past-the-end cursor position.
//
// Slots are recycled through a free list. gen is bumped on every release so
// that outstanding cursors to a recycled slot can be detected.
type node[K cmp.Ordered, V any] struct {
	key      K
	value    V
	leaf     bool
	sentinel bool
	live     bool
	gen      uint32
	parent   ref
	children []ref
}

func (t *Trie[K, V]) at(r ref) *node[K, V] {
	return &t.nodes[r]
}

// alloc takes a slot from the free list or grows the arena.
//
// Pointers obtained from at() before a call to alloc may be invalidated by
// arena growth and must be re-fetched.
func (t *Trie[K, V]) alloc(parent ref, key K) ref {
	if n := len(t.freelist); n > 0 {
		r := t.freelist[n-1]
		t.freelist = t.freelist[:n-1]
		nd := t.at(r)
		gen := nd.gen
		children := nd.children[:0]
		*nd = node[K, V]{key: key, parent: parent, live: true, gen: gen, children: children}
		return r
	}
	t.nodes = append(t.nodes, node[K, V]{key: key, parent: parent, live: true})
	return ref(len(t.nodes) - 1)
}

// release recycles a single slot and invalidates cursors referencing it.
func (t *Trie[K, V]) release(r ref) {
	nd := t.at(r)
	assert(nd.live, "release of a slot that is not live")
	var zeroK K
	var zeroV V
	nd.key = zeroK
	nd.value = zeroV
	nd.leaf = false
	nd.sentinel = false
	nd.live = false
	nd.parent = nilRef
	nd.children = nd.children[:0]
	nd.gen++
	t.freelist = append(t.freelist, r)
}

// releaseSubtree recycles a node and all of its descendants.
//
// Teardown is iterative; recursion depth would otherwise be bound to the
// length of the longest stored key.
func (t *Trie[K, V]) releaseSubtree(r ref) {
	stack := []ref{r}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, t.at(n).children...)
		t.release(n)
	}
}

// findChild binary-searches r's sorted children for unit.
//
// The sentinel compares greater than every key-unit and therefore never
// matches.
func (t *Trie[K, V]) findChild(r ref, unit K) (ref, bool) {
	children := t.at(r).children
	lo, hi := 0, len(children)
	for lo < hi {
		mid := (lo + hi) / 2
		c := t.at(children[mid])
		switch {
		case c.sentinel || c.key > unit:
			hi = mid
		case c.key < unit:
			lo = mid + 1
		default:
			return children[mid], true
		}
	}
	return nilRef, false
}

// insertChild links child into parent's child list, keeping it sorted.
//
// Callers only insert children for key-units proven absent, so no duplicate
// check is needed here.
func (t *Trie[K, V]) insertChild(parent, child ref) {
	unit := t.at(child).key
	p := t.at(parent)
	lo, hi := 0, len(p.children)
	for lo < hi {
		mid := (lo + hi) / 2
		s := t.at(p.children[mid])
		if s.sentinel || s.key > unit {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	p.children = slices.Insert(p.children, lo, child)
}

// childIndex locates child inside parent's sorted child list.
func (t *Trie[K, V]) childIndex(parent, child ref) int {
	p := t.at(parent)
	if t.at(child).sentinel {
		assert(len(p.children) > 0 && p.children[len(p.children)-1] == child,
			"sentinel must be the last child of its parent")
		return len(p.children) - 1
	}
	unit := t.at(child).key
	lo, hi := 0, len(p.children)
	for lo < hi {
		mid := (lo + hi) / 2
		s := t.at(p.children[mid])
		switch {
		case s.sentinel || s.key > unit:
			hi = mid
		case s.key < unit:
			lo = mid + 1
		default:
			assert(p.children[mid] == child, "sibling with duplicate key-unit")
			return mid
		}
	}
	assert(false, "childIndex: node is not a child of parent")
	return -1
}

// removeChild unlinks child from parent and recycles child's whole subtree.
func (t *Trie[K, V]) removeChild(parent, child ref) {
	i := t.childIndex(parent, child)
	p := t.at(parent)
	p.children = slices.Delete(p.children, i, i+1)
	t.releaseSubtree(child)
}

// depth counts the edges between r and the root.
func (t *Trie[K, V]) depth(r ref) int {
	n := 0
	for r != t.root {
		r = t.at(r).parent
		n++
	}
	return n
}
