package trie

import (
	"cmp"
	"fmt"
)

// Cursor is a non-owning reference to one stored key of a trie.
//
// Valid cursor targets are leaf nodes, including the sentinel which
// represents the past-the-end position. A cursor holds the arena slot of its
// node plus the slot's generation; once the node has been destroyed by Erase
// or Clear every cursor operation fails with ErrStaleCursor instead of
// touching recycled storage.
//
// Cursors are comparable with ==. Two live cursors are equal iff they
// reference the same node of the same trie.
type Cursor[K cmp.Ordered, V any] struct {
	trie *Trie[K, V]
	ref  ref
	gen  uint32
}

// Item is the key/value pair a cursor dereferences to.
type Item[K cmp.Ordered, V any] struct {
	Key   []K
	Value V
}

// node resolves the cursor to its arena slot, guarding against recycling.
func (c Cursor[K, V]) node() (*node[K, V], error) {
	if c.trie == nil || c.ref < 0 || int(c.ref) >= len(c.trie.nodes) {
		return nil, fmt.Errorf("%w: unbound cursor", ErrStaleCursor)
	}
	nd := &c.trie.nodes[c.ref]
	if !nd.live || nd.gen != c.gen {
		return nil, fmt.Errorf("%w: node was destroyed", ErrStaleCursor)
	}
	return nd, nil
}

// Key reconstructs the full stored key by walking parent references up to
// the root. Cost is O(depth). The end cursor has no key and fails with
// ErrOutOfRange.
func (c Cursor[K, V]) Key() ([]K, error) {
	nd, err := c.node()
	if err != nil {
		return nil, err
	}
	if nd.sentinel {
		return nil, fmt.Errorf("%w: end cursor has no key", ErrOutOfRange)
	}
	t := c.trie
	key := make([]K, t.depth(c.ref))
	r := c.ref
	for i := len(key) - 1; i >= 0; i-- {
		key[i] = t.at(r).key
		r = t.at(r).parent
	}
	return key, nil
}

// Value returns the value stored at the cursor's key.
//
// The end cursor carries no meaningful value and fails with ErrOutOfRange.
// A cursor whose node lost its leaf mark through Erase fails with
// ErrStaleCursor.
func (c Cursor[K, V]) Value() (V, error) {
	var zero V
	nd, err := c.node()
	if err != nil {
		return zero, err
	}
	if nd.sentinel {
		return zero, fmt.Errorf("%w: end cursor has no value", ErrOutOfRange)
	}
	if !nd.leaf {
		return zero, fmt.Errorf("%w: key was erased", ErrStaleCursor)
	}
	return nd.value, nil
}

// SetValue replaces the value stored at the cursor's key.
func (c Cursor[K, V]) SetValue(v V) error {
	nd, err := c.node()
	if err != nil {
		return err
	}
	if nd.sentinel {
		return fmt.Errorf("%w: end cursor has no value", ErrOutOfRange)
	}
	if !nd.leaf {
		return fmt.Errorf("%w: key was erased", ErrStaleCursor)
	}
	nd.value = v
	return nil
}

// Item dereferences the cursor to its key/value pair.
func (c Cursor[K, V]) Item() (Item[K, V], error) {
	key, err := c.Key()
	if err != nil {
		return Item[K, V]{}, err
	}
	value, err := c.Value()
	if err != nil {
		return Item[K, V]{}, err
	}
	return Item[K, V]{Key: key, Value: value}, nil
}

// Advance descends from the cursor's node along sub and relabels which node
// terminates a stored key: the origin loses its leaf mark, the destination
// gains it, and the cursor moves to the destination.
//
// This is a structural relabeling operation, not a read-only move — the key
// the cursor referenced before the call is no longer stored afterwards.
// An empty sub fails with ErrEmptyAdvance, a missing path segment fails with
// ErrNoSuchPrefix; on any failure neither the trie nor the cursor changes.
// If the destination already was a stored key, the relabel collapses two
// stored keys into one and the entry count shrinks by one.
func (c *Cursor[K, V]) Advance(sub []K) error {
	nd, err := c.node()
	if err != nil {
		return err
	}
	if len(sub) == 0 {
		return fmt.Errorf("%w: advance requires at least one key-unit", ErrEmptyAdvance)
	}
	if !nd.sentinel && !nd.leaf {
		return fmt.Errorf("%w: key was erased", ErrStaleCursor)
	}
	t := c.trie
	dest := c.ref
	for _, unit := range sub {
		child, ok := t.findChild(dest, unit)
		if !ok {
			return fmt.Errorf("%w: advance path broken", ErrNoSuchPrefix)
		}
		dest = child
	}
	// the sentinel has no children, so dest can never be the sentinel and
	// the origin sentinel case never reaches the mutation below
	assert(!nd.sentinel, "advance from the end cursor found a path below the sentinel")
	dn := t.at(dest)
	nd.leaf = false
	if dn.leaf {
		t.size--
	} else {
		dn.leaf = true
	}
	c.ref = dest
	c.gen = dn.gen
	tracer().Debugf("cursor advance: relabeled leaf %d levels down", len(sub))
	return nil
}

// Next moves the cursor to the successor key in ascending lexicographic
// order, or to the end position after the greatest key. Moving past the end
// fails with ErrOutOfRange and leaves the cursor unchanged.
func (c *Cursor[K, V]) Next() error {
	nd, err := c.node()
	if err != nil {
		return err
	}
	if nd.sentinel {
		return fmt.Errorf("%w: increment past the end", ErrOutOfRange)
	}
	t := c.trie
	if len(nd.children) > 0 {
		// smallest strict extension of the current key
		r := nd.children[0]
		for !t.at(r).leaf {
			r = t.at(r).children[0]
		}
		*c = t.cursorAt(r)
		return nil
	}
	r := c.ref
	for {
		p := t.at(r).parent
		assert(p != nilRef, "successor walk escaped the root without meeting the sentinel")
		i := t.childIndex(p, r)
		if i+1 < len(t.at(p).children) {
			m := t.at(p).children[i+1]
			for !t.at(m).leaf {
				m = t.at(m).children[0]
			}
			*c = t.cursorAt(m)
			return nil
		}
		r = p
	}
}

// Prev moves the cursor to the predecessor key in ascending lexicographic
// order. Moving before the first key fails with ErrOutOfRange and leaves
// the cursor unchanged.
func (c *Cursor[K, V]) Prev() error {
	_, err := c.node()
	if err != nil {
		return err
	}
	t := c.trie
	r := c.ref
	for {
		p := t.at(r).parent
		if p == nilRef {
			return fmt.Errorf("%w: decrement before the beginning", ErrOutOfRange)
		}
		if i := t.childIndex(p, r); i > 0 {
			// greatest key inside the previous sibling's subtree
			m := t.at(p).children[i-1]
			for len(t.at(m).children) > 0 {
				children := t.at(m).children
				m = children[len(children)-1]
			}
			assert(t.at(m).leaf, "childless node without a leaf mark")
			*c = t.cursorAt(m)
			return nil
		}
		if p != t.root && t.at(p).leaf {
			// a stored key that is a strict prefix precedes its extensions
			*c = t.cursorAt(p)
			return nil
		}
		r = p
	}
}
