package trie

import "fmt"

// Check validates structural trie invariants.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving.
func (t *Trie[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil trie", ErrCorrupted)
	}
	if len(t.nodes) == 0 {
		// zero value, not yet initialized
		if t.size != 0 {
			return fmt.Errorf("%w: uninitialized trie must have size 0", ErrCorrupted)
		}
		return nil
	}
	rn := t.at(t.root)
	if !rn.live || rn.leaf || rn.sentinel {
		return fmt.Errorf("%w: root must be live and must not be a leaf or the sentinel", ErrCorrupted)
	}
	if rn.parent != nilRef {
		return fmt.Errorf("%w: root must not have a parent", ErrCorrupted)
	}
	if len(rn.children) == 0 || rn.children[len(rn.children)-1] != t.sentinel {
		return fmt.Errorf("%w: last child of the root must be the sentinel", ErrCorrupted)
	}
	sn := t.at(t.sentinel)
	if !sn.live || !sn.leaf || !sn.sentinel {
		return fmt.Errorf("%w: sentinel must be a live leaf", ErrCorrupted)
	}
	if len(sn.children) != 0 {
		return fmt.Errorf("%w: sentinel must not have children", ErrCorrupted)
	}
	visited := make(map[ref]bool, len(t.nodes))
	leaves, err := t.checkNode(t.root, visited)
	if err != nil {
		return err
	}
	if leaves != t.size {
		return fmt.Errorf("%w: size mismatch (%d leaves != size %d)", ErrCorrupted, leaves, t.size)
	}
	for _, f := range t.freelist {
		if f < 0 || int(f) >= len(t.nodes) {
			return fmt.Errorf("%w: free-list entry %d out of bounds", ErrCorrupted, f)
		}
		if t.at(f).live {
			return fmt.Errorf("%w: free-list entry %d is live", ErrCorrupted, f)
		}
		if visited[f] {
			return fmt.Errorf("%w: free-list entry %d is reachable", ErrCorrupted, f)
		}
	}
	if len(visited)+len(t.freelist) != len(t.nodes) {
		return fmt.Errorf("%w: %d slots are neither reachable nor free",
			ErrCorrupted, len(t.nodes)-len(visited)-len(t.freelist))
	}
	return nil
}

// checkNode validates the subtree below r and counts its non-sentinel
// leaves.
func (t *Trie[K, V]) checkNode(r ref, visited map[ref]bool) (leaves int, err error) {
	if visited[r] {
		return 0, fmt.Errorf("%w: node %d reachable by more than one child-path", ErrCorrupted, r)
	}
	visited[r] = true
	nd := t.at(r)
	if !nd.live {
		return 0, fmt.Errorf("%w: reachable node %d is not live", ErrCorrupted, r)
	}
	if r != t.root && r != t.sentinel && !nd.leaf && len(nd.children) == 0 {
		return 0, fmt.Errorf("%w: dead inner node %d was not pruned", ErrCorrupted, r)
	}
	if nd.leaf && !nd.sentinel {
		leaves++
	}
	for i, ch := range nd.children {
		cn := t.at(ch)
		if cn.parent != r {
			return 0, fmt.Errorf("%w: node %d has a broken parent back-reference", ErrCorrupted, ch)
		}
		if cn.sentinel && r != t.root {
			return 0, fmt.Errorf("%w: sentinel below a non-root node", ErrCorrupted)
		}
		if i > 0 {
			prev := t.at(nd.children[i-1])
			if prev.sentinel || (!cn.sentinel && prev.key >= cn.key) {
				return 0, fmt.Errorf("%w: children of node %d are not strictly ascending", ErrCorrupted, r)
			}
		}
		cl, cerr := t.checkNode(ch, visited)
		if cerr != nil {
			return 0, cerr
		}
		leaves += cl
	}
	return leaves, nil
}
