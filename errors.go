package trie

import "errors"

var (
	// ErrEmptyKey signals an insert with a zero-length key.
	ErrEmptyKey = errors.New("trie: empty key")
	// ErrDuplicateKey signals an insert for a key that is already stored.
	ErrDuplicateKey = errors.New("trie: key already exists")
	// ErrEmptyAdvance signals a cursor advance with a zero-length sub-key.
	ErrEmptyAdvance = errors.New("trie: empty sub-key")
	// ErrNoSuchPrefix signals a cursor advance along a path that does not exist.
	ErrNoSuchPrefix = errors.New("trie: no such prefix")
	// ErrOutOfRange signals cursor movement past either end of the container.
	ErrOutOfRange = errors.New("trie: cursor out of range")
	// ErrStaleCursor signals use of a cursor whose node has been destroyed.
	ErrStaleCursor = errors.New("trie: stale cursor")
	// ErrCorrupted signals a structural invariant violation found by Check.
	ErrCorrupted = errors.New("trie: structural invariant violated")
)
