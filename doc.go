/*
Package trie implements a generic ordered prefix tree.

Tries

A trie maps sequences of a comparable key-unit type to arbitrary values and
keeps the stored keys in ascending lexicographic order. Keys sharing a common
prefix share the nodes for that prefix, which makes tries a natural fit for
autocomplete dictionaries, routing tables and symbol tables: lookup cost is
proportional to the key length, not to the number of stored keys, and ordered
iteration falls out of the structure.

	Operation     |   Trie            |  Sorted map
	--------------+-------------------+------------
	Find          |   O(k · log c)    |   O(log n)
	Insert        |   O(k · log c)    |   O(log n)
	Erase         |   O(k)            |   O(log n)
	Successor     |   O(k)            |   O(log n)

with k the key length and c the per-node fan-out. A node's children are kept
sorted by key-unit, so walking the tree leaf to leaf visits keys in
lexicographic order without ever materializing the full key set.

Nodes live in a flat arena addressed by stable slot indices. Cursors carry a
slot index plus a generation counter and fail with ErrStaleCursor once their
node has been destroyed by Erase or Clear, rather than silently reading
recycled storage.

The container performs no internal synchronization. Concurrent mutation, or
mutation concurrent with iteration, must be serialized by the caller.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2019–21, Semen Andreev

Please refer to the License file in the repository root.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trie'
func tracer() tracing.Trace {
	return tracing.Select("trie")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
