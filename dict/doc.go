/*
Package dict builds word dictionaries over running text, backed by an
ordered trie.

A Dict maps every word of the added text to its occurrence count. Because
the backing trie keeps keys in lexicographic order and groups them by shared
prefix, the dictionary supports ordered listing and prefix completion
without any post-processing — the classic autocomplete shape.

Word boundaries are found with UAX#14 line-wrap segmentation, trimmed down
to their letter/digit core.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2019–21, Semen Andreev

Please refer to the License file in the repository root.
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trie'
func tracer() tracing.Trace {
	return tracing.Select("trie")
}
