package trie

import (
	"fmt"
	"io"
)

// Dot outputs the internal structure of a trie in Graphviz DOT format
// (for debugging purposes).
func (t *Trie[K, V]) Dot(w io.Writer) {
	t.ensureInit()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	t.dotNode(w, t.root)
	io.WriteString(w, "}\n")
}

func (t *Trie[K, V]) dotNode(w io.Writer, r ref) {
	nd := t.at(r)
	switch {
	case r == t.root:
		fmt.Fprintf(w, "\t\"%d\" [label=\"root\" shape=circle];\n", r)
	case nd.sentinel:
		fmt.Fprintf(w, "\t\"%d\" [label=\"$\" shape=doublecircle style=dashed];\n", r)
	case nd.leaf:
		fmt.Fprintf(w, "\t\"%d\" [label=\"%v\\n%v\" shape=box style=filled fillcolor=grey92];\n",
			r, nd.key, nd.value)
	default:
		fmt.Fprintf(w, "\t\"%d\" [label=\"%v\" shape=circle];\n", r, nd.key)
	}
	for _, ch := range nd.children {
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", r, ch)
		t.dotNode(w, ch)
	}
}
