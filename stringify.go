package trie

import (
	"fmt"
	"strings"
)

// String returns a multi-line hierarchical dump of the trie structure
// (for debugging purposes).
func (t *Trie[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("▼\n")
	if len(t.nodes) == 0 {
		return sb.String()
	}
	t.dumpNode(&sb, t.root, "")
	return sb.String()
}

func (t *Trie[K, V]) dumpNode(sb *strings.Builder, r ref, indent string) {
	nd := t.at(r)
	for i, ch := range nd.children {
		cn := t.at(ch)
		last := i == len(nd.children)-1
		branch, childIndent := "├─ ", indent+"│  "
		if last {
			branch, childIndent = "└─ ", indent+"   "
		}
		sb.WriteString(indent)
		sb.WriteString(branch)
		switch {
		case cn.sentinel:
			sb.WriteString("$")
		case cn.leaf:
			fmt.Fprintf(sb, "%v ●(%v)", cn.key, cn.value)
		default:
			fmt.Fprintf(sb, "%v", cn.key)
		}
		sb.WriteString("\n")
		t.dumpNode(sb, ch, childIndent)
	}
}
