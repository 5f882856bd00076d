package trie

import (
	"strings"
	"testing"
)

func TestStringDump(t *testing.T) {
	trie := New[byte, int]()
	fill(t, trie, map[string]int{"ab": 1, "ac": 2})
	dump := trie.String()
	if !strings.Contains(dump, "$") {
		t.Errorf("expected dump to show the sentinel, got:\n%s", dump)
	}
	if !strings.Contains(dump, "●") {
		t.Errorf("expected dump to mark leaves, got:\n%s", dump)
	}
}

func TestDotOutput(t *testing.T) {
	trie := New[byte, int]()
	fill(t, trie, map[string]int{"ab": 1})
	var sb strings.Builder
	trie.Dot(&sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT header, got:\n%s", out)
	}
	if !strings.Contains(out, "->") {
		t.Errorf("expected edges in DOT output, got:\n%s", out)
	}
}
