// Command triedump builds a word dictionary from text input and dumps it.
//
// Usage:
//
//	triedump [-dot|-tree] [file...]
//
// Reads the given files (or stdin) and prints every word with its occurrence
// count in lexicographic order. With -tree the internal trie structure is
// printed instead, with -dot it is emitted in Graphviz DOT format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AndreevSemen/trie-impl/dict"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	dotOutput  = flag.Bool("dot", false, "emit the trie structure in Graphviz DOT format")
	treeOutput = flag.Bool("tree", false, "print the trie structure as a tree")
)

func main() {
	flag.Parse()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "triedump: %v\n", err)
		os.Exit(1)
	}
	d := dict.FromText(text)
	switch {
	case *dotOutput:
		d.Trie().Dot(os.Stdout)
	case *treeOutput:
		fmt.Print(d.Trie().String())
	default:
		listWords(d)
	}
}

func readInput(files []string) (string, error) {
	if len(files) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	var text string
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return "", err
		}
		text += string(b) + "\n"
	}
	return text, nil
}

func listWords(d *dict.Dict) {
	countColor := color.New(color.FgCyan)
	for word, n := range d.Words() {
		fmt.Printf("%-24s %s\n", word, countColor.Sprintf("%d", n))
	}
	if w, ok := d.LongestWord(); ok {
		fmt.Printf("%d distinct words, longest: %s\n", d.Len(), color.New(color.Bold).Sprint(w))
	}
}
