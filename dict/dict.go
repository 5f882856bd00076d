package dict

import (
	"bufio"
	"iter"
	"strings"
	"unicode"

	trie "github.com/AndreevSemen/trie-impl"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Dict is a word-frequency dictionary over running text.
//
// Words are stored as rune sequences in an ordered trie, mapping each word
// to its occurrence count. Like the backing trie, a Dict performs no
// internal synchronization.
type Dict struct {
	words *trie.Trie[rune, int]
}

// New creates an empty dictionary.
func New() *Dict {
	return &Dict{words: trie.New[rune, int]()}
}

// FromText creates a dictionary holding the words of text.
func FromText(text string) *Dict {
	d := New()
	d.Add(text)
	return d
}

// Add segments text into words and counts them into the dictionary.
func (d *Dict) Add(text string) {
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		word := trimToWord(string(segmenter.Bytes()))
		if word == "" {
			continue
		}
		d.count(word)
	}
	tracer().Debugf("dict add: %d distinct words", d.Len())
}

// trimToWord strips a segment down to its letter/digit core. Segment breaks
// follow line-wrap opportunities, so a raw segment may carry trailing
// spaces or punctuation.
func trimToWord(seg string) string {
	return strings.TrimFunc(seg, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (d *Dict) count(word string) {
	key := []rune(word)
	if c := d.words.Find(key); c != d.words.End() {
		n, err := c.Value()
		if err == nil {
			err = c.SetValue(n + 1)
		}
		if err != nil {
			tracer().Errorf("dict count: %v", err)
		}
		return
	}
	if _, err := d.words.Insert(key, 1); err != nil {
		tracer().Errorf("dict count: %v", err)
	}
}

// Len returns the number of distinct words.
func (d *Dict) Len() int {
	return d.words.Len()
}

// Count returns the occurrence count of word, or 0 if word is unknown.
func (d *Dict) Count(word string) int {
	n, ok := d.words.Value([]rune(word))
	if !ok {
		return 0
	}
	return n
}

// Words returns an iterator over (word, count) pairs in ascending
// lexicographic word order.
func (d *Dict) Words() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for k, n := range d.words.All() {
			if !yield(string(k), n) {
				return
			}
		}
	}
}

// Suggest returns all stored words starting with prefix, in ascending
// lexicographic order.
func (d *Dict) Suggest(prefix string) []string {
	var matches []string
	for k := range d.words.WithPrefix([]rune(prefix)) {
		matches = append(matches, string(k))
	}
	return matches
}

// LongestWord returns the longest stored word. The second return value is
// false for an empty dictionary.
func (d *Dict) LongestWord() (string, bool) {
	c := d.words.FindLongestPrefix()
	if c == d.words.End() {
		return "", false
	}
	k, err := c.Key()
	if err != nil {
		tracer().Errorf("dict longest word: %v", err)
		return "", false
	}
	return string(k), true
}

// Trie exposes the backing trie, e.g. for structure dumps.
func (d *Dict) Trie() *trie.Trie[rune, int] {
	return d.words
}
