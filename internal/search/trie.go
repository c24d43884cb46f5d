// Package search provides the prefix index used for product name lookup.
package search

import "strings"

type node struct {
	children map[rune]*node
	end      bool
	word     string
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// PrefixIndex is a trie over case-folded words. It is built once per catalog
// snapshot and rebuilt when the snapshot changes; it is not safe for
// concurrent mutation, but read-only use after building is.
type PrefixIndex struct {
	root *node
}

// BuildPrefixIndex inserts every word into a fresh index.
func BuildPrefixIndex(words []string) *PrefixIndex {
	idx := &PrefixIndex{root: newNode()}
	for _, w := range words {
		idx.Insert(w)
	}
	return idx
}

// Insert adds word, O(len(word)). The original casing is kept for results.
func (t *PrefixIndex) Insert(word string) {
	n := t.root
	for _, ch := range strings.ToLower(word) {
		next, ok := n.children[ch]
		if !ok {
			next = newNode()
			n.children[ch] = next
		}
		n = next
	}
	n.end = true
	n.word = word
}

// Search is an exact membership check, case-insensitive, O(len(word)).
func (t *PrefixIndex) Search(word string) bool {
	n := t.walk(word)
	return n != nil && n.end
}

// StartsWith returns the original-cased words whose folded form starts with
// the folded prefix, in depth-first order (child order unspecified). An
// empty prefix returns nothing: callers query with non-empty trimmed input.
func (t *PrefixIndex) StartsWith(prefix string) []string {
	if strings.TrimSpace(prefix) == "" {
		return nil
	}
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, &out)
	return out
}

func (t *PrefixIndex) walk(s string) *node {
	n := t.root
	for _, ch := range strings.ToLower(s) {
		next, ok := n.children[ch]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}

func collect(n *node, out *[]string) {
	if n.end {
		*out = append(*out, n.word)
	}
	for _, child := range n.children {
		collect(child, out)
	}
}
