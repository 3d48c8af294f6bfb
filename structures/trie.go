// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package structures

import (
	"github.com/willf/bloom"
)

const (
	trieFilterCapacity = 1024
	trieFilterFPRate   = 0.01
)

// TrieNode is owned by its parent through the children map. Char is zero for
// the root.
type TrieNode struct {
	ID        int
	Char      rune
	IsWordEnd bool
	children  map[rune]*TrieNode
	order     []rune // insertion order of children
}

// Child returns the child reached over c, or nil.
func (n *TrieNode) Child(c rune) *TrieNode {
	return n.children[c]
}

// Children returns the children in the order their edges were created.
func (n *TrieNode) Children() []*TrieNode {
	out := make([]*TrieNode, 0, len(n.order))
	for _, c := range n.order {
		out = append(out, n.children[c])
	}
	return out
}

// Trie is a character-indexed prefix tree. Node IDs come from a counter owned
// by the trie and are never reused, not even after Clear.
type Trie struct {
	root   *TrieNode
	nextID int
	words  int
	nodes  int
	filter *bloom.BloomFilter
}

func NewTrie() *Trie {
	t := &Trie{
		nextID: 1,
		filter: bloom.NewWithEstimates(trieFilterCapacity, trieFilterFPRate),
	}
	t.root = t.newNode(0)
	return t
}

func (t *Trie) newNode(c rune) *TrieNode {
	n := &TrieNode{ID: t.nextID, Char: c, children: make(map[rune]*TrieNode)}
	t.nextID++
	t.nodes++
	return n
}

func (t *Trie) Root() *TrieNode { return t.root }

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.words }

// NodeCount includes the root.
func (t *Trie) NodeCount() int { return t.nodes }

// Insert walks word rune by rune, creating missing edges, and marks the last
// node as a word end. Shared prefixes reuse existing nodes.
func (t *Trie) Insert(word string) (*TrieNode, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	cur := t.root
	for _, c := range word {
		next, ok := cur.children[c]
		if !ok {
			next = t.newNode(c)
			cur.children[c] = next
			cur.order = append(cur.order, c)
		}
		cur = next
	}
	if !cur.IsWordEnd {
		cur.IsWordEnd = true
		t.words++
		t.filter.AddString(word)
	}
	return cur, nil
}

// MatchPrefix returns the nodes from the root to the node reached by prefix,
// inclusive. If any character has no edge the result is nil: a miss never
// yields a partial path.
func (t *Trie) MatchPrefix(prefix string) []*TrieNode {
	path := []*TrieNode{t.root}
	cur := t.root
	for _, c := range prefix {
		cur = cur.children[c]
		if cur == nil {
			return nil
		}
		path = append(path, cur)
	}
	return path
}

// Contains reports whether word was inserted as a whole word.
func (t *Trie) Contains(word string) bool {
	if word == "" || !t.filter.TestString(word) {
		return false
	}
	path := t.MatchPrefix(word)
	return path != nil && path[len(path)-1].IsWordEnd
}

// WithPrefix lists the stored words starting with prefix, depth first in
// child insertion order.
func (t *Trie) WithPrefix(prefix string) []string {
	path := t.MatchPrefix(prefix)
	if path == nil {
		return []string{}
	}
	words := []string{}
	collectWords(path[len(path)-1], []rune(prefix), &words)
	return words
}

// Words lists every stored word.
func (t *Trie) Words() []string {
	return t.WithPrefix("")
}

func collectWords(n *TrieNode, prefix []rune, words *[]string) {
	if n.IsWordEnd {
		*words = append(*words, string(prefix))
	}
	for _, c := range n.order {
		collectWords(n.children[c], append(prefix, c), words)
	}
}

// Clear drops every word. The ID counter keeps advancing.
func (t *Trie) Clear() {
	t.nodes = 0
	t.words = 0
	t.filter.ClearAll()
	t.root = t.newNode(0)
}

// Snapshot lays the trie out breadth first; Order is the position within a level.
func (t *Trie) Snapshot() Snapshot {
	snap := Snapshot{Kind: KindTrie, Size: t.words}
	type item struct {
		node  *TrieNode
		depth int
	}
	queue := []item{{t.root, 0}}
	perLevel := map[int]int{}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		label := string(it.node.Char)
		if it.node == t.root {
			label = "•"
		}
		snap.Nodes = append(snap.Nodes, NodeView{
			ID: it.node.ID, Label: label, Depth: it.depth, Order: perLevel[it.depth], WordEnd: it.node.IsWordEnd,
		})
		perLevel[it.depth]++
		for _, child := range it.node.Children() {
			snap.Edges = append(snap.Edges, EdgeView{From: it.node.ID, To: child.ID, Label: string(child.Char)})
			queue = append(queue, item{child, it.depth + 1})
		}
	}
	return snap
}
