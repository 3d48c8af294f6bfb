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

// Kind names a visualizer and the engine behind it.
type Kind string

const (
	KindBST   Kind = "bst"
	KindAVL   Kind = "avl"
	KindHeap  Kind = "heap"
	KindHash  Kind = "hash"
	KindTrie  Kind = "trie"
	KindGraph Kind = "graph"
	KindArray Kind = "array"
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
	KindList  Kind = "list"
)

// AllKinds lists every kind in display order.
var AllKinds = []Kind{
	KindAVL, KindBST, KindHeap, KindHash, KindTrie, KindGraph,
	KindArray, KindStack, KindQueue, KindList,
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, bool) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// NodeView is one drawable node. Depth is the distance from the root and
// Order the left-to-right position within the drawing.
type NodeView struct {
	ID      int    `json:"id" yaml:"id" cbor:"id"`
	Label   string `json:"label" yaml:"label" cbor:"label"`
	Depth   int    `json:"depth" yaml:"depth" cbor:"depth"`
	Order   int    `json:"order" yaml:"order" cbor:"order"`
	Height  int    `json:"height,omitempty" yaml:"height,omitempty" cbor:"height,omitempty"`
	WordEnd bool   `json:"word_end,omitempty" yaml:"word_end,omitempty" cbor:"word_end,omitempty"`
}

// EdgeView connects two NodeView IDs. Label is "L"/"R" for binary trees and
// the edge character for tries.
type EdgeView struct {
	From  int    `json:"from" yaml:"from" cbor:"from"`
	To    int    `json:"to" yaml:"to" cbor:"to"`
	Label string `json:"label,omitempty" yaml:"label,omitempty" cbor:"label,omitempty"`
}

// Location addresses one entry of a ChainedHashTable.
type Location struct {
	Bucket int `json:"bucket" yaml:"bucket" cbor:"bucket"`
	Index  int `json:"index" yaml:"index" cbor:"index"`
}

// Snapshot is a read-only copy of an engine's state, detached from the
// engine so it stays valid across later mutations.
type Snapshot struct {
	Kind     Kind       `json:"kind" yaml:"kind" cbor:"kind"`
	Size     int        `json:"size" yaml:"size" cbor:"size"`
	Capacity int        `json:"capacity,omitempty" yaml:"capacity,omitempty" cbor:"capacity,omitempty"`
	Nodes    []NodeView `json:"nodes,omitempty" yaml:"nodes,omitempty" cbor:"nodes,omitempty"`
	Edges    []EdgeView `json:"edges,omitempty" yaml:"edges,omitempty" cbor:"edges,omitempty"`
	Buckets  [][]Entry  `json:"buckets,omitempty" yaml:"buckets,omitempty" cbor:"buckets,omitempty"`
	Items    []string   `json:"items,omitempty" yaml:"items,omitempty" cbor:"items,omitempty"`
	Levels   [][]int    `json:"levels,omitempty" yaml:"levels,omitempty" cbor:"levels,omitempty"`
	Touched  *Location  `json:"touched,omitempty" yaml:"touched,omitempty" cbor:"touched,omitempty"`
	Path     []int      `json:"path,omitempty" yaml:"path,omitempty" cbor:"path,omitempty"`
}

// Children groups the snapshot edges by parent ID, preserving edge order.
func (s Snapshot) Children() map[int][]EdgeView {
	children := make(map[int][]EdgeView, len(s.Nodes))
	for _, e := range s.Edges {
		children[e.From] = append(children[e.From], e)
	}
	return children
}

// Node returns the node with the given ID.
func (s Snapshot) Node(id int) (NodeView, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeView{}, false
}

// OnPath reports whether id is one of the highlighted node IDs.
func (s Snapshot) OnPath(id int) bool {
	for _, p := range s.Path {
		if p == id {
			return true
		}
	}
	return false
}
