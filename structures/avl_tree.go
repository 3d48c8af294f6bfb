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

import "strconv"

type AVLNode struct {
	Key    int
	Height int // 1 for a leaf
	Left   *AVLNode
	Right  *AVLNode
}

// AVLTree is a height-balanced binary search tree of distinct integer keys.
// Deletion is not supported.
type AVLTree struct {
	root *AVLNode
	size int
}

func NewAVLTree() *AVLTree {
	return &AVLTree{}
}

func (tree *AVLTree) Root() *AVLNode { return tree.root }

func (tree *AVLTree) Len() int { return tree.size }

// Height returns the height of the whole tree, 0 when empty.
func (tree *AVLTree) Height() int { return tree.getHeight(tree.root) }

func (tree *AVLTree) Clear() {
	tree.root = nil
	tree.size = 0
}

func (tree *AVLTree) getHeight(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *AVLTree) updateHeight(node *AVLNode) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *AVLTree) getBalanceFactor(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *AVLTree) rotateLeft(node *AVLNode) *AVLNode {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	// node is now below pivot, so it goes first
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *AVLTree) rotateRight(node *AVLNode) *AVLNode {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// Insert adds key to the tree and rebalances every ancestor on the way back
// up. It reports false when the key was already present.
func (tree *AVLTree) Insert(key int) bool {
	inserted := false
	tree.root = tree.insertRecursive(tree.root, key, &inserted)
	if inserted {
		tree.size++
	}
	return inserted
}

func (tree *AVLTree) insertRecursive(node *AVLNode, key int, inserted *bool) *AVLNode {
	if node == nil {
		*inserted = true
		return &AVLNode{Key: key, Height: 1}
	}

	if key < node.Key {
		node.Left = tree.insertRecursive(node.Left, key, inserted)
	} else if key > node.Key {
		node.Right = tree.insertRecursive(node.Right, key, inserted)
	} else {
		// Duplicate keys are ignored, first insert wins
		return node
	}

	tree.updateHeight(node)
	return tree.rebalance(node)
}

func (tree *AVLTree) rebalance(node *AVLNode) *AVLNode {
	balanceFactor := tree.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.Left) < 0 {
			// Left-Right case
			node.Left = tree.rotateLeft(node.Left)
		}
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.Right) > 0 {
			// Right-Left case
			node.Right = tree.rotateRight(node.Right)
		}
		return tree.rotateLeft(node)
	}

	return node
}

// Find returns the node holding key, or nil.
func (tree *AVLTree) Find(key int) *AVLNode {
	return searchNode(tree.root, key)
}

func searchNode(node *AVLNode, key int) *AVLNode {
	if node == nil {
		return nil
	}

	if key < node.Key {
		return searchNode(node.Left, key)
	} else if key > node.Key {
		return searchNode(node.Right, key)
	}
	return node
}

// rangeSearch traverses the subtree rooted at 'node' and appends to 'results'
// every key satisfying low <= Key <= high, in ascending order.
func rangeSearch(node *AVLNode, low, high int, results *[]int) {
	if node == nil {
		return
	}

	// If node.Key can still be > low, we must check the left subtree
	if node.Key > low {
		rangeSearch(node.Left, low, high, results)
	}

	if node.Key >= low && node.Key <= high {
		*results = append(*results, node.Key)
	}

	if node.Key < high {
		rangeSearch(node.Right, low, high, results)
	}
}

// Range returns the keys in [low, high] in ascending order.
func (tree *AVLTree) Range(low, high int) []int {
	results := []int{}
	if low > high {
		return results
	}
	rangeSearch(tree.root, low, high, &results)
	return results
}

// InOrder returns every key in ascending order.
func (tree *AVLTree) InOrder() []int {
	keys := make([]int, 0, tree.size)
	var walk func(n *AVLNode)
	walk = func(n *AVLNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		keys = append(keys, n.Key)
		walk(n.Right)
	}
	walk(tree.root)
	return keys
}

// Snapshot lists nodes in in-order position with their heights. Node IDs are
// the keys themselves.
func (tree *AVLTree) Snapshot() Snapshot {
	snap := Snapshot{Kind: KindAVL, Size: tree.size}
	order := 0
	var nodes func(n *AVLNode, depth int)
	nodes = func(n *AVLNode, depth int) {
		if n == nil {
			return
		}
		nodes(n.Left, depth+1)
		snap.Nodes = append(snap.Nodes, NodeView{
			ID: n.Key, Label: strconv.Itoa(n.Key), Depth: depth, Order: order, Height: n.Height,
		})
		order++
		nodes(n.Right, depth+1)
	}
	nodes(tree.root, 0)

	var edges func(n *AVLNode)
	edges = func(n *AVLNode) {
		if n == nil {
			return
		}
		if n.Left != nil {
			snap.Edges = append(snap.Edges, EdgeView{From: n.Key, To: n.Left.Key, Label: "L"})
		}
		if n.Right != nil {
			snap.Edges = append(snap.Edges, EdgeView{From: n.Key, To: n.Right.Key, Label: "R"})
		}
		edges(n.Left)
		edges(n.Right)
	}
	edges(tree.root)
	return snap
}
