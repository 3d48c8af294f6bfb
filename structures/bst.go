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

// BSTNode represents an individual element within the BinarySearchTree.
type BSTNode struct {
	Key         int
	Left, Right *BSTNode
}

// BinarySearchTree is an unbalanced ordered container of distinct integer
// keys. New keys always become leaves.
type BinarySearchTree struct {
	root *BSTNode
	size int
}

// NewBinarySearchTree returns an empty tree.
func NewBinarySearchTree() *BinarySearchTree {
	return &BinarySearchTree{}
}

func (bst *BinarySearchTree) Root() *BSTNode { return bst.root }

func (bst *BinarySearchTree) Len() int { return bst.size }

func (bst *BinarySearchTree) Clear() {
	bst.root = nil
	bst.size = 0
}

// Insert adds key as a new leaf. Duplicates are ignored and reported as false.
func (bst *BinarySearchTree) Insert(key int) bool {
	newNode := &BSTNode{Key: key}
	if bst.root == nil {
		bst.root = newNode
		bst.size++
		return true
	}
	if !bst.insertNode(bst.root, newNode) {
		return false
	}
	bst.size++
	return true
}

func (bst *BinarySearchTree) insertNode(current *BSTNode, newNode *BSTNode) bool {
	if newNode.Key < current.Key {
		if current.Left == nil {
			current.Left = newNode
			return true
		}
		return bst.insertNode(current.Left, newNode)
	} else if newNode.Key > current.Key {
		if current.Right == nil {
			current.Right = newNode
			return true
		}
		return bst.insertNode(current.Right, newNode)
	}
	return false
}

// Find returns the node holding key, or nil.
func (bst *BinarySearchTree) Find(key int) *BSTNode {
	current := bst.root
	for current != nil {
		switch {
		case key < current.Key:
			current = current.Left
		case key > current.Key:
			current = current.Right
		default:
			return current
		}
	}
	return nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (bst *BinarySearchTree) Height() int {
	var height func(n *BSTNode) int
	height = func(n *BSTNode) int {
		if n == nil {
			return 0
		}
		return max(height(n.Left), height(n.Right)) + 1
	}
	return height(bst.root)
}

// InOrder returns every key in ascending order.
func (bst *BinarySearchTree) InOrder() []int {
	keys := make([]int, 0, bst.size)
	bst.inOrderTraversal(bst.root, &keys)
	return keys
}

func (bst *BinarySearchTree) inOrderTraversal(node *BSTNode, keys *[]int) {
	if node != nil {
		bst.inOrderTraversal(node.Left, keys)
		*keys = append(*keys, node.Key)
		bst.inOrderTraversal(node.Right, keys)
	}
}

// Snapshot lists nodes in in-order position. Node IDs are the keys.
func (bst *BinarySearchTree) Snapshot() Snapshot {
	snap := Snapshot{Kind: KindBST, Size: bst.size}
	order := 0
	var walk func(n *BSTNode, depth int)
	walk = func(n *BSTNode, depth int) {
		if n == nil {
			return
		}
		walk(n.Left, depth+1)
		snap.Nodes = append(snap.Nodes, NodeView{ID: n.Key, Label: strconv.Itoa(n.Key), Depth: depth, Order: order})
		order++
		walk(n.Right, depth+1)
	}
	walk(bst.root, 0)

	// Edges in pre-order so a parent's edges precede its children's
	stack := []*BSTNode{}
	if bst.root != nil {
		stack = append(stack, bst.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Left != nil {
			snap.Edges = append(snap.Edges, EdgeView{From: n.Key, To: n.Left.Key, Label: "L"})
		}
		if n.Right != nil {
			snap.Edges = append(snap.Edges, EdgeView{From: n.Key, To: n.Right.Key, Label: "R"})
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return snap
}
