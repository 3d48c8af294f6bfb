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

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/structviz/structures"
)

// BSTHandler drives a plain binary search tree
type BSTHandler struct {
	highlight
	tree *structures.BinarySearchTree
}

func NewBSTHandler() *BSTHandler {
	return &BSTHandler{tree: structures.NewBinarySearchTree()}
}

func (h *BSTHandler) Kind() structures.Kind { return structures.KindBST }

func (h *BSTHandler) Usage() []string {
	return []string{"insert k...", "find k", "inorder", "clear"}
}

func (h *BSTHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.tree.Snapshot())
}

func (h *BSTHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "insert":
		keys, err := cmd.IntArgs()
		if err != nil {
			return Result{}, err
		}
		added := 0
		for _, k := range keys {
			if h.tree.Insert(k) {
				added++
			}
		}
		last := keys[len(keys)-1]
		path, _ := bstPath(h.tree.Root(), last)
		return h.remember(Result{Message: insertMessage(keys, added), Found: true, Path: path}), nil
	case "find":
		k, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		path, found := bstPath(h.tree.Root(), k)
		return h.remember(findResult(k, path, found)), nil
	case "inorder":
		h.forget()
		return Result{Message: "in-order: " + joinInts(h.tree.InOrder()), Found: true}, nil
	case "clear":
		h.tree.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

// AVLHandler drives a self-balancing AVL tree
type AVLHandler struct {
	highlight
	tree *structures.AVLTree
}

func NewAVLHandler() *AVLHandler {
	return &AVLHandler{tree: structures.NewAVLTree()}
}

func (h *AVLHandler) Kind() structures.Kind { return structures.KindAVL }

func (h *AVLHandler) Usage() []string {
	return []string{"insert k...", "find k", "range lo hi", "inorder", "clear"}
}

func (h *AVLHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.tree.Snapshot())
}

func (h *AVLHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "insert":
		keys, err := cmd.IntArgs()
		if err != nil {
			return Result{}, err
		}
		added := 0
		for _, k := range keys {
			if h.tree.Insert(k) {
				added++
			}
		}
		last := keys[len(keys)-1]
		path, _ := avlPath(h.tree.Root(), last)
		return h.remember(Result{Message: insertMessage(keys, added), Found: true, Path: path}), nil
	case "find":
		k, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		path, found := avlPath(h.tree.Root(), k)
		return h.remember(findResult(k, path, found)), nil
	case "range":
		lo, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		hi, err := cmd.IntArg(1)
		if err != nil {
			return Result{}, err
		}
		keys := h.tree.Range(lo, hi)
		return h.remember(Result{
			Message: fmt.Sprintf("%d key(s) in [%d, %d]: %s", len(keys), lo, hi, joinInts(keys)),
			Found:   len(keys) > 0,
			Path:    keys,
		}), nil
	case "inorder":
		h.forget()
		return Result{Message: "in-order: " + joinInts(h.tree.InOrder()), Found: true}, nil
	case "clear":
		h.tree.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

// bstPath returns the keys visited while searching for key. Tree snapshots
// use keys as node IDs.
func bstPath(n *structures.BSTNode, key int) ([]int, bool) {
	var path []int
	for n != nil {
		path = append(path, n.Key)
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return path, true
		}
	}
	return path, false
}

func avlPath(n *structures.AVLNode, key int) ([]int, bool) {
	var path []int
	for n != nil {
		path = append(path, n.Key)
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return path, true
		}
	}
	return path, false
}

func insertMessage(keys []int, added int) string {
	if len(keys) == 1 && added == 0 {
		return fmt.Sprintf("%d already present", keys[0])
	}
	return fmt.Sprintf("inserted %d of %d key(s)", added, len(keys))
}

func findResult(key int, path []int, found bool) Result {
	if !found {
		return Result{Message: fmt.Sprintf("%d not found after %d comparison(s)", key, len(path)), Path: path}
	}
	return Result{Message: fmt.Sprintf("found %d at depth %d", key, len(path)-1), Found: true, Path: path}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
