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
	"strings"

	"github.com/cybrota/structviz/structures"
)

// TrieHandler drives a prefix trie
type TrieHandler struct {
	highlight
	trie *structures.Trie
}

func NewTrieHandler() *TrieHandler {
	return &TrieHandler{trie: structures.NewTrie()}
}

func (h *TrieHandler) Kind() structures.Kind { return structures.KindTrie }

func (h *TrieHandler) Usage() []string {
	return []string{"insert w...", "match p", "contains w", "prefix p", "clear"}
}

func (h *TrieHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.trie.Snapshot())
}

func (h *TrieHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "insert":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		for _, w := range cmd.Args {
			if w == "" {
				return Result{}, structures.ErrEmptyWord
			}
		}
		for _, w := range cmd.Args {
			if _, err := h.trie.Insert(w); err != nil {
				return Result{}, err
			}
		}
		last := cmd.Args[len(cmd.Args)-1]
		return h.remember(Result{
			Message: fmt.Sprintf("inserted %s (%d words, %d nodes)", strings.Join(cmd.Args, ", "), h.trie.Len(), h.trie.NodeCount()),
			Found:   true,
			Path:    nodeIDs(h.trie.MatchPrefix(last)),
		}), nil
	case "match":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		prefix := cmd.Arg(0)
		path := h.trie.MatchPrefix(prefix)
		if path == nil {
			return h.remember(Result{Message: fmt.Sprintf("no path for %q", prefix)}), nil
		}
		end := path[len(path)-1]
		msg := fmt.Sprintf("%q reaches node %d", prefix, end.ID)
		if end.IsWordEnd {
			msg += " (word end)"
		}
		return h.remember(Result{Message: msg, Found: true, Path: nodeIDs(path)}), nil
	case "contains", "search":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		word := cmd.Arg(0)
		if !h.trie.Contains(word) {
			return h.remember(Result{Message: fmt.Sprintf("%q is not a stored word", word)}), nil
		}
		return h.remember(Result{
			Message: fmt.Sprintf("%q is a stored word", word),
			Found:   true,
			Path:    nodeIDs(h.trie.MatchPrefix(word)),
		}), nil
	case "prefix", "startswith":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		prefix := cmd.Arg(0)
		words := h.trie.WithPrefix(prefix)
		return h.remember(Result{
			Message: fmt.Sprintf("%d word(s) start with %q: %s", len(words), prefix, strings.Join(words, " ")),
			Found:   len(words) > 0,
			Path:    nodeIDs(h.trie.MatchPrefix(prefix)),
		}), nil
	case "clear":
		h.trie.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

func nodeIDs(path []*structures.TrieNode) []int {
	if path == nil {
		return nil
	}
	ids := make([]int, len(path))
	for i, n := range path {
		ids[i] = n.ID
	}
	return ids
}
