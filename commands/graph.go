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
	"slices"
	"strings"

	"github.com/cybrota/structviz/structures"
)

// GraphHandler drives an undirected simple graph. Node IDs are vertex
// insertion positions.
type GraphHandler struct {
	highlight
	graph *structures.Graph
}

func NewGraphHandler() *GraphHandler {
	return &GraphHandler{graph: structures.NewGraph()}
}

func (h *GraphHandler) Kind() structures.Kind { return structures.KindGraph }

func (h *GraphHandler) Usage() []string {
	return []string{"vertex l...", "edge u v", "bfs s", "dfs s", "clear-edges", "clear"}
}

func (h *GraphHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.graph.Snapshot())
}

func (h *GraphHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "vertex", "add":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		// validate the whole batch first so a bad label adds nothing
		seen := map[string]bool{}
		for _, l := range cmd.Args {
			if l == "" {
				return Result{}, structures.ErrEmptyLabel
			}
			if seen[l] || h.graph.HasVertex(l) {
				return Result{}, fmt.Errorf("%w: %q", structures.ErrDuplicateVertex, l)
			}
			seen[l] = true
		}
		for _, l := range cmd.Args {
			if err := h.graph.AddVertex(l); err != nil {
				return Result{}, err
			}
		}
		return h.remember(Result{
			Message: fmt.Sprintf("added %s", strings.Join(cmd.Args, ", ")),
			Found:   true,
			Path:    h.ids(cmd.Args),
		}), nil
	case "edge", "connect":
		if err := cmd.requireArgs(2); err != nil {
			return Result{}, err
		}
		u, v := cmd.Arg(0), cmd.Arg(1)
		if err := h.graph.AddEdge(u, v); err != nil {
			return Result{}, err
		}
		return h.remember(Result{
			Message: fmt.Sprintf("connected %s-%s", u, v),
			Found:   true,
			Path:    h.ids([]string{u, v}),
		}), nil
	case "bfs", "dfs":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		traverse := h.graph.BFS
		if cmd.Op == "dfs" {
			traverse = h.graph.DFS
		}
		order, err := traverse(cmd.Arg(0))
		if err != nil {
			return Result{}, err
		}
		return h.remember(Result{
			Message: fmt.Sprintf("%s from %s: %s", strings.ToUpper(cmd.Op), cmd.Arg(0), strings.Join(order, " ")),
			Found:   true,
			Path:    h.ids(order),
		}), nil
	case "clear-edges":
		h.graph.ClearEdges()
		h.forget()
		return Result{Message: "edges cleared"}, nil
	case "clear":
		h.graph.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

func (h *GraphHandler) ids(labels []string) []int {
	vertices := h.graph.Vertices()
	ids := make([]int, 0, len(labels))
	for _, l := range labels {
		if i := slices.Index(vertices, l); i >= 0 {
			ids = append(ids, i)
		}
	}
	return ids
}
