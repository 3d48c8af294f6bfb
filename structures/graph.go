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

import "fmt"

// GraphEdge is an unordered pair of vertex labels.
type GraphEdge struct {
	U string `json:"u" yaml:"u" cbor:"u"`
	V string `json:"v" yaml:"v" cbor:"v"`
}

// Graph is a simple undirected graph: distinct labels, no self loops, no
// parallel edges. Vertices and edges keep insertion order.
type Graph struct {
	vertices []string
	index    map[string]int
	edges    []GraphEdge
	edgeSet  map[[2]string]struct{}
}

func NewGraph() *Graph {
	return &Graph{
		index:   make(map[string]int),
		edgeSet: make(map[[2]string]struct{}),
	}
}

func edgeKey(u, v string) [2]string {
	if v < u {
		u, v = v, u
	}
	return [2]string{u, v}
}

func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if _, ok := g.index[label]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, label)
	}
	g.index[label] = len(g.vertices)
	g.vertices = append(g.vertices, label)
	return nil
}

// AddEdge connects u and v. Both must exist, differ, and not already be
// connected in either orientation.
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}
	for _, label := range []string{u, v} {
		if _, ok := g.index[label]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, label)
		}
	}
	key := edgeKey(u, v)
	if _, ok := g.edgeSet[key]; ok {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, u, v)
	}
	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, GraphEdge{U: u, V: v})
	return nil
}

func (g *Graph) HasVertex(label string) bool {
	_, ok := g.index[label]
	return ok
}

func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.edgeSet[edgeKey(u, v)]
	return ok
}

// Neighbors lists the vertices adjacent to label in edge insertion order.
func (g *Graph) Neighbors(label string) []string {
	out := []string{}
	for _, e := range g.edges {
		switch label {
		case e.U:
			out = append(out, e.V)
		case e.V:
			out = append(out, e.U)
		}
	}
	return out
}

// BFS returns the breadth-first visit order from start.
func (g *Graph) BFS(start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, start)
	}
	order := []string{}
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range g.Neighbors(v) {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return order, nil
}

// DFS returns the depth-first (preorder) visit order from start.
func (g *Graph) DFS(start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, start)
	}
	order := []string{}
	visited := map[string]bool{}
	var visit func(v string)
	visit = func(v string) {
		visited[v] = true
		order = append(order, v)
		for _, w := range g.Neighbors(v) {
			if !visited[w] {
				visit(w)
			}
		}
	}
	visit(start)
	return order, nil
}

func (g *Graph) Vertices() []string {
	return append([]string{}, g.vertices...)
}

func (g *Graph) Edges() []GraphEdge {
	return append([]GraphEdge{}, g.edges...)
}

func (g *Graph) Len() int { return len(g.vertices) }

// ClearEdges removes every edge and keeps the vertices.
func (g *Graph) ClearEdges() {
	g.edges = nil
	g.edgeSet = make(map[[2]string]struct{})
}

func (g *Graph) Clear() {
	g.ClearEdges()
	g.vertices = nil
	g.index = make(map[string]int)
}

// Snapshot uses vertex insertion positions as node IDs.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{Kind: KindGraph, Size: len(g.vertices)}
	for i, v := range g.vertices {
		snap.Nodes = append(snap.Nodes, NodeView{ID: i, Label: v, Order: i})
	}
	for _, e := range g.edges {
		snap.Edges = append(snap.Edges, EdgeView{From: g.index[e.U], To: g.index[e.V]})
	}
	return snap
}
