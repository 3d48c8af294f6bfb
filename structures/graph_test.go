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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSquareGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestGraphRejections(t *testing.T) {
	g := newSquareGraph(t)
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"empty label", g.AddVertex(""), ErrEmptyLabel},
		{"duplicate vertex", g.AddVertex("A"), ErrDuplicateVertex},
		{"self loop", g.AddEdge("A", "A"), ErrSelfLoop},
		{"unknown vertex", g.AddEdge("A", "Z"), ErrUnknownVertex},
		{"duplicate edge", g.AddEdge("A", "B"), ErrDuplicateEdge},
		{"duplicate reversed edge", g.AddEdge("B", "A"), ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.want)
		})
	}
	assert.Equal(t, 5, g.Len())
	assert.Len(t, g.Edges(), 5)
}

func TestGraphNeighborsAndTraversal(t *testing.T) {
	g := newSquareGraph(t)
	assert.Equal(t, []string{"B", "C", "E"}, g.Neighbors("D"))
	assert.True(t, g.HasEdge("D", "B"))
	assert.False(t, g.HasEdge("A", "E"))

	bfs, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, bfs)

	dfs, err := g.DFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, dfs)

	_, err = g.BFS("Q")
	assert.ErrorIs(t, err, ErrUnknownVertex)
	_, err = g.DFS("Q")
	assert.ErrorIs(t, err, ErrUnknownVertex)
}

func TestGraphTraversalStaysInComponent(t *testing.T) {
	g := newSquareGraph(t)
	require.NoError(t, g.AddVertex("island"))
	bfs, _ := g.BFS("island")
	assert.Equal(t, []string{"island"}, bfs)
	dfs, _ := g.DFS("E")
	assert.NotContains(t, dfs, "island")
}

func TestGraphClear(t *testing.T) {
	g := newSquareGraph(t)
	g.ClearEdges()
	assert.Equal(t, 5, g.Len())
	assert.Empty(t, g.Edges())
	assert.NoError(t, g.AddEdge("A", "B"))

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.NoError(t, g.AddVertex("A"))
}

func TestGraphSnapshot(t *testing.T) {
	g := newSquareGraph(t)
	snap := g.Snapshot()
	assert.Equal(t, KindGraph, snap.Kind)
	require.Len(t, snap.Nodes, 5)
	assert.Equal(t, NodeView{ID: 3, Label: "D", Order: 3}, snap.Nodes[3])
	assert.Equal(t, EdgeView{From: 3, To: 4}, snap.Edges[4])
}
