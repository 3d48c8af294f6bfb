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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHeapOrder(t *testing.T, values []int) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		require.LessOrEqual(t, values[parent(i)], values[i], "index %d in %v", i, values)
	}
}

func TestMinHeapInsertSiftsUp(t *testing.T) {
	h := NewMinHeap()
	assert.Equal(t, 0, h.Insert(5))
	assert.Equal(t, 1, h.Insert(7))
	assert.Equal(t, 0, h.Insert(1))
	assert.Equal(t, []int{1, 7, 5}, h.Values())
	assert.Equal(t, 1, h.Insert(3))
	assert.Equal(t, []int{1, 3, 5, 7}, h.Values())
}

func TestMinHeapExtractMin(t *testing.T) {
	h := NewMinHeap()
	_, ok := h.ExtractMin()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())

	rng := rand.New(rand.NewSource(42))
	var inserted []int
	for i := 0; i < 64; i++ {
		v := rng.Intn(50)
		inserted = append(inserted, v)
		h.Insert(v)
		requireHeapOrder(t, h.Values())
	}
	slices.Sort(inserted)

	for _, want := range inserted {
		before := h.Len()
		min := slices.Min(h.Values())
		got, ok := h.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, min, got)
		assert.Equal(t, before-1, h.Len())
		requireHeapOrder(t, h.Values())
	}
	_, ok = h.ExtractMin()
	assert.False(t, ok)
}

func TestMinHeapExtractSingle(t *testing.T) {
	h := NewMinHeap()
	h.Insert(9)
	v, ok := h.ExtractMin()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
	assert.Empty(t, h.Values())
}

func TestMinHeapPeekAndHeapify(t *testing.T) {
	h := NewMinHeap()
	_, ok := h.Peek()
	assert.False(t, ok)

	h.Heapify([]int{9, 4, 7, 1, 8, 2, 6})
	requireHeapOrder(t, h.Values())
	v, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 7, h.Len())
}

func TestMinHeapLevels(t *testing.T) {
	h := NewMinHeap()
	assert.Empty(t, h.Levels())
	h.Heapify([]int{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, [][]int{{1}, {2, 3}, {4, 5, 6, 7}, {8}}, h.Levels())

	snap := h.Snapshot()
	assert.Equal(t, KindHeap, snap.Kind)
	require.Len(t, snap.Nodes, 8)
	assert.Equal(t, 3, snap.Nodes[7].Depth)
	assert.Equal(t, 0, snap.Nodes[7].Order)
	assert.Equal(t, 2, snap.Nodes[5].Order)
	assert.Equal(t, EdgeView{From: 0, To: 2, Label: "R"}, snap.Edges[1])
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, snap.Items)
}
