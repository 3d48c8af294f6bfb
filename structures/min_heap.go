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

// MinHeap is an array-backed complete binary tree where data[parent(i)] <= data[i].
type MinHeap struct {
	data []int
}

func NewMinHeap() *MinHeap {
	return &MinHeap{}
}

func parent(i int) int { return (i - 1) / 2 }

func (h *MinHeap) Len() int { return len(h.data) }

func (h *MinHeap) Clear() { h.data = h.data[:0] }

// Values returns a copy of the backing sequence.
func (h *MinHeap) Values() []int {
	out := make([]int, len(h.data))
	copy(out, h.data)
	return out
}

// Insert appends v and sifts it up. It returns the index v settled at.
func (h *MinHeap) Insert(v int) int {
	h.data = append(h.data, v)
	return h.up(len(h.data) - 1)
}

// Peek returns the minimum without removing it.
func (h *MinHeap) Peek() (int, bool) {
	if len(h.data) == 0 {
		return 0, false
	}
	return h.data[0], true
}

// ExtractMin removes and returns the minimum. An empty heap reports false
// and is left unchanged.
func (h *MinHeap) ExtractMin() (int, bool) {
	if len(h.data) == 0 {
		return 0, false
	}
	v := h.data[0]

	n := len(h.data) - 1
	h.data[0] = h.data[n]
	h.data = h.data[:n]
	if n > 0 {
		h.down(0)
	}
	return v, true
}

// Heapify replaces the contents with values and restores heap order bottom-up.
func (h *MinHeap) Heapify(values []int) {
	h.data = append(h.data[:0], values...)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

func (h *MinHeap) up(i int) int {
	for i > 0 {
		p := parent(i)
		if h.data[p] <= h.data[i] {
			break
		}
		h.data[p], h.data[i] = h.data[i], h.data[p]
		i = p
	}
	return i
}

func (h *MinHeap) down(i int) {
	n := len(h.data)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.data[l] < h.data[smallest] {
			smallest = l
		}
		if r < n && h.data[r] < h.data[smallest] {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}

// Levels splits the backing sequence into tree levels: level d holds the
// indices [2^d-1, 2^(d+1)-2].
func (h *MinHeap) Levels() [][]int {
	levels := [][]int{}
	for start, width := 0, 1; start < len(h.data); start, width = start+width, width*2 {
		end := min(start+width, len(h.data))
		level := make([]int, end-start)
		copy(level, h.data[start:end])
		levels = append(levels, level)
	}
	return levels
}

// Snapshot uses backing indices as node IDs.
func (h *MinHeap) Snapshot() Snapshot {
	snap := Snapshot{Kind: KindHeap, Size: len(h.data), Levels: h.Levels()}
	depth, levelStart := 0, 0
	for i, v := range h.data {
		if i >= 2*levelStart+1 {
			depth++
			levelStart = i
		}
		snap.Nodes = append(snap.Nodes, NodeView{ID: i, Label: strconv.Itoa(v), Depth: depth, Order: i - levelStart})
		snap.Items = append(snap.Items, strconv.Itoa(v))
		if i > 0 {
			label := "L"
			if i%2 == 0 {
				label = "R"
			}
			snap.Edges = append(snap.Edges, EdgeView{From: parent(i), To: i, Label: label})
		}
	}
	return snap
}
