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

	"github.com/cybrota/structviz/structures"
)

// HeapHandler drives a binary min-heap. Heap node IDs are backing indices.
type HeapHandler struct {
	highlight
	heap *structures.MinHeap
}

func NewHeapHandler() *HeapHandler {
	return &HeapHandler{heap: structures.NewMinHeap()}
}

func (h *HeapHandler) Kind() structures.Kind { return structures.KindHeap }

func (h *HeapHandler) Usage() []string {
	return []string{"insert v...", "extract", "peek", "heapify v...", "clear"}
}

func (h *HeapHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.heap.Snapshot())
}

func (h *HeapHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "insert":
		values, err := cmd.IntArgs()
		if err != nil {
			return Result{}, err
		}
		at := 0
		for _, v := range values {
			at = h.heap.Insert(v)
		}
		last := values[len(values)-1]
		return h.remember(Result{
			Message: fmt.Sprintf("%d settled at index %d", last, at),
			Found:   true,
			Path:    []int{at},
		}), nil
	case "extract":
		v, ok := h.heap.ExtractMin()
		h.forget()
		if !ok {
			return Result{Message: "heap is empty"}, nil
		}
		return Result{Message: fmt.Sprintf("extracted %d", v), Found: true}, nil
	case "peek":
		v, ok := h.heap.Peek()
		if !ok {
			h.forget()
			return Result{Message: "heap is empty"}, nil
		}
		return h.remember(Result{Message: fmt.Sprintf("min is %d", v), Found: true, Path: []int{0}}), nil
	case "heapify":
		values, err := cmd.IntArgs()
		if err != nil {
			return Result{}, err
		}
		h.heap.Heapify(values)
		h.forget()
		return Result{Message: fmt.Sprintf("built heap of %d value(s)", len(values)), Found: true}, nil
	case "clear":
		h.heap.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}
