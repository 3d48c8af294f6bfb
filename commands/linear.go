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

// Linear visualizers highlight slot positions: index 0 is the top of a
// stack, the front of a queue and the head of a list.

type ArrayHandler struct {
	highlight
	array *structures.FixedArray
}

func NewArrayHandler(capacity int) (*ArrayHandler, error) {
	array, err := structures.NewFixedArray(capacity)
	if err != nil {
		return nil, err
	}
	return &ArrayHandler{array: array}, nil
}

func (h *ArrayHandler) Kind() structures.Kind { return structures.KindArray }

func (h *ArrayHandler) Usage() []string {
	return []string{"push v", "insert i v", "set i v", "remove i", "resize n", "clear"}
}

func (h *ArrayHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.array.Snapshot())
}

func (h *ArrayHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "push":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		if err := h.array.Push(cmd.Arg(0)); err != nil {
			return Result{}, err
		}
		at := h.array.Len() - 1
		return h.remember(Result{Message: fmt.Sprintf("pushed %s at %d", cmd.Arg(0), at), Found: true, Path: []int{at}}), nil
	case "insert", "set":
		i, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		if err := cmd.requireArgs(2); err != nil {
			return Result{}, err
		}
		write := h.array.InsertAt
		if cmd.Op == "set" {
			write = h.array.SetAt
		}
		if err := write(i, cmd.Arg(1)); err != nil {
			return Result{}, err
		}
		return h.remember(Result{Message: fmt.Sprintf("%s %s at %d", cmd.Op, cmd.Arg(1), i), Found: true, Path: []int{i}}), nil
	case "remove":
		i, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		v, err := h.array.RemoveAt(i)
		if err != nil {
			return Result{}, err
		}
		h.forget()
		return Result{Message: fmt.Sprintf("removed %s from %d", v, i), Found: true}, nil
	case "resize":
		n, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		if err := h.array.Resize(n); err != nil {
			return Result{}, err
		}
		h.forget()
		return Result{Message: fmt.Sprintf("capacity is now %d", n), Found: true}, nil
	case "clear":
		h.array.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

type StackHandler struct {
	highlight
	stack *structures.Stack
}

func NewStackHandler() *StackHandler {
	return &StackHandler{stack: structures.NewStack()}
}

func (h *StackHandler) Kind() structures.Kind { return structures.KindStack }

func (h *StackHandler) Usage() []string {
	return []string{"push v", "pop", "peek", "clear"}
}

func (h *StackHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.stack.Snapshot())
}

func (h *StackHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "push":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		for _, v := range cmd.Args {
			h.stack.Push(v)
		}
		return h.remember(Result{Message: fmt.Sprintf("pushed %d value(s)", len(cmd.Args)), Found: true, Path: []int{0}}), nil
	case "pop":
		h.forget()
		v, ok := h.stack.Pop()
		if !ok {
			return Result{Message: "stack is empty"}, nil
		}
		return Result{Message: "popped " + v, Found: true}, nil
	case "peek":
		v, ok := h.stack.Peek()
		if !ok {
			h.forget()
			return Result{Message: "stack is empty"}, nil
		}
		return h.remember(Result{Message: "top is " + v, Found: true, Path: []int{0}}), nil
	case "clear":
		h.stack.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

type QueueHandler struct {
	highlight
	queue *structures.Queue
}

func NewQueueHandler() *QueueHandler {
	return &QueueHandler{queue: structures.NewQueue()}
}

func (h *QueueHandler) Kind() structures.Kind { return structures.KindQueue }

func (h *QueueHandler) Usage() []string {
	return []string{"enqueue v", "dequeue", "peek", "clear"}
}

func (h *QueueHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.queue.Snapshot())
}

func (h *QueueHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "enqueue", "push":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		for _, v := range cmd.Args {
			h.queue.Enqueue(v)
		}
		back := h.queue.Len() - 1
		return h.remember(Result{Message: fmt.Sprintf("enqueued %d value(s)", len(cmd.Args)), Found: true, Path: []int{back}}), nil
	case "dequeue", "pop":
		h.forget()
		v, ok := h.queue.Dequeue()
		if !ok {
			return Result{Message: "queue is empty"}, nil
		}
		return Result{Message: "dequeued " + v, Found: true}, nil
	case "peek":
		v, ok := h.queue.Peek()
		if !ok {
			h.forget()
			return Result{Message: "queue is empty"}, nil
		}
		return h.remember(Result{Message: "front is " + v, Found: true, Path: []int{0}}), nil
	case "clear":
		h.queue.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}

type ListHandler struct {
	highlight
	list *structures.LinkedList
}

func NewListHandler() *ListHandler {
	return &ListHandler{list: structures.NewLinkedList()}
}

func (h *ListHandler) Kind() structures.Kind { return structures.KindList }

func (h *ListHandler) Usage() []string {
	return []string{"head v", "tail v", "delete v", "find v", "clear"}
}

func (h *ListHandler) Snapshot() structures.Snapshot {
	return h.decorate(h.list.Snapshot())
}

func (h *ListHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "head", "tail":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		v := cmd.Arg(0)
		at := 0
		if cmd.Op == "head" {
			h.list.InsertHead(v)
		} else {
			h.list.InsertTail(v)
			at = h.list.Len() - 1
		}
		return h.remember(Result{Message: fmt.Sprintf("inserted %s at %s", v, cmd.Op), Found: true, Path: []int{at}}), nil
	case "delete":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		h.forget()
		n := h.list.DeleteValue(cmd.Arg(0))
		if n == 0 {
			return Result{Message: fmt.Sprintf("%s not found", cmd.Arg(0))}, nil
		}
		return Result{Message: fmt.Sprintf("deleted %d node(s) holding %s", n, cmd.Arg(0)), Found: true}, nil
	case "find":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		i := h.list.IndexOf(cmd.Arg(0))
		if i < 0 {
			return h.remember(Result{Message: fmt.Sprintf("%s not found", cmd.Arg(0))}), nil
		}
		return h.remember(Result{Message: fmt.Sprintf("%s at position %d", cmd.Arg(0), i), Found: true, Path: []int{i}}), nil
	case "clear":
		h.list.Clear()
		h.forget()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}
