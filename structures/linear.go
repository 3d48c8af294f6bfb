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

// Stack is LIFO. Values lists the top first.
type Stack struct {
	items []string
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) Push(v string) { s.items = append(s.items, v) }

func (s *Stack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *Stack) Peek() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Len() int { return len(s.items) }

func (s *Stack) Values() []string {
	out := make([]string, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}

func (s *Stack) Clear() { s.items = nil }

func (s *Stack) Snapshot() Snapshot {
	return Snapshot{Kind: KindStack, Size: len(s.items), Items: s.Values()}
}

// Queue is FIFO. Values lists the front first.
type Queue struct {
	items []string
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Enqueue(v string) { q.items = append(q.items, v) }

func (q *Queue) Dequeue() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

func (q *Queue) Peek() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	return q.items[0], true
}

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) Values() []string { return append([]string{}, q.items...) }

func (q *Queue) Clear() { q.items = nil }

func (q *Queue) Snapshot() Snapshot {
	return Snapshot{Kind: KindQueue, Size: len(q.items), Items: q.Values()}
}

type listNode struct {
	value string
	next  *listNode
}

// LinkedList is a singly linked list; each node owns its successor.
type LinkedList struct {
	head *listNode
	tail *listNode
	size int
}

func NewLinkedList() *LinkedList { return &LinkedList{} }

func (l *LinkedList) InsertHead(v string) {
	l.head = &listNode{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

func (l *LinkedList) InsertTail(v string) {
	n := &listNode{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// DeleteValue unlinks every node holding v and returns how many went.
func (l *LinkedList) DeleteValue(v string) int {
	removed := 0
	var prev *listNode
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value != v {
			prev = cur
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == l.tail {
			l.tail = prev
		}
		removed++
	}
	l.size -= removed
	return removed
}

// IndexOf returns the position of the first node holding v, or -1.
func (l *LinkedList) IndexOf(v string) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return i
		}
		i++
	}
	return -1
}

func (l *LinkedList) Len() int { return l.size }

func (l *LinkedList) Values() []string {
	out := make([]string, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

func (l *LinkedList) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

func (l *LinkedList) Snapshot() Snapshot {
	snap := Snapshot{Kind: KindList, Size: l.size, Items: l.Values()}
	for i, v := range snap.Items {
		snap.Nodes = append(snap.Nodes, NodeView{ID: i, Label: v, Order: i})
		if i > 0 {
			snap.Edges = append(snap.Edges, EdgeView{From: i - 1, To: i, Label: "next"})
		}
	}
	return snap
}
