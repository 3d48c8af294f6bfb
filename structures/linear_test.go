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
)

func TestStack(t *testing.T) {
	s := NewStack()
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push("a")
	s.Push("b")
	s.Push("c")
	assert.Equal(t, []string{"c", "b", "a"}, s.Values())

	top, _ := s.Peek()
	assert.Equal(t, "c", top)
	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	_, ok := q.Dequeue()
	assert.False(t, ok)

	q.Enqueue("a")
	q.Enqueue("b")
	front, _ := q.Peek()
	assert.Equal(t, "a", front)
	v, _ := q.Dequeue()
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"b"}, q.Values())
	assert.Equal(t, Snapshot{Kind: KindQueue, Size: 1, Items: []string{"b"}}, q.Snapshot())
}

func TestLinkedList(t *testing.T) {
	l := NewLinkedList()
	l.InsertTail("b")
	l.InsertHead("a")
	l.InsertTail("c")
	l.InsertTail("b")
	assert.Equal(t, []string{"a", "b", "c", "b"}, l.Values())
	assert.Equal(t, 1, l.IndexOf("b"))
	assert.Equal(t, -1, l.IndexOf("z"))

	assert.Equal(t, 2, l.DeleteValue("b"))
	assert.Equal(t, []string{"a", "c"}, l.Values())
	assert.Equal(t, 2, l.Len())

	// tail must follow deletions
	l.InsertTail("d")
	assert.Equal(t, []string{"a", "c", "d"}, l.Values())

	assert.Equal(t, 0, l.DeleteValue("z"))
	l.DeleteValue("a")
	l.DeleteValue("c")
	l.DeleteValue("d")
	assert.Empty(t, l.Values())
	l.InsertTail("e")
	assert.Equal(t, []string{"e"}, l.Values())
}

func TestLinkedListSnapshot(t *testing.T) {
	l := NewLinkedList()
	l.InsertTail("x")
	l.InsertTail("y")
	snap := l.Snapshot()
	assert.Equal(t, KindList, snap.Kind)
	assert.Equal(t, []EdgeView{{From: 0, To: 1, Label: "next"}}, snap.Edges)
	l.Clear()
	assert.Equal(t, 0, l.Len())
}
