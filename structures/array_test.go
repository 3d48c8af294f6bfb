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

func TestFixedArrayPushUntilFull(t *testing.T) {
	a, err := NewFixedArray(DefaultArrayCapacity)
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, a.Push(v))
	}
	assert.ErrorIs(t, a.Push("e"), ErrArrayFull)
	assert.ErrorIs(t, a.InsertAt(0, "e"), ErrArrayFull)
	assert.Equal(t, []string{"a", "b", "c", "d"}, a.Values())
}

func TestFixedArrayInsertRemove(t *testing.T) {
	a, _ := NewFixedArray(5)
	a.Push("a")
	a.Push("c")
	require.NoError(t, a.InsertAt(1, "b"))
	require.NoError(t, a.InsertAt(3, "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, a.Values())
	assert.ErrorIs(t, a.InsertAt(9, "x"), ErrIndexOutOfRange)

	v, err := a.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"b", "c", "d"}, a.Values())

	_, err = a.RemoveAt(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.RemoveAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFixedArraySetPads(t *testing.T) {
	a, _ := NewFixedArray(4)
	require.NoError(t, a.SetAt(2, "x"))
	assert.Equal(t, []string{"", "", "x"}, a.Values())
	require.NoError(t, a.SetAt(0, "y"))
	assert.Equal(t, []string{"y", "", "x"}, a.Values())
	assert.ErrorIs(t, a.SetAt(4, "z"), ErrIndexOutOfRange)
}

func TestFixedArrayResize(t *testing.T) {
	a, _ := NewFixedArray(4)
	for _, v := range []string{"a", "b", "c"} {
		a.Push(v)
	}
	require.NoError(t, a.Resize(2))
	assert.Equal(t, []string{"a", "b"}, a.Values())
	assert.Equal(t, 2, a.Cap())

	for _, n := range []int{-1, MaxArrayCapacity + 1} {
		assert.ErrorIs(t, a.Resize(n), ErrInvalidCapacity)
	}
	assert.Equal(t, 2, a.Cap())

	require.NoError(t, a.Resize(0))
	assert.Empty(t, a.Values())
	assert.ErrorIs(t, a.Push("a"), ErrArrayFull)

	_, err := NewFixedArray(51)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestFixedArraySnapshot(t *testing.T) {
	a, _ := NewFixedArray(6)
	a.Push("q")
	snap := a.Snapshot()
	assert.Equal(t, Snapshot{Kind: KindArray, Size: 1, Capacity: 6, Items: []string{"q"}}, snap)
	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 6, a.Cap())
}
