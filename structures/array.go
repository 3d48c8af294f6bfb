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

const (
	DefaultArrayCapacity = 4
	MaxArrayCapacity     = 50
)

// FixedArray is a bounded sequence of string slots. len(slots) never exceeds capacity.
type FixedArray struct {
	slots    []string
	capacity int
}

func NewFixedArray(capacity int) (*FixedArray, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &FixedArray{capacity: capacity}, nil
}

func validateCapacity(n int) error {
	if n < 0 || n > MaxArrayCapacity {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, n)
	}
	return nil
}

func outOfRange(i, lo, hi int) error {
	return fmt.Errorf("%w: %d not in %d..%d", ErrIndexOutOfRange, i, lo, hi)
}

func (a *FixedArray) Len() int { return len(a.slots) }

func (a *FixedArray) Cap() int { return a.capacity }

func (a *FixedArray) Values() []string { return append([]string{}, a.slots...) }

func (a *FixedArray) Push(v string) error {
	if len(a.slots) >= a.capacity {
		return ErrArrayFull
	}
	a.slots = append(a.slots, v)
	return nil
}

// InsertAt shifts slots i.. right by one. Valid for 0 <= i <= Len.
func (a *FixedArray) InsertAt(i int, v string) error {
	if len(a.slots) >= a.capacity {
		return ErrArrayFull
	}
	if i < 0 || i > len(a.slots) {
		return outOfRange(i, 0, len(a.slots))
	}
	a.slots = append(a.slots, "")
	copy(a.slots[i+1:], a.slots[i:])
	a.slots[i] = v
	return nil
}

// SetAt writes slot i for any 0 <= i < Cap, padding with empty slots when i
// is past the current length.
func (a *FixedArray) SetAt(i int, v string) error {
	if i < 0 || i >= a.capacity {
		return outOfRange(i, 0, max(0, a.capacity-1))
	}
	for len(a.slots) <= i {
		a.slots = append(a.slots, "")
	}
	a.slots[i] = v
	return nil
}

func (a *FixedArray) RemoveAt(i int) (string, error) {
	if i < 0 || i >= len(a.slots) {
		return "", outOfRange(i, 0, max(0, len(a.slots)-1))
	}
	v := a.slots[i]
	a.slots = append(a.slots[:i], a.slots[i+1:]...)
	return v, nil
}

// Resize changes the capacity, dropping slots past the new end.
func (a *FixedArray) Resize(n int) error {
	if err := validateCapacity(n); err != nil {
		return err
	}
	a.capacity = n
	if len(a.slots) > n {
		a.slots = a.slots[:n]
	}
	return nil
}

func (a *FixedArray) Clear() { a.slots = nil }

func (a *FixedArray) Snapshot() Snapshot {
	return Snapshot{Kind: KindArray, Size: len(a.slots), Capacity: a.capacity, Items: a.Values()}
}
