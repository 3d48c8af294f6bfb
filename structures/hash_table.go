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
	"fmt"
	"unicode/utf16"
)

const (
	DefaultBuckets = 8
	MinBuckets     = 1
	MaxBuckets     = 32
)

// Entry is one key/value pair in a bucket chain.
type Entry struct {
	Key   string `json:"key" yaml:"key" cbor:"key"`
	Value string `json:"value" yaml:"value" cbor:"value"`
}

// ChainedHashTable maps string keys to string values using separate
// chaining. Keys are unique across the whole table.
type ChainedHashTable struct {
	buckets [][]Entry
	size    int
	last    *Location
}

// NewChainedHashTable creates a table with n empty buckets.
func NewChainedHashTable(n int) (*ChainedHashTable, error) {
	if err := validateBucketCount(n); err != nil {
		return nil, err
	}
	return &ChainedHashTable{buckets: make([][]Entry, n)}, nil
}

func validateBucketCount(n int) error {
	if n < MinBuckets || n > MaxBuckets {
		return fmt.Errorf("%w: got %d", ErrInvalidBucketCount, n)
	}
	return nil
}

// HashKey folds the UTF-16 code units of key with h = h*31 + c (mod 2^32).
func HashKey(key string) uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(key)) {
		h = h*31 + uint32(c)
	}
	return h
}

// BucketOf returns the bucket index key maps to under the current bucket count.
func (t *ChainedHashTable) BucketOf(key string) int {
	return int(HashKey(key) % uint32(len(t.buckets)))
}

func (t *ChainedHashTable) indexIn(bucket int, key string) int {
	for i, e := range t.buckets[bucket] {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Put stores value under key. An existing key is overwritten in place,
// otherwise the pair is appended to its bucket's chain.
func (t *ChainedHashTable) Put(key, value string) (Location, error) {
	if key == "" {
		return Location{}, ErrEmptyKey
	}
	b := t.BucketOf(key)
	i := t.indexIn(b, key)
	if i >= 0 {
		t.buckets[b][i].Value = value
	} else {
		t.buckets[b] = append(t.buckets[b], Entry{Key: key, Value: value})
		i = len(t.buckets[b]) - 1
		t.size++
	}
	loc := Location{Bucket: b, Index: i}
	t.last = &loc
	return loc, nil
}

// Get looks key up. A miss clears the last touched location.
func (t *ChainedHashTable) Get(key string) (string, Location, bool) {
	b := t.BucketOf(key)
	i := t.indexIn(b, key)
	if i < 0 {
		t.last = nil
		return "", Location{}, false
	}
	loc := Location{Bucket: b, Index: i}
	t.last = &loc
	return t.buckets[b][i].Value, loc, true
}

// Delete removes key, keeping the order of the rest of its chain. It returns
// where the pair used to live.
func (t *ChainedHashTable) Delete(key string) (Location, bool) {
	t.last = nil
	b := t.BucketOf(key)
	i := t.indexIn(b, key)
	if i < 0 {
		return Location{}, false
	}
	t.buckets[b] = append(t.buckets[b][:i], t.buckets[b][i+1:]...)
	t.size--
	return Location{Bucket: b, Index: i}, true
}

// SetBucketCount rehashes every pair into n buckets. Pairs are reinserted in
// bucket-major order, so pairs sharing a new bucket keep their relative order.
// An invalid n is rejected before anything is touched.
func (t *ChainedHashTable) SetBucketCount(n int) error {
	if err := validateBucketCount(n); err != nil {
		return err
	}
	entries := t.Entries()
	t.buckets = make([][]Entry, n)
	for _, e := range entries {
		b := t.BucketOf(e.Key)
		t.buckets[b] = append(t.buckets[b], e)
	}
	t.last = nil
	return nil
}

// LastTouched returns the location the most recent put or successful get hit.
func (t *ChainedHashTable) LastTouched() (Location, bool) {
	if t.last == nil {
		return Location{}, false
	}
	return *t.last, true
}

func (t *ChainedHashTable) Len() int { return t.size }

func (t *ChainedHashTable) BucketCount() int { return len(t.buckets) }

// LoadFactor is entries per bucket.
func (t *ChainedHashTable) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Entries flattens the table bucket-major.
func (t *ChainedHashTable) Entries() []Entry {
	out := make([]Entry, 0, t.size)
	for _, bucket := range t.buckets {
		out = append(out, bucket...)
	}
	return out
}

// Buckets returns a deep copy of every chain.
func (t *ChainedHashTable) Buckets() [][]Entry {
	out := make([][]Entry, len(t.buckets))
	for i, bucket := range t.buckets {
		out[i] = append([]Entry{}, bucket...)
	}
	return out
}

// Clear empties every bucket, keeping the bucket count.
func (t *ChainedHashTable) Clear() {
	t.buckets = make([][]Entry, len(t.buckets))
	t.size = 0
	t.last = nil
}

func (t *ChainedHashTable) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:     KindHash,
		Size:     t.size,
		Capacity: len(t.buckets),
		Buckets:  t.Buckets(),
	}
	if loc, ok := t.LastTouched(); ok {
		snap.Touched = &loc
	}
	return snap
}
