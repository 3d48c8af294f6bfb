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

// HashHandler drives a separate-chaining hash table. The highlighted entry
// comes from the table's own last touched location.
type HashHandler struct {
	table *structures.ChainedHashTable
}

func NewHashHandler(buckets int) (*HashHandler, error) {
	table, err := structures.NewChainedHashTable(buckets)
	if err != nil {
		return nil, err
	}
	return &HashHandler{table: table}, nil
}

func (h *HashHandler) Kind() structures.Kind { return structures.KindHash }

func (h *HashHandler) Usage() []string {
	return []string{"put k v", "get k", "delete k", "resize n", "clear"}
}

func (h *HashHandler) Snapshot() structures.Snapshot {
	return h.table.Snapshot()
}

func (h *HashHandler) Apply(cmd *Command) (Result, error) {
	switch cmd.Op {
	case "put", "set":
		if err := cmd.requireArgs(2); err != nil {
			return Result{}, err
		}
		key, value := cmd.Arg(0), cmd.Arg(1)
		loc, err := h.table.Put(key, value)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message: fmt.Sprintf("%s=%s in bucket %d slot %d (hash %d)", key, value, loc.Bucket, loc.Index, structures.HashKey(key)),
			Found:   true,
			Touched: &loc,
		}, nil
	case "get":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		key := cmd.Arg(0)
		value, loc, ok := h.table.Get(key)
		if !ok {
			return Result{Message: fmt.Sprintf("%s not found in bucket %d", key, h.table.BucketOf(key))}, nil
		}
		return Result{
			Message: fmt.Sprintf("%s=%s in bucket %d slot %d", key, value, loc.Bucket, loc.Index),
			Found:   true,
			Touched: &loc,
		}, nil
	case "delete", "del":
		if err := cmd.requireArgs(1); err != nil {
			return Result{}, err
		}
		key := cmd.Arg(0)
		loc, ok := h.table.Delete(key)
		if !ok {
			return Result{Message: fmt.Sprintf("%s not found", key)}, nil
		}
		return Result{Message: fmt.Sprintf("deleted %s from bucket %d", key, loc.Bucket), Found: true}, nil
	case "resize":
		n, err := cmd.IntArg(0)
		if err != nil {
			return Result{}, err
		}
		if err := h.table.SetBucketCount(n); err != nil {
			return Result{}, err
		}
		return Result{
			Message: fmt.Sprintf("rehashed %d entries into %d buckets (load %.2f)", h.table.Len(), n, h.table.LoadFactor()),
			Found:   true,
		}, nil
	case "clear":
		h.table.Clear()
		return Result{Message: "cleared"}, nil
	}
	return Result{}, unknownOp(h.Kind(), cmd.Op)
}
