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
	"errors"
	"testing"

	"github.com/cybrota/structviz/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher(t *testing.T) {
	d, err := NewDispatcher(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, structures.AllKinds, d.Kinds())

	res, err := d.Dispatch(structures.KindAVL, "insert 1 2 3")
	require.NoError(t, err)
	assert.True(t, res.Found)

	h, ok := d.Handler(structures.KindAVL)
	require.True(t, ok)
	assert.Equal(t, 3, h.Snapshot().Size)

	// each kind owns its own engine
	other, _ := d.Handler(structures.KindBST)
	assert.Equal(t, 0, other.Snapshot().Size)

	_, err = d.Dispatch("btree", "insert 1")
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = d.Dispatch(structures.KindAVL, "   ")
	assert.ErrorIs(t, err, ErrEmptyCommand)
	_, err = d.Dispatch(structures.KindAVL, "rotate 1")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestDispatcherRejectsBadOptions(t *testing.T) {
	_, err := NewDispatcher(Options{Buckets: 0, ArrayCapacity: 4})
	assert.ErrorIs(t, err, structures.ErrInvalidBucketCount)
	_, err = NewDispatcher(Options{Buckets: 8, ArrayCapacity: 99})
	assert.ErrorIs(t, err, structures.ErrInvalidCapacity)
}

func TestDispatcherRegisterReplaces(t *testing.T) {
	d, _ := NewDispatcher(DefaultOptions())
	fresh := NewBSTHandler()
	d.Register(fresh)
	h, _ := d.Handler(structures.KindBST)
	assert.Same(t, fresh, h)
	assert.Len(t, d.Kinds(), len(structures.AllKinds))
}

func TestCommand(t *testing.T) {
	cmd, err := ParseLine(`PUT "new york" 'big apple'`)
	if err != nil {
		t.Fatalf("Unexpected error parsing line: %v", err)
	}

	if cmd.Op != "put" {
		t.Errorf("Expected Op to be 'put', got '%s'", cmd.Op)
	}

	if !cmd.HasArgs(2) {
		t.Errorf("Expected command to have at least 2 arguments")
	}

	if cmd.Arg(0) != "new york" {
		t.Errorf("Expected first argument to be 'new york', got '%s'", cmd.Arg(0))
	}

	if cmd.Arg(2) != "" {
		t.Errorf("Expected missing argument to be empty, got '%s'", cmd.Arg(2))
	}

	if cmd.FullName != "PUT new york big apple" {
		t.Errorf("Expected FullName to be 'PUT new york big apple', got '%s'", cmd.FullName)
	}
}

func TestCommandArgErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{`insert "unterminated`, ErrInvalidInput},
		{"insert", ErrMissingArgument},
		{"insert 4 x 5", ErrInvalidInput},
		{"insert 1.5", ErrInvalidInput},
	}
	for _, tc := range tests {
		cmd, err := ParseLine(tc.line)
		if err == nil {
			_, err = cmd.IntArgs()
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: expected %v, got %v", tc.line, tc.want, err)
		}
	}

	cmd, _ := ParseLine("insert 4 x 5")
	_, err := cmd.IntArgs()
	assert.Contains(t, err.Error(), `"x"`)

	cmd, _ = ParseLine("insert -3 +7")
	values, err := cmd.IntArgs()
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 7}, values)
}
