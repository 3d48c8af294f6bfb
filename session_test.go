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

package main

import (
	"testing"
	"time"

	"github.com/cybrota/structviz/commands"
	"github.com/cybrota/structviz/structures"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSession(t *testing.T) (*Session, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	cfg := defaultConfig()
	s, err := NewSession(&cfg, zap.New(core).Sugar())
	require.NoError(t, err)
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	return s, logs
}

func TestNewSessionDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, structures.KindAVL, s.Current())
	assert.Equal(t, structures.AllKinds, s.Kinds())
	assert.Empty(t, s.History())
	assert.Empty(t, s.Touched())
}

func TestSessionCycleWraps(t *testing.T) {
	s, _ := newTestSession(t)
	kinds := s.Kinds()

	assert.Equal(t, kinds[len(kinds)-1], s.Cycle(-1))
	assert.Equal(t, kinds[0], s.Cycle(1))
	assert.Equal(t, kinds[1], s.Cycle(1))

	require.NoError(t, s.Switch(structures.KindList))
	assert.Equal(t, kinds[0], s.Cycle(1))

	err := s.Switch("matrix")
	assert.ErrorIs(t, err, commands.ErrUnknownKind)
	assert.Equal(t, kinds[0], s.Current())
}

func TestSessionRunRecordsHistory(t *testing.T) {
	s, logs := newTestSession(t)

	res, err := s.Run("insert 5 3")
	require.NoError(t, err)
	assert.Equal(t, "inserted 2 of 2 key(s)", res.Message)

	_, err = s.Apply(structures.KindStack, "fly")
	assert.ErrorIs(t, err, commands.ErrUnknownOp)

	_, err = s.Apply(structures.KindHeap, "insert x")
	assert.ErrorIs(t, err, commands.ErrInvalidInput)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, structures.KindAVL, history[0].Kind)
	assert.Equal(t, "insert 5 3", history[0].Line)
	assert.NoError(t, history[0].Err)
	assert.Equal(t, "09:26:53", FormatStamp(DefaultTimeFormat, history[0].Time))
	assert.Error(t, history[2].Err)

	assert.Equal(t, []structures.Kind{structures.KindAVL}, s.Touched())

	assert.Equal(t, 1, logs.FilterMessage("command applied").Len())
	assert.Equal(t, 2, logs.FilterMessage("command rejected").Len())
	entry := logs.FilterMessage("command applied").All()[0]
	assert.Equal(t, s.ID.String(), entry.ContextMap()["session"])
}

func TestSessionSnapshot(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.Apply(structures.KindQueue, "enqueue a b")
	require.NoError(t, err)

	snap, err := s.Snapshot(structures.KindQueue)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, snap.Items)

	_, err = s.Snapshot("matrix")
	assert.ErrorIs(t, err, commands.ErrUnknownKind)
	assert.Nil(t, s.Usage("matrix"))
	assert.NotEmpty(t, s.Usage(structures.KindQueue))
}
