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
	"fmt"
	"slices"
	"time"

	"github.com/cybrota/structviz/commands"
	"github.com/cybrota/structviz/structures"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogEntry is one line of the operation log
type LogEntry struct {
	Time    time.Time
	Kind    structures.Kind
	Line    string
	Message string
	Found   bool
	Err     error
}

// Session holds one engine per kind and the log of every command run against them.
// It is not safe for concurrent use; the TUI drives it from its update loop.
type Session struct {
	ID         uuid.UUID
	dispatcher *commands.Dispatcher
	current    structures.Kind
	history    []LogEntry
	touched    map[structures.Kind]bool
	logger     *zap.SugaredLogger
	now        func() time.Time
}

func NewSession(cfg *Config, logger *zap.SugaredLogger) (*Session, error) {
	d, err := commands.NewDispatcher(cfg.DispatcherOptions())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Session{
		ID:         uuid.New(),
		dispatcher: d,
		current:    cfg.DefaultKind(),
		touched:    make(map[structures.Kind]bool),
		now:        time.Now,
	}
	s.logger = logger.With("session", s.ID.String())
	return s, nil
}

func (s *Session) Current() structures.Kind { return s.current }

func (s *Session) Kinds() []structures.Kind { return s.dispatcher.Kinds() }

func (s *Session) Switch(kind structures.Kind) error {
	if _, ok := s.dispatcher.Handler(kind); !ok {
		return fmt.Errorf("%w: %q", commands.ErrUnknownKind, kind)
	}
	s.current = kind
	return nil
}

// Cycle moves the current kind by step positions, wrapping around.
func (s *Session) Cycle(step int) structures.Kind {
	kinds := s.dispatcher.Kinds()
	i := slices.Index(kinds, s.current)
	n := len(kinds)
	s.current = kinds[((i+step)%n+n)%n]
	return s.current
}

// Run applies line to the current structure.
func (s *Session) Run(line string) (commands.Result, error) {
	return s.Apply(s.current, line)
}

// Apply runs line against kind and records the outcome either way.
func (s *Session) Apply(kind structures.Kind, line string) (commands.Result, error) {
	res, err := s.dispatcher.Dispatch(kind, line)

	entry := LogEntry{Time: s.now(), Kind: kind, Line: line, Message: res.Message, Found: res.Found, Err: err}
	s.history = append(s.history, entry)

	if err != nil {
		s.logger.Warnw("command rejected", "kind", kind, "line", line, "error", err)
		return res, err
	}
	s.touched[kind] = true
	s.logger.Infow("command applied", "kind", kind, "line", line, "found", res.Found, "result", res.Message)
	return res, nil
}

func (s *Session) Snapshot(kind structures.Kind) (structures.Snapshot, error) {
	h, ok := s.dispatcher.Handler(kind)
	if !ok {
		return structures.Snapshot{}, fmt.Errorf("%w: %q", commands.ErrUnknownKind, kind)
	}
	return h.Snapshot(), nil
}

func (s *Session) Usage(kind structures.Kind) []string {
	h, ok := s.dispatcher.Handler(kind)
	if !ok {
		return nil
	}
	return h.Usage()
}

func (s *Session) History() []LogEntry {
	return append([]LogEntry{}, s.history...)
}

// Touched lists, in display order, the kinds at least one command succeeded on.
func (s *Session) Touched() []structures.Kind {
	var out []structures.Kind
	for _, k := range s.dispatcher.Kinds() {
		if s.touched[k] {
			out = append(out, k)
		}
	}
	return out
}
