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
	"strconv"
	"strings"

	"github.com/cybrota/structviz/structures"
	"github.com/mattn/go-shellwords"
)

// Handler owns exactly one engine instance and applies commands to it
type Handler interface {
	Kind() structures.Kind
	Apply(cmd *Command) (Result, error)
	// Snapshot returns the engine state with the highlight of the last command
	Snapshot() structures.Snapshot
	Usage() []string
}

// Result describes what a single command did
type Result struct {
	Message string
	Found   bool
	Touched *structures.Location
	Path    []int
}

// Command represents a parsed command line with its parts
type Command struct {
	Parts    []string
	Op       string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Op:       strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// ParseLine splits line using shell quoting rules, so values with spaces can
// be passed as "two words".
func ParseLine(line string) (*Command, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %q: %v", ErrInvalidInput, line, err)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}
	return NewCommand(parts), nil
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

func (c *Command) requireArgs(n int) error {
	if !c.HasArgs(n) {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrMissingArgument, c.Op, n, len(c.Args))
	}
	return nil
}

// IntArg parses the nth argument as a base-10 integer.
func (c *Command) IntArg(n int) (int, error) {
	if err := c.requireArgs(n + 1); err != nil {
		return 0, err
	}
	return parseInt(c.Args[n])
}

// IntArgs parses every argument. Nothing is returned unless all of them parse.
func (c *Command) IntArgs() ([]int, error) {
	if err := c.requireArgs(1); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(c.Args))
	for _, a := range c.Args {
		v, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInt(tok string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, tok)
	}
	return v, nil
}

func unknownOp(kind structures.Kind, op string) error {
	return fmt.Errorf("%w: %q for %s", ErrUnknownOp, op, kind)
}
