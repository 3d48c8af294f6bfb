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
	"io"
	"os"

	"github.com/cybrota/structviz/commands"
	"github.com/cybrota/structviz/structures"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

// Step is one command line aimed at one structure.
type Step struct {
	Kind string `yaml:"kind"`
	Op   string `yaml:"op"`
}

// Script is a replayable list of steps, for example:
//
//	name: rotations
//	steps:
//	  - {kind: avl, op: "insert 1 2 3"}
//	  - {kind: avl, op: "find 3"}
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", commands.ErrInvalidInput, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: script has no steps", commands.ErrInvalidInput)
	}
	for i, step := range s.Steps {
		if _, ok := structures.ParseKind(step.Kind); !ok {
			return nil, fmt.Errorf("step %d: %w: %q", i+1, commands.ErrUnknownKind, step.Kind)
		}
	}
	return &s, nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// Replay runs every step in order and stops at the first rejected one.
// Progress is drawn to progress when it is non-nil. It returns the kinds
// touched so far, in display order.
func (s *Session) Replay(script *Script, progress io.Writer) ([]structures.Kind, error) {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(script.Steps),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("▶ Replaying "+script.Name),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	for i, step := range script.Steps {
		kind, _ := structures.ParseKind(step.Kind)
		if _, err := s.Apply(kind, step.Op); err != nil {
			return s.Touched(), fmt.Errorf("step %d (%s %q): %w", i+1, kind, step.Op, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return s.Touched(), nil
}
