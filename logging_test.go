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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.log")
	logger, sync, err := NewLogger(LogConfig{Debug: true, File: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Infow("command applied", "kind", "avl", "op", "insert 1")
	sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"command applied"`, `"kind":"avl"`, `"ts":`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}

func TestNewLoggerDisabled(t *testing.T) {
	logger, sync, err := NewLogger(LogConfig{})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Infow("dropped")
	sync()
}
