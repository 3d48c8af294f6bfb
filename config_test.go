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
	"testing"

	"github.com/cybrota/structviz/structures"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "ui:\n  default_mode: trie\nhash:\n  default_buckets: 16\n")
	cfg, _ := loadConfigFrom(path)

	if cfg.DefaultKind() != structures.KindTrie {
		t.Errorf("expected trie, got %s", cfg.DefaultKind())
	}
	if cfg.Hash.DefaultBuckets != 16 {
		t.Errorf("expected 16 buckets, got %d", cfg.Hash.DefaultBuckets)
	}
	if !cfg.UI.ShowHeights || cfg.UI.TimeFormat != DefaultTimeFormat {
		t.Errorf("absent keys lost their defaults: %+v", cfg.UI)
	}
	if cfg.Array.DefaultCapacity != structures.DefaultArrayCapacity {
		t.Errorf("expected default capacity, got %d", cfg.Array.DefaultCapacity)
	}
}

func TestLoadConfigNormalizesOutOfRange(t *testing.T) {
	path := writeConfig(t, "ui:\n  default_mode: matrix\n  time_format: \"\"\nhash:\n  default_buckets: 0\narray:\n  default_capacity: -3\n")
	cfg, _ := loadConfigFrom(path)
	def := defaultConfig()

	if cfg.UI.DefaultMode != def.UI.DefaultMode {
		t.Errorf("default_mode not reset: %q", cfg.UI.DefaultMode)
	}
	if cfg.UI.TimeFormat != def.UI.TimeFormat {
		t.Errorf("time_format not reset: %q", cfg.UI.TimeFormat)
	}
	if cfg.Hash.DefaultBuckets != def.Hash.DefaultBuckets {
		t.Errorf("default_buckets not reset: %d", cfg.Hash.DefaultBuckets)
	}
	if cfg.Array.DefaultCapacity != def.Array.DefaultCapacity {
		t.Errorf("default_capacity not reset: %d", cfg.Array.DefaultCapacity)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "ui: [unterminated")
	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile: %v", err)
	}
	cfg, _ := loadConfigFrom(path)
	if *cfg != defaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}

	opts := cfg.DispatcherOptions()
	if opts.Buckets != structures.DefaultBuckets || opts.ArrayCapacity != structures.DefaultArrayCapacity {
		t.Errorf("unexpected dispatcher options %+v", opts)
	}
}
