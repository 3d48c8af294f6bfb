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
	"os"
	"path/filepath"

	"github.com/cybrota/structviz/commands"
	"github.com/cybrota/structviz/structures"
	"gopkg.in/yaml.v3"
)

const configFileName = ".structviz.yaml"

type UIConfig struct {
	DefaultMode string `yaml:"default_mode"`
	ShowHeights bool   `yaml:"show_heights"`
	ShowTopic   bool   `yaml:"show_topic"`
	TimeFormat  string `yaml:"time_format"`
}

type HashConfig struct {
	DefaultBuckets int `yaml:"default_buckets"`
}

type ArrayConfig struct {
	DefaultCapacity int `yaml:"default_capacity"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Hash  HashConfig  `yaml:"hash"`
	Array ArrayConfig `yaml:"array"`
	Log   LogConfig   `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		UI: UIConfig{
			DefaultMode: string(structures.KindAVL),
			ShowHeights: true,
			ShowTopic:   true,
			TimeFormat:  DefaultTimeFormat,
		},
		Hash:  HashConfig{DefaultBuckets: structures.DefaultBuckets},
		Array: ArrayConfig{DefaultCapacity: structures.DefaultArrayCapacity},
	}
}

// normalize replaces out-of-range settings with their defaults.
func (c *Config) normalize() {
	def := defaultConfig()
	if _, ok := structures.ParseKind(c.UI.DefaultMode); !ok {
		c.UI.DefaultMode = def.UI.DefaultMode
	}
	if c.UI.TimeFormat == "" {
		c.UI.TimeFormat = def.UI.TimeFormat
	}
	if c.Hash.DefaultBuckets < structures.MinBuckets || c.Hash.DefaultBuckets > structures.MaxBuckets {
		c.Hash.DefaultBuckets = def.Hash.DefaultBuckets
	}
	if c.Array.DefaultCapacity < 0 || c.Array.DefaultCapacity > structures.MaxArrayCapacity {
		c.Array.DefaultCapacity = def.Array.DefaultCapacity
	}
}

// DefaultKind is the structure the UI opens on.
func (c *Config) DefaultKind() structures.Kind {
	k, _ := structures.ParseKind(c.UI.DefaultMode)
	return k
}

func (c *Config) DispatcherOptions() commands.Options {
	return commands.Options{
		Buckets:       c.Hash.DefaultBuckets,
		ArrayCapacity: c.Array.DefaultCapacity,
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom never fails: a missing or unreadable file yields defaults.
// Keys absent from the file keep their default values.
func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig()
		return &config, nil
	}

	config.normalize()
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, _ := loadConfigFrom(configPath)

	fmt.Printf("🔧 structviz Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %sdefault_mode%s: %s\n", Green, Reset, config.UI.DefaultMode)
	fmt.Printf("  • %sshow_heights%s: %t\n", Green, Reset, config.UI.ShowHeights)
	fmt.Printf("  • %sshow_topic%s: %t\n", Green, Reset, config.UI.ShowTopic)
	fmt.Printf("  • %stime_format%s: %s\n\n", Green, Reset, config.UI.TimeFormat)

	fmt.Printf("🗂  %sEngines:%s\n", Green, Reset)
	fmt.Printf("  • %shash.default_buckets%s: %d (%d..%d)\n", Green, Reset, config.Hash.DefaultBuckets, structures.MinBuckets, structures.MaxBuckets)
	fmt.Printf("  • %sarray.default_capacity%s: %d (0..%d)\n\n", Green, Reset, config.Array.DefaultCapacity, structures.MaxArrayCapacity)

	fmt.Printf("📜 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %slog.debug%s: %t\n", Green, Reset, config.Log.Debug)
	logFile := config.Log.File
	if logFile == "" {
		logFile = "(default ~/.structviz.log)"
	}
	fmt.Printf("  • %slog.file%s: %s\n\n", Green, Reset, logFile)

	if !config.Log.Debug {
		fmt.Printf("💡 To record every command as JSON lines, edit %s:\n", configPath)
		fmt.Printf("   log:\n     debug: true\n\n")
	}
}
