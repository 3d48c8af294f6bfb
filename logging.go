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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFileName = ".structviz.log"

// NewLogger builds the operation logger. With debug off it discards
// everything; the TUI owns the terminal so logs only ever go to a file.
func NewLogger(cfg LogConfig) (*zap.SugaredLogger, func(), error) {
	if !cfg.Debug {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	path := cfg.File
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(homeDir, defaultLogFileName)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Sampling = nil

	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}
