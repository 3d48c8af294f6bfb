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
)

func TestTranslateTimeFormat(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"hh:mm:ss", "15:04:05"},
		{"h:mm pm", "03:04 PM"},
		{"YYYY-MM-DD hh:mm", "2006-01-02 15:04"},
		{"DDD DD MMM", "Mon 02 Jan"},
	}
	for _, c := range cases {
		result := TranslateTimeFormat(c.input)
		if result != c.expected {
			t.Errorf("TranslateTimeFormat(%q): expected %q, got %q", c.input, c.expected, result)
		}
	}
}

func TestFormatStamp(t *testing.T) {
	stamp := time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)

	t.Run("Default", func(t *testing.T) {
		if got := FormatStamp("", stamp); got != "09:05:03" {
			t.Errorf("FormatStamp default: expected %q, got %q", "09:05:03", got)
		}
	})

	t.Run("Custom", func(t *testing.T) {
		expected := "2025-03-07 09:05"
		if got := FormatStamp("YYYY-MM-DD hh:mm", stamp); got != expected {
			t.Errorf("FormatStamp: expected %q, got %q", expected, got)
		}
	})
}
