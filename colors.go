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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI codes for plain CLI output. Assigned by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

type ColorScheme struct {
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Title       lipgloss.Color
	Prompt      lipgloss.Color
	Highlight   lipgloss.Color
	OnHighlight lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// createLightColorScheme returns a color scheme optimized for light terminals
func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Title:       lipgloss.Color("4"),
		Prompt:      lipgloss.Color("5"),
		Highlight:   lipgloss.Color("3"),
		OnHighlight: lipgloss.Color("0"),
		Success:     lipgloss.Color("2"),
		Error:       lipgloss.Color("1"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
	}
}

// createDarkColorScheme returns a color scheme optimized for dark terminals
func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Title:       lipgloss.Color("39"),
		Prompt:      lipgloss.Color("205"),
		Highlight:   lipgloss.Color("11"),
		OnHighlight: lipgloss.Color("0"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
	}
}

// InitializeColors detects terminal mode and sets up the color scheme and ANSI codes
func InitializeColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
	} else {
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
