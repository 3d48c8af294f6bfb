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
	"strings"
	"time"
)

/*
	Operation log timestamps use memorable placeholders (ui.time_format):

	hh   - hours (15)
	h    - hours (03), pair with pm
	mm   - minutes (04)
	ss   - seconds (05)
	pm   - AM/PM
	YYYY - year (2006)
	MM   - month (01)
	MMM  - month (Jan)
	DD   - day (02)
	DDD  - day (Mon)
*/

type placeholder struct{ find, subst string }

// Longer tokens first so "hh" wins over "h" and "MMM" over "MM".
var placeholders = []placeholder{
	{"hh", "15"},
	{"h", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"pm", "PM"},
	{"YYYY", "2006"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"DDD", "Mon"},
	{"DD", "02"},
}

const DefaultTimeFormat = "hh:mm:ss"

// TranslateTimeFormat turns a placeholder format into Go's reference layout.
func TranslateTimeFormat(format string) string {
	out := format
	for _, ph := range placeholders {
		out = strings.ReplaceAll(out, ph.find, ph.subst)
	}
	return out
}

// FormatStamp formats t with a placeholder format, DefaultTimeFormat when empty.
func FormatStamp(format string, t time.Time) string {
	if format == "" {
		format = DefaultTimeFormat
	}
	return t.Format(TranslateTimeFormat(format))
}
