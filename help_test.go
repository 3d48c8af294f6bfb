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
	"testing"

	"github.com/cybrota/structviz/commands"
)

func TestUsageMarkdownListsEveryStructure(t *testing.T) {
	d, err := commands.NewDispatcher(commands.DefaultOptions())
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	md := usageMarkdown(d)

	for _, kind := range d.Kinds() {
		if !strings.Contains(md, "## "+string(kind)+"\n") {
			t.Errorf("usage missing section for %s", kind)
		}
	}
	if !strings.Contains(md, "* `range lo hi`\n") {
		t.Errorf("usage missing avl range command:\n%s", md)
	}
	if strings.Index(md, "## avl") > strings.Index(md, "## list") {
		t.Error("sections are not in display order")
	}
}
