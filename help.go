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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/cybrota/structviz/commands"
)

// usageMarkdown lists the command grammar of every registered structure.
func usageMarkdown(d *commands.Dispatcher) string {
	var b strings.Builder
	for _, kind := range d.Kinds() {
		h, _ := d.Handler(kind)
		fmt.Fprintf(&b, "## %s\n", kind)
		for _, u := range h.Usage() {
			fmt.Fprintf(&b, "* `%s`\n", u)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func getHelpMessage(d *commands.Dispatcher) string {
	message := fmt.Sprintf(`

 **structviz %s**

Interactive terminal visualizer for classic data structures. Type a command,
watch the structure change and the touched nodes light up.

Built with Go %s

# 1. Keys
* **enter** runs the typed command against the current structure
* **f2** / **f3** switch to the next / previous structure
* **tab** moves focus between the prompt, the log and the diagram
* **f1** shows or hides the topic notes
* **ctrl+y** copies the rendered diagram to the clipboard
* **esc** / **ctrl+c** quits

# 2. Commands
Arguments are split like a shell line, so "new york" is one argument.

%s
# 3. Scripting
* structviz apply avl "insert 5 3 8" "find 3" --format yaml
* structviz replay script.yaml --format cbor > snapshot.cbor

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), usageMarkdown(d))
	result := markdown.Render(message, 80, 3)
	return string(result)
}
