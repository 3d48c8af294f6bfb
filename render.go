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
	"strconv"
	"strings"

	"github.com/cybrota/structviz/structures"
)

// RenderOptions controls how a snapshot is drawn. Mark decorates highlighted
// labels; the TUI passes a lipgloss style, the CLI wraps them in brackets.
type RenderOptions struct {
	ShowHeights bool
	Mark        func(string) string
}

func bracketMark(s string) string { return "[" + s + "]" }

// RenderSnapshot draws s as text. It only reads the snapshot, never an engine.
func RenderSnapshot(s structures.Snapshot, opts RenderOptions) string {
	if opts.Mark == nil {
		opts.Mark = bracketMark
	}

	switch s.Kind {
	case structures.KindBST, structures.KindAVL, structures.KindHeap, structures.KindTrie:
		return renderTree(s, opts)
	case structures.KindHash:
		return renderBuckets(s, opts)
	case structures.KindGraph:
		return renderGraph(s, opts)
	case structures.KindArray:
		return renderArray(s, opts)
	case structures.KindStack:
		return renderStack(s, opts)
	case structures.KindQueue:
		return renderQueue(s, opts)
	case structures.KindList:
		return renderList(s, opts)
	}
	return fmt.Sprintf("(no renderer for %q)", s.Kind)
}

func nodeText(s structures.Snapshot, n structures.NodeView, opts RenderOptions) string {
	text := n.Label
	if n.WordEnd {
		text += "*"
	}
	if s.OnPath(n.ID) {
		text = opts.Mark(text)
	}
	if opts.ShowHeights && s.Kind == structures.KindAVL {
		text += fmt.Sprintf(" (h=%d)", n.Height)
	}
	return text
}

func renderTree(s structures.Snapshot, opts RenderOptions) string {
	if len(s.Nodes) == 0 {
		return "(empty)"
	}

	nodes := make(map[int]structures.NodeView, len(s.Nodes))
	hasParent := make(map[int]bool, len(s.Edges))
	for _, n := range s.Nodes {
		nodes[n.ID] = n
	}
	for _, e := range s.Edges {
		hasParent[e.To] = true
	}
	root := s.Nodes[0]
	for _, n := range s.Nodes {
		if !hasParent[n.ID] {
			root = n
			break
		}
	}

	children := s.Children()
	var b strings.Builder
	b.WriteString(nodeText(s, root, opts) + "\n")

	var walk func(id int, prefix string)
	walk = func(id int, prefix string) {
		kids := children[id]
		for i, e := range kids {
			branch, next := "├── ", "│   "
			if i == len(kids)-1 {
				branch, next = "└── ", "    "
			}
			edge := ""
			if s.Kind != structures.KindTrie && e.Label != "" {
				edge = e.Label + ": "
			}
			b.WriteString(prefix + branch + edge + nodeText(s, nodes[e.To], opts) + "\n")
			walk(e.To, prefix+next)
		}
	}
	walk(root.ID, "")

	if s.Kind == structures.KindHeap {
		b.WriteString("\n")
		for d, level := range s.Levels {
			parts := make([]string, len(level))
			for i, v := range level {
				parts[i] = strconv.Itoa(v)
			}
			fmt.Fprintf(&b, "level %d: %s\n", d, strings.Join(parts, " "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBuckets(s structures.Snapshot, opts RenderOptions) string {
	var b strings.Builder
	load := 0.0
	if s.Capacity > 0 {
		load = float64(s.Size) / float64(s.Capacity)
	}
	fmt.Fprintf(&b, "buckets %d · entries %d · load %.2f\n", s.Capacity, s.Size, load)

	width := len(strconv.Itoa(len(s.Buckets) - 1))
	for i, bucket := range s.Buckets {
		fmt.Fprintf(&b, "[%*d] ", width, i)
		if len(bucket) == 0 {
			b.WriteString("∅\n")
			continue
		}
		parts := make([]string, len(bucket))
		for j, e := range bucket {
			parts[j] = e.Key + "=" + e.Value
			if s.Touched != nil && s.Touched.Bucket == i && s.Touched.Index == j {
				parts[j] = opts.Mark(parts[j])
			}
		}
		b.WriteString(strings.Join(parts, " → ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGraph(s structures.Snapshot, opts RenderOptions) string {
	if len(s.Nodes) == 0 {
		return "(empty)"
	}
	labels := make(map[int]string, len(s.Nodes))
	for _, n := range s.Nodes {
		labels[n.ID] = n.Label
	}
	adjacent := make(map[int][]string)
	for _, e := range s.Edges {
		adjacent[e.From] = append(adjacent[e.From], labels[e.To])
		adjacent[e.To] = append(adjacent[e.To], labels[e.From])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "vertices %d · edges %d\n", len(s.Nodes), len(s.Edges))
	for _, n := range s.Nodes {
		text := nodeText(s, n, opts)
		if len(adjacent[n.ID]) == 0 {
			fmt.Fprintf(&b, "%s (isolated)\n", text)
			continue
		}
		fmt.Fprintf(&b, "%s ── %s\n", text, strings.Join(adjacent[n.ID], ", "))
	}
	if len(s.Path) > 1 {
		order := make([]string, len(s.Path))
		for i, id := range s.Path {
			order[i] = labels[id]
		}
		fmt.Fprintf(&b, "\nvisit: %s\n", strings.Join(order, " → "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func markItems(s structures.Snapshot, opts RenderOptions) []string {
	out := make([]string, len(s.Items))
	for i, v := range s.Items {
		if v == "" {
			v = "·"
		}
		if s.OnPath(i) {
			v = opts.Mark(v)
		}
		out[i] = v
	}
	return out
}

func renderArray(s structures.Snapshot, opts RenderOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "capacity %d · length %d\n", s.Capacity, s.Size)
	items := markItems(s, opts)
	width := len(strconv.Itoa(max(s.Capacity-1, 0)))
	for i := 0; i < s.Capacity; i++ {
		v := "_"
		if i < len(items) {
			v = items[i]
		}
		fmt.Fprintf(&b, "[%*d] %s\n", width, i, v)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStack(s structures.Snapshot, opts RenderOptions) string {
	if len(s.Items) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for i, v := range markItems(s, opts) {
		prefix := "      "
		if i == 0 {
			prefix = "top → "
		}
		b.WriteString(prefix + v + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderQueue(s structures.Snapshot, opts RenderOptions) string {
	if len(s.Items) == 0 {
		return "(empty)"
	}
	return "front → " + strings.Join(markItems(s, opts), " → ") + " ← rear"
}

func renderList(s structures.Snapshot, opts RenderOptions) string {
	if len(s.Items) == 0 {
		return "head → nil"
	}
	return "head → " + strings.Join(markItems(s, opts), " → ") + " → nil"
}
