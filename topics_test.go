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

	"github.com/cybrota/structviz/structures"
)

func TestLoadTopicsCoversEveryKind(t *testing.T) {
	topics, err := LoadTopics()
	if err != nil {
		t.Fatalf("LoadTopics: %v", err)
	}
	for _, kind := range structures.AllKinds {
		topic, ok := topics[kind]
		if !ok {
			t.Errorf("no topic for %s", kind)
			continue
		}
		if topic.Title == "" || topic.Description == "" || topic.Diagram == "" {
			t.Errorf("topic %s is missing a title, description or diagram", kind)
		}
	}
}

func TestTopicMarkdown(t *testing.T) {
	topic := Topic{
		Title:       "Stack",
		Category:    "Linear",
		Description: "LIFO",
		Operations:  []string{"push", "pop"},
		Diagram:     "top → a\n",
	}
	md := topic.Markdown([]string{"push v...", "pop"})

	for _, want := range []string{"# Stack", "*Linear* · LIFO", "**Operations:** push, pop", "```\ntop → a\n```", "## Commands", "* `push v...`"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	if strings.Contains(topic.Markdown(nil), "## Commands") {
		t.Error("commands section rendered without usage")
	}
}

func TestTopicRendererCachesPerWidth(t *testing.T) {
	c := NewTopicCache()
	r, err := NewTopicRenderer(c, "notty")
	if err != nil {
		t.Fatalf("NewTopicRenderer: %v", err)
	}

	doc, err := r.Render(structures.KindTrie, 60, []string{"insert w..."})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(doc, "Trie") {
		t.Errorf("rendered doc missing title:\n%s", doc)
	}
	if cached := GetTopicDoc(c, structures.KindTrie, 60); cached != doc {
		t.Error("rendered doc was not cached")
	}
	if cached := GetTopicDoc(c, structures.KindTrie, 61); cached != "" {
		t.Error("cache hit for a width that was never rendered")
	}

	CacheTopicDoc(c, structures.KindTrie, 60, "stale")
	if doc, _ := r.Render(structures.KindTrie, 60, nil); doc != "stale" {
		t.Errorf("expected cached doc, got %q", doc)
	}

	if _, err := r.Render("matrix", 60, nil); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}
