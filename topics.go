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
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cybrota/structviz/structures"
	"github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var topicsYAML []byte

// Topic is the reference card shown next to a visualizer
type Topic struct {
	Kind        structures.Kind `yaml:"kind"`
	Title       string          `yaml:"title"`
	Category    string          `yaml:"category"`
	Description string          `yaml:"description"`
	Operations  []string        `yaml:"operations"`
	Diagram     string          `yaml:"diagram"`
	Notes       []string        `yaml:"notes"`
}

func LoadTopics() (map[structures.Kind]Topic, error) {
	var list []Topic
	if err := yaml.Unmarshal(topicsYAML, &list); err != nil {
		return nil, fmt.Errorf("failed to parse topic catalog: %w", err)
	}
	topics := make(map[structures.Kind]Topic, len(list))
	for _, t := range list {
		if _, ok := structures.ParseKind(string(t.Kind)); !ok {
			return nil, fmt.Errorf("topic %q names unknown structure %q", t.Title, t.Kind)
		}
		topics[t.Kind] = t
	}
	return topics, nil
}

// Markdown lays the topic out with the commands that drive its visualizer.
func (t Topic) Markdown(usage []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "*%s* · %s\n\n", t.Category, t.Description)
	fmt.Fprintf(&b, "**Operations:** %s\n\n", strings.Join(t.Operations, ", "))
	fmt.Fprintf(&b, "```\n%s```\n\n", t.Diagram)
	for _, n := range t.Notes {
		fmt.Fprintf(&b, "* %s\n", n)
	}
	if len(t.Notes) > 0 {
		b.WriteString("\n")
	}
	if len(usage) > 0 {
		b.WriteString("## Commands\n\n")
		for _, u := range usage {
			fmt.Fprintf(&b, "* `%s`\n", u)
		}
	}
	return b.String()
}

// TopicRenderer renders topic markdown with glamour and caches the result per width
type TopicRenderer struct {
	topics map[structures.Kind]Topic
	cache  *cache.Cache
	style  string
}

// NewTopicRenderer uses glamour's auto style when style is empty.
func NewTopicRenderer(c *cache.Cache, style string) (*TopicRenderer, error) {
	topics, err := LoadTopics()
	if err != nil {
		return nil, err
	}
	return &TopicRenderer{topics: topics, cache: c, style: style}, nil
}

func (r *TopicRenderer) Topic(kind structures.Kind) (Topic, bool) {
	t, ok := r.topics[kind]
	return t, ok
}

func (r *TopicRenderer) Render(kind structures.Kind, width int, usage []string) (string, error) {
	if doc := GetTopicDoc(r.cache, kind, width); doc != "" {
		return doc, nil
	}

	topic, ok := r.topics[kind]
	if !ok {
		return "", fmt.Errorf("no topic for %q", kind)
	}

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}

	md := topic.Markdown(usage)
	doc, err := renderer.Render(md)
	if err != nil {
		// Fall back to plain text
		doc = md
	}
	CacheTopicDoc(r.cache, kind, width, doc)
	return doc, nil
}
