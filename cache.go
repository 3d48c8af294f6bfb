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
	"time"

	"github.com/cybrota/structviz/structures"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered topic docs only change with the terminal width
	topicCacheExpiration = 30 * time.Minute
	topicCacheCleanup    = 5 * time.Minute
)

// NewTopicCache creates a cache for glamour-rendered topic docs
func NewTopicCache() *cache.Cache {
	return cache.New(topicCacheExpiration, topicCacheCleanup)
}

func topicCacheKey(kind structures.Kind, width int) string {
	return fmt.Sprintf("%s@%d", kind, width)
}

func CacheTopicDoc(c *cache.Cache, kind structures.Kind, width int, doc string) {
	c.Set(topicCacheKey(kind, width), doc, topicCacheExpiration)
}

func GetTopicDoc(c *cache.Cache, kind structures.Kind, width int) string {
	val, ok := c.Get(topicCacheKey(kind, width))
	if !ok {
		return ""
	}
	return val.(string)
}
