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

package commands

import "github.com/cybrota/structviz/structures"

// highlight remembers the node IDs the last successful command touched.
// Rejected commands leave it alone.
type highlight struct {
	path []int
}

func (h *highlight) remember(res Result) Result {
	h.path = append([]int(nil), res.Path...)
	return res
}

func (h *highlight) forget() {
	h.path = nil
}

func (h *highlight) decorate(s structures.Snapshot) structures.Snapshot {
	s.Path = append([]int(nil), h.path...)
	return s
}
