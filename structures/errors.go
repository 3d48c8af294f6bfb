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

package structures

import "errors"

// Rejections. A rejected operation never changes the structure it was called on.
var (
	ErrInvalidBucketCount = errors.New("bucket count must be an integer in 1..32")
	ErrEmptyKey           = errors.New("key must not be empty")
	ErrEmptyWord          = errors.New("word must not be empty")
	ErrEmptyLabel         = errors.New("vertex label must not be empty")
	ErrDuplicateVertex    = errors.New("vertex already exists")
	ErrUnknownVertex      = errors.New("vertex does not exist")
	ErrSelfLoop           = errors.New("self loops are not allowed")
	ErrDuplicateEdge      = errors.New("edge already exists")
	ErrArrayFull          = errors.New("array is full")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidCapacity    = errors.New("capacity must be an integer in 0..50")
)
