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

import (
	"fmt"

	"github.com/cybrota/structviz/structures"
)

// Options sizes the engines that take a size at construction.
type Options struct {
	Buckets       int
	ArrayCapacity int
}

// DefaultOptions mirrors the engine defaults.
func DefaultOptions() Options {
	return Options{
		Buckets:       structures.DefaultBuckets,
		ArrayCapacity: structures.DefaultArrayCapacity,
	}
}

// Dispatcher routes command lines to the handler registered for a kind
type Dispatcher struct {
	handlers map[structures.Kind]Handler
	order    []structures.Kind
}

// NewDispatcher creates a dispatcher with one fresh handler per kind
func NewDispatcher(opts Options) (*Dispatcher, error) {
	hash, err := NewHashHandler(opts.Buckets)
	if err != nil {
		return nil, err
	}
	array, err := NewArrayHandler(opts.ArrayCapacity)
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{handlers: make(map[structures.Kind]Handler)}

	// Registration order is display order
	d.Register(NewAVLHandler())
	d.Register(NewBSTHandler())
	d.Register(NewHeapHandler())
	d.Register(hash)
	d.Register(NewTrieHandler())
	d.Register(NewGraphHandler())
	d.Register(array)
	d.Register(NewStackHandler())
	d.Register(NewQueueHandler())
	d.Register(NewListHandler())

	return d, nil
}

// Register adds or replaces the handler for h.Kind()
func (d *Dispatcher) Register(h Handler) {
	if _, exists := d.handlers[h.Kind()]; !exists {
		d.order = append(d.order, h.Kind())
	}
	d.handlers[h.Kind()] = h
}

// Kinds lists registered kinds in registration order
func (d *Dispatcher) Kinds() []structures.Kind {
	return append([]structures.Kind{}, d.order...)
}

func (d *Dispatcher) Handler(kind structures.Kind) (Handler, bool) {
	h, ok := d.handlers[kind]
	return h, ok
}

// Dispatch parses line and applies it to the handler for kind
func (d *Dispatcher) Dispatch(kind structures.Kind, line string) (Result, error) {
	h, ok := d.handlers[kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	cmd, err := ParseLine(line)
	if err != nil {
		return Result{}, err
	}
	return h.Apply(cmd)
}
