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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/structviz/structures"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

type ExportFormat string

const (
	FormatText ExportFormat = "text"
	FormatYAML ExportFormat = "yaml"
	FormatJSON ExportFormat = "json"
	FormatCBOR ExportFormat = "cbor"
)

var exportFormats = []ExportFormat{FormatText, FormatYAML, FormatJSON, FormatCBOR}

func ParseExportFormat(s string) (ExportFormat, error) {
	for _, f := range exportFormats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want text, yaml, json or cbor)", s)
}

// Export is a set of snapshots stamped with the session that produced them.
type Export struct {
	Session    string                `json:"session" yaml:"session" cbor:"session"`
	Structures []structures.Snapshot `json:"structures" yaml:"structures" cbor:"structures"`
}

var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Export collects the snapshots of kinds in the given order.
func (s *Session) Export(kinds []structures.Kind) (*Export, error) {
	out := &Export{Session: s.ID.String()}
	for _, k := range kinds {
		snap, err := s.Snapshot(k)
		if err != nil {
			return nil, err
		}
		out.Structures = append(out.Structures, snap)
	}
	return out, nil
}

func WriteExport(w io.Writer, e *Export, format ExportFormat, opts RenderOptions) error {
	switch format {
	case FormatText:
		for i, snap := range e.Structures {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n%s\n", snap.Kind, RenderSnapshot(snap, opts))
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("yaml export: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	case FormatCBOR:
		data, err := cborEncMode.Marshal(e)
		if err != nil {
			return fmt.Errorf("cbor export: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// DecodeCBORExport reads back what WriteExport produced in cbor format.
func DecodeCBORExport(data []byte) (*Export, error) {
	var e Export
	if err := cbor.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
