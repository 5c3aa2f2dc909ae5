// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package codefile

import (
	"encoding/json"
	"io"

	"github.com/0xsoniclabs/codechunk/chunk"
)

// Report bundles a piece of bytecode with its hex-encoded chunks.
type Report struct {
	Bytecode string   `json:"bytecode"`
	Chunks   []string `json:"chunks"`
}

// NewReport creates a report for the given bytecode and its chunks.
func NewReport(bytecode string, chunks []chunk.Chunk) Report {
	encoded := make([]string, 0, len(chunks))
	for _, c := range chunks {
		encoded = append(encoded, c.String())
	}
	return Report{
		Bytecode: bytecode,
		Chunks:   encoded,
	}
}

// Write writes the report as indented JSON to the given writer.
func (r Report) Write(out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
