// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package stats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/ethereum/go-ethereum/core/vm"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeStats summarizes how a piece of code is split into chunks.
type CodeStats struct {
	CodeSize           int               // < size of the code in bytes, without padding
	NumChunks          int               // < number of chunks needed to cover the code
	PushDataBytes      int               // < bytes of the code that are push data
	ChunksWithPushData int               // < chunks starting with push data
	NumLeaves          int               // < tree leaf nodes holding the chunks
	Pushes             map[vm.OpCode]int // < number of push instructions per opcode
	Metadata           map[byte]int      // < number of chunks per metadata value
}

// Analyze computes the statistics of the given code.
func Analyze(code []byte) CodeStats {
	res := CodeStats{
		CodeSize: len(code),
		Pushes:   map[vm.OpCode]int{},
		Metadata: map[byte]int{},
	}

	depths := chunk.PushDataDepths(code)
	for i, b := range code {
		if depths[i] > 0 {
			res.PushDataBytes++
		} else if op := vm.OpCode(b); chunk.PushDataSize(op) > 0 {
			res.Pushes[op]++
		}
	}

	for _, c := range chunk.Split(code) {
		res.NumChunks++
		res.Metadata[c.Metadata()]++
		if c.Metadata() > 0 {
			res.ChunksWithPushData++
		}
	}
	res.NumLeaves = numLeaves(res.NumChunks)
	return res
}

// numLeaves returns the number of leaf nodes covered by the given number of
// code chunks, including the leaf shared with the account header.
func numLeaves(numChunks int) int {
	if numChunks == 0 {
		return 0
	}
	last := chunk.GetPosition(numChunks - 1)
	return int(last.TreeIndex.Uint64()) + 1
}

// NumPushes returns the total number of push instructions in the code.
func (s *CodeStats) NumPushes() int {
	sum := 0
	for _, count := range s.Pushes {
		sum += count
	}
	return sum
}

// Summary aggregates the statistics of multiple codes.
type Summary struct {
	NumCodes int
	Total    CodeStats
}

// Add includes the given statistics in the summary.
func (s *Summary) Add(stats CodeStats) {
	if s.Total.Pushes == nil {
		s.Total.Pushes = map[vm.OpCode]int{}
		s.Total.Metadata = map[byte]int{}
	}
	s.NumCodes++
	s.Total.CodeSize += stats.CodeSize
	s.Total.NumChunks += stats.NumChunks
	s.Total.PushDataBytes += stats.PushDataBytes
	s.Total.ChunksWithPushData += stats.ChunksWithPushData
	s.Total.NumLeaves += stats.NumLeaves
	for op, count := range stats.Pushes {
		s.Total.Pushes[op] += count
	}
	for metadata, count := range stats.Metadata {
		s.Total.Metadata[metadata] += count
	}
}

// Overhead returns the ratio of chunked size to code size, or 0 for empty
// summaries.
func (s *Summary) Overhead() float64 {
	if s.Total.CodeSize == 0 {
		return 0
	}
	return float64(s.Total.NumChunks*chunk.Size) / float64(s.Total.CodeSize)
}

// Print writes a human readable table of the summary to the given writer.
func (s *Summary) Print(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "codes\t%d\n", s.NumCodes)
	fmt.Fprintf(w, "code bytes\t%d\n", s.Total.CodeSize)
	fmt.Fprintf(w, "chunks\t%d\n", s.Total.NumChunks)
	fmt.Fprintf(w, "push data bytes\t%d\n", s.Total.PushDataBytes)
	fmt.Fprintf(w, "chunks starting in push data\t%d\n", s.Total.ChunksWithPushData)
	fmt.Fprintf(w, "leaf nodes\t%d\n", s.Total.NumLeaves)
	fmt.Fprintf(w, "chunking overhead\t%.3f\n", s.Overhead())

	ops := maps.Keys(s.Total.Pushes)
	slices.Sort(ops)
	for _, op := range ops {
		fmt.Fprintf(w, "%v\t%d\n", op, s.Total.Pushes[op])
	}

	metadata := maps.Keys(s.Total.Metadata)
	slices.Sort(metadata)
	for _, m := range metadata {
		fmt.Fprintf(w, "metadata=%d\t%d\n", m, s.Total.Metadata[m])
	}
	return w.Flush()
}
