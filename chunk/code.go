// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chunk

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/core/vm"
)

const (
	// Size is the number of bytes of a chunk, including its metadata byte.
	Size = 32
	// CodeSize is the number of code bytes covered by a single chunk.
	CodeSize = Size - 1
	// MaxMetadata is the largest value the metadata byte of a chunk may take.
	MaxMetadata = CodeSize
)

// Chunk is a 31-byte segment of some EVM code prefixed by the number of bytes
// at the start of the segment that are part of the data section of a push
// instruction started in a preceding chunk.
type Chunk [Size]byte

// Metadata returns the number of leading push-data bytes of the chunk.
func (c Chunk) Metadata() byte {
	return c[0]
}

// Code returns the 31 code bytes covered by the chunk.
func (c Chunk) Code() []byte {
	return c[1:]
}

// String returns the hex encoding of the chunk, metadata byte first.
func (c Chunk) String() string {
	return hex.EncodeToString(c[:])
}

// NumChunks returns the number of chunks needed to cover code of the given size.
func NumChunks(size int) int {
	if size <= 0 {
		return 0
	}
	return (size + CodeSize - 1) / CodeSize
}

// PushDataSize returns the number of data bytes following the given opcode.
// Operations other than PUSH1..PUSH32 carry no inline data.
func PushDataSize(op vm.OpCode) int {
	if op < vm.PUSH1 || op > vm.PUSH32 {
		return 0
	}
	return int(op-vm.PUSH1) + 1
}

// pad returns the code right-padded with zero bytes to a multiple of CodeSize.
func pad(code []byte) []byte {
	padded := make([]byte, NumChunks(len(code))*CodeSize)
	copy(padded, code)
	return padded
}

// pushDataDepths computes for every position of the padded code the number
// of push-data bytes remaining at that position, counting down to 1 on the
// last data byte of a push. Positions holding instructions are 0. Data of a
// push extending past the end of the padded code is cut off.
func pushDataDepths(padded []byte) []byte {
	depths := make([]byte, len(padded))
	for pos := 0; pos < len(padded); {
		size := PushDataSize(vm.OpCode(padded[pos]))
		pos++
		for x := 0; x < size && pos+x < len(depths); x++ {
			depths[pos+x] = byte(size - x)
		}
		pos += size
	}
	return depths
}

// PushDataDepths returns the push-data countdown for each byte of the given
// code after padding it to a full number of chunks.
func PushDataDepths(code []byte) []byte {
	return pushDataDepths(pad(code))
}

// Split splits the given EVM code into chunks. The code is zero-padded to a
// multiple of 31 bytes. Each chunk is prefixed by the number of bytes in the
// prefix of the chunk that are part of the data section of a push
// instruction, capped at 31. Empty code produces no chunks.
func Split(code []byte) []Chunk {
	padded := pad(code)
	depths := pushDataDepths(padded)

	chunks := make([]Chunk, 0, len(padded)/CodeSize)
	for pos := 0; pos < len(padded); pos += CodeSize {
		next := Chunk{}
		next[0] = min(depths[pos], MaxMetadata)
		copy(next[1:], padded[pos:pos+CodeSize])
		chunks = append(chunks, next)
	}
	return chunks
}

// Merge merges the given chunks into a single byte slice restoring the code of
// the given length in bytes. The function does not check for the right number
// of chunks to fit the length of the resulting code. If there are too few
// chunks, the resulting code will be zero-padded. If there are too many, chunks
// will be ignored. A negative size is treated as zero.
func Merge(chunks []Chunk, size int) []byte {
	res := make([]byte, max(size, 0))
	cur := res
	for _, c := range chunks {
		if len(cur) == 0 {
			break
		}
		cur = cur[copy(cur, c[1:]):]
	}
	return res
}
