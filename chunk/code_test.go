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
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/stretchr/testify/require"
)

const (
	PUSH1  = byte(vm.PUSH1)
	PUSH4  = byte(vm.PUSH4)
	PUSH32 = byte(vm.PUSH32)
)

func TestSplit_EmptyCodeProducesNoChunks(t *testing.T) {
	require.Empty(t, Split(nil))
	require.Empty(t, Split([]byte{}))
}

func TestSplit_CodeWithoutPushesHasZeroMetadata(t *testing.T) {
	require := require.New(t)
	require.Equal([]Chunk{{}}, Split(make([]byte, 31)))

	code := make([]byte, 100)
	for i := range code {
		code[i] = byte(vm.ADD)
	}
	chunks := Split(code)
	require.Len(chunks, 4)
	for _, c := range chunks {
		require.Equal(byte(0), c.Metadata())
	}
}

func TestSplit_PushWithinChunkDoesNotAffectMetadata(t *testing.T) {
	require := require.New(t)
	chunks := Split([]byte{PUSH1, 0xAA})
	require.Len(chunks, 1)
	require.Equal(Chunk{0, PUSH1, 0xAA}, chunks[0])
}

func TestSplit_PushCrossingChunkBoundaryIsCappedAt31(t *testing.T) {
	require := require.New(t)

	// A PUSH32 at the last position of the first chunk covers positions 31-62.
	code := make([]byte, 93)
	code[30] = PUSH32
	chunks := Split(code)
	require.Len(chunks, 3)
	require.Equal(byte(0), chunks[0].Metadata())
	require.Equal(byte(31), chunks[1].Metadata()) // 32 remaining, capped
	require.Equal(byte(1), chunks[2].Metadata())  // only position 62 is data
}

func TestSplit_PartialPushDataAtChunkStart(t *testing.T) {
	require := require.New(t)
	code := make([]byte, 62)
	code[29] = PUSH4 // data at positions 30-33
	chunks := Split(code)
	require.Len(chunks, 2)
	require.Equal(byte(0), chunks[0].Metadata())
	require.Equal(byte(3), chunks[1].Metadata())
}

func TestSplit_TruncatedTrailingPushIsTolerated(t *testing.T) {
	require := require.New(t)

	// PUSH32 with only one data byte present, padding acts as data.
	code := []byte{0x03, 30: PUSH32, 31: 0x05}
	chunks := Split(code)
	require.Len(chunks, 2)
	require.Equal(byte(0), chunks[0].Metadata())
	require.Equal(byte(31), chunks[1].Metadata())
	require.Equal(byte(0x05), chunks[1][1])

	// PUSH32 as the very last byte of the padded code.
	code = []byte{30: PUSH32}
	chunks = Split(code)
	require.Len(chunks, 1)
	require.Equal(byte(0), chunks[0].Metadata())
}

func TestSplit_PushDataIsNotInterpretedAsCode(t *testing.T) {
	require := require.New(t)

	// The data of the first push looks like a PUSH32, which must be ignored.
	code := make([]byte, 62)
	code[0] = PUSH32
	for i := 1; i <= 32; i++ {
		code[i] = PUSH32
	}
	chunks := Split(code)
	require.Len(chunks, 2)
	require.Equal(byte(2), chunks[1].Metadata())

	// A PUSH32 directly after the data is code again, covering 34-65.
	code = append(code, make([]byte, 31)...)
	code[33] = PUSH32
	chunks = Split(code)
	require.Len(chunks, 3)
	require.Equal(byte(2), chunks[1].Metadata())
	require.Equal(byte(4), chunks[2].Metadata())
}

func TestSplit_BackToBackPushes(t *testing.T) {
	require := require.New(t)
	code := []byte{PUSH1, 0x01, PUSH1, 0x02, PUSH4, 1, 2, 3, 4, byte(vm.ADD)}
	depths := PushDataDepths(code)
	require.Equal([]byte{0, 1, 0, 1, 0, 4, 3, 2, 1, 0}, depths[:len(code)])
}

func TestSplit_ChunkInvariantsHoldForRandomCode(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, size := range []int{0, 1, 30, 31, 32, 61, 62, 63, 100, 1000, 24576} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			require := require.New(t)
			code := make([]byte, size)
			r.Read(code)

			chunks := Split(code)
			require.Len(chunks, NumChunks(size))

			body := []byte{}
			for _, c := range chunks {
				require.LessOrEqual(c.Metadata(), byte(MaxMetadata))
				body = append(body, c.Code()...)
			}
			padded := make([]byte, len(chunks)*CodeSize)
			copy(padded, code)
			require.Equal(padded, body)

			require.Equal(chunks, Split(code), "chunking must be deterministic")
		})
	}
}

func TestSplit_MetadataMatchesPushDataDepths(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	code := make([]byte, 2000)
	r.Read(code)

	depths := PushDataDepths(code)
	for i, c := range Split(code) {
		require.Equal(t, min(depths[i*CodeSize], MaxMetadata), c.Metadata(), "chunk %d", i)
	}
}

func TestSplit_DoesNotModifyInput(t *testing.T) {
	code := []byte{PUSH4, 1, 2}
	backup := bytes.Clone(code)
	Split(code)
	require.Equal(t, backup, code)
}

func TestPushDataDepths_CountsDownToOne(t *testing.T) {
	require := require.New(t)
	depths := PushDataDepths([]byte{PUSH32})
	require.Len(depths, 31)
	require.Equal(byte(0), depths[0])
	for i := 1; i < 31; i++ {
		require.Equal(byte(33-i), depths[i])
	}
}

func TestPushDataSize_CoversExactlyPushOperations(t *testing.T) {
	require := require.New(t)
	for op := 0; op < 256; op++ {
		want := 0
		if op >= 0x60 && op <= 0x7f {
			want = op - 0x5f
		}
		require.Equal(want, PushDataSize(vm.OpCode(op)), "op 0x%02x", op)
	}
	require.Equal(0, PushDataSize(vm.PUSH0))
}

func TestNumChunks(t *testing.T) {
	tests := map[int]int{-1: 0, 0: 0, 1: 1, 30: 1, 31: 1, 32: 2, 62: 2, 63: 3}
	for size, want := range tests {
		require.Equal(t, want, NumChunks(size), "size %d", size)
	}
}

func TestMerge_RestoresSplitCode(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, size := range []int{0, 1, 31, 32, 500} {
		code := make([]byte, size)
		r.Read(code)
		require.Equal(t, code, Merge(Split(code), size))
	}
}

func TestMerge_PadsMissingAndIgnoresExcessChunks(t *testing.T) {
	require := require.New(t)
	chunks := Split([]byte{1, 2, 3})
	require.Equal(make([]byte, 5), Merge(chunks[:0], 5))
	require.Equal([]byte{0, 0}, Merge(nil, 2))
	require.Empty(Merge(chunks, -1))
	require.Equal([]byte{1}, Merge(chunks, 1))
	require.Equal(append([]byte{1, 2, 3}, make([]byte, 40)...), Merge(chunks, 43))
}

func TestChunk_StringIsHexEncoding(t *testing.T) {
	c := Chunk{1, 2, 31: 0xff}
	require.Equal(t, "0102"+string(bytes.Repeat([]byte("00"), 29))+"ff", c.String())
}

func BenchmarkSplit(b *testing.B) {
	code := make([]byte, 24576)
	rand.New(rand.NewSource(0)).Read(code)
	for b.Loop() {
		Split(code)
	}
}
