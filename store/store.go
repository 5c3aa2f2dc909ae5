// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package store

import (
	"fmt"

	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/0xsoniclabs/codechunk/common"
	"github.com/golang/snappy"
)

//go:generate mockgen -source store.go -destination store_mocks.go -package store

const (
	ErrNotFound      = common.ConstError("not found")
	ErrCorruptedData = common.ConstError("corrupted chunk data")
)

// Store is an archive of chunked code, indexed by the hash of the code.
type Store interface {
	// Get returns the chunks of the code with the given hash or ErrNotFound
	// if no such code is stored.
	Get(hash common.Hash) ([]chunk.Chunk, error)
	// Has checks whether chunks for the given code hash are present.
	Has(hash common.Hash) (bool, error)
	// Set stores the chunks of the code with the given hash.
	Set(hash common.Hash, chunks []chunk.Chunk) error
	// Close releases all resources held by the store.
	Close() error
}

// encodeChunks serializes chunks into a snappy-compressed blob.
func encodeChunks(chunks []chunk.Chunk) []byte {
	raw := make([]byte, 0, len(chunks)*chunk.Size)
	for _, c := range chunks {
		raw = append(raw, c[:]...)
	}
	return snappy.Encode(nil, raw)
}

// decodeChunks is the inverse of encodeChunks.
func decodeChunks(blob []byte) ([]chunk.Chunk, error) {
	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedData, err)
	}
	if len(raw)%chunk.Size != 0 {
		return nil, fmt.Errorf("%w: invalid length %d", ErrCorruptedData, len(raw))
	}
	chunks := make([]chunk.Chunk, len(raw)/chunk.Size)
	for i := range chunks {
		chunks[i] = chunk.Chunk(raw[i*chunk.Size:])
	}
	return chunks, nil
}
