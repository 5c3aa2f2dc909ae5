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
	"github.com/ethereum/go-ethereum/log"
)

// Import splits the given code into chunks and adds them to the store. Code
// already present in the store is not written again. The hash of the code is
// returned.
func Import(store Store, code []byte) (common.Hash, error) {
	hash := common.Keccak256(code)
	found, err := store.Has(hash)
	if err != nil {
		return hash, err
	}
	if found {
		log.Debug("Code already present", "hash", hash)
		return hash, nil
	}
	return hash, store.Set(hash, chunk.Split(code))
}

// ImportAll imports a list of codes, splitting them in parallel using the
// given pool. Hashes are returned in input order.
func ImportAll(store Store, pool *chunk.Pool, codes [][]byte) ([]common.Hash, error) {
	hashes := make([]common.Hash, len(codes))
	pending := make([][]byte, 0, len(codes))
	positions := make([]int, 0, len(codes))
	for i, code := range codes {
		hashes[i] = common.Keccak256(code)
		found, err := store.Has(hashes[i])
		if err != nil {
			return nil, err
		}
		if !found {
			pending = append(pending, code)
			positions = append(positions, i)
		}
	}

	log.Info("Splitting codes", "total", len(codes), "new", len(pending))
	for i, chunks := range pool.SplitAll(pending) {
		if err := store.Set(hashes[positions[i]], chunks); err != nil {
			return nil, fmt.Errorf("failed to store code %x: %w", hashes[positions[i]], err)
		}
	}
	return hashes, nil
}

// Export restores code of the given size from the chunks stored for the
// given hash. The restored code is checked against the hash.
func Export(store Store, hash common.Hash, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid code size: %d", size)
	}
	chunks, err := store.Get(hash)
	if err != nil {
		return nil, err
	}
	if got, want := len(chunks), chunk.NumChunks(size); got != want {
		return nil, fmt.Errorf("%w: code of size %d needs %d chunks, found %d", ErrCorruptedData, size, want, got)
	}
	code := chunk.Merge(chunks, size)
	if got := common.Keccak256(code); got != hash {
		return nil, fmt.Errorf("%w: restored code has hash %v, wanted %v", ErrCorruptedData, got, hash)
	}
	return code, nil
}
